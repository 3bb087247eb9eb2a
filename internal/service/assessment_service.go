package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"health-report/internal/catalog"
	"health-report/internal/domain"
	"health-report/internal/model"
)

// Codigos de transporte del formulario simple.
var simpleTransport = map[int]domain.Transport{
	0: domain.TransportWalking,
	1: domain.TransportPublic,
	2: domain.TransportAutomobile,
	3: domain.TransportBike,
}

// AssessmentService une el modelo de clasificacion, el catalogo de etiquetas y el motor de reportes.
type AssessmentService struct {
	model   model.Client
	catalog *catalog.Catalog
	reports *ReportService
	logger  *zap.Logger
}

func NewAssessmentService(
	modelClient model.Client,
	cat *catalog.Catalog,
	reports *ReportService,
	logger *zap.Logger,
) *AssessmentService {
	if cat == nil {
		cat = catalog.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if reports == nil {
		reports = NewReportService(cat, logger)
	}
	return &AssessmentService{
		model:   modelClient,
		catalog: cat,
		reports: reports,
		logger:  logger,
	}
}

// Assess clasifica cada fila y le agrega descripcion y observaciones.
// Un error del modelo se propaga: sin etiqueta no hay evaluacion simple.
func (s *AssessmentService) Assess(ctx context.Context, req domain.HealthRequest) (domain.HealthResponse, error) {
	if req.DataFrameSplit == nil || len(req.DataFrameSplit.Data) == 0 {
		return domain.HealthResponse{}, &domain.ValidationError{Reason: "dataframe_split has no rows"}
	}
	s.warnColumnMismatch(req.DataFrameSplit.Columns)

	preds, err := s.model.Predict(ctx, req)
	if err != nil {
		return domain.HealthResponse{}, fmt.Errorf("predict: %w", err)
	}

	cols := req.DataFrameSplit.Columns
	rows := req.DataFrameSplit.Data
	items := make([]domain.AssessmentItem, 0, len(preds))
	for i, pred := range preds {
		if i >= len(rows) {
			break
		}
		features := make(map[string]any, len(cols))
		for j, col := range cols {
			if j < len(rows[i]) {
				features[col] = rows[i][j]
			}
		}
		items = append(items, domain.AssessmentItem{
			Prediction:   pred,
			Description:  s.catalog.Describe(pred),
			Observations: Observations(features, pred),
		})
	}
	return domain.HealthResponse{Assessments: items}, nil
}

// AssessSimple convierte el formulario plano en un registro y sigue el camino de Assess.
func (s *AssessmentService) AssessSimple(ctx context.Context, req domain.SimpleHealthRequest) (domain.HealthResponse, error) {
	return s.Assess(ctx, SimpleToHealthRequest(req))
}

// AssessAdvanced valida la primera fila, pide la etiqueta al modelo y arma el reporte completo.
// Si el modelo falla el reporte sale igual con la etiqueta "Unknown".
func (s *AssessmentService) AssessAdvanced(ctx context.Context, req domain.HealthRequest) (domain.AdvancedHealthAnalysisResult, error) {
	record := req.FirstRow()
	features, err := ExtractFeatures(record)
	if err != nil {
		return domain.AdvancedHealthAnalysisResult{}, err
	}
	if req.DataFrameSplit != nil {
		s.warnColumnMismatch(req.DataFrameSplit.Columns)
	}

	prediction := UnknownPrediction
	preds, err := s.model.Predict(ctx, req)
	switch {
	case err != nil:
		s.logger.Warn("model prediction failed, continuing with unknown label", zap.Error(err))
	case len(preds) == 0 || strings.TrimSpace(preds[0]) == "":
		s.logger.Warn("model returned no prediction")
	default:
		prediction = preds[0]
	}

	return s.reports.Analyze(features, prediction), nil
}

func (s *AssessmentService) warnColumnMismatch(columns []string) {
	if mismatches := CheckColumns(columns); len(mismatches) > 0 {
		s.logger.Warn("unexpected column order", zap.Strings("mismatches", mismatches))
	}
}

// SimpleToHealthRequest arma el registro de 17 posiciones: altura en metros, CAEC y CALC en Sometimes.
func SimpleToHealthRequest(req domain.SimpleHealthRequest) domain.HealthRequest {
	transport, ok := simpleTransport[req.Transportation]
	if !ok {
		transport = domain.TransportPublic
	}
	row := []any{
		0,
		req.Age,
		float64(req.Height) / 100,
		req.Weight,
		req.VegetableConsumption,
		req.NumberOfMeals,
		req.WaterConsumption,
		req.PhysicalActivityFrequency,
		req.TechnologyTime,
		req.Gender,
		yesNo(req.FamilyHistoryOverweight),
		yesNo(req.HighCalorieFood),
		string(domain.FrequencySometimes),
		yesNo(req.Smoking),
		yesNo(req.CalorieMonitoring),
		string(domain.FrequencySometimes),
		string(transport),
	}
	columns := append([]string(nil), domain.FeatureColumns...)
	return domain.HealthRequest{DataFrameSplit: &domain.DataFrameSplit{
		Columns: columns,
		Data:    [][]any{row},
	}}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
