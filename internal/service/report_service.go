package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"health-report/internal/catalog"
	"health-report/internal/domain"
)

// UnknownPrediction se usa cuando no hay etiqueta del modelo.
const UnknownPrediction = "Unknown"

// sections agrupa las funciones puras que arman cada parte del reporte.
type sections struct {
	profile         func(domain.FeatureSet) domain.PersonalProfile
	bmi             func(domain.FeatureSet) domain.BMIAnalysis
	nutrition       func(domain.FeatureSet) domain.NutritionalAnalysis
	activity        func(domain.FeatureSet) domain.PhysicalActivityAnalysis
	lifestyle       func(domain.FeatureSet) domain.LifestyleAnalysis
	risk            func(domain.FeatureSet) domain.RiskFactorAnalysis
	recommendations func(domain.FeatureSet) []domain.Recommendation
	actionPlan      func(domain.FeatureSet) domain.ActionPlan
	healthScore     func(domain.FeatureSet) int
}

func defaultSections(cat *catalog.Catalog) sections {
	return sections{
		profile:         BuildPersonalProfile,
		bmi:             AnalyzeBMI,
		nutrition:       AnalyzeNutrition,
		activity:        AnalyzePhysicalActivity,
		lifestyle:       AnalyzeLifestyle,
		risk:            AnalyzeRiskFactors,
		recommendations: GenerateRecommendations,
		actionPlan: func(f domain.FeatureSet) domain.ActionPlan {
			return GenerateActionPlan(f, cat.Plan())
		},
		healthScore: HealthScore,
	}
}

// ReportService arma el reporte avanzado a partir de un registro de 17 campos y una etiqueta.
type ReportService struct {
	sections sections
	logger   *zap.Logger
}

func NewReportService(cat *catalog.Catalog, logger *zap.Logger) *ReportService {
	if cat == nil {
		cat = catalog.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		sections: defaultSections(cat),
		logger:   logger,
	}
}

// AnalyzeRecord valida el registro una sola vez y calcula todas las secciones en paralelo.
// Solo devuelve error de validacion; una seccion que falla toma el valor calculado sobre
// domain.DefaultFeatures() y el puntaje de salud cae a NeutralHealthScore.
func (s *ReportService) AnalyzeRecord(record []any, prediction string) (domain.AdvancedHealthAnalysisResult, error) {
	f, err := ExtractFeatures(record)
	if err != nil {
		return domain.AdvancedHealthAnalysisResult{}, err
	}
	return s.Analyze(f, prediction), nil
}

// Analyze corre el motor sobre un FeatureSet ya validado. Una etiqueta vacia pasa a UnknownPrediction.
func (s *ReportService) Analyze(f domain.FeatureSet, prediction string) domain.AdvancedHealthAnalysisResult {
	if strings.TrimSpace(prediction) == "" {
		prediction = UnknownPrediction
	}
	res := domain.AdvancedHealthAnalysisResult{Prediction: prediction}
	def := domain.DefaultFeatures()
	sec := s.sections

	// Cada goroutine escribe solo su campo; el Wait establece el orden con el render.
	var g errgroup.Group
	g.Go(func() error {
		res.PersonalProfile = runSection(s.logger, "personalProfile", f, def, sec.profile)
		return nil
	})
	g.Go(func() error {
		res.BMIAnalysis = runSection(s.logger, "bmiAnalysis", f, def, sec.bmi)
		return nil
	})
	g.Go(func() error {
		res.NutritionalAnalysis = runSection(s.logger, "nutritionalAnalysis", f, def, sec.nutrition)
		return nil
	})
	g.Go(func() error {
		res.PhysicalActivityAnalysis = runSection(s.logger, "physicalActivityAnalysis", f, def, sec.activity)
		return nil
	})
	g.Go(func() error {
		res.LifestyleAnalysis = runSection(s.logger, "lifestyleAnalysis", f, def, sec.lifestyle)
		return nil
	})
	g.Go(func() error {
		res.RiskFactorAnalysis = runSection(s.logger, "riskFactorAnalysis", f, def, sec.risk)
		return nil
	})
	g.Go(func() error {
		res.Recommendations = runSection(s.logger, "recommendations", f, def, sec.recommendations)
		return nil
	})
	g.Go(func() error {
		res.ActionPlan = runSection(s.logger, "actionPlan", f, def, sec.actionPlan)
		return nil
	})
	g.Go(func() error {
		score, err := safeCompute("healthScore", f, sec.healthScore)
		if err != nil {
			s.logger.Warn("health score failed, using neutral score", zap.Error(err))
			score = NeutralHealthScore
		}
		res.HealthScore = score
		return nil
	})
	_ = g.Wait()

	narrative, err := safeCompute("detailedDescription", f, func(f domain.FeatureSet) string {
		return RenderNarrative(res, HealthPrognosis(f))
	})
	if err != nil {
		s.logger.Warn("narrative render failed", zap.Error(err))
	}
	res.DetailedDescription = narrative
	return res
}

// runSection calcula la seccion y, si falla, la recalcula con el conjunto por defecto.
func runSection[T any](logger *zap.Logger, name string, f, fallback domain.FeatureSet, compute func(domain.FeatureSet) T) T {
	v, err := safeCompute(name, f, compute)
	if err == nil {
		return v
	}
	logger.Warn("report section failed, using default", zap.String("section", name), zap.Error(err))

	v, err = safeCompute(name, fallback, compute)
	if err != nil {
		logger.Warn("report section default failed", zap.String("section", name), zap.Error(err))
		var zero T
		return zero
	}
	return v
}

func safeCompute[T any](name string, f domain.FeatureSet, compute func(domain.FeatureSet) T) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &domain.SectionError{Section: name, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return compute(f), nil
}
