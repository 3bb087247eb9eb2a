package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"health-report/internal/catalog"
	"health-report/internal/domain"
)

func newTestReportService() *ReportService {
	return NewReportService(catalog.Default(), zap.NewNop())
}

func hasRiskFactor(r domain.RiskFactorAnalysis, name, level string) bool {
	for _, rf := range r.RiskFactors {
		if rf.Name == name && rf.Level == level {
			return true
		}
	}
	return false
}

func TestReportScenarios(t *testing.T) {
	svc := newTestReportService()

	t.Run("A healthy adult", func(t *testing.T) {
		res, err := svc.AnalyzeRecord(healthyRecord(), "Normal_Weight")
		require.NoError(t, err)

		assert.Equal(t, 22.9, res.PersonalProfile.BMI)
		assert.Equal(t, BMINormal, res.BMIAnalysis.Category)
		assert.Equal(t, 100, res.HealthScore)
		assert.Equal(t, domain.RiskLow, res.RiskFactorAnalysis.OverallRiskLevel)
		assert.Equal(t, "Normal_Weight", res.Prediction)
		assert.Contains(t, res.DetailedDescription, "Excellent health")
	})

	t.Run("B obesity", func(t *testing.T) {
		record := withField(withField(healthyRecord(), idxHeight, 1.70), idxWeight, 95)
		res, err := svc.AnalyzeRecord(record, "Obesity_Type_I")
		require.NoError(t, err)

		assert.InDelta(t, 32.9, res.BMIAnalysis.CurrentBMI, 0.001)
		assert.Equal(t, BMIObesityI, res.BMIAnalysis.Category)
		assert.True(t, hasRiskFactor(res.RiskFactorAnalysis, RiskObesity, domain.RiskHigh))
		assert.LessOrEqual(t, res.HealthScore, 70)
	})

	t.Run("C smoker", func(t *testing.T) {
		res, err := svc.AnalyzeRecord(withField(healthyRecord(), idxSmoke, "yes"), "Normal_Weight")
		require.NoError(t, err)

		assert.True(t, hasRiskFactor(res.RiskFactorAnalysis, RiskSmoking, domain.RiskVeryHigh))
		assert.Equal(t, 75, res.HealthScore)
		assert.Contains(t, []string{domain.RiskHigh, domain.RiskVeryHigh}, res.RiskFactorAnalysis.OverallRiskLevel)
	})

	t.Run("D short record", func(t *testing.T) {
		res, err := svc.AnalyzeRecord(healthyRecord()[:12], "Normal_Weight")
		var vErr *domain.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		assert.Equal(t, domain.AdvancedHealthAnalysisResult{}, res)
	})

	t.Run("E alcohol always", func(t *testing.T) {
		res, err := svc.AnalyzeRecord(withField(healthyRecord(), idxAlcohol, "Always"), "Normal_Weight")
		require.NoError(t, err)

		// 92 para el registro sano, menos los 10 puntos del componente de alcohol
		assert.Equal(t, 82, res.NutritionalAnalysis.NutritionScore)
		// 85 con +10 por no beber pasa a 85-10-20
		assert.Equal(t, 55, res.LifestyleAnalysis.LifestyleScore)
		assert.True(t, hasRiskFactor(res.RiskFactorAnalysis, RiskAlcohol, domain.RiskHigh))
	})
}

func TestAnalyzeRecordUnknownPrediction(t *testing.T) {
	res, err := newTestReportService().AnalyzeRecord(healthyRecord(), "  ")
	require.NoError(t, err)
	assert.Equal(t, UnknownPrediction, res.Prediction)
}

func TestAnalyzeNormalizesBlankPrediction(t *testing.T) {
	svc := newTestReportService()
	for _, label := range []string{"", " ", "\t\n"} {
		res := svc.Analyze(healthyFeatures(t), label)
		if res.Prediction != UnknownPrediction {
			t.Fatalf("label %q: expected %s, got %q", label, UnknownPrediction, res.Prediction)
		}
	}
}

func TestAnalyzeRecordIdempotent(t *testing.T) {
	svc := newTestReportService()
	record := withField(healthyRecord(), idxWeight, 88)

	first, err := svc.AnalyzeRecord(record, "Overweight_Level_II")
	require.NoError(t, err)
	second, err := svc.AnalyzeRecord(record, "Overweight_Level_II")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyzeRecordScoreRanges(t *testing.T) {
	svc := newTestReportService()
	weights := []any{30, 55, 70, 90, 140}
	activity := []any{0, 1, 3}
	smoke := []any{"yes", "no"}
	alcohol := []any{"no", "Sometimes", "Frequently", "Always"}

	for _, w := range weights {
		for _, a := range activity {
			for _, s := range smoke {
				for _, c := range alcohol {
					record := healthyRecord()
					record[idxWeight] = w
					record[idxActivity] = a
					record[idxSmoke] = s
					record[idxAlcohol] = c

					res, err := svc.AnalyzeRecord(record, "x")
					require.NoError(t, err)
					if res.HealthScore < 0 || res.HealthScore > 100 {
						t.Fatalf("health score out of range: %d", res.HealthScore)
					}
					if res.RiskFactorAnalysis.RiskScore < 0 || res.RiskFactorAnalysis.RiskScore > 100 {
						t.Fatalf("risk score out of range: %d", res.RiskFactorAnalysis.RiskScore)
					}
					for i := 1; i < len(res.Recommendations); i++ {
						if res.Recommendations[i].Priority > res.Recommendations[i-1].Priority {
							t.Fatalf("recommendations not sorted")
						}
					}
				}
			}
		}
	}
}

func TestSectionFailureFallsBackToDefaults(t *testing.T) {
	svc := newTestReportService()
	svc.sections.bmi = func(f domain.FeatureSet) domain.BMIAnalysis {
		if f.Age == 30 {
			panic("boom")
		}
		return AnalyzeBMI(f)
	}
	svc.sections.healthScore = func(domain.FeatureSet) int {
		panic("score failure")
	}

	res, err := svc.AnalyzeRecord(healthyRecord(), "Normal_Weight")
	require.NoError(t, err)

	assert.Equal(t, AnalyzeBMI(domain.DefaultFeatures()), res.BMIAnalysis)
	assert.Equal(t, NeutralHealthScore, res.HealthScore)
	assert.Equal(t, BuildPersonalProfile(healthyFeatures(t)), res.PersonalProfile)
	assert.NotEmpty(t, res.DetailedDescription)
}

func TestSafeComputeWrapsPanic(t *testing.T) {
	_, err := safeCompute("lifestyleAnalysis", domain.DefaultFeatures(), func(domain.FeatureSet) int {
		panic("bad input")
	})
	var secErr *domain.SectionError
	if !errors.As(err, &secErr) {
		t.Fatalf("expected SectionError, got %v", err)
	}
	if secErr.Section != "lifestyleAnalysis" {
		t.Fatalf("unexpected section %q", secErr.Section)
	}
}

func TestAdvancedResultJSONKeys(t *testing.T) {
	res, err := newTestReportService().AnalyzeRecord(healthyRecord(), "Normal_Weight")
	require.NoError(t, err)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{
		"prediction", "personalProfile", "bmiAnalysis", "nutritionalAnalysis",
		"physicalActivityAnalysis", "lifestyleAnalysis", "riskFactorAnalysis",
		"recommendations", "actionPlan", "healthScore", "detailedDescription",
	} {
		assert.Contains(t, decoded, key)
	}
	profile := decoded["personalProfile"].(map[string]any)
	assert.Contains(t, profile, "bmi")
	assert.Contains(t, profile, "idealWeightRange")
	recs := decoded["recommendations"].([]any)
	assert.Contains(t, recs[0].(map[string]any), "timeframe")
}
