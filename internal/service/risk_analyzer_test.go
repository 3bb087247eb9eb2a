package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-report/internal/domain"
)

func factorNames(factors []domain.RiskFactor) []string {
	names := make([]string, 0, len(factors))
	for _, rf := range factors {
		names = append(names, rf.Name)
	}
	return names
}

func TestAnalyzeRiskFactorsHealthy(t *testing.T) {
	r := AnalyzeRiskFactors(healthyFeatures(t))

	require.NotNil(t, r.RiskFactors)
	assert.Empty(t, r.RiskFactors)
	assert.Equal(t, domain.RiskLow, r.OverallRiskLevel)
	assert.Equal(t, 0, r.RiskScore)
	assert.Len(t, r.ProtectiveFactors, 3)
	assert.Len(t, r.PreventionStrategies, 2)
	assert.Contains(t, r.MonitoringRecommendations, "Blood tests every 6-12 months")
}

func TestWeightRiskIsExclusive(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		want   string
		level  string
	}{
		{"underweight", 50, RiskUnderweight, domain.RiskMedium},
		{"overweight", 85, RiskOverweight, domain.RiskModerate},
		{"obesity", 95, RiskObesity, domain.RiskHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := healthyFeatures(t)
			f.Weight = tt.weight
			r := AnalyzeRiskFactors(f)
			require.Len(t, r.RiskFactors, 1)
			assert.Equal(t, tt.want, r.RiskFactors[0].Name)
			assert.Equal(t, tt.level, r.RiskFactors[0].Level)
		})
	}
}

func TestAnalyzeRiskFactorsOrderAndCap(t *testing.T) {
	f := domain.FeatureSet{
		Age:                60,
		Height:             1.70,
		Weight:             110,
		VegetableFrequency: 1,
		MealCount:          3,
		WaterIntake:        1,
		ActivityFrequency:  0,
		TechTime:           10,
		Gender:             domain.GenderFemale,
		FamilyHistory:      true,
		HighCalorieFood:    true,
		EatingBetweenMeals: domain.FrequencyAlways,
		Smoker:             true,
		Alcohol:            domain.FrequencyFrequently,
		Transportation:     domain.TransportAutomobile,
	}
	r := AnalyzeRiskFactors(f)

	assert.Equal(t, []string{
		RiskObesity,
		RiskLowVegetables, RiskLowHydration, RiskHighCalorieDiet,
		RiskSedentary, RiskScreenTime,
		RiskSmoking, RiskAlcohol,
		RiskGenetic, RiskAgeOver50,
	}, factorNames(r.RiskFactors))
	assert.Equal(t, 100, r.RiskScore)
	assert.Equal(t, domain.RiskVeryHigh, r.OverallRiskLevel)
	assert.Empty(t, r.ProtectiveFactors)
	assert.Contains(t, r.PreventionStrategies, "Immediate smoking cessation program with medical support")
	assert.Contains(t, r.MonitoringRecommendations, "Blood pressure check 2x per week")
}

func TestOverallRiskLevel(t *testing.T) {
	level := func(levels ...string) []domain.RiskFactor {
		out := make([]domain.RiskFactor, 0, len(levels))
		for _, l := range levels {
			out = append(out, domain.RiskFactor{Level: l})
		}
		return out
	}
	tests := []struct {
		name    string
		factors []domain.RiskFactor
		want    string
	}{
		{"empty", nil, domain.RiskLow},
		{"only low", level(domain.RiskLow, domain.RiskModerate), domain.RiskLow},
		{"one medium", level(domain.RiskMedium), domain.RiskModerate},
		{"three medium", level(domain.RiskMedium, domain.RiskMedium, domain.RiskMedium), domain.RiskHigh},
		{"one high", level(domain.RiskHigh), domain.RiskHigh},
		{"one very high", level(domain.RiskVeryHigh), domain.RiskHigh},
		{"two high", level(domain.RiskHigh, domain.RiskVeryHigh), domain.RiskVeryHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverallRiskLevel(tt.factors); got != tt.want {
				t.Fatalf("OverallRiskLevel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRiskScoreWeights(t *testing.T) {
	factors := []domain.RiskFactor{
		{Level: domain.RiskVeryHigh},
		{Level: domain.RiskHigh},
		{Level: domain.RiskMedium},
		{Level: domain.RiskLow},
		{Level: domain.RiskModerate},
	}
	if got := RiskScore(factors); got != 75 {
		t.Fatalf("RiskScore = %d, want 75", got)
	}
}
