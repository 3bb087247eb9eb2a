package service

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"health-report/internal/domain"
)

func healthyFeatures(t *testing.T) domain.FeatureSet {
	t.Helper()
	f, err := ExtractFeatures(healthyRecord())
	if err != nil {
		t.Fatalf("healthy record: %v", err)
	}
	return f
}

func TestPersonalProfile(t *testing.T) {
	p := BuildPersonalProfile(healthyFeatures(t))

	assert.Equal(t, 22.9, p.BMI)
	assert.Equal(t, BMINormal, p.BMICategory)
	assert.Equal(t, "Adult", p.AgeGroup)
	assert.Equal(t, "Male", p.Gender)
	assert.Equal(t, domain.WeightRange{Min: 56.7, Max: 76.3}, p.IdealWeightRange)
	assert.Equal(t, 28, p.MetabolicAge)
}

func TestMetabolicAgeClamp(t *testing.T) {
	f := healthyFeatures(t)
	f.Weight = 160
	f.ActivityFrequency = 0
	f.Smoker = true
	if got := MetabolicAge(f); got != f.Age+20 {
		t.Fatalf("expected clamp to age+20, got %d", got)
	}
}

func TestAnalyzeBMI(t *testing.T) {
	a := AnalyzeBMI(healthyFeatures(t))
	assert.Equal(t, 22.9, a.CurrentBMI)
	assert.Equal(t, 22.0, a.IdealBMI)
	assert.Equal(t, 70.5, a.IdealWeight)
	assert.Equal(t, -0.5, a.WeightDifference)
	assert.Equal(t, "Minimal risk", a.HealthRisk)
	assert.Contains(t, a.DetailedExplanation, "Congratulations")
	assert.Len(t, a.Recommendations, 3)
}

func TestAnalyzeBMIOverweightTarget(t *testing.T) {
	f := healthyFeatures(t)
	f.Weight = 95
	a := AnalyzeBMI(f)
	// diff ~24.5 kg, weekly target capped at 1 kg
	assert.Equal(t, "Target: lose 1.0 kg per week", a.Recommendations[0])
}

func TestBMIHealthRiskSeniorOverride(t *testing.T) {
	f := healthyFeatures(t)
	f.Age = 70
	a := AnalyzeBMI(f)
	assert.Equal(t, "Increased risk of sarcopenia in older adults", a.HealthRisk)
	assert.Contains(t, a.DetailedExplanation, "older adults")
}

func TestNutritionScore(t *testing.T) {
	f := healthyFeatures(t)
	if got := NutritionScore(f); got != 92 {
		t.Fatalf("healthy nutrition score = %d, want 92", got)
	}

	f.Alcohol = domain.FrequencyAlways
	if got := NutritionScore(f); got != 82 {
		t.Fatalf("alcohol always should zero the alcohol component, got %d", got)
	}

	worst := f
	worst.VegetableFrequency = 0
	worst.MealCount = 6
	worst.WaterIntake = 0
	worst.HighCalorieFood = true
	worst.EatingBetweenMeals = domain.FrequencyAlways
	if got := NutritionScore(worst); got != 5 {
		t.Fatalf("worst nutrition score = %d, want 5", got)
	}
}

func TestAnalyzeNutritionTexts(t *testing.T) {
	f := healthyFeatures(t)
	f.HighCalorieFood = true
	f.EatingBetweenMeals = domain.FrequencyFrequently
	n := AnalyzeNutrition(f)

	assert.Equal(t, "Very high - frequent high-calorie food", n.CalorieIntake)
	assert.Equal(t, "Optimal - 3 regular meals a day", n.MealFrequency)
	assert.Equal(t, "Good hydration - you could drink more", n.HydrationLevel)
	assert.Equal(t, "None - excellent for your health", n.AlcoholConsumption)
	assert.Contains(t, n.DetailedNutritionPlan, "Replace high-calorie snacks")
	assert.Equal(t, []string{"Vitamin D3 (2000-4000 IU daily)", "Omega-3 (1000 mg EPA/DHA daily)"}, n.SupplementRecommendations)
}

func TestSupplementsAreAdditive(t *testing.T) {
	base := []string{"Vitamin D3 (2000-4000 IU daily)", "Omega-3 (1000 mg EPA/DHA daily)"}
	allExtras := []string{
		"High-quality multivitamin",
		"Vitamin B12 (500-1000 mcg)",
		"Iron (if a deficiency shows in lab tests)",
		"Calcium + Vitamin K2",
	}
	tests := []struct {
		name   string
		mutate func(f *domain.FeatureSet)
		extra  []string
	}{
		{name: "baseline", mutate: func(f *domain.FeatureSet) {}},
		{
			name:   "low vegetables",
			mutate: func(f *domain.FeatureSet) { f.VegetableFrequency = 1 },
			extra:  []string{"High-quality multivitamin"},
		},
		{
			name:   "over 50",
			mutate: func(f *domain.FeatureSet) { f.Age = 55 },
			extra:  []string{"Vitamin B12 (500-1000 mcg)"},
		},
		{
			name:   "female",
			mutate: func(f *domain.FeatureSet) { f.Gender = domain.GenderFemale },
			extra:  []string{"Iron (if a deficiency shows in lab tests)"},
		},
		{
			name:   "female over 65 with low vegetables",
			mutate: func(f *domain.FeatureSet) { f.Age, f.Gender, f.VegetableFrequency = 70, domain.GenderFemale, 1 },
			extra:  allExtras,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := healthyFeatures(t)
			tt.mutate(&f)
			want := append(append([]string{}, base...), tt.extra...)
			assert.Equal(t, want, AnalyzeNutrition(f).SupplementRecommendations)
		})
	}
}

func TestActivityLevel(t *testing.T) {
	tests := []struct {
		faf  float64
		want string
	}{
		{0, "None - sedentary lifestyle"},
		{0.9, "None - sedentary lifestyle"},
		{2.7, "Low - light activity 1-2x per week"},
		{4, "High - intense activity 4-5x per week"},
		{9, "Very high - daily intense activity"},
	}
	for _, tt := range tests {
		if got := ActivityLevel(tt.faf); got != tt.want {
			t.Fatalf("ActivityLevel(%v) = %q, want %q", tt.faf, got, tt.want)
		}
	}
}

func TestSedentaryRisk(t *testing.T) {
	assert.Equal(t, "Very low - excellent lifestyle", SedentaryRisk(1, domain.TransportWalking))
	assert.Equal(t, "Very high - immediate intervention", SedentaryRisk(9, domain.TransportAutomobile))
	assert.Equal(t, "Moderate - add more movement", SedentaryRisk(6, domain.TransportMotorbike))
}

func TestAnalyzePhysicalActivity(t *testing.T) {
	a := AnalyzePhysicalActivity(healthyFeatures(t))
	assert.Equal(t, 1470, a.CaloriesBurnedWeekly)
	assert.Equal(t, "Walking", a.TransportationType)
	assert.True(t, strings.Contains(a.ExercisePlan, "Advanced plan"))
}

func TestFitnessRecommendationsExtras(t *testing.T) {
	deskAdvice := "Consider a standing desk"
	balanceAdvice := "Focus on balance exercises"
	tests := []struct {
		name        string
		tue         float64
		age         int
		wantDesk    bool
		wantBalance bool
	}{
		{name: "neither", tue: 1, age: 30},
		{name: "long screen time", tue: 7, age: 30, wantDesk: true},
		{name: "over 50", tue: 1, age: 55, wantBalance: true},
		{name: "both", tue: 7, age: 55, wantDesk: true, wantBalance: true},
		{name: "boundaries excluded", tue: 6, age: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := healthyFeatures(t)
			f.TechTime = tt.tue
			f.Age = tt.age
			a := AnalyzePhysicalActivity(f)

			assert.Equal(t, tt.wantDesk, slices.Contains(a.FitnessRecommendations, deskAdvice))
			assert.Equal(t, tt.wantBalance, slices.Contains(a.FitnessRecommendations, balanceAdvice))
			assert.Equal(t, tt.wantDesk, strings.Contains(a.ExercisePlan, "**Desk days:**"))
			assert.Equal(t, tt.wantBalance, strings.Contains(a.ExercisePlan, "**Over 50:**"))

			wantLen := 3
			if tt.wantDesk {
				wantLen += 3
			}
			if tt.wantBalance {
				wantLen += 3
			}
			assert.Len(t, a.FitnessRecommendations, wantLen)
		})
	}
}

func TestExercisePlanPhases(t *testing.T) {
	starter := healthyFeatures(t)
	starter.ActivityFrequency = 1
	plan := AnalyzePhysicalActivity(starter).ExercisePlan
	assert.Contains(t, plan, "**Starter phase (4-6 weeks):**")
	assert.NotContains(t, plan, "Advanced plan")
	assert.Contains(t, plan, "• At least 150 minutes of activity")
	assert.Contains(t, plan, "• Burn 2100 calories per week")

	advanced := AnalyzePhysicalActivity(healthyFeatures(t)).ExercisePlan
	assert.Contains(t, advanced, "• Sunday: rest or light activity")
	assert.Contains(t, advanced, "• At least 300 minutes of activity")
}

func TestLifestyleScores(t *testing.T) {
	f := healthyFeatures(t)
	assert.Equal(t, 85, LifestyleScore(f))
	assert.Equal(t, "Low - good life balance", StressLevel(f))
	assert.Equal(t, "Fair - possible minor problems", SleepQuality(f))

	f.Alcohol = domain.FrequencyAlways
	assert.Equal(t, 55, LifestyleScore(f))

	smoker := healthyFeatures(t)
	smoker.Smoker = true
	assert.Equal(t, 50, LifestyleScore(smoker))
	assert.Equal(t, 3, StressScore(smoker))
}

func TestLifestyleScoreBounds(t *testing.T) {
	f := healthyFeatures(t)
	f.ActivityFrequency = 30
	f.CalorieMonitoring = true
	assert.Equal(t, 100, LifestyleScore(f))

	f = healthyFeatures(t)
	f.Smoker = true
	f.Alcohol = domain.FrequencyAlways
	f.ActivityFrequency = 0
	f.TechTime = 10
	assert.Equal(t, 0, LifestyleScore(f))
}
