package service

import (
	"health-report/internal/domain"
)

// Nombres de factores de riesgo; las estrategias de prevencion se eligen por nombre.
const (
	RiskUnderweight     = "Underweight"
	RiskObesity         = "Obesity"
	RiskOverweight      = "Overweight"
	RiskLowVegetables   = "Low vegetable intake"
	RiskLowHydration    = "Insufficient hydration"
	RiskHighCalorieDiet = "High-calorie diet"
	RiskSedentary       = "Sedentary lifestyle"
	RiskScreenTime      = "Excessive screen time"
	RiskSmoking         = "Smoking"
	RiskAlcohol         = "Excessive alcohol consumption"
	RiskGenetic         = "Genetic predisposition"
	RiskAgeOver50       = "Age over 50"
)

var riskLevelWeights = map[string]int{
	domain.RiskVeryHigh: 25,
	domain.RiskHigh:     20,
	domain.RiskMedium:   15,
	domain.RiskLow:      10,
}

// AnalyzeRiskFactors corre los cinco grupos de reglas, los factores protectores y agrega.
func AnalyzeRiskFactors(f domain.FeatureSet) domain.RiskFactorAnalysis {
	var factors []domain.RiskFactor
	factors = appendWeightRisks(factors, f)
	factors = appendNutritionRisks(factors, f)
	factors = appendActivityRisks(factors, f)
	factors = appendLifestyleRisks(factors, f)
	factors = appendGeneticRisks(factors, f)
	if factors == nil {
		factors = []domain.RiskFactor{}
	}

	return domain.RiskFactorAnalysis{
		RiskFactors:               factors,
		ProtectiveFactors:         protectiveFactors(f),
		OverallRiskLevel:          OverallRiskLevel(factors),
		RiskScore:                 RiskScore(factors),
		PreventionStrategies:      preventionStrategies(factors),
		MonitoringRecommendations: monitoringRecommendations(factors),
	}
}

func appendWeightRisks(out []domain.RiskFactor, f domain.FeatureSet) []domain.RiskFactor {
	bmi := f.BMI()
	switch {
	case bmi < 18.5:
		return append(out, domain.RiskFactor{
			Name:           RiskUnderweight,
			Level:          domain.RiskMedium,
			Description:    "A BMI below the normal range can lead to nutritional deficiencies",
			Impact:         "Weakened immunity, hormonal problems, osteoporosis",
			PreventionTips: []string{"Increase calorie intake", "Add protein to your diet", "Strength training"},
		})
	case bmi > 30:
		return append(out, domain.RiskFactor{
			Name:           RiskObesity,
			Level:          domain.RiskHigh,
			Description:    "A BMI above 30 greatly increases the risk of chronic disease",
			Impact:         "Diabetes, heart disease, cancer, sleep apnea",
			PreventionTips: []string{"Calorie deficit", "Increase activity", "See a dietitian"},
		})
	case bmi > 25:
		return append(out, domain.RiskFactor{
			Name:           RiskOverweight,
			Level:          domain.RiskModerate,
			Description:    "A BMI of 25-30 increases the risk of metabolic disease",
			Impact:         "Higher blood pressure, insulin resistance, joint problems",
			PreventionTips: []string{"Portion control", "Regular activity", "Track your weight"},
		})
	}
	return out
}

func appendNutritionRisks(out []domain.RiskFactor, f domain.FeatureSet) []domain.RiskFactor {
	if f.VegetableFrequency < 2 {
		out = append(out, domain.RiskFactor{
			Name:           RiskLowVegetables,
			Level:          domain.RiskMedium,
			Description:    "Eating too few vegetables leads to vitamin deficiencies",
			Impact:         "Vitamin, mineral and fiber deficiencies, higher cancer risk",
			PreventionTips: []string{"5 servings of vegetables a day", "Eat a variety of colors", "Vegetables with every meal"},
		})
	}
	if f.WaterIntake < 2 {
		out = append(out, domain.RiskFactor{
			Name:           RiskLowHydration,
			Level:          domain.RiskLow,
			Description:    "Drinking too little water affects how your body works",
			Impact:         "Kidney problems, fatigue, skin problems, constipation",
			PreventionTips: []string{"8 glasses of water a day", "Water before meals", "Watch the color of your urine"},
		})
	}
	if f.HighCalorieFood {
		out = append(out, domain.RiskFactor{
			Name:           RiskHighCalorieDiet,
			Level:          domain.RiskMedium,
			Description:    "Frequent consumption of high-calorie food",
			Impact:         "Weight gain, diabetes, heart disease",
			PreventionTips: []string{"Switch to healthy alternatives", "Control portions", "Read labels"},
		})
	}
	return out
}

func appendActivityRisks(out []domain.RiskFactor, f domain.FeatureSet) []domain.RiskFactor {
	if f.ActivityFrequency < 2 {
		out = append(out, domain.RiskFactor{
			Name:           RiskSedentary,
			Level:          domain.RiskHigh,
			Description:    "No regular physical activity",
			Impact:         "Heart disease, diabetes, osteoporosis, depression, shorter life expectancy",
			PreventionTips: []string{"150 minutes of activity per week", "Daily walks", "Strength exercises 2x per week"},
		})
	}
	if f.TechTime > 8 {
		out = append(out, domain.RiskFactor{
			Name:           RiskScreenTime,
			Level:          domain.RiskMedium,
			Description:    "More than 8 hours a day in front of screens",
			Impact:         "Vision problems, back and neck pain, sleep disorders, social isolation",
			PreventionTips: []string{"Breaks every hour", "Ergonomic workstation", "Digital detox"},
		})
	}
	return out
}

func appendLifestyleRisks(out []domain.RiskFactor, f domain.FeatureSet) []domain.RiskFactor {
	if f.Smoker {
		out = append(out, domain.RiskFactor{
			Name:           RiskSmoking,
			Level:          domain.RiskVeryHigh,
			Description:    "Smoking is a leading cause of chronic disease",
			Impact:         "Cancer, heart disease, stroke, COPD, premature death",
			PreventionTips: []string{"Quit immediately", "Nicotine replacement therapy", "Psychological support"},
		})
	}
	if f.Alcohol.IsHabitual() {
		out = append(out, domain.RiskFactor{
			Name:           RiskAlcohol,
			Level:          domain.RiskHigh,
			Description:    "Frequent or constant alcohol consumption",
			Impact:         "Liver disease, cancer, addiction, social problems",
			PreventionTips: []string{"Limit to 2 units per week", "Alcohol-free days", "Seek help"},
		})
	}
	return out
}

func appendGeneticRisks(out []domain.RiskFactor, f domain.FeatureSet) []domain.RiskFactor {
	if f.FamilyHistory {
		out = append(out, domain.RiskFactor{
			Name:           RiskGenetic,
			Level:          domain.RiskMedium,
			Description:    "Family history of overweight or obesity",
			Impact:         "Higher predisposition to weight problems and metabolic disease",
			PreventionTips: []string{"Regular checkups", "Preventive nutrition", "Active lifestyle"},
		})
	}
	if f.Age > 50 {
		out = append(out, domain.RiskFactor{
			Name:           RiskAgeOver50,
			Level:          domain.RiskLow,
			Description:    "Natural aging increases some risks",
			Impact:         "Slower metabolism, muscle loss, hormonal changes",
			PreventionTips: []string{"Regular checkups", "Strength training", "Supplementation"},
		})
	}
	return out
}

func protectiveFactors(f domain.FeatureSet) []string {
	out := []string{}
	if f.ActivityFrequency >= 3 {
		out = append(out, "Regular physical activity - strong protection against chronic disease")
	}
	if !f.Smoker {
		out = append(out, "Not smoking - significantly lowers the risk of cancer and heart disease")
	}
	if f.VegetableFrequency >= 3 {
		out = append(out, "High vegetable intake - a rich source of antioxidants and fiber")
	}
	if f.CalorieMonitoring {
		out = append(out, "Conscious health monitoring - early detection of problems")
	}
	if f.Alcohol == domain.FrequencyNever {
		out = append(out, "No alcohol - protects the liver and nervous system")
	}
	return out
}

// OverallRiskLevel resume los factores: cuenta altos (High/Very high) y medios.
func OverallRiskLevel(factors []domain.RiskFactor) string {
	high, medium := 0, 0
	for _, rf := range factors {
		switch rf.Level {
		case domain.RiskVeryHigh, domain.RiskHigh:
			high++
		case domain.RiskMedium:
			medium++
		}
	}
	switch {
	case high >= 2:
		return domain.RiskVeryHigh
	case high >= 1:
		return domain.RiskHigh
	case medium >= 3:
		return domain.RiskHigh
	case medium >= 1:
		return domain.RiskModerate
	default:
		return domain.RiskLow
	}
}

// RiskScore suma el peso de cada factor (5 para niveles sin peso propio), tope 100.
func RiskScore(factors []domain.RiskFactor) int {
	score := 0
	for _, rf := range factors {
		w, ok := riskLevelWeights[rf.Level]
		if !ok {
			w = 5
		}
		score += w
	}
	return clampInt(score, 0, 100)
}

func hasFactor(factors []domain.RiskFactor, names ...string) bool {
	for _, rf := range factors {
		for _, n := range names {
			if rf.Name == n {
				return true
			}
		}
	}
	return false
}

func hasHighRisk(factors []domain.RiskFactor) bool {
	for _, rf := range factors {
		if rf.Level == domain.RiskHigh || rf.Level == domain.RiskVeryHigh {
			return true
		}
	}
	return false
}

func preventionStrategies(factors []domain.RiskFactor) []string {
	var out []string
	if hasFactor(factors, RiskObesity, RiskOverweight) {
		out = append(out,
			"Weight reduction program with a 500-750 kcal daily deficit",
			"Increase physical activity to 300 minutes per week",
		)
	}
	if hasFactor(factors, RiskSmoking) {
		out = append(out, "Immediate smoking cessation program with medical support")
	}
	if hasFactor(factors, RiskSedentary) {
		out = append(out, "Daily activity - at least a 30-minute walk")
	}
	if hasFactor(factors, RiskHighCalorieDiet, RiskLowVegetables) {
		out = append(out, "Consult a dietitian and build a personalized plan")
	}
	return append(out,
		"Regular checkups every 6-12 months",
		"Health education and awareness building",
	)
}

func monitoringRecommendations(factors []domain.RiskFactor) []string {
	out := []string{
		"Weekly weigh-in (same day and time)",
		"Monthly circumference measurements (waist, hips, arms)",
	}
	if hasHighRisk(factors) {
		out = append(out,
			"Blood tests every 3 months (glucose, lipid panel, CRP)",
			"Blood pressure check 2x per week",
		)
	} else {
		out = append(out,
			"Blood tests every 6-12 months",
			"Blood pressure check once a month",
		)
	}
	return append(out,
		"Food diary for the first 4 weeks",
		"Physical activity tracking app",
	)
}
