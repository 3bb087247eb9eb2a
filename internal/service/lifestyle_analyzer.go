package service

import (
	"math"

	"health-report/internal/domain"
)

const lifestyleBaseline = 50

// Ajuste del puntaje de estilo de vida por frecuencia de alcohol.
var alcoholLifestyleAdjustment = map[domain.Frequency]int{
	domain.FrequencyNever:      10,
	domain.FrequencySometimes:  5,
	domain.FrequencyFrequently: -10,
	domain.FrequencyAlways:     -20,
}

var stressLevels = below("High - urgent intervention needed",
	textRule{1, "Low - good life balance"},
	textRule{4, "Moderate - introduce relaxation techniques"},
	textRule{7, "Elevated - stress management required"},
)

var sleepQualities = atLeast("Very poor - consult a specialist",
	textRule{8, "Very good - healthy habits"},
	textRule{6, "Good - minor improvements possible"},
	textRule{4, "Fair - possible minor problems"},
	textRule{2, "Poor - improve your sleep hygiene"},
)

// AnalyzeLifestyle produce la seccion de estilo de vida.
func AnalyzeLifestyle(f domain.FeatureSet) domain.LifestyleAnalysis {
	return domain.LifestyleAnalysis{
		SmokingStatus:            smokingStatus(f.Smoker),
		HealthMonitoring:         healthMonitoring(f.CalorieMonitoring),
		FamilyHistory:            familyHistory(f.FamilyHistory),
		LifestyleScore:           LifestyleScore(f),
		StressLevel:              StressLevel(f),
		SleepQuality:             SleepQuality(f),
		LifestyleRecommendations: lifestyleRecommendations(f),
	}
}

// LifestyleScore parte de una base de 50 y suma/resta por habito; queda en [0,100].
func LifestyleScore(f domain.FeatureSet) int {
	score := float64(lifestyleBaseline)
	if f.Smoker {
		score -= 25
	} else {
		score += 10
	}
	if f.CalorieMonitoring {
		score += 10
	}
	score += float64(alcoholLifestyleAdjustment[f.Alcohol])
	score += f.ActivityFrequency * 5
	if f.TechTime > 6 {
		score -= 10
	} else if f.TechTime < 3 {
		score += 5
	}
	return clampInt(int(math.Round(score)), 0, 100)
}

// StressScore acumula factores de estres (0..9).
func StressScore(f domain.FeatureSet) int {
	score := 0
	if f.TechTime > 6 {
		score += 2
	}
	if f.ActivityFrequency < 2 {
		score += 2
	}
	if f.Smoker {
		score += 3
	}
	if f.EatingBetweenMeals.IsHabitual() {
		score += 2
	}
	return score
}

func StressLevel(f domain.FeatureSet) string {
	return stressLevels.lookup(float64(StressScore(f)))
}

// SleepScore estima la calidad de sueño en escala 0-10.
func SleepScore(f domain.FeatureSet) int {
	score := 5
	if f.TechTime > 6 {
		score -= 2
	}
	if f.ActivityFrequency >= 3 {
		score += 2
	} else if f.ActivityFrequency < 1 {
		score--
	}
	if f.Smoker {
		score -= 2
	}
	if f.Alcohol.IsHabitual() {
		score--
	}
	return clampInt(score, 0, 10)
}

func SleepQuality(f domain.FeatureSet) string {
	return sleepQualities.lookup(float64(SleepScore(f)))
}

func smokingStatus(smoker bool) string {
	if smoker {
		return "Smoker - significantly higher risk of cancer, heart and lung disease"
	}
	return "Non-smoker - excellent for respiratory and cardiovascular health"
}

func healthMonitoring(monitoring bool) string {
	if monitoring {
		return "Active monitoring - a great habit for keeping your health in check"
	}
	return "No monitoring - consider tracking basic parameters"
}

func familyHistory(history bool) string {
	if history {
		return "Genetic predisposition - extra vigilance and prevention advised"
	}
	return "No family history - a favorable genetic factor"
}

func lifestyleRecommendations(f domain.FeatureSet) []string {
	var recs []string
	if f.Smoker {
		recs = append(recs,
			"PRIORITY: quit smoking - talk to your doctor",
			"Consider nicotine replacement therapy or other cessation methods",
		)
	}
	if f.TechTime > 6 {
		recs = append(recs,
			"Limit screen time to at most 6 hours a day",
			"Introduce a digital detox - one day a week without technology",
		)
	}
	if f.Alcohol != domain.FrequencyNever {
		recs = append(recs, "Limit alcohol to at most 2 units per week")
	}
	return append(recs,
		"Practice daily meditation or breathing techniques",
		"Keep a regular sleep rhythm (7-9 hours)",
		"Spend more time outdoors",
	)
}
