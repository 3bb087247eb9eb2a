package service

import "health-report/internal/domain"

// NeutralHealthScore es el puntaje que se informa cuando el calculo falla.
const NeutralHealthScore = 50

var alcoholPenalty = map[domain.Frequency]int{
	domain.FrequencyFrequently: 15,
	domain.FrequencyAlways:     25,
}

// HealthScore parte de 100 y descuenta por cada factor de riesgo; queda en [0,100].
// La penalizacion de BMI es escalonada: obesidad descuenta 30, fuera de rango 15, nunca ambas.
func HealthScore(f domain.FeatureSet) int {
	score := 100

	bmi := f.BMI()
	switch {
	case bmi > 30:
		score -= 30
	case bmi < 18.5 || bmi > 25:
		score -= 15
	}

	switch {
	case f.ActivityFrequency < 1:
		score -= 20
	case f.ActivityFrequency < 2:
		score -= 10
	}

	if f.Smoker {
		score -= 25
	}
	score -= alcoholPenalty[f.Alcohol]
	if f.HighCalorieFood {
		score -= 10
	}
	if f.VegetableFrequency < 2 {
		score -= 10
	}
	if f.WaterIntake < 2 {
		score -= 10
	}
	return clampInt(score, 0, 100)
}
