package service

import (
	"strings"

	"health-report/internal/domain"
)

type pointsRule = rule[int]

var (
	vegetablePoints = atLeast(0, pointsRule{3, 25}, pointsRule{2, 20}, pointsRule{1, 10})
	waterPoints     = atLeast(0, pointsRule{3, 20}, pointsRule{2, 15}, pointsRule{1, 10})

	vegetableConsumption = atLeast("Very low - add vegetables to your diet right away",
		textRule{3, "Excellent - you eat enough vegetables"},
		textRule{2, "Good - you could eat more vegetables"},
		textRule{1, "Insufficient - significantly increase your vegetable intake"},
	)
	hydrationLevels = atLeast("Dehydrated - increase fluid intake right away",
		textRule{3, "Excellent hydration"},
		textRule{2, "Good hydration - you could drink more"},
		textRule{1, "Insufficient - increase water intake"},
	)
)

// frequencyPoints puntua CAEC y CALC con la misma escala de cuatro niveles.
var frequencyPoints = map[domain.Frequency]int{
	domain.FrequencyNever:      10,
	domain.FrequencySometimes:  7,
	domain.FrequencyFrequently: 3,
	domain.FrequencyAlways:     0,
}

var alcoholConsumption = map[domain.Frequency]string{
	domain.FrequencyNever:      "None - excellent for your health",
	domain.FrequencySometimes:  "Moderate - within healthy limits",
	domain.FrequencyFrequently: "Frequent - may affect your health",
	domain.FrequencyAlways:     "Excessive - serious health risk",
}

// AnalyzeNutrition produce la seccion de nutricion.
func AnalyzeNutrition(f domain.FeatureSet) domain.NutritionalAnalysis {
	alcohol, ok := alcoholConsumption[f.Alcohol]
	if !ok {
		alcohol = "Unknown"
	}
	return domain.NutritionalAnalysis{
		VegetableConsumption:      vegetableConsumption.lookup(f.VegetableFrequency),
		MealFrequency:             mealFrequency(f.MealCount),
		HydrationLevel:            hydrationLevels.lookup(f.WaterIntake),
		CalorieIntake:             calorieIntake(f.HighCalorieFood, f.EatingBetweenMeals),
		AlcoholConsumption:        alcohol,
		NutritionScore:            NutritionScore(f),
		DetailedNutritionPlan:     nutritionPlan(f),
		SupplementRecommendations: supplements(f),
	}
}

// NutritionScore suma los seis componentes ponderados (0-100).
func NutritionScore(f domain.FeatureSet) int {
	score := vegetablePoints.lookup(f.VegetableFrequency)
	score += mealPoints(f.MealCount)
	score += waterPoints.lookup(f.WaterIntake)
	if !f.HighCalorieFood {
		score += 15
	}
	score += frequencyPoints[f.EatingBetweenMeals]
	score += frequencyPoints[f.Alcohol]
	return clampInt(score, 0, 100)
}

func mealPoints(ncp float64) int {
	switch ncp {
	case 3:
		return 20
	case 4:
		return 15
	case 2:
		return 10
	default:
		return 5
	}
}

func mealFrequency(ncp float64) string {
	switch ncp {
	case 3:
		return "Optimal - 3 regular meals a day"
	case 4:
		return "Good - 4 meals can help control appetite"
	case 2:
		return "Insufficient - too few meals can slow your metabolism"
	case 1:
		return "Very low - one meal a day is unhealthy"
	default:
		return "Eating too often can lead to overeating"
	}
}

func calorieIntake(highCalorie bool, betweenMeals domain.Frequency) string {
	switch {
	case highCalorie && betweenMeals.IsHabitual():
		return "Very high - frequent high-calorie food"
	case highCalorie:
		return "High - limit high-calorie food"
	case betweenMeals.IsHabitual():
		return "Moderately high - frequent snacking"
	default:
		return "Controlled - good eating habits"
	}
}

func nutritionPlan(f domain.FeatureSet) string {
	var b strings.Builder
	b.WriteString("**Personalized nutrition plan:**\n\n")
	b.WriteString("**Meal structure:**\n")
	if f.MealCount < 3 {
		b.WriteString("• Breakfast (25% of calories): oatmeal with fruit and nuts\n")
		b.WriteString("• Lunch (40% of calories): protein + vegetables + complex carbohydrates\n")
		b.WriteString("• Dinner (35% of calories): light protein + salad\n")
	} else {
		b.WriteString("• Breakfast (20% of calories): eggs with vegetables\n")
		b.WriteString("• Snack (10% of calories): fruit with nuts\n")
		b.WriteString("• Lunch (35% of calories): a complete meal\n")
		b.WriteString("• Dinner (35% of calories): protein + vegetables\n")
	}

	b.WriteString("\n**Specific advice:**\n")
	if f.VegetableFrequency < 2 {
		b.WriteString("• Add 2-3 servings of vegetables to every meal\n")
	}
	if f.WaterIntake < 2 {
		b.WriteString("• Drink a glass of water before each meal\n")
	}
	if f.HighCalorieFood {
		b.WriteString("• Replace high-calorie snacks with fruit and nuts\n")
	}
	if f.Alcohol != domain.FrequencyNever {
		b.WriteString("• Limit alcohol to 1-2 units per week\n")
	}
	return b.String()
}

func supplements(f domain.FeatureSet) []string {
	out := []string{
		"Vitamin D3 (2000-4000 IU daily)",
		"Omega-3 (1000 mg EPA/DHA daily)",
	}
	if f.VegetableFrequency < 2 {
		out = append(out, "High-quality multivitamin")
	}
	if f.Age > 50 {
		out = append(out, "Vitamin B12 (500-1000 mcg)")
	}
	if f.Gender == domain.GenderFemale {
		out = append(out, "Iron (if a deficiency shows in lab tests)")
	}
	if f.Age > 65 {
		out = append(out, "Calcium + Vitamin K2")
	}
	return out
}
