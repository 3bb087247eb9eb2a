package service

import (
	"fmt"
	"math"
	"strings"

	"health-report/internal/domain"
)

type textRule = rule[string]

const (
	BMISevereUnderweight = "Severe underweight"
	BMIUnderweight       = "Underweight"
	BMINormal            = "Normal"
	BMIOverweight        = "Overweight"
	BMIObesityI          = "Obesity I"
	BMIObesityII         = "Obesity II"
	BMIObesityIII        = "Obesity III"

	idealBMI = 22.0
)

var bmiCategories = below(BMIObesityIII,
	textRule{16, BMISevereUnderweight},
	textRule{18.5, BMIUnderweight},
	textRule{25, BMINormal},
	textRule{30, BMIOverweight},
	textRule{35, BMIObesityI},
	textRule{40, BMIObesityII},
)

var bmiHealthRisks = below("Extreme risk of health complications",
	textRule{16, "Very high risk of health complications"},
	textRule{18.5, "Increased risk of nutritional deficiencies"},
	textRule{25, "Minimal risk"},
	textRule{30, "Moderately increased risk"},
	textRule{35, "High risk of cardiovascular disease"},
	textRule{40, "Very high risk of diabetes and heart disease"},
)

var ageGroups = below("Senior",
	textRule{18, "Teenager"},
	textRule{25, "Young adult"},
	textRule{35, "Adult"},
	textRule{50, "Middle-aged"},
	textRule{65, "Mature"},
)

// BMICategory clasifica un BMI con limites superiores exclusivos (18.5 ya es Normal).
func BMICategory(bmi float64) string {
	return bmiCategories.lookup(bmi)
}

// IdealWeight aplica la formula de Devine.
func IdealWeight(height float64, gender domain.Gender) float64 {
	base := 45.5
	if gender == domain.GenderMale {
		base = 50.0
	}
	heightCm := height * 100
	return base + (heightCm-152.4)*2.3/2.54
}

func isHealthyBMI(bmi float64) bool {
	return bmi >= 18.5 && bmi <= 24.9
}

// BuildPersonalProfile arma el perfil con BMI, grupo etario, rango ideal y edad metabolica.
func BuildPersonalProfile(f domain.FeatureSet) domain.PersonalProfile {
	bmi := f.BMI()
	h2 := f.Height * f.Height
	return domain.PersonalProfile{
		Age:         f.Age,
		Gender:      string(f.Gender),
		Height:      f.Height,
		Weight:      f.Weight,
		BMI:         round1(bmi),
		AgeGroup:    ageGroups.lookup(float64(f.Age)),
		BMICategory: BMICategory(bmi),
		IdealWeightRange: domain.WeightRange{
			Min: round1(18.5 * h2),
			Max: round1(24.9 * h2),
		},
		MetabolicAge: MetabolicAge(f),
	}
}

// MetabolicAge ajusta la edad cronologica segun BMI, actividad y tabaquismo.
// El resultado queda en [edad-10, edad+20].
func MetabolicAge(f domain.FeatureSet) int {
	bmi := f.BMI()
	age := f.Age

	if bmi > 25 {
		age += int((bmi - 25) * 2)
	}
	if f.ActivityFrequency < 2 {
		age += 5
	}
	if f.Smoker {
		age += 10
	}
	if f.ActivityFrequency > 3 {
		age -= 3
	}
	if isHealthyBMI(bmi) {
		age -= 2
	}
	return clampInt(age, f.Age-10, f.Age+20)
}

// AnalyzeBMI produce la seccion de masa corporal.
func AnalyzeBMI(f domain.FeatureSet) domain.BMIAnalysis {
	bmi := f.BMI()
	category := BMICategory(bmi)
	ideal := IdealWeight(f.Height, f.Gender)
	diff := f.Weight - ideal

	return domain.BMIAnalysis{
		CurrentBMI:          round1(bmi),
		Category:            category,
		IdealBMI:            idealBMI,
		IdealWeight:         round1(ideal),
		WeightDifference:    round1(diff),
		HealthRisk:          bmiHealthRisk(bmi, f.Age),
		DetailedExplanation: bmiExplanation(bmi, category, f.Age),
		Recommendations:     bmiRecommendations(bmi, diff),
	}
}

func bmiHealthRisk(bmi float64, age int) string {
	if age > 65 && bmi < 23 {
		return "Increased risk of sarcopenia in older adults"
	}
	return bmiHealthRisks.lookup(bmi)
}

func bmiExplanation(bmi float64, category string, age int) string {
	var b strings.Builder
	b.WriteString("**Detailed BMI analysis:**\n")
	fmt.Fprintf(&b, "Your BMI is %.1f, which places you in the category: %s.\n\n", bmi, category)

	switch category {
	case BMIUnderweight:
		b.WriteString("**Health implications:**\n")
		b.WriteString("• Increased risk of nutritional deficiencies\n")
		b.WriteString("• Weakened immune system\n")
		b.WriteString("• Possible bone density problems\n")
		b.WriteString("• Risk of hormonal disorders\n")
	case BMINormal:
		b.WriteString("**Congratulations!** Your weight is within the healthy range.\n")
		b.WriteString("**Health benefits:**\n")
		b.WriteString("• Optimal cardiovascular function\n")
		b.WriteString("• Reduced risk of type 2 diabetes\n")
		b.WriteString("• Better wellbeing and energy\n")
		b.WriteString("• Healthy hormonal balance\n")
	case BMIOverweight:
		b.WriteString("**Health implications:**\n")
		b.WriteString("• 2-3x higher risk of type 2 diabetes\n")
		b.WriteString("• Elevated blood pressure\n")
		b.WriteString("• Greater load on the joints\n")
		b.WriteString("• Risk of sleep apnea\n")
	case BMIObesityI:
		b.WriteString("**Serious health implications:**\n")
		b.WriteString("• 5-10x higher risk of diabetes\n")
		b.WriteString("• Significantly increased risk of heart disease\n")
		b.WriteString("• Breathing problems\n")
		b.WriteString("• Increased risk of some cancers\n")
	default:
		b.WriteString("**Critical health implications - immediate medical intervention is required.**\n")
	}

	if age > 65 {
		b.WriteString("\n**Notes for older adults:**\n")
		b.WriteString("After 65, a slightly elevated BMI (25-27) may protect against sarcopenia and osteoporosis.\n")
	}
	return b.String()
}

func bmiRecommendations(bmi, weightDifference float64) []string {
	switch {
	case bmi < 18.5:
		return []string{
			"Increase calorie intake by 300-500 kcal per day",
			"Focus on high-quality protein (1.2-1.6 g/kg of body weight)",
			"Add resistance training 3x per week",
			"Consider consulting a dietitian",
		}
	case bmi > 25:
		weekly := math.Min(1.0, math.Abs(weightDifference)/20)
		return []string{
			fmt.Sprintf("Target: lose %.1f kg per week", weekly),
			"Create a calorie deficit of 500-750 kcal per day",
			"Increase physical activity to 150-300 minutes per week",
			"Limit processed food and sugary drinks",
		}
	default:
		return []string{
			"Maintain your current weight with a balanced diet",
			"Keep up regular physical activity",
			"Weigh yourself once a week",
		}
	}
}
