package service

import (
	"fmt"
	"strings"

	"health-report/internal/domain"
)

var healthCategories = atLeast("Needs urgent intervention",
	textRule{90, "Excellent health"},
	textRule{80, "Very good health"},
	textRule{70, "Good health"},
	textRule{60, "Average health"},
	textRule{50, "Below average"},
)

var prognoses = []string{
	"Immediate intervention required - high risk of health complications",
	"Moderate - significant lifestyle changes are required",
	"Good - adopting healthy habits will bring measurable benefits",
	"Very good - small changes can significantly improve your health",
	"Excellent - keep your current habits to enjoy a long and healthy life",
}

// HealthCategory traduce el puntaje de salud a una categoria legible.
func HealthCategory(score int) string {
	return healthCategories.lookup(float64(score))
}

// HealthPrognosis cuenta cuatro factores favorables (BMI normal, FAF>=3, no fumar, edad<50).
func HealthPrognosis(f domain.FeatureSet) string {
	count := 0
	if isHealthyBMI(f.BMI()) {
		count++
	}
	if f.ActivityFrequency >= 3 {
		count++
	}
	if !f.Smoker {
		count++
	}
	if f.Age < 50 {
		count++
	}
	return prognoses[count]
}

// RenderNarrative compone el texto final a partir de las secciones ya calculadas.
func RenderNarrative(r domain.AdvancedHealthAnalysisResult, prognosis string) string {
	var b strings.Builder

	b.WriteString("🏥 **COMPREHENSIVE HEALTH ANALYSIS**\n")
	b.WriteString("═══════════════════════════════════════\n\n")

	p := r.PersonalProfile
	b.WriteString("👤 **PERSONAL PROFILE**\n")
	fmt.Fprintf(&b, "• Age: %d years (%s)\n", p.Age, p.AgeGroup)
	fmt.Fprintf(&b, "• Gender: %s\n", p.Gender)
	fmt.Fprintf(&b, "• Height: %.2f m\n", p.Height)
	fmt.Fprintf(&b, "• Weight: %.1f kg\n", p.Weight)
	fmt.Fprintf(&b, "• BMI: %.1f (%s)\n", p.BMI, p.BMICategory)
	fmt.Fprintf(&b, "• Metabolic age: ~%d years\n\n", p.MetabolicAge)

	m := r.BMIAnalysis
	b.WriteString("⚖️ **BODY MASS ANALYSIS**\n")
	fmt.Fprintf(&b, "• Current BMI: %.1f\n", m.CurrentBMI)
	fmt.Fprintf(&b, "• Category: %s\n", m.Category)
	fmt.Fprintf(&b, "• Ideal weight: %.1f kg\n", m.IdealWeight)
	fmt.Fprintf(&b, "• Difference: %+.1f kg\n", m.WeightDifference)
	fmt.Fprintf(&b, "• Health risk: %s\n\n", m.HealthRisk)
	b.WriteString(m.DetailedExplanation)
	b.WriteString("\n")

	n := r.NutritionalAnalysis
	b.WriteString("🥗 **NUTRITION ANALYSIS**\n")
	fmt.Fprintf(&b, "• Nutrition score: %d/100 points\n", n.NutritionScore)
	fmt.Fprintf(&b, "• Vegetable intake: %s\n", n.VegetableConsumption)
	fmt.Fprintf(&b, "• Meal frequency: %s\n", n.MealFrequency)
	fmt.Fprintf(&b, "• Hydration: %s\n", n.HydrationLevel)
	fmt.Fprintf(&b, "• Calorie intake: %s\n", n.CalorieIntake)
	fmt.Fprintf(&b, "• Alcohol: %s\n\n", n.AlcoholConsumption)

	a := r.PhysicalActivityAnalysis
	b.WriteString("🏃 **PHYSICAL ACTIVITY ANALYSIS**\n")
	fmt.Fprintf(&b, "• Activity level: %s\n", a.ActivityLevel)
	fmt.Fprintf(&b, "• Exercise frequency: %g/5\n", a.ActivityFrequency)
	fmt.Fprintf(&b, "• Screen time: %g h/day\n", a.TechnologyTime)
	fmt.Fprintf(&b, "• Transport: %s\n", a.TransportationType)
	fmt.Fprintf(&b, "• Sedentary risk: %s\n", a.SedentaryRisk)
	fmt.Fprintf(&b, "• Calories burned weekly: ~%d kcal\n\n", a.CaloriesBurnedWeekly)

	l := r.LifestyleAnalysis
	b.WriteString("🌟 **LIFESTYLE ANALYSIS**\n")
	fmt.Fprintf(&b, "• Smoking: %s\n", l.SmokingStatus)
	fmt.Fprintf(&b, "• Health monitoring: %s\n", l.HealthMonitoring)
	fmt.Fprintf(&b, "• Family history: %s\n", l.FamilyHistory)
	fmt.Fprintf(&b, "• Lifestyle score: %d/100\n", l.LifestyleScore)
	fmt.Fprintf(&b, "• Estimated stress level: %s\n", l.StressLevel)
	fmt.Fprintf(&b, "• Sleep quality: %s\n\n", l.SleepQuality)

	rf := r.RiskFactorAnalysis
	b.WriteString("⚠️ **RISK FACTORS**\n")
	fmt.Fprintf(&b, "• Overall risk level: %s\n", rf.OverallRiskLevel)
	fmt.Fprintf(&b, "• Risk score: %d/100\n\n", rf.RiskScore)
	if len(rf.RiskFactors) > 0 {
		b.WriteString("**Identified risk factors:**\n")
		for _, risk := range head(rf.RiskFactors, 5) {
			fmt.Fprintf(&b, "• %s (Level: %s) - %s\n", risk.Name, risk.Level, risk.Description)
		}
		b.WriteString("\n")
	}
	if len(rf.ProtectiveFactors) > 0 {
		b.WriteString("**Protective factors:**\n")
		writeBullets(&b, head(rf.ProtectiveFactors, 3))
		b.WriteString("\n")
	}

	b.WriteString("💡 **KEY RECOMMENDATIONS**\n")
	for _, rec := range head(r.Recommendations, 5) {
		fmt.Fprintf(&b, "• **%s**: %s\n", rec.Category, rec.Description)
	}
	b.WriteString("\n")

	plan := r.ActionPlan
	b.WriteString("📋 **ACTION PLAN**\n\n")
	b.WriteString("**Immediate actions (1-7 days):**\n")
	writeBullets(&b, head(plan.ImmediateActions, 3))
	b.WriteString("\n**Short-term goals (1-3 months):**\n")
	writeBullets(&b, head(plan.ShortTermGoals, 3))
	b.WriteString("\n**Long-term goals (6-12 months):**\n")
	writeBullets(&b, head(plan.LongTermGoals, 3))
	b.WriteString("\n")

	b.WriteString("🎯 **FINAL ASSESSMENT**\n")
	fmt.Fprintf(&b, "• Classification: %s\n", r.Prediction)
	fmt.Fprintf(&b, "• Overall health score: %d/100 points\n", r.HealthScore)
	fmt.Fprintf(&b, "• Category: %s\n", HealthCategory(r.HealthScore))
	fmt.Fprintf(&b, "• Prognosis: %s\n", prognosis)
	return b.String()
}

func head[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("• ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}
