package service

import (
	"health-report/internal/catalog"
	"health-report/internal/domain"
)

// GenerateActionPlan combina las acciones y metas calculadas con las plantillas del catalogo
// (agenda semanal, hitos mensuales y seguimiento), que no dependen de la entrada.
func GenerateActionPlan(f domain.FeatureSet, templates catalog.PlanTemplates) domain.ActionPlan {
	return domain.ActionPlan{
		ImmediateActions:  immediateActions(f),
		ShortTermGoals:    shortTermGoals(f),
		LongTermGoals:     longTermGoals(f),
		WeeklySchedule:    templates.WeeklySchedule,
		MonthlyMilestones: templates.MonthlyMilestones,
		ProgressTracking:  templates.ProgressTracking,
	}
}

func immediateActions(f domain.FeatureSet) []string {
	actions := []string{
		"Install an app to track calories and activity",
		"Get a scale and start weighing yourself daily",
		"Plan your meals for the next 3 days",
	}
	if f.Smoker {
		actions = append(actions, "URGENT: talk to your doctor about quitting smoking")
	}
	if f.BMI() > 30 {
		actions = append(actions, "Book a visit with a doctor and a dietitian within 2 weeks")
	}
	return append(actions, "Start with a 15-minute walk today")
}

func shortTermGoals(f domain.FeatureSet) []string {
	var goals []string
	if f.BMI() > 25 {
		goals = append(goals, "Lose 2-4 kg in the first 2 months")
	}
	return append(goals,
		"Reach 150 minutes of physical activity per week",
		"Eat 5 servings of vegetables and fruit a day",
		"Cut screen time by 25%",
		"Get a complete blood panel",
	)
}

func longTermGoals(f domain.FeatureSet) []string {
	var goals []string
	if f.BMI() > 25 {
		goals = append(goals, "Reach and keep a healthy weight (BMI 18.5-24.9)")
	}
	return append(goals,
		"Build a habit of regular physical activity (300+ min/week)",
		"Reach optimal blood markers (glucose, cholesterol)",
		"Cut the risk of chronic disease by 50%",
		"Improve quality of life and energy by 40%",
	)
}
