package service

import (
	"fmt"
	"strings"

	"health-report/internal/domain"
)

var activityLevels = []string{
	"None - sedentary lifestyle",
	"Very low - occasional activity",
	"Low - light activity 1-2x per week",
	"Moderate - regular activity 3x per week",
	"High - intense activity 4-5x per week",
	"Very high - daily intense activity",
}

var techTimeRisk = atLeast(0, pointsRule{8, 3}, pointsRule{6, 2}, pointsRule{4, 1})

var transportRisk = map[domain.Transport]int{
	domain.TransportAutomobile: 2,
	domain.TransportPublic:     1,
	domain.TransportBike:       -1,
	domain.TransportWalking:    -2,
}

var sedentaryRisks = atLeast("Very low - excellent lifestyle",
	textRule{4, "Very high - immediate intervention"},
	textRule{3, "High - changes required"},
	textRule{2, "Moderate - add more movement"},
	textRule{1, "Low - keep your current habits"},
)

// ActivityLevel busca el nivel por la parte entera de FAF (0..4, 5+ es muy alto).
func ActivityLevel(faf float64) string {
	idx := int(faf)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(activityLevels) {
		idx = len(activityLevels) - 1
	}
	return activityLevels[idx]
}

// SedentaryRisk combina horas de pantalla y medio de transporte.
func SedentaryRisk(techTime float64, transport domain.Transport) string {
	score := techTimeRisk.lookup(techTime) + transportRisk[transport]
	return sedentaryRisks.lookup(float64(score))
}

// WeeklyCaloriesBurned estima kcal/semana: cada punto de FAF equivale a ~1.5 h de actividad.
func WeeklyCaloriesBurned(f domain.FeatureSet) int {
	perHour := f.Weight * 7
	if f.Age > 40 {
		perHour = f.Weight * 6
	}
	return int(perHour * f.ActivityFrequency * 1.5)
}

// AnalyzePhysicalActivity produce la seccion de actividad fisica.
func AnalyzePhysicalActivity(f domain.FeatureSet) domain.PhysicalActivityAnalysis {
	return domain.PhysicalActivityAnalysis{
		ActivityFrequency:      f.ActivityFrequency,
		ActivityLevel:          ActivityLevel(f.ActivityFrequency),
		TechnologyTime:         f.TechTime,
		TransportationType:     string(f.Transportation),
		SedentaryRisk:          SedentaryRisk(f.TechTime, f.Transportation),
		CaloriesBurnedWeekly:   WeeklyCaloriesBurned(f),
		FitnessRecommendations: fitnessRecommendations(f),
		ExercisePlan:           exercisePlan(f),
	}
}

func fitnessRecommendations(f domain.FeatureSet) []string {
	var recs []string
	switch {
	case f.ActivityFrequency < 2:
		recs = append(recs,
			"Start with a 10-15 minute walk every day",
			"Add strength exercises 2x per week",
			"Take the stairs instead of the elevator",
		)
	case f.ActivityFrequency < 4:
		recs = append(recs,
			"Increase the intensity of your workouts",
			"Add HIIT interval training 1-2x per week",
			"Take up a team sport or an active hobby",
		)
	default:
		recs = append(recs,
			"Keep your current training volume",
			"Plan a lighter recovery week every 4-6 weeks",
		)
	}

	if f.TechTime > 6 {
		recs = append(recs,
			"Take a 5-minute movement break every hour",
			"Consider a standing desk",
			"Do stretching exercises at work",
		)
	}
	if f.Age > 50 {
		recs = append(recs,
			"Focus on balance exercises",
			"Try yoga or tai chi",
			"Priority: preserve muscle mass",
		)
	}
	return recs
}

func exercisePlan(f domain.FeatureSet) string {
	var b strings.Builder
	b.WriteString("**Personalized exercise plan:**\n\n")

	if f.ActivityFrequency < 2 {
		b.WriteString("**Starter phase (4-6 weeks):**\n")
		b.WriteString("• Monday: 20 min walk + stretching\n")
		b.WriteString("• Wednesday: basic strength exercises (15 min)\n")
		b.WriteString("• Friday: 25 min walk or bike ride\n")
		b.WriteString("• Sunday: recreational activity (dancing, swimming)\n")
	} else {
		b.WriteString("**Advanced plan:**\n")
		b.WriteString("• Monday: upper body strength training (45 min)\n")
		b.WriteString("• Tuesday: HIIT cardio (30 min)\n")
		b.WriteString("• Wednesday: lower body strength training (45 min)\n")
		b.WriteString("• Thursday: active recovery - yoga (30 min)\n")
		b.WriteString("• Friday: full body workout (40 min)\n")
		b.WriteString("• Saturday: long cardio session (60 min)\n")
		b.WriteString("• Sunday: rest or light activity\n")
	}

	if f.TechTime > 6 {
		b.WriteString("\n**Desk days:** stand up and move for 5 minutes every hour.\n")
	}
	if f.Age > 50 {
		b.WriteString("\n**Over 50:** add 10 minutes of balance work to every session.\n")
	}

	minutes := 300
	if f.ActivityFrequency < 2 {
		minutes = 150
	}
	b.WriteString("\n**Weekly targets:**\n")
	fmt.Fprintf(&b, "• Burn %.0f calories per week\n", f.Weight*30)
	fmt.Fprintf(&b, "• At least %d minutes of activity\n", minutes)
	return b.String()
}
