package service

import (
	"sort"

	"health-report/internal/domain"
)

// GenerateRecommendations junta las recomendaciones dieteticas, de actividad, medicas y
// psicologicas y las ordena por prioridad descendente. Los empates conservan el orden de insercion.
func GenerateRecommendations(f domain.FeatureSet) []domain.Recommendation {
	var recs []domain.Recommendation
	recs = append(recs, dietaryRecommendations(f)...)
	recs = append(recs, activityRecommendations(f)...)
	recs = append(recs, medicalRecommendations(f)...)
	recs = append(recs, psychologicalRecommendations()...)

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority > recs[j].Priority
	})
	return recs
}

func dietaryRecommendations(f domain.FeatureSet) []domain.Recommendation {
	var recs []domain.Recommendation
	if f.BMI() > 25 {
		recs = append(recs, domain.Recommendation{
			Category:        "Diet",
			Description:     "Introduce a calorie deficit of 500-750 kcal per day for safe weight loss",
			Priority:        10,
			Timeframe:       "Immediately - long term",
			ExpectedBenefit: "Losing 0.5-1 kg per week, better metabolic markers",
			ActionSteps: []string{
				"Calculate your daily calorie needs",
				"Plan 5-6 smaller meals a day",
				"Increase protein to 1.2-1.6 g/kg of body weight",
				"Limit simple carbohydrates and saturated fats",
			},
		})
	}
	return append(recs, domain.Recommendation{
		Category:        "Eating habits",
		Description:     "Use the plate method: 1/2 vegetables, 1/4 protein, 1/4 complex carbohydrates",
		Priority:        8,
		Timeframe:       "1-2 weeks to adopt",
		ExpectedBenefit: "Better satiety, glycemic control, more variety of nutrients",
		ActionSteps: []string{
			"Use bigger plates for vegetables",
			"Prepare vegetables in advance",
			"Choose lean protein (fish, poultry, legumes)",
			"Replace white bread with whole grain",
		},
	})
}

func activityRecommendations(f domain.FeatureSet) []domain.Recommendation {
	if f.ActivityFrequency >= 2 {
		return nil
	}
	return []domain.Recommendation{{
		Category:        "Physical activity",
		Description:     "Start an activity program of 150 minutes of moderate activity per week",
		Priority:        9,
		Timeframe:       "Gradual introduction over 4-6 weeks",
		ExpectedBenefit: "Better fitness, lower disease risk, improved wellbeing",
		ActionSteps: []string{
			"Weeks 1-2: a 15 minute walk every day",
			"Weeks 3-4: 25 minutes of activity every day",
			"Weeks 5-6: 30 minutes of activity + 2x strength training",
			"Find an activity you enjoy",
		},
	}}
}

func medicalRecommendations(f domain.FeatureSet) []domain.Recommendation {
	if f.BMI() <= 30 && f.Age <= 50 {
		return nil
	}
	return []domain.Recommendation{{
		Category:        "Medical checkups",
		Description:     "Get a complete blood panel and a medical consultation",
		Priority:        7,
		Timeframe:       "Within 2-4 weeks",
		ExpectedBenefit: "Early detection of problems, personalized guidance",
		ActionSteps: []string{
			"Book a visit with your family doctor",
			"Get a blood count, lipid panel and glucose test",
			"Check your blood pressure and BMI",
			"Review the results and an action plan with your doctor",
		},
	}}
}

func psychologicalRecommendations() []domain.Recommendation {
	return []domain.Recommendation{{
		Category:        "Mental health",
		Description:     "Introduce daily mindfulness and stress management practices",
		Priority:        6,
		Timeframe:       "Daily for 21 days to build the habit",
		ExpectedBenefit: "Less stress, better emotional control, better sleep",
		ActionSteps: []string{
			"5-10 minutes of meditation in the morning",
			"Keep a gratitude journal",
			"Practice deep breathing when stressed",
			"Schedule time for hobbies and relaxation",
		},
	}}
}
