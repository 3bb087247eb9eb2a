package domain

// AdvancedHealthAnalysisResult es el contrato con el frontend; los nombres JSON no se tocan.
type AdvancedHealthAnalysisResult struct {
	Prediction               string                   `json:"prediction"`
	PersonalProfile          PersonalProfile          `json:"personalProfile"`
	BMIAnalysis              BMIAnalysis              `json:"bmiAnalysis"`
	NutritionalAnalysis      NutritionalAnalysis      `json:"nutritionalAnalysis"`
	PhysicalActivityAnalysis PhysicalActivityAnalysis `json:"physicalActivityAnalysis"`
	LifestyleAnalysis        LifestyleAnalysis        `json:"lifestyleAnalysis"`
	RiskFactorAnalysis       RiskFactorAnalysis       `json:"riskFactorAnalysis"`
	Recommendations          []Recommendation         `json:"recommendations"`
	ActionPlan               ActionPlan               `json:"actionPlan"`
	HealthScore              int                      `json:"healthScore"`
	DetailedDescription      string                   `json:"detailedDescription"`
}

type WeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type PersonalProfile struct {
	Age              int         `json:"age"`
	Gender           string      `json:"gender"`
	Height           float64     `json:"height"`
	Weight           float64     `json:"weight"`
	BMI              float64     `json:"bmi"`
	AgeGroup         string      `json:"ageGroup"`
	BMICategory      string      `json:"bmiCategory"`
	IdealWeightRange WeightRange `json:"idealWeightRange"`
	MetabolicAge     int         `json:"metabolicAge"`
}

type BMIAnalysis struct {
	CurrentBMI          float64  `json:"currentBmi"`
	Category            string   `json:"category"`
	IdealBMI            float64  `json:"idealBmi"`
	IdealWeight         float64  `json:"idealWeight"`
	WeightDifference    float64  `json:"weightDifference"`
	HealthRisk          string   `json:"healthRisk"`
	DetailedExplanation string   `json:"detailedExplanation"`
	Recommendations     []string `json:"recommendations"`
}

type NutritionalAnalysis struct {
	VegetableConsumption      string   `json:"vegetableConsumption"`
	MealFrequency             string   `json:"mealFrequency"`
	HydrationLevel            string   `json:"hydrationLevel"`
	CalorieIntake             string   `json:"calorieIntake"`
	AlcoholConsumption        string   `json:"alcoholConsumption"`
	NutritionScore            int      `json:"nutritionScore"`
	DetailedNutritionPlan     string   `json:"detailedNutritionPlan"`
	SupplementRecommendations []string `json:"supplementRecommendations"`
}

type PhysicalActivityAnalysis struct {
	ActivityFrequency      float64  `json:"activityFrequency"`
	ActivityLevel          string   `json:"activityLevel"`
	TechnologyTime         float64  `json:"technologyTime"`
	TransportationType     string   `json:"transportationType"`
	SedentaryRisk          string   `json:"sedentaryRisk"`
	CaloriesBurnedWeekly   int      `json:"caloriesBurnedWeekly"`
	FitnessRecommendations []string `json:"fitnessRecommendations"`
	ExercisePlan           string   `json:"exercisePlan"`
}

type LifestyleAnalysis struct {
	SmokingStatus            string   `json:"smokingStatus"`
	HealthMonitoring         string   `json:"healthMonitoring"`
	FamilyHistory            string   `json:"familyHistory"`
	LifestyleScore           int      `json:"lifestyleScore"`
	StressLevel              string   `json:"stressLevel"`
	SleepQuality             string   `json:"sleepQuality"`
	LifestyleRecommendations []string `json:"lifestyleRecommendations"`
}

// Niveles de riesgo usados por RiskFactor.Level y RiskFactorAnalysis.OverallRiskLevel.
const (
	RiskVeryHigh = "Very high"
	RiskHigh     = "High"
	RiskMedium   = "Medium"
	RiskModerate = "Moderate"
	RiskLow      = "Low"
)

type RiskFactor struct {
	Name           string   `json:"name"`
	Level          string   `json:"level"`
	Description    string   `json:"description"`
	Impact         string   `json:"impact"`
	PreventionTips []string `json:"preventionTips"`
}

type RiskFactorAnalysis struct {
	RiskFactors               []RiskFactor `json:"riskFactors"`
	ProtectiveFactors         []string     `json:"protectiveFactors"`
	OverallRiskLevel          string       `json:"overallRiskLevel"`
	RiskScore                 int          `json:"riskScore"`
	PreventionStrategies      []string     `json:"preventionStrategies"`
	MonitoringRecommendations []string     `json:"monitoringRecommendations"`
}

type Recommendation struct {
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	Priority        int      `json:"priority"`
	Timeframe       string   `json:"timeframe"`
	ExpectedBenefit string   `json:"expectedBenefit"`
	ActionSteps     []string `json:"actionSteps"`
}

type ActionPlan struct {
	ImmediateActions  []string            `json:"immediateActions"`
	ShortTermGoals    []string            `json:"shortTermGoals"`
	LongTermGoals     []string            `json:"longTermGoals"`
	WeeklySchedule    map[string][]string `json:"weeklySchedule"`
	MonthlyMilestones []string            `json:"monthlyMilestones"`
	ProgressTracking  []string            `json:"progressTracking"`
}
