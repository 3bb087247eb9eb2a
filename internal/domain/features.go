package domain

// FeatureCount es la cantidad minima de posiciones de un registro crudo (indice 0 = id de fila).
const FeatureCount = 17

// FeatureColumns es el orden canonico de columnas del registro crudo.
var FeatureColumns = []string{
	"id",
	"Age",
	"Height",
	"Weight",
	"FCVC",
	"NCP",
	"CH2O",
	"FAF",
	"TUE",
	"Gender",
	"family_history_with_overweight",
	"FAVC",
	"CAEC",
	"SMOKE",
	"SCC",
	"CALC",
	"MTRANS",
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Frequency cubre CAEC (comer entre comidas) y CALC (alcohol).
type Frequency string

const (
	FrequencyNever      Frequency = "Never"
	FrequencySometimes  Frequency = "Sometimes"
	FrequencyFrequently Frequency = "Frequently"
	FrequencyAlways     Frequency = "Always"
)

// IsHabitual indica Frequently o Always.
func (f Frequency) IsHabitual() bool {
	return f == FrequencyFrequently || f == FrequencyAlways
}

type Transport string

const (
	TransportWalking    Transport = "Walking"
	TransportBike       Transport = "Bike"
	TransportPublic     Transport = "Public_Transportation"
	TransportAutomobile Transport = "Automobile"
	TransportMotorbike  Transport = "Motorbike"
)

// FeatureSet es el registro ya tipado y validado. Se construye una vez por request y no se muta.
type FeatureSet struct {
	Age                int
	Height             float64 // metros
	Weight             float64 // kg
	VegetableFrequency float64 // FCVC 1-3
	MealCount          float64 // NCP
	WaterIntake        float64 // CH2O, litros
	ActivityFrequency  float64 // FAF 0-3
	TechTime           float64 // TUE, horas
	Gender             Gender
	FamilyHistory      bool
	HighCalorieFood    bool // FAVC
	EatingBetweenMeals Frequency
	Smoker             bool
	CalorieMonitoring  bool // SCC
	Alcohol            Frequency
	Transportation     Transport
}

// DefaultFeatures devuelve el perfil de valores por defecto usado cuando un campo no parsea.
func DefaultFeatures() FeatureSet {
	return FeatureSet{
		Age:                25,
		Height:             1.7,
		Weight:             70,
		VegetableFrequency: 2,
		MealCount:          3,
		WaterIntake:        2,
		ActivityFrequency:  1,
		TechTime:           2,
		Gender:             GenderMale,
		FamilyHistory:      false,
		HighCalorieFood:    false,
		EatingBetweenMeals: FrequencySometimes,
		Smoker:             false,
		CalorieMonitoring:  false,
		Alcohol:            FrequencyNever,
		Transportation:     TransportPublic,
	}
}

// BMI calcula peso/altura².
func (f FeatureSet) BMI() float64 {
	return f.Weight / (f.Height * f.Height)
}
