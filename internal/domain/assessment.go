package domain

// HealthRequest es el formato dataframe_split que tambien consume el servicio del modelo.
type HealthRequest struct {
	DataFrameSplit *DataFrameSplit `json:"dataframe_split" binding:"required"`
}

type DataFrameSplit struct {
	Columns []string `json:"columns"`
	Data    [][]any  `json:"data" binding:"required,min=1"`
}

// FirstRow devuelve la primera fila o nil si no hay datos.
func (r HealthRequest) FirstRow() []any {
	if r.DataFrameSplit == nil || len(r.DataFrameSplit.Data) == 0 {
		return nil
	}
	return r.DataFrameSplit.Data[0]
}

// SimpleHealthRequest es el formulario plano del frontend (altura en cm, transporte codificado).
type SimpleHealthRequest struct {
	Age                       int    `json:"age" binding:"gte=0,lte=130"`
	Gender                    string `json:"gender"`
	Height                    int    `json:"height" binding:"required,gt=0"`
	Weight                    int    `json:"weight" binding:"required,gt=0"`
	VegetableConsumption      int    `json:"vegetableConsumption"`
	NumberOfMeals             int    `json:"numberOfMeals"`
	WaterConsumption          int    `json:"waterConsumption"`
	PhysicalActivityFrequency int    `json:"physicalActivityFrequency"`
	TechnologyTime            int    `json:"technologyTime"`
	FamilyHistoryOverweight   bool   `json:"familyHistoryOverweight"`
	HighCalorieFood           bool   `json:"highCalorieFood"`
	Smoking                   bool   `json:"smoking"`
	CalorieMonitoring         bool   `json:"calorieMonitoring"`
	Transportation            int    `json:"transportation"`
}

// AssessmentItem es el resultado simple por fila: etiqueta, descripcion y observaciones.
type AssessmentItem struct {
	Prediction   string   `json:"prediction"`
	Description  string   `json:"description"`
	Observations []string `json:"observations"`
}

type HealthResponse struct {
	Assessments []AssessmentItem `json:"assessments"`
}
