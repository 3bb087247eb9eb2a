package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"health-report/internal/domain"
)

// Posiciones del registro crudo.
const (
	idxAge = iota + 1
	idxHeight
	idxWeight
	idxVegetables
	idxMeals
	idxWater
	idxActivity
	idxTech
	idxGender
	idxFamilyHistory
	idxHighCalorie
	idxBetweenMeals
	idxSmoke
	idxMonitoring
	idxAlcohol
	idxTransport
)

// ExtractFeatures convierte el registro posicional en un FeatureSet tipado.
// Solo falla si el registro falta o es mas corto que domain.FeatureCount; cualquier campo que
// no parsea toma su valor por defecto.
func ExtractFeatures(record []any) (domain.FeatureSet, error) {
	if record == nil {
		return domain.FeatureSet{}, &domain.ValidationError{Reason: "feature record is missing"}
	}
	if len(record) < domain.FeatureCount {
		return domain.FeatureSet{}, &domain.ValidationError{
			Reason: fmt.Sprintf("feature record must have at least %d elements, got %d", domain.FeatureCount, len(record)),
		}
	}

	def := domain.DefaultFeatures()
	return domain.FeatureSet{
		Age:                parseAge(record[idxAge], def.Age),
		Height:             parsePositive(record[idxHeight], def.Height),
		Weight:             parsePositive(record[idxWeight], def.Weight),
		VegetableFrequency: parseNonNegative(record[idxVegetables], def.VegetableFrequency),
		MealCount:          parseNonNegative(record[idxMeals], def.MealCount),
		WaterIntake:        parseNonNegative(record[idxWater], def.WaterIntake),
		ActivityFrequency:  parseNonNegative(record[idxActivity], def.ActivityFrequency),
		TechTime:           parseNonNegative(record[idxTech], def.TechTime),
		Gender:             parseGender(record[idxGender], def.Gender),
		FamilyHistory:      parseYesNo(record[idxFamilyHistory], def.FamilyHistory),
		HighCalorieFood:    parseYesNo(record[idxHighCalorie], def.HighCalorieFood),
		EatingBetweenMeals: parseFrequency(record[idxBetweenMeals], def.EatingBetweenMeals),
		Smoker:             parseYesNo(record[idxSmoke], def.Smoker),
		CalorieMonitoring:  parseYesNo(record[idxMonitoring], def.CalorieMonitoring),
		Alcohol:            parseFrequency(record[idxAlcohol], def.Alcohol),
		Transportation:     parseTransport(record[idxTransport], def.Transportation),
	}, nil
}

// CheckColumns compara el orden de columnas recibido con el canonico y devuelve las diferencias.
// No es un error: el llamador decide si lo loguea.
func CheckColumns(columns []string) []string {
	if len(columns) == 0 {
		return nil
	}
	var mismatches []string
	for i, want := range domain.FeatureColumns {
		if i == 0 {
			continue
		}
		if i >= len(columns) {
			mismatches = append(mismatches, fmt.Sprintf("missing column %d (%s)", i, want))
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(columns[i]), want) {
			mismatches = append(mismatches, fmt.Sprintf("column %d is %q, expected %q", i, columns[i], want))
		}
	}
	return mismatches
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseAge(v any, def int) int {
	f, ok := toFloat(v)
	if !ok || f < 0 {
		return def
	}
	return int(math.Round(f))
}

func parsePositive(v any, def float64) float64 {
	f, ok := toFloat(v)
	if !ok || f <= 0 {
		return def
	}
	return f
}

func parseNonNegative(v any, def float64) float64 {
	f, ok := toFloat(v)
	if !ok || f < 0 {
		return def
	}
	return f
}

func toToken(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s, s != ""
	case bool:
		if t {
			return "yes", true
		}
		return "no", true
	default:
		return "", false
	}
}

func parseYesNo(v any, def bool) bool {
	tok, ok := toToken(v)
	if !ok {
		return def
	}
	switch tok {
	case "yes", "true", "1":
		return true
	case "no", "false", "0":
		return false
	default:
		return def
	}
}

func parseGender(v any, def domain.Gender) domain.Gender {
	tok, _ := toToken(v)
	switch tok {
	case "male", "m":
		return domain.GenderMale
	case "female", "f":
		return domain.GenderFemale
	default:
		return def
	}
}

func parseFrequency(v any, def domain.Frequency) domain.Frequency {
	tok, _ := toToken(v)
	switch tok {
	case "no", "never":
		return domain.FrequencyNever
	case "sometimes":
		return domain.FrequencySometimes
	case "frequently":
		return domain.FrequencyFrequently
	case "always":
		return domain.FrequencyAlways
	default:
		return def
	}
}

func parseTransport(v any, def domain.Transport) domain.Transport {
	tok, _ := toToken(v)
	switch tok {
	case "walking":
		return domain.TransportWalking
	case "bike":
		return domain.TransportBike
	case "public_transportation":
		return domain.TransportPublic
	case "automobile":
		return domain.TransportAutomobile
	case "motorbike":
		return domain.TransportMotorbike
	default:
		return def
	}
}
