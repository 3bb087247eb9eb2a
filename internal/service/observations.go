package service

import (
	"fmt"
	"strings"
)

// Observations genera las observaciones simples de una fila indexada por nombre de columna.
// Una columna ausente o que no parsea no produce observacion.
func Observations(row map[string]any, prediction string) []string {
	obs := []string{}

	h, okH := toFloat(row["Height"])
	w, okW := toFloat(row["Weight"])
	if okH && okW && h > 0 {
		obs = append(obs, fmt.Sprintf("Your BMI = %.1f, classification: '%s'.", w/(h*h), prediction))
	}

	if isYes(row["SMOKE"]) {
		obs = append(obs, "You smoke - higher risk of heart and lung disease.")
	}
	if isYes(row["family_history_with_overweight"]) {
		obs = append(obs, "Family history of overweight - there may be a predisposition.")
	}
	if isYes(row["FAVC"]) {
		obs = append(obs, "Frequent high-calorie meals - consider a healthier diet.")
	}
	if isYes(row["SCC"]) {
		obs = append(obs, "You drink sweetened beverages - limit them for a better metabolism.")
	}
	if v, ok := toFloat(row["CH2O"]); ok && v < 2 {
		obs = append(obs, "Low water intake (<2 l/day) - drink more water.")
	}
	if v, ok := toFloat(row["FAF"]); ok && v < 1 {
		obs = append(obs, "No physical activity - aim for at least 150 min/week.")
	}
	if v, ok := toFloat(row["TUE"]); ok && v > 2 {
		obs = append(obs, ">2 h/day in front of a screen - take regular breaks.")
	}

	if raw, ok := row["MTRANS"]; ok && raw != nil {
		switch strings.TrimSpace(fmt.Sprint(raw)) {
		case "Walking", "Bike", "Public_Transportation":
			obs = append(obs, "Active transport - great.")
		default:
			obs = append(obs, "Traveling by car - consider walking or cycling.")
		}
	}

	if tok, ok := toToken(row["CALC"]); ok && tok == "always" {
		obs = append(obs, "Frequent alcohol consumption - higher health risk.")
	}

	if age, ok := toFloat(row["Age"]); ok {
		switch {
		case age < 18:
			obs = append(obs, "Minor - specialist care is recommended.")
		case age > 60:
			obs = append(obs, "Age over 60 - higher risk of chronic disease.")
		default:
			obs = append(obs, "Age within the normal range - take care of your health.")
		}
	}
	return obs
}

func isYes(v any) bool {
	tok, ok := toToken(v)
	return ok && tok == "yes"
}
