package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"health-report/internal/catalog"
	"health-report/internal/domain"
	"health-report/internal/service"
)

type Scenario struct {
	Name   string
	Record []any
	Label  string
	Check  func(res domain.AdvancedHealthAnalysisResult, err error) error
}

func baseRecord() []any {
	return []any{0, 30, 1.75, 70, 3, 3, 2, 2, 1, "Male", "no", "no", "Sometimes", "no", "no", "no", "Walking"}
}

func with(record []any, idx int, v any) []any {
	out := append([]any(nil), record...)
	out[idx] = v
	return out
}

func hasFactor(res domain.AdvancedHealthAnalysisResult, name, level string) bool {
	for _, rf := range res.RiskFactorAnalysis.RiskFactors {
		if rf.Name == name && rf.Level == level {
			return true
		}
	}
	return false
}

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	reports := service.NewReportService(catalog.Default(), logger)

	scenarios := []Scenario{
		{
			Name:   "A - healthy adult",
			Record: baseRecord(),
			Label:  "Normal_Weight",
			Check: func(res domain.AdvancedHealthAnalysisResult, err error) error {
				if err != nil {
					return err
				}
				if res.BMIAnalysis.Category != service.BMINormal || res.HealthScore != 100 {
					return fmt.Errorf("category=%s score=%d", res.BMIAnalysis.Category, res.HealthScore)
				}
				return nil
			},
		},
		{
			Name:   "B - obesity",
			Record: with(with(baseRecord(), 2, 1.70), 3, 95),
			Label:  "Obesity_Type_I",
			Check: func(res domain.AdvancedHealthAnalysisResult, err error) error {
				if err != nil {
					return err
				}
				if !hasFactor(res, service.RiskObesity, domain.RiskHigh) || res.HealthScore > 70 {
					return fmt.Errorf("factors=%d score=%d", len(res.RiskFactorAnalysis.RiskFactors), res.HealthScore)
				}
				return nil
			},
		},
		{
			Name:   "C - smoker",
			Record: with(baseRecord(), 13, "yes"),
			Label:  "Normal_Weight",
			Check: func(res domain.AdvancedHealthAnalysisResult, err error) error {
				if err != nil {
					return err
				}
				level := res.RiskFactorAnalysis.OverallRiskLevel
				if !hasFactor(res, service.RiskSmoking, domain.RiskVeryHigh) || res.HealthScore != 75 {
					return fmt.Errorf("score=%d level=%s", res.HealthScore, level)
				}
				if level != domain.RiskHigh && level != domain.RiskVeryHigh {
					return fmt.Errorf("overall risk %s", level)
				}
				return nil
			},
		},
		{
			Name:   "D - short record",
			Record: baseRecord()[:10],
			Label:  "Normal_Weight",
			Check: func(_ domain.AdvancedHealthAnalysisResult, err error) error {
				var vErr *domain.ValidationError
				if !errors.As(err, &vErr) {
					return fmt.Errorf("expected validation error, got %v", err)
				}
				return nil
			},
		},
		{
			Name:   "E - alcohol always",
			Record: with(baseRecord(), 15, "Always"),
			Label:  "Normal_Weight",
			Check: func(res domain.AdvancedHealthAnalysisResult, err error) error {
				if err != nil {
					return err
				}
				if res.NutritionalAnalysis.NutritionScore != 82 || res.LifestyleAnalysis.LifestyleScore != 55 {
					return fmt.Errorf("nutrition=%d lifestyle=%d", res.NutritionalAnalysis.NutritionScore, res.LifestyleAnalysis.LifestyleScore)
				}
				return nil
			},
		},
	}

	passed := 0
	total := len(scenarios)

	for _, sc := range scenarios {
		fmt.Printf("=== Running: %s ===\n", sc.Name)
		res, err := reports.AnalyzeRecord(sc.Record, sc.Label)
		if checkErr := sc.Check(res, err); checkErr != nil {
			fmt.Printf("❌ FAIL [%s] %v\n\n", sc.Name, checkErr)
			continue
		}
		fmt.Printf("✅ PASS [%s] score=%d risk=%s\n\n", sc.Name, res.HealthScore, res.RiskFactorAnalysis.OverallRiskLevel)
		passed++
	}

	fmt.Printf("Scenarios: %d/%d passed\n", passed, total)
	if passed != total {
		os.Exit(1)
	}
	os.Exit(0)
}
