package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"health-report/internal/catalog"
	"health-report/internal/config"
	"health-report/internal/domain"
	"health-report/internal/model"
	"health-report/internal/service"
)

type prompt struct {
	column string
	label  string
	def    string
}

var prompts = []prompt{
	{"Age", "Age (years)", "30"},
	{"Height", "Height (m)", "1.75"},
	{"Weight", "Weight (kg)", "70"},
	{"FCVC", "Vegetable frequency (0-3)", "2"},
	{"NCP", "Main meals per day", "3"},
	{"CH2O", "Water intake (liters)", "2"},
	{"FAF", "Physical activity frequency (0-5)", "1"},
	{"TUE", "Screen time (hours)", "2"},
	{"Gender", "Gender (Male/Female)", "Male"},
	{"family_history_with_overweight", "Family history of overweight (yes/no)", "no"},
	{"FAVC", "Frequent high-calorie food (yes/no)", "no"},
	{"CAEC", "Eating between meals (no/Sometimes/Frequently/Always)", "Sometimes"},
	{"SMOKE", "Smoker (yes/no)", "no"},
	{"SCC", "Monitors calories (yes/no)", "no"},
	{"CALC", "Alcohol (no/Sometimes/Frequently/Always)", "no"},
	{"MTRANS", "Transport (Walking/Bike/Public_Transportation/Automobile/Motorbike)", "Public_Transportation"},
}

func main() {
	asJSON := flag.Bool("json", false, "print the full report as JSON")
	useModel := flag.Bool("model", false, "ask the model service for the label")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cat, err := catalog.Load(cfg.LabelsFile, cfg.PlanTemplatesFile)
	if err != nil {
		logger.Warn("catalog load failed, using embedded defaults", zap.Error(err))
	}
	reports := service.NewReportService(cat, logger)

	reader := bufio.NewReader(os.Stdin)
	fmt.Println("===== Health report =====")
	record := []any{0}
	for _, p := range prompts {
		record = append(record, readValue(reader, p))
	}

	label := ""
	if *useModel {
		client := model.NewHTTPClient(cfg.ModelBaseURL, cfg.ModelTimeout(), cfg.ModelMaxAttempts, logger)
		req := domain.HealthRequest{DataFrameSplit: &domain.DataFrameSplit{
			Columns: domain.FeatureColumns,
			Data:    [][]any{record},
		}}
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ModelTimeout()+5*time.Second)
		preds, err := client.Predict(ctx, req)
		cancel()
		if err != nil {
			fmt.Printf("model unavailable: %v\n", err)
		} else if len(preds) > 0 {
			label = preds[0]
		}
	} else {
		labels := cat.Labels()
		known := make([]string, 0, len(labels))
		for k := range labels {
			known = append(known, k)
		}
		slices.Sort(known)
		fmt.Printf("Known labels: %s\n", strings.Join(known, ", "))
		label = readLine(reader, "Classification label (empty = Unknown): ")
	}

	res, err := reports.AnalyzeRecord(record, label)
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	if *asJSON {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			log.Fatalf("marshal: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Println()
	fmt.Println(res.DetailedDescription)
	fmt.Printf("Label description: %s\n", cat.Describe(res.Prediction))
}

func readLine(reader *bufio.Reader, msg string) string {
	fmt.Print(msg)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// readValue devuelve float64 para entradas numericas y string para el resto.
func readValue(reader *bufio.Reader, p prompt) any {
	line := readLine(reader, fmt.Sprintf("%s [%s]: ", p.label, p.def))
	if line == "" {
		line = p.def
	}
	if v, err := strconv.ParseFloat(line, 64); err == nil {
		return v
	}
	return line
}
