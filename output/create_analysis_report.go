package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/delivery"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/properties"
)

type reportRow struct {
	Name               string  `csv:"name"`
	Latitude           float64 `csv:"latitude"`
	Longitude          float64 `csv:"longitude"`
	SceneID            string  `csv:"scene_id"`
	CapturedAt         string  `csv:"captured_at"`
	NDVI               float64 `csv:"ndvi"`
	NDMI               float64 `csv:"ndmi"`
	MoisturePercentage float64 `csv:"moisture_percentage"`
	MoistureLevel      string  `csv:"moisture_level"`
	SoilType           string  `csv:"soil_type"`
	Clay               float64 `csv:"clay"`
	Sand               float64 `csv:"sand"`
	Silt               float64 `csv:"silt"`
	OrganicMatter      float64 `csv:"organic_matter"`
	PH                 float64 `csv:"ph"`
	FertilityScore     float64 `csv:"fertility_score"`
	FertilityLevel     string  `csv:"fertility_level"`
	TemperatureCelsius float64 `csv:"temperature_celsius"`
	Confidence         string  `csv:"confidence"`
	Recommendations    int     `csv:"recommendations"`
	Error              string  `csv:"error"`
}

// CreateAnalysisReport flattens a batch into a CSV under data/result.
// Failed rows are kept with their error message so a batch report is
// always one line per input location.
func CreateAnalysisReport(results []delivery.BatchResult, name string) (string, error) {
	resultPath := filepath.Join(properties.RootPath(), "data", "result")
	if err := os.MkdirAll(resultPath, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create result folder: %w", err)
	}
	outputPath := filepath.Join(resultPath, name+".csv")

	rows := make([]reportRow, 0, len(results))
	for _, r := range results {
		row := reportRow{Name: r.Name, Latitude: r.Latitude, Longitude: r.Longitude}
		if r.Err != nil {
			row.Error = r.Err.Error()
			rows = append(rows, row)
			continue
		}

		a := r.Analysis
		row.SceneID = a.SceneID
		row.CapturedAt = a.CapturedAt.Format("2006-01-02")
		row.NDVI = a.Indices.NDVI
		row.NDMI = a.Indices.NDMI
		row.MoisturePercentage = a.Moisture.Percentage
		row.MoistureLevel = string(a.Moisture.Level)
		row.SoilType = a.Composition.SoilType
		row.Clay = a.Composition.Clay
		row.Sand = a.Composition.Sand
		row.Silt = a.Composition.Silt
		row.OrganicMatter = a.Composition.OrganicMatter
		row.PH = a.Composition.PH
		row.FertilityScore = a.Composition.Fertility.Score
		row.FertilityLevel = a.Composition.Fertility.Level
		row.TemperatureCelsius = a.Temperature.Celsius
		row.Confidence = string(a.Confidence)
		row.Recommendations = len(a.Recommendations)
		rows = append(rows, row)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Println("Report file created successfully at", outputPath)
	return outputPath, nil
}
