package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/terra-guardian/terra-guardian-api-poc/internal/delivery"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/notification"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/properties"
	"github.com/terra-guardian/terra-guardian-api-poc/output"
)

// AnalyzeBatch runs the engine over a locations CSV from the
// data/batch_input folder and writes a GeoJSON and a CSV report.
func AnalyzeBatch() {
	PrintWarning("The input data should be a '.csv' file with name,latitude,longitude columns present in data/batch_input folder")

	inputFileName := ReadString("Enter input data file name: ")
	if inputFileName == "" {
		PrintError("input file name cannot be empty")
		return
	}
	inputPath := fmt.Sprintf("%s/data/batch_input/%s", properties.RootPath(), inputFileName)
	if _, err := os.Stat(inputPath); err != nil {
		PrintError(fmt.Sprintf("Error reading batch input: %s", err.Error()))
		return
	}

	date, err := ReadDate("Enter the analysis date (YYYY-MM-DD or 'today'): ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	catalogFile, err := SelectCatalog()
	if err != nil {
		PrintError(err.Error())
		return
	}

	results, err := delivery.AnalyzeBatch(inputPath, date, catalogFile, properties.SyntheticSeed())
	if err != nil {
		PrintError(fmt.Sprintf("Error analyzing batch: %s", err.Error()))
		notification.SendDiscordErrorNotification(fmt.Sprintf("Terra Guardian CLI\n\nError analyzing batch: %s", err.Error()))
		return
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Printf("%s- %s: %s%s\n", ColorRed, r.Name, r.Err.Error(), ColorReset)
		}
	}

	name := fmt.Sprintf("batch_%s_%s", strings.TrimSuffix(inputFileName, ".csv"), date.Format("2006-01-02"))
	geojsonPath, err := output.CreateAnalysisGeoJson(results, name)
	if err != nil {
		PrintError(fmt.Sprintf("Error creating GeoJSON: %s", err.Error()))
		return
	}
	reportPath, err := output.CreateAnalysisReport(results, name)
	if err != nil {
		PrintError(fmt.Sprintf("Error creating report: %s", err.Error()))
		return
	}

	PrintSuccess(fmt.Sprintf("Batch analysis finished: %d locations, %d failed.\n Resultant geojson located at: %s\n Resultant report located at: %s",
		len(results), failed, geojsonPath, reportPath))
	notification.SendDiscordSuccessNotification(fmt.Sprintf("Terra Guardian CLI\n\nBatch analysis finished: %d locations, %d failed.\nResultant geojson located at: %s\nResultant report located at: %s",
		len(results), failed, geojsonPath, reportPath))
}
