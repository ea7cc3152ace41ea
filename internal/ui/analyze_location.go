package ui

import (
	"fmt"

	"github.com/terra-guardian/terra-guardian-api-poc/internal/delivery"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/notification"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/soil"
	"github.com/terra-guardian/terra-guardian-api-poc/output"
)

// AnalyzeLocation runs a single-point soil analysis and writes the
// result as GeoJSON and CSV under data/result.
func AnalyzeLocation() {
	latitude, longitude, err := ReadCoordinates()
	if err != nil {
		PrintError(err.Error())
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

	analysis, err := delivery.AnalyzeLocation(delivery.Request{
		Latitude:    latitude,
		Longitude:   longitude,
		Date:        date,
		CatalogFile: catalogFile,
	})
	if err != nil {
		PrintError(fmt.Sprintf("Error analyzing location: %s", err.Error()))
		return
	}

	printAnalysis(analysis)

	name := fmt.Sprintf("analysis_%.4f_%.4f_%s", latitude, longitude, date.Format("2006-01-02"))
	batch := []delivery.BatchResult{{
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
		Analysis:  analysis,
	}}

	geojsonPath, err := output.CreateAnalysisGeoJson(batch, name)
	if err != nil {
		PrintError(fmt.Sprintf("Error creating GeoJSON: %s", err.Error()))
		return
	}
	reportPath, err := output.CreateAnalysisReport(batch, name)
	if err != nil {
		PrintError(fmt.Sprintf("Error creating report: %s", err.Error()))
		return
	}

	PrintSuccess(fmt.Sprintf("Successful analysis!\n Resultant geojson located at: %s\n Resultant report located at: %s", geojsonPath, reportPath))
	notification.SendDiscordSuccessNotification(fmt.Sprintf("Terra Guardian CLI\n\nSuccessful analysis!\nResultant geojson located at: %s\nResultant report located at: %s", geojsonPath, reportPath))
}

func printAnalysis(a *soil.Analysis) {
	fmt.Printf("%s\nScene: %s (captured %s, confidence %s)%s\n",
		ColorGreen, a.SceneID, a.CapturedAt.Format("2006-01-02"), a.Confidence, ColorReset)
	fmt.Printf("%sIndices: NDVI %.3f | EVI %.3f | NDMI %.3f | BSI %.3f | SAVI %.3f%s\n",
		ColorGreen, a.Indices.NDVI, a.Indices.EVI, a.Indices.NDMI, a.Indices.BSI, a.Indices.SAVI, ColorReset)
	fmt.Printf("%sMoisture: %.1f%% (%s) - %s%s\n",
		ColorGreen, a.Moisture.Percentage, a.Moisture.Level, a.Moisture.Description, ColorReset)
	fmt.Printf("%sComposition: %s | clay %.1f%% sand %.1f%% silt %.1f%% | OM %.1f%% | pH %.1f | fertility %s%s\n",
		ColorGreen, a.Composition.SoilType, a.Composition.Clay, a.Composition.Sand, a.Composition.Silt,
		a.Composition.OrganicMatter, a.Composition.PH, a.Composition.Fertility.Level, ColorReset)
	fmt.Printf("%sTemperature: %.1f°C / %.1f°F (%s)%s\n",
		ColorGreen, a.Temperature.Celsius, a.Temperature.Fahrenheit, a.Temperature.Description, ColorReset)

	fmt.Printf("%s\nRecommendations:%s\n", ColorGreen, ColorReset)
	for _, rec := range a.Recommendations {
		fmt.Printf("%s- [%s/%s] %s: %s%s\n", ColorGreen, rec.Priority, rec.Category, rec.Type, rec.Message, ColorReset)
	}
}
