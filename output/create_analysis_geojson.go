package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/delivery"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/properties"
)

// CreateAnalysisGeoJson writes a batch of analyses as a GeoJSON point
// collection under data/result. Failed rows are skipped; the features
// carry the headline numbers and the full recommendation list.
func CreateAnalysisGeoJson(results []delivery.BatchResult, name string) (string, error) {
	resultPath := filepath.Join(properties.RootPath(), "data", "result")
	if err := os.MkdirAll(resultPath, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create result folder: %w", err)
	}
	outputPath := filepath.Join(resultPath, name+".geojson")

	fc := geojson.NewFeatureCollection()
	for _, r := range results {
		if r.Err != nil || r.Analysis == nil {
			continue
		}
		a := r.Analysis

		feature := geojson.NewFeature(orb.Point{a.Location.Longitude, a.Location.Latitude})
		feature.Properties = geojson.Properties{
			"name":                r.Name,
			"scene_id":            a.SceneID,
			"captured_at":         a.CapturedAt.Format("2006-01-02"),
			"moisture_percentage": a.Moisture.Percentage,
			"moisture_level":      string(a.Moisture.Level),
			"soil_type":           a.Composition.SoilType,
			"ph":                  a.Composition.PH,
			"fertility":           a.Composition.Fertility,
			"temperature_celsius": a.Temperature.Celsius,
			"confidence":          string(a.Confidence),
			"recommendations":     a.Recommendations,
		}
		fc.Append(feature)
	}

	encoded, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode GeoJSON: %w", err)
	}
	if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
		return "", fmt.Errorf("failed to write GeoJSON file: %w", err)
	}

	fmt.Println("GeoJSON file created successfully at", outputPath)
	return outputPath, nil
}
