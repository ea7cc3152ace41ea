package output

import (
	"errors"
	"image/png"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/delivery"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/soil"
)

func sampleBatch() []delivery.BatchResult {
	return []delivery.BatchResult{
		{
			Name:      "central-valley",
			Latitude:  36.7,
			Longitude: -119.8,
			Analysis: &soil.Analysis{
				SceneID:    "S2A_TEST_001",
				CapturedAt: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
				Location:   soil.Location{Latitude: 36.7, Longitude: -119.8},
				Indices:    soil.SpectralIndices{NDVI: 0.35, NDMI: 0.11},
				Moisture:   soil.Moisture{Percentage: 45.0, Level: soil.MoistureModerate},
				Composition: soil.Composition{
					Clay: 53.3, Sand: 20, Silt: 26.7, PH: 7.5, SoilType: "Clay",
					Fertility: soil.Fertility{Score: 100, Level: "high"},
				},
				Temperature: soil.Temperature{Celsius: 24.0},
				Confidence:  soil.ConfidenceMedium,
			},
		},
		{
			Name:      "broken",
			Latitude:  123,
			Longitude: 0,
			Err:       errors.New("invalid analysis request"),
		},
	}
}

func TestCreateAnalysisGeoJson(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	path, err := CreateAnalysisGeoJson(sampleBatch(), "batch-geojson")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fc.Features) != 1 {
		t.Fatalf("expected the failed row to be skipped, got %d features", len(fc.Features))
	}
	props := fc.Features[0].Properties
	if props.MustString("name") != "central-valley" {
		t.Errorf("expected feature name central-valley, got %s", props.MustString("name"))
	}
	if props.MustString("soil_type") != "Clay" {
		t.Errorf("expected soil type Clay, got %s", props.MustString("soil_type"))
	}
}

func TestCreateAnalysisReportKeepsFailedRows(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	path, err := CreateAnalysisReport(sampleBatch(), "batch-report")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(data)

	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(content, "central-valley") {
		t.Error("expected the successful row in the report")
	}
	if !strings.Contains(content, "invalid analysis request") {
		t.Error("expected the failed row to carry its error message")
	}
}

func TestCreateMoistureMapImage(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	grid := &delivery.MoistureGrid{
		Width:  2,
		Height: 2,
		Pixels: []delivery.MoisturePixel{
			{X: 0, Y: 0, Percentage: 10},
			{X: 1, Y: 0, Percentage: 40},
			{X: 0, Y: 1, Percentage: 70},
			{X: 1, Y: 1, Percentage: 95},
		},
	}

	path, err := CreateMoistureMapImage(grid, "moisture-map")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer file.Close()

	cfg, err := png.DecodeConfig(file)
	if err != nil {
		t.Fatalf("expected a decodable PNG: %v", err)
	}
	if cfg.Width != 2*moistureCellSize {
		t.Errorf("expected width %d, got %d", 2*moistureCellSize, cfg.Width)
	}
	if cfg.Height != 2*moistureCellSize+40 {
		t.Errorf("expected height %d, got %d", 2*moistureCellSize+40, cfg.Height)
	}
}

func TestCreateMoistureMapImageEmptyGrid(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	if _, err := CreateMoistureMapImage(&delivery.MoistureGrid{}, "empty"); err == nil {
		t.Fatal("expected an error for an empty grid")
	}
}
