package scenes

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/terra-guardian/terra-guardian-api-poc/internal/soil"
)

const catalogHeader = "scene_id,captured_at,cloud_cover,mission,processing_level,tile_id,b02,b03,b04,b05,b06,b07,b08,b8a,b09,b11,b12\n"

func writeCatalog(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(catalogHeader+rows), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalog(t,
		"S2A_001,2025-06-15,8,sentinel-2,L2A,T11SKA,0.08,0.09,0.12,0.14,0.18,0.2,0.25,0.24,0.05,0.2,0.15\n"+
			"S2A_002,2025-06-10T10:30:00Z,35,sentinel-2,L2A,T11SKA,0.1,0.11,0.15,0.16,0.19,0.21,0.22,0.21,0.06,0.25,0.2\n")

	scenes, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("expected 2 scenes, got %d", len(scenes))
	}

	first := scenes[0]
	if first.ID != "S2A_001" {
		t.Fatalf("expected scene id S2A_001, got %q", first.ID)
	}
	if !first.CapturedAt.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected capture time %v", first.CapturedAt)
	}
	if first.CloudCover != 8 {
		t.Fatalf("expected cloud cover 8, got %f", first.CloudCover)
	}
	if first.Bands[soil.BandNIR] != 0.25 {
		t.Fatalf("expected NIR 0.25, got %f", first.Bands[soil.BandNIR])
	}
	if first.Bands[soil.BandSWIR2] != 0.15 {
		t.Fatalf("expected SWIR2 0.15, got %f", first.Bands[soil.BandSWIR2])
	}

	// RFC3339 timestamps parse too.
	if scenes[1].CapturedAt.Hour() != 10 {
		t.Fatalf("expected RFC3339 timestamp parsed, got %v", scenes[1].CapturedAt)
	}
}

func TestLoadCatalogRejectsInvalidRows(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{"band_above_one", "BAD,2025-06-15,8,s2,L2A,T,0.08,0.09,1.5,0.14,0.18,0.2,0.25,0.24,0.05,0.2,0.15\n"},
		{"cloud_above_hundred", "BAD,2025-06-15,120,s2,L2A,T,0.08,0.09,0.12,0.14,0.18,0.2,0.25,0.24,0.05,0.2,0.15\n"},
		{"missing_scene_id", ",2025-06-15,8,s2,L2A,T,0.08,0.09,0.12,0.14,0.18,0.2,0.25,0.24,0.05,0.2,0.15\n"},
		{"bad_date", "BAD,15-06-2025,8,s2,L2A,T,0.08,0.09,0.12,0.14,0.18,0.2,0.25,0.24,0.05,0.2,0.15\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeCatalog(t, tc.row)
			if _, err := LoadCatalog(path); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestFilterWindow(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }
	scenes := []soil.Scene{
		{ID: "a", CapturedAt: day(1)},
		{ID: "b", CapturedAt: day(10)},
		{ID: "c", CapturedAt: day(20)},
	}

	got := FilterWindow(scenes, day(5), day(15))
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected only scene b in window, got %v", got)
	}
}
