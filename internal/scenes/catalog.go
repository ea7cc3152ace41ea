package scenes

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/soil"
)

var validate = validator.New()

// catalogRow is one observation in a local scene catalog CSV. The
// loader owns input-contract validation: the engine downstream assumes
// bands in [0,1] and cloud cover in [0,100].
type catalogRow struct {
	SceneID    string  `csv:"scene_id" validate:"required"`
	CapturedAt string  `csv:"captured_at" validate:"required"`
	CloudCover float64 `csv:"cloud_cover" validate:"min=0,max=100"`
	Mission    string  `csv:"mission"`
	Level      string  `csv:"processing_level"`
	TileID     string  `csv:"tile_id"`

	Blue        float64 `csv:"b02" validate:"min=0,max=1"`
	Green       float64 `csv:"b03" validate:"min=0,max=1"`
	Red         float64 `csv:"b04" validate:"min=0,max=1"`
	RedEdge1    float64 `csv:"b05" validate:"min=0,max=1"`
	RedEdge2    float64 `csv:"b06" validate:"min=0,max=1"`
	RedEdge3    float64 `csv:"b07" validate:"min=0,max=1"`
	NIR         float64 `csv:"b08" validate:"min=0,max=1"`
	NarrowNIR   float64 `csv:"b8a" validate:"min=0,max=1"`
	WaterVapour float64 `csv:"b09" validate:"min=0,max=1"`
	SWIR1       float64 `csv:"b11" validate:"min=0,max=1"`
	SWIR2       float64 `csv:"b12" validate:"min=0,max=1"`
}

func (r catalogRow) toScene() (soil.Scene, error) {
	capturedAt, err := parseCaptureTime(r.CapturedAt)
	if err != nil {
		return soil.Scene{}, err
	}

	return soil.Scene{
		ID:         r.SceneID,
		CapturedAt: capturedAt,
		CloudCover: r.CloudCover,
		Mission:    r.Mission,
		Level:      r.Level,
		TileID:     r.TileID,
		Bands: soil.BandReading{
			soil.BandBlue:        r.Blue,
			soil.BandGreen:       r.Green,
			soil.BandRed:         r.Red,
			soil.BandRedEdge1:    r.RedEdge1,
			soil.BandRedEdge2:    r.RedEdge2,
			soil.BandRedEdge3:    r.RedEdge3,
			soil.BandNIR:         r.NIR,
			soil.BandNarrowNIR:   r.NarrowNIR,
			soil.BandWaterVapour: r.WaterVapour,
			soil.BandSWIR1:       r.SWIR1,
			soil.BandSWIR2:       r.SWIR2,
		},
	}, nil
}

func parseCaptureTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid capture time %q: %w", value, err)
	}
	return t, nil
}

// LoadCatalog reads and validates a scene catalog CSV.
func LoadCatalog(path string) ([]soil.Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene catalog: %w", err)
	}
	defer file.Close()

	var rows []catalogRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse scene catalog %s: %w", path, err)
	}

	scenes := make([]soil.Scene, 0, len(rows))
	for i, row := range rows {
		if err := validate.Struct(row); err != nil {
			return nil, fmt.Errorf("invalid scene row %d (%s): %w", i+1, row.SceneID, err)
		}
		scene, err := row.toScene()
		if err != nil {
			return nil, fmt.Errorf("invalid scene row %d (%s): %w", i+1, row.SceneID, err)
		}
		scenes = append(scenes, scene)
	}

	return scenes, nil
}

// FilterWindow keeps scenes captured in [start, end].
func FilterWindow(scenes []soil.Scene, start, end time.Time) []soil.Scene {
	kept := make([]soil.Scene, 0, len(scenes))
	for _, s := range scenes {
		if s.CapturedAt.Before(start) || s.CapturedAt.After(end) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}
