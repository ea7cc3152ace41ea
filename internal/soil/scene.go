package soil

import (
	"errors"
	"time"
)

// ErrNoScenes is returned when no candidate observation is available.
// It is the one fatal condition of the pipeline: no scene, no analysis.
var ErrNoScenes = errors.New("no scenes available for analysis")

// Scene is one satellite observation of a location. It is built by the
// acquisition side (catalog, raster or synthetic) and read-only here.
type Scene struct {
	ID         string      `json:"id"`
	CapturedAt time.Time   `json:"captured_at"`
	CloudCover float64     `json:"cloud_cover"`
	Bands      BandReading `json:"bands"`

	Mission string `json:"mission,omitempty"`
	Level   string `json:"processing_level,omitempty"`
	TileID  string `json:"tile_id,omitempty"`
}

// SelectBestScene picks the observation to analyze: lowest cloud cover
// first, most recent capture among equals. Both keys matter.
func SelectBestScene(scenes []Scene) (Scene, error) {
	if len(scenes) == 0 {
		return Scene{}, ErrNoScenes
	}
	best := scenes[0]
	for _, s := range scenes[1:] {
		if s.CloudCover < best.CloudCover {
			best = s
			continue
		}
		if s.CloudCover == best.CloudCover && s.CapturedAt.After(best.CapturedAt) {
			best = s
		}
	}
	return best, nil
}
