package soil

import "time"

// Location parameterizes the geographic and seasonal corrections.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km,omitempty"`
}

// Config carries the thresholds the engine used to pull from the
// environment. Passing it explicitly keeps the engine free of ambient
// state and makes every run reproducible.
type Config struct {
	// MaxCloudCover excludes cloudier scenes from selection when at
	// least one candidate stays under it. 0 disables the filter.
	MaxCloudCover float64
	// Now anchors scene-age and seasonal calculations. Zero means
	// time.Now().UTC(); tests pass a fixed value.
	Now time.Time
}

// Analysis is the engine's output, built once per call and returned
// unchanged to the caller for serialization.
type Analysis struct {
	SceneID         string           `json:"scene_id"`
	CapturedAt      time.Time        `json:"captured_at"`
	Location        Location         `json:"location"`
	Indices         SpectralIndices  `json:"indices"`
	Moisture        Moisture         `json:"moisture"`
	Composition     Composition      `json:"composition"`
	Temperature     Temperature      `json:"temperature"`
	Confidence      Confidence       `json:"confidence"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Analyze runs the full inference pipeline over the candidate scenes.
// It is a pure function of its arguments: no I/O, no shared state, safe
// to call concurrently.
func Analyze(scenes []Scene, loc Location, cfg Config) (*Analysis, error) {
	if len(scenes) == 0 {
		return nil, ErrNoScenes
	}

	now := cfg.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	candidates := scenes
	if cfg.MaxCloudCover > 0 {
		clear := make([]Scene, 0, len(scenes))
		for _, s := range scenes {
			if s.CloudCover <= cfg.MaxCloudCover {
				clear = append(clear, s)
			}
		}
		// When everything is cloudier than the limit, analyze anyway;
		// NoData is reserved for an empty input.
		if len(clear) > 0 {
			candidates = clear
		}
	}

	scene, err := SelectBestScene(candidates)
	if err != nil {
		return nil, err
	}

	indices := ComputeIndices(scene.Bands)
	moisture := EstimateMoisture(scene.Bands, indices, loc)
	composition := EstimateComposition(scene.Bands, loc)
	temperature := EstimateTemperature(scene.Bands, loc, scene.CapturedAt)
	confidence := ScoreConfidence(scene, len(scenes), now)

	return &Analysis{
		SceneID:         scene.ID,
		CapturedAt:      scene.CapturedAt,
		Location:        loc,
		Indices:         indices,
		Moisture:        moisture,
		Composition:     composition,
		Temperature:     temperature,
		Confidence:      confidence,
		Recommendations: GenerateRecommendations(moisture, composition, indices, loc, now),
	}, nil
}
