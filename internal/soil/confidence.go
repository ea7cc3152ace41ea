package soil

import "time"

// Confidence is the qualitative trust label for an analysis.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ScoreConfidence grades the chosen scene: cloud cover weighs heaviest,
// then having fewer than two candidates, then scene age (the >30d and
// >90d penalties stack).
func ScoreConfidence(scene Scene, sceneCount int, now time.Time) Confidence {
	score := 100.0
	score -= scene.CloudCover * 2

	if sceneCount < 2 {
		score -= 20
	}

	ageDays := now.Sub(scene.CapturedAt).Hours() / 24
	if ageDays > 30 {
		score -= 10
	}
	if ageDays > 90 {
		score -= 20
	}

	score = clamp(score, 10, 100)

	switch {
	case score > 80:
		return ConfidenceHigh
	case score > 60:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
