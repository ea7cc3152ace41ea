package soil

import "math"

type MoistureLevel string

const (
	MoistureVeryLow  MoistureLevel = "very_low"
	MoistureLow      MoistureLevel = "low"
	MoistureModerate MoistureLevel = "moderate"
	MoistureHigh     MoistureLevel = "high"
	MoistureVeryHigh MoistureLevel = "very_high"
)

var moistureDescriptions = map[MoistureLevel]string{
	MoistureVeryLow:  "Severely dry soil. Vegetation is under acute water stress.",
	MoistureLow:      "Dry soil with limited plant-available water.",
	MoistureModerate: "Adequate soil moisture for most established crops.",
	MoistureHigh:     "Well watered soil, near field capacity.",
	MoistureVeryHigh: "Saturated soil. Waterlogging and root asphyxia are possible.",
}

// Moisture is the estimated soil water status. NDMI carries the raw
// driving index (3 decimals) so results can be audited.
type Moisture struct {
	Percentage  float64       `json:"percentage"`
	Level       MoistureLevel `json:"level"`
	Description string        `json:"description"`
	NDMI        float64       `json:"ndmi"`
}

// EstimateMoisture maps NDMI through a four-segment piecewise-linear
// scale, refines it with the SWIR1/SWIR2 ratio and applies a small
// latitude correction. The segmentation reflects that moisture response
// saturates at the wet and dry extremes; a single linear map misses
// both tails.
func EstimateMoisture(bands BandReading, indices SpectralIndices, loc Location) Moisture {
	ndmi := indices.NDMI

	var pct float64
	switch {
	case ndmi > 0.4:
		pct = 70 + (ndmi-0.4)*50
	case ndmi > 0.1:
		pct = 40 + (ndmi-0.1)*100
	case ndmi > -0.1:
		pct = 15 + (ndmi+0.1)*125
	default:
		pct = math.Max(0, (ndmi+0.3)*50) + 5
	}

	// SWIR ratio refinement stays a bounded nudge; it must never
	// dominate the NDMI signal.
	swir2 := bands.Value(BandSWIR2)
	if swir2 > 0 {
		factor := 0.9 + (bands.Value(BandSWIR1)/swir2-1)*0.1
		pct *= clamp(factor, 0.8, 1.1)
	}

	absLat := math.Abs(loc.Latitude)
	switch {
	case absLat < 23.5:
		pct *= 1.05
	case absLat > 60:
		pct *= 0.95
	}

	pct = round1(clamp(pct, 5, 95))
	level := moistureLevelFor(pct)

	return Moisture{
		Percentage:  pct,
		Level:       level,
		Description: moistureDescriptions[level],
		NDMI:        round3(ndmi),
	}
}

func moistureLevelFor(pct float64) MoistureLevel {
	switch {
	case pct < 15:
		return MoistureVeryLow
	case pct < 30:
		return MoistureLow
	case pct < 60:
		return MoistureModerate
	case pct < 80:
		return MoistureHigh
	default:
		return MoistureVeryHigh
	}
}
