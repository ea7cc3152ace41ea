package soil

import "math"

// Band identifies a Sentinel-2 style spectral band.
type Band string

const (
	BandBlue        Band = "B02"
	BandGreen       Band = "B03"
	BandRed         Band = "B04"
	BandRedEdge1    Band = "B05"
	BandRedEdge2    Band = "B06"
	BandRedEdge3    Band = "B07"
	BandNIR         Band = "B08"
	BandNarrowNIR   Band = "B8A"
	BandWaterVapour Band = "B09"
	BandSWIR1       Band = "B11"
	BandSWIR2       Band = "B12"
)

// BandReading maps bands to surface reflectance in [0,1].
// A missing band reads as 0, which every consumer treats as a
// degenerate value rather than an error.
type BandReading map[Band]float64

func (r BandReading) Value(b Band) float64 {
	return r[b]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// safeRatio divides num by den, evaluating to 0 when the result would
// be NaN or infinite. Reflectance noise makes zero denominators routine,
// so this is policy, not error handling.
func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	v := num / den
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
