package soil

import "math"

// savi soil brightness correction constant
const saviL = 0.5

// SpectralIndices are the normalized indices derived from a single
// scene's band reading. Every value is clamped to [-1,1].
type SpectralIndices struct {
	NDVI float64 `json:"ndvi"`
	EVI  float64 `json:"evi"`
	NDMI float64 `json:"ndmi"`
	BSI  float64 `json:"bsi"`
	SAVI float64 `json:"savi"`
}

// ComputeIndices derives the spectral indices from a band reading.
// Degenerate arithmetic (zero denominator, NaN, infinity) evaluates to 0.
func ComputeIndices(bands BandReading) SpectralIndices {
	blue := bands.Value(BandBlue)
	red := bands.Value(BandRed)
	nir := bands.Value(BandNIR)
	swir1 := bands.Value(BandSWIR1)

	return SpectralIndices{
		NDVI: normalizedDifference(nir, red),
		EVI:  clampIndex(safeRatio(2.5*(nir-red), nir+6*red-7.5*blue+1)),
		NDMI: normalizedDifference(nir, swir1),
		BSI:  normalizedDifference(swir1+red, nir+blue),
		SAVI: clampIndex(safeRatio(nir-red, nir+red+saviL) * (1 + saviL)),
	}
}

func normalizedDifference(a, b float64) float64 {
	return clampIndex(safeRatio(a-b, a+b))
}

func clampIndex(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return clamp(v, -1, 1)
}
