package soil

import "testing"

// neutralBands pins the SWIR refinement at its ratio-1 factor (0.9) so
// tests isolate the NDMI mapping.
var neutralBands = BandReading{BandSWIR1: 0.2, BandSWIR2: 0.2}

func moistureAt(ndmi, lat float64) Moisture {
	return EstimateMoisture(neutralBands, SpectralIndices{NDMI: ndmi}, Location{Latitude: lat})
}

func TestEstimateMoistureSegments(t *testing.T) {
	cases := []struct {
		name    string
		ndmi    float64
		wantPct float64
		want    MoistureLevel
	}{
		{"floor", -0.5, 5, MoistureVeryLow},
		{"dry_segment_top", -0.12, 12.6, MoistureVeryLow},
		{"transition_low", 0.0, 24.8, MoistureLow},
		{"moderate", 0.2, 45, MoistureModerate},
		{"high", 0.45, 65.3, MoistureHigh},
		{"very_high", 0.9, 85.5, MoistureVeryHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := moistureAt(tc.ndmi, 40)
			if got.Percentage != tc.wantPct {
				t.Fatalf("ndmi %.2f: expected %.1f%%, got %.1f%%", tc.ndmi, tc.wantPct, got.Percentage)
			}
			if got.Level != tc.want {
				t.Fatalf("ndmi %.2f: expected level %s, got %s", tc.ndmi, tc.want, got.Level)
			}
			if got.Description == "" {
				t.Fatal("expected a level description")
			}
		})
	}
}

func TestEstimateMoistureBounds(t *testing.T) {
	for _, ndmi := range []float64{-1, -0.6, -0.1, 0, 0.1, 0.4, 0.7, 1} {
		for _, lat := range []float64{0, 10, 45, 70, -80} {
			got := moistureAt(ndmi, lat)
			if got.Percentage < 5 || got.Percentage > 95 {
				t.Fatalf("moisture out of [5,95] at ndmi=%.1f lat=%.0f: %f", ndmi, lat, got.Percentage)
			}
		}
	}
}

func TestEstimateMoistureMonotonicWithinSegments(t *testing.T) {
	segments := [][]float64{
		{-0.9, -0.6, -0.31, -0.2, -0.11},
		{-0.09, -0.05, 0, 0.05, 0.09},
		{0.11, 0.2, 0.3, 0.39},
		{0.41, 0.6, 0.8, 1.0},
	}

	for i, seg := range segments {
		prev := -1.0
		for _, ndmi := range seg {
			pct := moistureAt(ndmi, 40).Percentage
			if pct < prev {
				t.Fatalf("segment %d: moisture decreased at ndmi=%.2f (%.1f < %.1f)", i, ndmi, pct, prev)
			}
			prev = pct
		}
	}
}

func TestEstimateMoistureGeographicCorrection(t *testing.T) {
	temperate := moistureAt(0.2, 40).Percentage
	tropical := moistureAt(0.2, 10).Percentage
	polar := moistureAt(0.2, 65).Percentage

	if tropical <= temperate {
		t.Fatalf("tropical correction should raise moisture: %f <= %f", tropical, temperate)
	}
	if polar >= temperate {
		t.Fatalf("polar correction should lower moisture: %f >= %f", polar, temperate)
	}
}

func TestEstimateMoistureSWIRRefinementBounded(t *testing.T) {
	idx := SpectralIndices{NDMI: 0.2}
	loc := Location{Latitude: 40}

	// Zero SWIR2 is degenerate: no refinement, pure NDMI mapping (50%).
	raw := EstimateMoisture(BandReading{BandSWIR1: 0.9}, idx, loc).Percentage
	if raw != 50 {
		t.Fatalf("expected unrefined moisture 50, got %f", raw)
	}

	// Extreme SWIR ratios must stay a bounded nudge around the NDMI signal.
	extreme := EstimateMoisture(BandReading{BandSWIR1: 0.9, BandSWIR2: 0.05}, idx, loc).Percentage
	if extreme < raw*0.8-0.1 || extreme > raw*1.1+0.1 {
		t.Fatalf("SWIR refinement dominates the signal: %f vs raw %f", extreme, raw)
	}
}

func TestEstimateMoistureReportsRawNDMI(t *testing.T) {
	got := EstimateMoisture(neutralBands, SpectralIndices{NDMI: 0.111111}, Location{Latitude: 36.7})
	if got.NDMI != 0.111 {
		t.Fatalf("expected NDMI rounded to 3 decimals (0.111), got %f", got.NDMI)
	}
}
