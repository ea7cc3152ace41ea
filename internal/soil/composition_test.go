package soil

import (
	"math"
	"testing"
)

func TestEstimateCompositionReference(t *testing.T) {
	bands := BandReading{
		BandBlue:  0.08,
		BandRed:   0.12,
		BandNIR:   0.25,
		BandSWIR1: 0.20,
		BandSWIR2: 0.15,
	}

	got := EstimateComposition(bands, Location{Latitude: 36.7, Longitude: -119.8})

	if got.Clay != 53.3 {
		t.Fatalf("expected clay 53.3, got %f", got.Clay)
	}
	if got.Sand != 20.0 {
		t.Fatalf("expected sand 20.0, got %f", got.Sand)
	}
	if got.Silt != 26.7 {
		t.Fatalf("expected silt 26.7, got %f", got.Silt)
	}
	if got.SoilType != "Clay" {
		t.Fatalf("expected soil type Clay, got %s", got.SoilType)
	}
	if got.OrganicMatter != 6.7 {
		t.Fatalf("expected organic matter 6.7, got %f", got.OrganicMatter)
	}
	if got.IronOxide != 7.5 {
		t.Fatalf("expected iron oxide 7.5, got %f", got.IronOxide)
	}
	if got.PH != 7.5 {
		t.Fatalf("expected pH 7.5, got %f", got.PH)
	}
	if got.Fertility.Level != "high" {
		t.Fatalf("expected high fertility, got %s (score %f)", got.Fertility.Level, got.Fertility.Score)
	}
	if got.Description == "" {
		t.Fatal("expected a soil type description")
	}
}

func TestCompositionSiltIdentityAndBounds(t *testing.T) {
	readings := []BandReading{
		{BandRed: 0.12, BandBlue: 0.08, BandSWIR1: 0.20, BandSWIR2: 0.15},
		{BandRed: 0.5, BandBlue: 0.4, BandSWIR1: 0.9, BandSWIR2: 0.1},  // clay+sand overshoots 100
		{BandRed: 0.3, BandBlue: 0.3, BandSWIR1: 0.05, BandSWIR2: 0.9}, // sandy extreme
		{BandRed: 0.3, BandBlue: 0.3, BandSWIR1: 0.2, BandSWIR2: 0},    // degenerate ratio
	}

	for _, bands := range readings {
		got := EstimateComposition(bands, Location{Latitude: 40})

		for name, v := range map[string]float64{"clay": got.Clay, "sand": got.Sand, "silt": got.Silt} {
			if v < 0 || v > 100 {
				t.Fatalf("%s out of [0,100]: %f (bands %v)", name, v, bands)
			}
		}
		// Silt is exactly the floored remainder; totals above 100 are
		// accepted headroom, never renormalized.
		want := round1(math.Max(0, 100-got.Clay-got.Sand))
		if got.Silt != want {
			t.Fatalf("silt identity broken: got %f want %f", got.Silt, want)
		}
		if got.OrganicMatter < 0 || got.OrganicMatter > 15 {
			t.Fatalf("organic matter out of [0,15]: %f", got.OrganicMatter)
		}
		if got.IronOxide < 0 || got.IronOxide > 10 {
			t.Fatalf("iron oxide out of [0,10]: %f", got.IronOxide)
		}
		if got.PH < 4 || got.PH > 9 {
			t.Fatalf("pH out of [4,9]: %f", got.PH)
		}
		if got.Fertility.Score < 0 || got.Fertility.Score > 100 {
			t.Fatalf("fertility score out of [0,100]: %f", got.Fertility.Score)
		}
	}
}

func TestClassifySoilTypePriorityOrder(t *testing.T) {
	cases := []struct {
		name             string
		clay, sand, silt float64
		want             string
	}{
		{"clay_wins_first", 45, 75, 0, "Clay"},
		{"sand", 10, 75, 15, "Sand"},
		{"silt", 10, 30, 60, "Silt"},
		{"clay_loam", 30, 30, 40, "Clay Loam"},
		{"sandy_loam", 10, 55, 35, "Sandy Loam"},
		{"loam_default", 20, 40, 40, "Loam"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifySoilType(tc.clay, tc.sand, tc.silt); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestCompositionPHLatitudeAdjustments(t *testing.T) {
	bands := BandReading{BandRed: 0.12, BandBlue: 0.1, BandSWIR1: 0.20, BandSWIR2: 0.15}

	base := EstimateComposition(bands, Location{Latitude: 40}).PH
	north := EstimateComposition(bands, Location{Latitude: 55}).PH
	tropics := EstimateComposition(bands, Location{Latitude: 10}).PH

	if north != round1(base-0.5) {
		t.Fatalf("expected high-latitude pH %f, got %f", round1(base-0.5), north)
	}
	if tropics != round1(base+0.3) {
		t.Fatalf("expected tropical pH %f, got %f", round1(base+0.3), tropics)
	}
}

func TestScoreFertilityLevels(t *testing.T) {
	cases := []struct {
		name                     string
		clay, sand, om, ph       float64
		wantLevel                string
		wantAtLeast, wantAtMost  float64
	}{
		{"rich_loam", 30, 40, 6, 6.75, "high", 75.1, 100},
		{"average", 10, 70, 2, 6.0, "medium", 50.1, 75},
		{"poor_acidic", 5, 80, 0, 4.0, "low", 0, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scoreFertility(tc.clay, tc.sand, tc.om, tc.ph)
			if got.Level != tc.wantLevel {
				t.Fatalf("expected level %s, got %s (score %f)", tc.wantLevel, got.Level, got.Score)
			}
			if got.Score < tc.wantAtLeast || got.Score > tc.wantAtMost {
				t.Fatalf("score %f outside [%f,%f]", got.Score, tc.wantAtLeast, tc.wantAtMost)
			}
		})
	}
}
