package scenes

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/terra-guardian/terra-guardian-api-poc/internal/soil"
)

// Generator synthesizes plausible Sentinel-2 style readings for use
// when no real imagery covers the requested window. It owns its random
// source so a fixed seed reproduces the exact same scenes; nothing in
// the estimators ever touches it.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Scenes produces count observations ending at end, spaced spacingDays
// apart, keyed by capture time (most maps in this codebase key imagery
// by date).
func (g *Generator) Scenes(loc soil.Location, end time.Time, count, spacingDays int) map[time.Time]soil.Scene {
	scenes := make(map[time.Time]soil.Scene, count)
	for i := 0; i < count; i++ {
		capturedAt := end.AddDate(0, 0, -i*spacingDays)
		scenes[capturedAt] = g.scene(loc, capturedAt, i)
	}
	return scenes
}

func (g *Generator) scene(loc soil.Location, capturedAt time.Time, seq int) soil.Scene {
	// Climate tint: tropics read wetter (higher NIR, lower SWIR),
	// high latitudes drier vegetation signal; summer greens the NIR.
	absLat := math.Abs(loc.Latitude)
	wetness := clampUnit(0.5 - absLat/150)
	month := float64(capturedAt.Month())
	greenness := clampUnit(0.4 + 0.2*math.Sin((month-3)*math.Pi/6))

	blue := g.jitter(0.06, 0.02)
	green := g.jitter(0.09, 0.02)
	red := g.jitter(0.16-0.08*greenness, 0.02)
	nir := g.jitter(0.18+0.25*greenness, 0.03)
	swir1 := g.jitter(0.28-0.15*wetness, 0.03)
	swir2 := g.jitter(0.22-0.12*wetness, 0.03)

	return soil.Scene{
		ID:         fmt.Sprintf("SYNTH_%s_%02d", capturedAt.Format("20060102"), seq),
		CapturedAt: capturedAt,
		CloudCover: math.Round(g.rng.Float64()*60*10) / 10,
		Mission:    "synthetic",
		Level:      "simulated",
		Bands: soil.BandReading{
			soil.BandBlue:        blue,
			soil.BandGreen:       green,
			soil.BandRed:         red,
			soil.BandRedEdge1:    g.jitter((red+nir)/2, 0.02),
			soil.BandRedEdge2:    g.jitter(nir*0.8, 0.02),
			soil.BandRedEdge3:    g.jitter(nir*0.9, 0.02),
			soil.BandNIR:         nir,
			soil.BandNarrowNIR:   g.jitter(nir, 0.01),
			soil.BandWaterVapour: g.jitter(0.05, 0.01),
			soil.BandSWIR1:       swir1,
			soil.BandSWIR2:       swir2,
		},
	}
}

func (g *Generator) jitter(base, spread float64) float64 {
	v := base + (g.rng.Float64()*2-1)*spread
	return math.Round(clampUnit(v)*10000) / 10000
}

func clampUnit(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
