package soil

import "math"

type Fertility struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

// Composition is the estimated soil make-up derived from reflectance
// ratios. Clay+sand+silt is not renormalized to 100: when the clay and
// sand proxies already exceed 100 the silt share floors at 0 and the
// total overshoots. Known approximation of the proxy model.
type Composition struct {
	Clay          float64   `json:"clay"`
	Sand          float64   `json:"sand"`
	Silt          float64   `json:"silt"`
	OrganicMatter float64   `json:"organic_matter"`
	IronOxide     float64   `json:"iron_oxide"`
	PH            float64   `json:"ph"`
	SoilType      string    `json:"soil_type"`
	Description   string    `json:"description"`
	Fertility     Fertility `json:"fertility"`
}

var soilTypeDescriptions = map[string]string{
	"Clay":       "Heavy, nutrient-retentive soil that drains slowly and compacts easily.",
	"Sand":       "Light, fast-draining soil with low nutrient and water retention.",
	"Silt":       "Fine, fertile soil that holds moisture well but is prone to crusting.",
	"Clay Loam":  "Balanced heavy loam with good nutrient retention and moderate drainage.",
	"Sandy Loam": "Light loam that warms early and drains freely, needs organic matter.",
	"Loam":       "Well balanced soil suited to a wide range of crops.",
}

// EstimateComposition derives texture, organic matter, iron oxide, pH
// and a fertility score from band ratios.
func EstimateComposition(bands BandReading, loc Location) Composition {
	red := bands.Value(BandRed)
	blue := bands.Value(BandBlue)
	swir1 := bands.Value(BandSWIR1)
	swir2 := bands.Value(BandSWIR2)

	swirRatio := safeRatio(swir1, swir2)

	clay := round1(clamp(swirRatio*40, 0, 100))
	sand := round1(clamp((2-swirRatio)*30, 0, 100))
	silt := round1(math.Max(0, 100-clay-sand))

	organicMatter := clamp((1-(red+swir1)/2)*8, 0, 15)
	ironOxide := clamp((safeRatio(red, blue)-1)*15, 0, 10)

	ph := 7.0 + safeRatio(swir1-red, swir1+red)*2
	if loc.Latitude > 50 {
		ph -= 0.5
	}
	if math.Abs(loc.Latitude) < 23.5 {
		ph += 0.3
	}
	ph = round1(clamp(ph, 4.0, 9.0))

	soilType := classifySoilType(clay, sand, silt)

	return Composition{
		Clay:          clay,
		Sand:          sand,
		Silt:          silt,
		OrganicMatter: round1(organicMatter),
		IronOxide:     round1(ironOxide),
		PH:            ph,
		SoilType:      soilType,
		Description:   soilTypeDescriptions[soilType],
		Fertility:     scoreFertility(clay, sand, organicMatter, ph),
	}
}

// classifySoilType returns the first matching category; the order of
// the checks is the classification contract.
func classifySoilType(clay, sand, silt float64) string {
	switch {
	case clay > 40:
		return "Clay"
	case sand > 70:
		return "Sand"
	case silt > 40:
		return "Silt"
	case clay > 25 && sand > 25:
		return "Clay Loam"
	case sand > 50:
		return "Sandy Loam"
	default:
		return "Loam"
	}
}

func scoreFertility(clay, sand, organicMatter, ph float64) Fertility {
	score := 50.0
	score += organicMatter * 5
	score += 20 - math.Abs(ph-6.75)*10
	if clay > 20 && clay < 50 && sand > 20 && sand < 60 {
		score += 15
	}
	score = round1(clamp(score, 0, 100))

	level := "low"
	switch {
	case score > 75:
		level = "high"
	case score > 50:
		level = "medium"
	}
	return Fertility{Score: score, Level: level}
}
