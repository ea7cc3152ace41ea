package soil

import (
	"math"
	"time"
)

// TemperatureFactors reports the individual contributions so an
// estimate can be explained and tested term by term.
type TemperatureFactors struct {
	Seasonal float64 `json:"seasonal"`
	Latitude float64 `json:"latitude"`
	Surface  float64 `json:"surface"`
}

type Temperature struct {
	Celsius     float64            `json:"celsius"`
	Fahrenheit  float64            `json:"fahrenheit"`
	Description string             `json:"description"`
	Factors     TemperatureFactors `json:"factors"`
}

const temperatureBase = 15.0

// EstimateTemperature derives a surface temperature from the SWIR bands,
// the capture month and the latitude.
func EstimateTemperature(bands BandReading, loc Location, capturedAt time.Time) Temperature {
	month := float64(capturedAt.Month())

	factors := TemperatureFactors{
		Seasonal: round1(10 * math.Sin((month-3)*math.Pi/6)),
		Latitude: round1((30 - math.Abs(loc.Latitude)) * 0.3),
		Surface:  round1((bands.Value(BandSWIR1) - bands.Value(BandSWIR2)) * 20),
	}

	celsius := round1(temperatureBase + factors.Seasonal + factors.Latitude + factors.Surface)

	return Temperature{
		Celsius:     celsius,
		Fahrenheit:  round1(celsius*9/5 + 32),
		Description: temperatureDescription(celsius),
		Factors:     factors,
	}
}

func temperatureDescription(celsius float64) string {
	switch {
	case celsius < 5:
		return "very cold"
	case celsius < 15:
		return "cool"
	case celsius < 25:
		return "mild"
	case celsius < 35:
		return "warm"
	default:
		return "hot"
	}
}
