package soil

import (
	"testing"
	"time"
)

func TestEstimateTemperatureReference(t *testing.T) {
	bands := BandReading{BandSWIR1: 0.20, BandSWIR2: 0.15}
	loc := Location{Latitude: 36.7, Longitude: -119.8}
	captured := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	got := EstimateTemperature(bands, loc, captured)

	// 15 base + 10 seasonal (June peak) - 2.0 latitude + 1.0 surface.
	if got.Celsius != 24.0 {
		t.Fatalf("expected 24.0°C, got %f", got.Celsius)
	}
	if got.Fahrenheit != 75.2 {
		t.Fatalf("expected 75.2°F, got %f", got.Fahrenheit)
	}
	if got.Description != "mild" {
		t.Fatalf("expected mild, got %s", got.Description)
	}
	if got.Factors.Seasonal != 10.0 {
		t.Fatalf("expected seasonal factor 10.0, got %f", got.Factors.Seasonal)
	}
	if got.Factors.Latitude != -2.0 {
		t.Fatalf("expected latitude factor -2.0, got %f", got.Factors.Latitude)
	}
	if got.Factors.Surface != 1.0 {
		t.Fatalf("expected surface factor 1.0, got %f", got.Factors.Surface)
	}
}

func TestEstimateTemperatureSeasonalSwing(t *testing.T) {
	bands := BandReading{BandSWIR1: 0.2, BandSWIR2: 0.2}
	loc := Location{Latitude: 45}

	june := EstimateTemperature(bands, loc, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	december := EstimateTemperature(bands, loc, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))

	if june.Factors.Seasonal <= 0 {
		t.Fatalf("expected positive seasonal term in June, got %f", june.Factors.Seasonal)
	}
	if december.Factors.Seasonal >= 0 {
		t.Fatalf("expected negative seasonal term in December, got %f", december.Factors.Seasonal)
	}
	if june.Celsius <= december.Celsius {
		t.Fatalf("June (%f) should be warmer than December (%f)", june.Celsius, december.Celsius)
	}
}

func TestTemperatureDescriptionBands(t *testing.T) {
	cases := []struct {
		celsius float64
		want    string
	}{
		{-3, "very cold"},
		{4.9, "very cold"},
		{5, "cool"},
		{14.9, "cool"},
		{20, "mild"},
		{30, "warm"},
		{35, "hot"},
		{41, "hot"},
	}

	for _, tc := range cases {
		if got := temperatureDescription(tc.celsius); got != tc.want {
			t.Fatalf("%.1f°C: expected %s, got %s", tc.celsius, tc.want, got)
		}
	}
}
