package ui

import (
	"fmt"

	"github.com/terra-guardian/terra-guardian-api-poc/internal/properties"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/scenes"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/soil"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/utils"
)

// SyntheticPreview generates the synthetic scenes a location would get
// as fallback and prints their headline readings.
func SyntheticPreview() {
	latitude, longitude, err := ReadCoordinates()
	if err != nil {
		PrintError(err.Error())
		return
	}

	date, err := ReadDate("Enter the end date (YYYY-MM-DD or 'today'): ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	count, err := ReadInt("Enter the number of scenes to generate (1-12): ", 1, 12)
	if err != nil {
		PrintError(err.Error())
		return
	}

	loc := soil.Location{Latitude: latitude, Longitude: longitude}
	generated := scenes.NewGenerator(properties.SyntheticSeed()).Scenes(loc, date, count, 7)

	fmt.Printf("%s\nSynthetic scenes (seed %d):%s\n", ColorGreen, properties.SyntheticSeed(), ColorReset)
	for _, captured := range utils.GetSortedKeys(generated, true) {
		scene := generated[captured]
		indices := soil.ComputeIndices(scene.Bands)
		fmt.Printf("%s- %s | %s | cloud %.1f%% | NDVI %.3f | NDMI %.3f%s\n",
			ColorGreen, scene.ID, captured.Format("2006-01-02"), scene.CloudCover, indices.NDVI, indices.NDMI, ColorReset)
	}
}
