package delivery

import (
	"time"

	"github.com/terra-guardian/terra-guardian-api-poc/internal/scenes"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/soil"
)

// MoisturePixel is one rendered map cell: grid position plus the
// estimated moisture percentage at that pixel.
type MoisturePixel struct {
	X          int
	Y          int
	Latitude   float64
	Longitude  float64
	Percentage float64
}

// MoistureGrid holds the per-pixel moisture field of one raster scene.
type MoistureGrid struct {
	Scene  soil.Scene
	Width  int
	Height int
	Pixels []MoisturePixel
}

// BuildMoistureGrid loads a multiband GeoTIFF and estimates moisture
// at every pixel. Each pixel uses its own latitude for the geographic
// correction, so wide tiles stay consistent edge to edge.
func BuildMoistureGrid(tiffPath string, capturedAt time.Time) (*MoistureGrid, error) {
	raster, err := scenes.LoadRaster(tiffPath, capturedAt)
	if err != nil {
		return nil, err
	}

	grid := &MoistureGrid{
		Scene:  raster.Scene,
		Width:  raster.Width,
		Height: raster.Height,
		Pixels: make([]MoisturePixel, 0, len(raster.Pixels)),
	}
	for _, p := range raster.Pixels {
		indices := soil.ComputeIndices(p.Bands)
		loc := soil.Location{Latitude: p.Latitude, Longitude: p.Longitude}
		moisture := soil.EstimateMoisture(p.Bands, indices, loc)
		grid.Pixels = append(grid.Pixels, MoisturePixel{
			X:          p.X,
			Y:          p.Y,
			Latitude:   p.Latitude,
			Longitude:  p.Longitude,
			Percentage: moisture.Percentage,
		})
	}
	return grid, nil
}
