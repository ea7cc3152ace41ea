package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/delivery"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/properties"
)

const moistureCellSize = 4

// moistureColor maps a moisture percentage onto a dry-brown to
// deep-blue gradient.
func moistureColor(percentage float64) (r, g, b float64) {
	t := percentage / 100
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	// 0% -> brown (0.55, 0.40, 0.20), 100% -> blue (0.05, 0.30, 0.80)
	r = 0.55 + (0.05-0.55)*t
	g = 0.40 + (0.30-0.40)*t
	b = 0.20 + (0.80-0.20)*t
	return r, g, b
}

// CreateMoistureMapImage renders a per-pixel moisture grid as a PNG
// heat map with a small legend strip under it.
func CreateMoistureMapImage(grid *delivery.MoistureGrid, name string) (string, error) {
	if grid == nil || len(grid.Pixels) == 0 {
		return "", fmt.Errorf("no moisture pixels provided")
	}

	resultPath := filepath.Join(properties.RootPath(), "data", "result")
	if err := os.MkdirAll(resultPath, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create result folder: %w", err)
	}
	outputPath := filepath.Join(resultPath, name+".png")

	legendHeight := 40
	width := grid.Width * moistureCellSize
	height := grid.Height*moistureCellSize + legendHeight

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for _, pixel := range grid.Pixels {
		if pixel.X < 0 || pixel.X >= grid.Width || pixel.Y < 0 || pixel.Y >= grid.Height {
			continue
		}
		dc.SetRGB(moistureColor(pixel.Percentage))
		dc.DrawRectangle(
			float64(pixel.X*moistureCellSize),
			float64(pixel.Y*moistureCellSize),
			moistureCellSize, moistureCellSize)
		dc.Fill()
	}

	// Legend: a horizontal gradient bar from 0% to 100%.
	barY := float64(grid.Height*moistureCellSize + 10)
	for x := 0; x < width; x++ {
		dc.SetRGB(moistureColor(float64(x) / float64(width) * 100))
		dc.DrawRectangle(float64(x), barY, 1, 15)
		dc.Fill()
	}
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored("0%", 2, barY+25, 0, 0.5)
	dc.DrawStringAnchored("100%", float64(width)-2, barY+25, 1, 0.5)

	if err := dc.SavePNG(outputPath); err != nil {
		return "", fmt.Errorf("failed to save moisture map: %w", err)
	}

	fmt.Println("Moisture map created successfully at", outputPath)
	return outputPath, nil
}
