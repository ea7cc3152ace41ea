package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/terra-guardian/terra-guardian-api-poc/internal/delivery"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/notification"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/properties"
	"github.com/terra-guardian/terra-guardian-api-poc/output"
)

// RenderMoistureMap estimates per-pixel moisture over a multiband
// GeoTIFF from the data/images folder and renders it as a heat map.
func RenderMoistureMap() {
	PrintWarning("The input should be a multiband '.tiff' present in data/images folder (eleven reflectance bands plus cloud).")

	imageFolderPath := fmt.Sprintf("%s/data/images/", properties.RootPath())
	imageFiles, err := os.ReadDir(imageFolderPath)
	if err != nil {
		PrintError(fmt.Sprintf("Error reading image folder: %s", err.Error()))
		return
	}
	if len(imageFiles) == 0 {
		PrintError("No tiff images found in the image folder.")
		return
	}

	fmt.Printf("%s\nAvailable images:%s\n", ColorGreen, ColorReset)
	for i, file := range imageFiles {
		fmt.Printf("%s%d. %s%s\n", ColorGreen, i+1, file.Name(), ColorReset)
	}

	choice, err := ReadInt("Enter the number of the image you want to render: ", 1, len(imageFiles))
	if err != nil {
		PrintError(err.Error())
		return
	}
	selectedImage := imageFiles[choice-1].Name()

	capturedAt, err := ReadDate("Enter the capture date (YYYY-MM-DD or 'today'): ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	grid, err := delivery.BuildMoistureGrid(imageFolderPath+selectedImage, capturedAt)
	if err != nil {
		PrintError(fmt.Sprintf("Error building moisture grid: %s", err.Error()))
		notification.SendDiscordErrorNotification(fmt.Sprintf("Terra Guardian CLI\n\nError building moisture grid: %s", err.Error()))
		return
	}

	name := fmt.Sprintf("moisture_%s_%s", strings.TrimSuffix(selectedImage, ".tiff"), capturedAt.Format("2006-01-02"))
	outputPath, err := output.CreateMoistureMapImage(grid, name)
	if err != nil {
		PrintError(fmt.Sprintf("Error creating moisture map: %s", err.Error()))
		return
	}

	PrintSuccess(fmt.Sprintf("Moisture map rendered!\n Scene cloud cover: %.1f%%\n Resultant image located at: %s", grid.Scene.CloudCover, outputPath))
	notification.SendDiscordSuccessNotification(fmt.Sprintf("Terra Guardian CLI\n\nMoisture map rendered!\nResultant image located at: %s", outputPath))
}
