package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/terra-guardian/terra-guardian-api-poc/internal/properties"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/scenes"
)

// ListCatalogs shows the scene catalogs under data/catalogs with a
// per-catalog scene count.
func ListCatalogs() {
	catalogFolderPath := fmt.Sprintf("%s/data/catalogs", properties.RootPath())
	files, err := os.ReadDir(catalogFolderPath)
	if err != nil {
		PrintError(fmt.Sprintf("Error reading catalogs folder: %s", err.Error()))
		return
	}

	PrintWarning("To add a new catalog, add its '.csv' file at 'data/catalogs' folder.")

	fmt.Printf("\n%sAvailable catalogs:%s\n", ColorGreen, ColorReset)
	found := false
	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".csv") {
			continue
		}
		found = true

		loaded, err := scenes.LoadCatalog(fmt.Sprintf("%s/%s", catalogFolderPath, file.Name()))
		if err != nil {
			fmt.Printf("%s- %s (unreadable: %s)%s\n", ColorRed, file.Name(), err.Error(), ColorReset)
			continue
		}
		fmt.Printf("%s- %s (%d scenes)%s\n", ColorGreen, strings.TrimSuffix(file.Name(), ".csv"), len(loaded), ColorReset)
	}
	if !found {
		fmt.Printf("%s- none%s\n", ColorYellow, ColorReset)
	}
}
