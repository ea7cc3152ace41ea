package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/terra-guardian/terra-guardian-api-poc/internal/properties"
)

// Colors for consistent UI
const (
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorReset  = "\033[0m"
)

// PrintWarning displays a warning message with consistent formatting
func PrintWarning(message string) {
	fmt.Printf("%s\nWarning:%s\n", ColorYellow, ColorReset)
	fmt.Printf("%s%s%s\n", ColorYellow, message, ColorReset)
}

// PrintError displays an error message with consistent formatting
func PrintError(message string) {
	fmt.Printf("\n%sError: %s%s\n", ColorRed, message, ColorReset)
}

// PrintSuccess displays a success message with consistent formatting
func PrintSuccess(message string) {
	fmt.Printf("\n%s%s%s\n", ColorGreen, message, ColorReset)
}

// PrintInfo displays an info message with consistent formatting
func PrintInfo(message string) {
	fmt.Printf("%s%s%s", ColorBlue, message, ColorReset)
}

// ReadString reads a string from stdin with trimming
func ReadString(prompt string) string {
	reader := bufio.NewReader(os.Stdin)
	PrintInfo(prompt)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// ReadInt reads an integer from stdin with validation
func ReadInt(prompt string, min, max int) (int, error) {
	input := ReadString(prompt)

	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", input)
	}

	if value < min || value > max {
		return 0, fmt.Errorf("value must be between %d and %d", min, max)
	}

	return value, nil
}

// ReadFloat reads a float from stdin with range validation
func ReadFloat(prompt string, min, max float64) (float64, error) {
	input := ReadString(prompt)

	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", input)
	}

	if value < min || value > max {
		return 0, fmt.Errorf("value must be between %g and %g", min, max)
	}

	return value, nil
}

// ReadDate reads a date from stdin with validation
func ReadDate(prompt string) (time.Time, error) {
	input := ReadString(prompt)
	if input == "today" {
		return time.Now().UTC(), nil
	}
	date, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s. Please use YYYY-MM-DD", input)
	}
	return date, nil
}

// ReadCoordinates reads a latitude/longitude pair
func ReadCoordinates() (float64, float64, error) {
	latitude, err := ReadFloat("Enter the latitude (-90 to 90): ", -90, 90)
	if err != nil {
		return 0, 0, err
	}
	longitude, err := ReadFloat("Enter the longitude (-180 to 180): ", -180, 180)
	if err != nil {
		return 0, 0, err
	}
	return latitude, longitude, nil
}

// SelectCatalog lists the scene catalogs under data/catalogs and
// returns the chosen file path. An empty choice means synthetic
// imagery.
func SelectCatalog() (string, error) {
	catalogFolderPath := fmt.Sprintf("%s/data/catalogs/", properties.RootPath())

	catalogFiles, err := os.ReadDir(catalogFolderPath)
	if err != nil || len(catalogFiles) == 0 {
		PrintWarning("No scene catalogs found; synthetic imagery will be used.")
		return "", nil
	}

	fmt.Printf("%s\nAvailable catalogs:%s\n", ColorGreen, ColorReset)
	for i, file := range catalogFiles {
		fmt.Printf("%s%d. %s%s\n", ColorGreen, i+1, file.Name(), ColorReset)
	}
	fmt.Printf("%s0. Use synthetic imagery%s\n", ColorGreen, ColorReset)

	choice, err := ReadInt("Enter the number of the catalog you want to use: ", 0, len(catalogFiles))
	if err != nil {
		return "", err
	}
	if choice == 0 {
		return "", nil
	}

	selected := catalogFiles[choice-1].Name()
	fmt.Printf("%sYou selected the catalog: %s%s\n", ColorGreen, selected, ColorReset)

	return catalogFolderPath + selected, nil
}
