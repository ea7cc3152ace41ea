package delivery

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/gocarina/gocsv"
	"github.com/schollz/progressbar/v3"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/soil"
)

const batchWorkers = 8

// BatchRow is one line of a batch input CSV.
type BatchRow struct {
	Name      string  `csv:"name"`
	Latitude  float64 `csv:"latitude"`
	Longitude float64 `csv:"longitude"`
}

// BatchResult pairs a row with its analysis. Err is set when that row
// failed; the rest of the batch still completes.
type BatchResult struct {
	Name      string
	Latitude  float64
	Longitude float64
	Analysis  *soil.Analysis
	Err       error
}

// AnalyzeBatch runs the engine over every row of a locations CSV.
// Results keep the input order regardless of worker scheduling, and
// each row gets its own synthetic seed so reruns are reproducible.
func AnalyzeBatch(inputPath string, date time.Time, catalogFile string, seed int64) ([]BatchResult, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch input %s: %w", inputPath, err)
	}
	defer file.Close()

	var rows []BatchRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse batch input %s: %w", inputPath, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("batch input %s has no rows", inputPath)
	}

	results := make([]BatchResult, len(rows))
	bar := progressbar.Default(int64(len(rows)), "Analyzing locations")
	var mu sync.Mutex

	wp := workerpool.New(batchWorkers)
	for i, row := range rows {
		i, row := i, row
		wp.Submit(func() {
			analysis, err := AnalyzeLocation(Request{
				Latitude:    row.Latitude,
				Longitude:   row.Longitude,
				Date:        date,
				CatalogFile: catalogFile,
				Seed:        seed + int64(i),
			})
			mu.Lock()
			results[i] = BatchResult{
				Name:      row.Name,
				Latitude:  row.Latitude,
				Longitude: row.Longitude,
				Analysis:  analysis,
				Err:       err,
			}
			mu.Unlock()
			bar.Add(1)
		})
	}
	wp.StopWait()

	return results, nil
}
