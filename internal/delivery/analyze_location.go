package delivery

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/cache"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/properties"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/scenes"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/soil"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/utils"
)

var validate = validator.New()

// Request describes one soil analysis to run. Coordinate and date
// validation happens here, on the orchestration side; the engine
// assumes validated input.
type Request struct {
	Latitude  float64 `validate:"min=-90,max=90"`
	Longitude float64 `validate:"min=-180,max=180"`

	// Date anchors the scene window, scene-age scoring and seasonal
	// advice. Zero means now.
	Date time.Time

	// CatalogFile is a scene catalog CSV. Empty, or a catalog with no
	// scenes in the window, falls back to synthetic imagery.
	CatalogFile string
	WindowDays  int
	Seed        int64
}

// AnalyzeLocation loads candidate scenes for the request and runs the
// inference engine over them. Results are cached on disk when a root
// path is configured.
func AnalyzeLocation(req Request) (*soil.Analysis, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid analysis request: %w", err)
	}
	if req.Date.IsZero() {
		req.Date = time.Now().UTC()
	}
	if req.WindowDays <= 0 {
		req.WindowDays = properties.SceneWindowDays()
	}
	if req.Seed == 0 {
		req.Seed = properties.SyntheticSeed()
	}

	loc := soil.Location{Latitude: req.Latitude, Longitude: req.Longitude}

	var resultCache *cache.FileCache[soil.Analysis]
	var cacheKey string
	if properties.RootPath() != "" {
		resultCache = cache.NewFileCache[soil.Analysis](
			filepath.Join(properties.RootPath(), "data", "cache", "analyses"), 24*time.Hour)
		cacheKey = resultCache.GenerateKey(
			req.Latitude, req.Longitude, req.Date.Format("2006-01-02"),
			req.CatalogFile, req.WindowDays, req.Seed)
		if hit, ok := resultCache.Get(cacheKey); ok {
			return &hit, nil
		}
	}

	candidates, err := loadCandidates(req, loc)
	if err != nil {
		return nil, err
	}

	result, err := soil.Analyze(candidates, loc, soil.Config{
		MaxCloudCover: properties.MaxCloudCover(),
		Now:           req.Date,
	})
	if err != nil {
		return nil, err
	}

	if resultCache != nil {
		if err := resultCache.Set(cacheKey, *result); err != nil {
			fmt.Printf("\033[33mFailed to cache analysis result: %s\033[0m\n", err.Error())
		}
	}

	return result, nil
}

func loadCandidates(req Request, loc soil.Location) ([]soil.Scene, error) {
	if req.CatalogFile != "" {
		all, err := scenes.LoadCatalog(req.CatalogFile)
		if err != nil {
			return nil, err
		}
		windowed := scenes.FilterWindow(all, req.Date.AddDate(0, 0, -req.WindowDays), req.Date)
		if len(windowed) > 0 {
			return windowed, nil
		}
		fmt.Printf("\033[33mNo catalog scenes within %d days of %s; falling back to synthetic imagery.\033[0m\n",
			req.WindowDays, req.Date.Format("2006-01-02"))
	}

	generated := scenes.NewGenerator(req.Seed).Scenes(loc, req.Date, 3, 7)
	ordered := make([]soil.Scene, 0, len(generated))
	for _, date := range utils.GetSortedKeys(generated, true) {
		ordered = append(ordered, generated[date])
	}
	return ordered, nil
}
