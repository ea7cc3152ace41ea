package scenes

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/airbusgeo/godal"
	"github.com/montanaflynn/stats"
	"github.com/terra-guardian/terra-guardian-api-poc/internal/soil"
	"golang.org/x/sync/errgroup"
)

// rasterBandOrder is the band layout of our processed GeoTIFFs: the
// eleven reflectance bands followed by a cloud-probability band, the
// same order the acquisition evalscript requests them in.
var rasterBandOrder = []soil.Band{
	soil.BandBlue,
	soil.BandGreen,
	soil.BandRed,
	soil.BandRedEdge1,
	soil.BandRedEdge2,
	soil.BandRedEdge3,
	soil.BandNIR,
	soil.BandNarrowNIR,
	soil.BandWaterVapour,
	soil.BandSWIR1,
	soil.BandSWIR2,
}

// PixelSample is one raster pixel with its geographic position and
// full band reading.
type PixelSample struct {
	X, Y      int
	Latitude  float64
	Longitude float64
	Bands     soil.BandReading
}

// RasterScene is a GeoTIFF reduced to a scene-level reading plus the
// per-pixel grid for map rendering.
type RasterScene struct {
	Scene  soil.Scene
	Width  int
	Height int
	Pixels []PixelSample
}

// LoadRaster reads a multiband GeoTIFF and aggregates each band to a
// scene-level mean reflectance; the trailing cloud band mean becomes
// the scene cloud cover.
func LoadRaster(path string, capturedAt time.Time) (*RasterScene, error) {
	ds, err := godal.Open(path, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
		if ec == godal.CE_Warning {
			return nil
		}
		return fmt.Errorf("gdal error %d: %s", code, msg)
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to open raster %s: %w", path, err)
	}
	defer ds.Close()

	bands := ds.Bands()
	if len(bands) < len(rasterBandOrder)+1 {
		return nil, fmt.Errorf("raster %s has %d bands, expected %d reflectance bands plus cloud", path, len(bands), len(rasterBandOrder))
	}

	width := ds.Structure().SizeX
	height := ds.Structure().SizeY

	var mu sync.Mutex
	bandData := make(map[soil.Band][]float64, len(rasterBandOrder))
	var cloudData []float64

	var eg errgroup.Group
	for i, name := range rasterBandOrder {
		band := bands[i]
		eg.Go(func() error {
			data, err := readBand(band, width, height)
			if err != nil {
				return err
			}
			mu.Lock()
			bandData[name] = data
			mu.Unlock()
			return nil
		})
	}
	eg.Go(func() error {
		data, err := readBand(bands[len(rasterBandOrder)], width, height)
		if err != nil {
			return err
		}
		mu.Lock()
		cloudData = data
		mu.Unlock()
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to read raster bands: %w", err)
	}

	reading := make(soil.BandReading, len(rasterBandOrder))
	for name, data := range bandData {
		mean, err := stats.Mean(data)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate band %s: %w", name, err)
		}
		reading[name] = clampUnit(mean)
	}

	cloudMean, err := stats.Mean(cloudData)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate cloud band: %w", err)
	}

	geoTransform, err := ds.GeoTransform()
	if err != nil {
		return nil, fmt.Errorf("failed to get geotransform: %w", err)
	}

	pixels := make([]PixelSample, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sample := PixelSample{X: x, Y: y, Bands: make(soil.BandReading, len(rasterBandOrder))}
			for name, data := range bandData {
				sample.Bands[name] = data[y*width+x]
			}
			sample.Longitude = geoTransform[0] + (float64(x)+0.5)*geoTransform[1] + (float64(y)+0.5)*geoTransform[2]
			sample.Latitude = geoTransform[3] + (float64(x)+0.5)*geoTransform[4] + (float64(y)+0.5)*geoTransform[5]
			pixels = append(pixels, sample)
		}
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &RasterScene{
		Scene: soil.Scene{
			ID:         name,
			CapturedAt: capturedAt,
			CloudCover: clampPercent(cloudMean),
			Mission:    "sentinel-2",
			Level:      "L2A",
			Bands:      reading,
		},
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

func readBand(band godal.Band, width, height int) ([]float64, error) {
	data := make([]float64, width*height)
	if err := band.Read(0, 0, data, width, height); err != nil {
		return nil, err
	}
	return data, nil
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
