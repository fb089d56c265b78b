// Package points produces flat x,y point arrays for the mesh builder, either
// randomly or from CSV, WKT, GeoJSON and KML files.
package points

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNoPoints    = errors.New("points: no points found")
	ErrUnsupported = errors.New("points: unsupported file type")
)

// Random returns n points uniformly spread over (-spreadX/2, spreadX/2) x
// (-spreadY/2, spreadY/2).
func Random(r *rand.Rand, n int, spreadX, spreadY float32) []float32 {
	out := make([]float32, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, (r.Float32()-0.5)*spreadX, (r.Float32()-0.5)*spreadY)
	}
	return out
}

// Supported reports whether Load understands the file's extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".wkt", ".geojson", ".json", ".kml":
		return true
	}
	return false
}

// Load reads a point file, choosing the format from its extension.
func Load(path string) ([]float32, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pts []float32
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		pts, err = ReadCSV(f)
	case ".wkt":
		var data []byte
		if data, err = io.ReadAll(f); err == nil {
			pts, err = ParseWKT(string(data))
		}
	case ".geojson", ".json":
		pts, err = ReadGeoJSON(f)
	case ".kml":
		pts, err = ReadKML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return pts, nil
}

// collector accumulates x,y pairs for the readers.
type collector []float32

func (c *collector) add(x, y float64) {
	*c = append(*c, float32(x), float32(y))
}

func (c collector) result() ([]float32, error) {
	if len(c) == 0 {
		return nil, ErrNoPoints
	}
	return []float32(c), nil
}
