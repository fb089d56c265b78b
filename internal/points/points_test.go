package points

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	pts := Random(r, 50, 300, 100)
	require.Len(t, pts, 100)
	for i := 0; i < len(pts); i += 2 {
		assert.GreaterOrEqual(t, pts[i], float32(-150))
		assert.Less(t, pts[i], float32(150))
		assert.GreaterOrEqual(t, pts[i+1], float32(-50))
		assert.Less(t, pts[i+1], float32(50))
	}
}

func TestReadCSV(t *testing.T) {
	in := "name, Lon, LAT\na, 1.5, 2\nbad, x, 3\nb, -4, 5.25\n"
	pts, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, 2, -4, 5.25}, pts)

	_, err = ReadCSV(strings.NewReader("a,b\n1,2\n"))
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader("x,y\nfoo,bar\n"))
	assert.ErrorIs(t, err, ErrNoPoints)
}

func TestParseWKT(t *testing.T) {
	tests := []struct {
		in   string
		want []float32
	}{
		{"POINT (1 2)", []float32{1, 2}},
		{"MULTIPOINT (1 2, 3 4, 5 6)", []float32{1, 2, 3, 4, 5, 6}},
		{"MULTIPOINT ((1 2), (3 4))", []float32{1, 2, 3, 4}},
		{"linestring(0 0, 10 0, 10 10)", []float32{0, 0, 10, 0, 10, 10}},
		{"POLYGON ((0 0, 10 0, 10 10, 0 0))", []float32{0, 0, 10, 0, 10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWKT(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "CIRCLE (1 2)", "POINT 1 2", "POINT ()"} {
		_, err := ParseWKT(bad)
		assert.Error(t, err, bad)
	}

	// one malformed tuple rejects the whole paste
	_, err := ParseWKT("MULTIPOINT (0 0, 1 abc, 2 2)")
	assert.ErrorContains(t, err, `"1 abc"`)
	_, err = ParseWKT("LINESTRING (0 0, 5, 2 2)")
	assert.ErrorContains(t, err, `"5"`)
}

func TestReadGeoJSON(t *testing.T) {
	in := `{
	  "type": "FeatureCollection",
	  "features": [
	    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 2]}},
	    {"type": "Feature", "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [4, 0], [4, 4]]]}},
	    {"type": "Feature", "geometry": null}
	  ]
	}`
	pts, err := ReadGeoJSON(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 0, 0, 4, 0, 4, 4}, pts)

	_, err = ReadGeoJSON(strings.NewReader(`{"type": "Topology"}`))
	assert.Error(t, err)
	_, err = ReadGeoJSON(strings.NewReader(`{"coordinates": [1, 2]}`))
	assert.Error(t, err)
}

func TestReadKML(t *testing.T) {
	in := `<?xml version="1.0"?>
<kml><Document>
  <Placemark><Point><coordinates>1,2,0</coordinates></Point></Placemark>
  <Placemark><LineString><coordinates>3,4 5,6</coordinates></LineString></Placemark>
  <Placemark><name>7,8</name></Placemark>
</Document></kml>`
	pts, err := ReadKML(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, pts)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pts.wkt")
	require.NoError(t, os.WriteFile(path, []byte("MULTIPOINT (0 0, 1 0, 0 1)"), 0o644))

	pts, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, pts, 6)

	_, err = Load(filepath.Join(dir, "pts.shp"))
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Load(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	assert.True(t, Supported("A.GeoJSON"))
	assert.False(t, Supported("a.txt"))
}
