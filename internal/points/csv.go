package points

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ReadCSV reads points from a CSV with a header row. Columns are matched
// case-insensitively: x|lon|lng|long|longitude and y|lat|latitude. Rows that
// do not parse are skipped.
func ReadCSV(r io.Reader) ([]float32, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("csv: empty")
	}
	ix, iy := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "lon", "lng", "long", "longitude":
			if ix == -1 {
				ix = i
			}
		case "y", "lat", "latitude":
			if iy == -1 {
				iy = i
			}
		}
	}
	if ix == -1 || iy == -1 {
		return nil, errors.New("csv: x/y columns not found")
	}
	var c collector
	for _, row := range recs[1:] {
		if ix >= len(row) || iy >= len(row) {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[ix]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[iy]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		c.add(x, y)
	}
	return c.result()
}
