package points

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// ReadKML extracts "lon,lat[,alt]" tuples from every <coordinates> element
// (Point, LineString or Polygon placemarks, at any depth).
func ReadKML(r io.Reader) ([]float32, error) {
	dec := xml.NewDecoder(r)
	var c collector
	inCoords := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			inCoords = t.Name.Local == "coordinates"
		case xml.EndElement:
			inCoords = false
		case xml.CharData:
			if !inCoords {
				continue
			}
			for _, tuple := range strings.Fields(string(t)) {
				vals := strings.Split(tuple, ",")
				if len(vals) < 2 {
					continue
				}
				x, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
				y, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
				if err1 != nil || err2 != nil {
					continue
				}
				c.add(x, y)
			}
		}
	}
	return c.result()
}
