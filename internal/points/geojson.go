package points

import (
	"encoding/json"
	"errors"
	"io"
)

// ReadGeoJSON collects every coordinate pair of a GeoJSON document:
// FeatureCollection, Feature, GeometryCollection or a bare geometry.
func ReadGeoJSON(r io.Reader) ([]float32, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	var c collector
	if err := walkGeoJSON(raw, &c); err != nil {
		return nil, err
	}
	return c.result()
}

func walkGeoJSON(obj map[string]any, c *collector) error {
	typ, _ := obj["type"].(string)
	switch typ {
	case "FeatureCollection":
		feats, _ := obj["features"].([]any)
		for _, f := range feats {
			if m, ok := f.(map[string]any); ok {
				if err := walkGeoJSON(m, c); err != nil {
					return err
				}
			}
		}
	case "Feature":
		if g, ok := obj["geometry"].(map[string]any); ok {
			return walkGeoJSON(g, c)
		}
	case "GeometryCollection":
		geoms, _ := obj["geometries"].([]any)
		for _, g := range geoms {
			if m, ok := g.(map[string]any); ok {
				if err := walkGeoJSON(m, c); err != nil {
					return err
				}
			}
		}
	case "Point", "MultiPoint", "LineString", "MultiLineString", "Polygon", "MultiPolygon":
		collectCoords(obj["coordinates"], c)
	case "":
		return errors.New("geojson: missing type")
	default:
		return errors.New("geojson: unsupported type " + typ)
	}
	return nil
}

// collectCoords descends nested coordinate arrays until it reaches [x, y, ...].
func collectCoords(v any, c *collector) {
	a, ok := v.([]any)
	if !ok || len(a) == 0 {
		return
	}
	if x, ok := a[0].(float64); ok {
		if len(a) < 2 {
			return
		}
		if y, ok := a[1].(float64); ok {
			c.add(x, y)
		}
		return
	}
	for _, e := range a {
		collectCoords(e, c)
	}
}
