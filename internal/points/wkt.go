package points

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseWKT returns every coordinate of a POINT, MULTIPOINT, LINESTRING or
// POLYGON. MULTIPOINT members may be bare ("1 2, 3 4") or parenthesised
// ("(1 2), (3 4)").
func ParseWKT(wkt string) ([]float32, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("wkt: empty")
	}
	up := strings.ToUpper(s)
	var kind string
	for _, k := range []string{"MULTIPOINT", "POINT", "LINESTRING", "POLYGON"} {
		if strings.HasPrefix(up, k) {
			kind = k
			break
		}
	}
	if kind == "" {
		return nil, errors.New("wkt: unsupported geometry type")
	}
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return nil, errors.New("wkt " + strings.ToLower(kind) + ": invalid")
	}
	body := strings.NewReplacer("(", " ", ")", " ").Replace(s[i+1 : j])

	var c collector
	for _, tup := range strings.Split(body, ",") {
		parts := strings.Fields(tup)
		if len(parts) < 2 {
			return nil, fmt.Errorf("wkt %s: bad coordinate %q", strings.ToLower(kind), strings.TrimSpace(tup))
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("wkt %s: bad coordinate %q", strings.ToLower(kind), strings.TrimSpace(tup))
		}
		c.add(x, y)
	}
	if kind == "POLYGON" {
		c = dropClosingVertices(c)
	}
	return c.result()
}

// dropClosingVertices removes ring-closing repeats so a polygon does not
// feed the same point twice.
func dropClosingVertices(c collector) collector {
	seen := make(map[[2]float32]bool, len(c)/2)
	out := c[:0]
	for i := 0; i+1 < len(c); i += 2 {
		k := [2]float32{c[i], c[i+1]}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c[i], c[i+1])
	}
	return out
}
