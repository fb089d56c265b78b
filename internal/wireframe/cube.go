// Package wireframe spins a unit cube and projects its edges for text
// rendering.
package wireframe

import "github.com/chewxy/math32"

var vertices = [8][3]float32{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var edges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// LineDrawer is anything that can rasterise a line in integer coordinates.
type LineDrawer interface {
	Line(x0, y0, x1, y1 int)
}

// Cube holds rotation state. Angles advance by Rate (radians per frame)
// around X, Y and Z.
type Cube struct {
	Rate  [3]float32
	angle [3]float32
}

func New() *Cube {
	return &Cube{Rate: [3]float32{0.03, 0.02, 0.01}}
}

// Step advances the rotation by frames (fractional frames allowed).
func (c *Cube) Step(frames float32) {
	for i := range c.angle {
		c.angle[i] += c.Rate[i] * frames
	}
}

func (c *Cube) Angles() [3]float32 { return c.angle }

// rotate applies X, then Y, then Z rotation.
func (c *Cube) rotate(v [3]float32) [3]float32 {
	x, y, z := v[0], v[1], v[2]

	s, k := math32.Sincos(c.angle[0])
	y, z = y*k-z*s, y*s+z*k

	s, k = math32.Sincos(c.angle[1])
	x, z = x*k+z*s, -x*s+z*k

	s, k = math32.Sincos(c.angle[2])
	x, y = x*k-y*s, x*s+y*k

	return [3]float32{x, y, z}
}

// Project returns the screen position of every vertex, orthographically
// scaled around (cx, cy).
func (c *Cube) Project(scale, cx, cy float32) [8][2]int {
	var out [8][2]int
	for i, v := range vertices {
		r := c.rotate(v)
		out[i] = [2]int{
			int(math32.Floor(r[0]*scale + cx)),
			int(math32.Floor(r[1]*scale + cy)),
		}
	}
	return out
}

// Draw projects the cube and draws its twelve edges.
func (c *Cube) Draw(d LineDrawer, scale, cx, cy float32) {
	p := c.Project(scale, cx, cy)
	for _, e := range edges {
		a, b := p[e[0]], p[e[1]]
		d.Line(a[0], a[1], b[0], b[1])
	}
}
