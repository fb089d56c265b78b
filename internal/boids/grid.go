package boids

import (
	"math"
	"strings"
)

// Glyphs controls how a flock is drawn.
type Glyphs struct {
	Empty rune
	Boid  rune
	// Headings draws each boid as an arrow pointing along its velocity
	// instead of Boid.
	Headings bool
}

func DefaultGlyphs() Glyphs {
	return Glyphs{Empty: '·', Boid: '●', Headings: true}
}

// arrows are indexed by octant, counter-clockwise from +x. Grid rows grow
// downward, so +y points down the screen.
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

func heading(v Vector) rune {
	a := math.Atan2(v.Y, v.X)
	o := int(math.Round(a/(math.Pi/4))) % 8
	if o < 0 {
		o += 8
	}
	return arrows[o]
}

// Grid rasterises the flock into Height rows of Width cells.
func (f *Flock) Grid(g Glyphs) [][]rune {
	w, h := f.params.Width, f.params.Height
	rows := make([][]rune, h)
	for y := range rows {
		rows[y] = []rune(strings.Repeat(string(g.Empty), w))
	}
	for _, b := range f.boids {
		x := clamp(int(math.Floor(b.Position.X)), 0, w-1)
		y := clamp(int(math.Floor(b.Position.Y)), 0, h-1)
		if g.Headings {
			rows[y][x] = heading(b.Velocity)
		} else {
			rows[y][x] = g.Boid
		}
	}
	return rows
}

// Render draws the grid as text, one row per line, cells separated by a
// space so the grid looks square in a terminal.
func (f *Flock) Render(g Glyphs) string {
	rows := f.Grid(g)
	lines := make([]string, len(rows))
	for i, r := range rows {
		cells := make([]string, len(r))
		for j, c := range r {
			cells[j] = string(c)
		}
		lines[i] = strings.Join(cells, " ")
	}
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
