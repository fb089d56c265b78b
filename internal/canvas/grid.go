package canvas

import "strings"

// Grid is a character canvas where lines are drawn with box-drawing glyphs
// chosen from the direction of each step.
type Grid struct {
	w, h  int
	cells [][]rune
	bg    rune
}

func NewGrid(w, h int, bg rune) *Grid {
	g := &Grid{w: w, h: h, bg: bg, cells: make([][]rune, h)}
	for y := range g.cells {
		g.cells[y] = []rune(strings.Repeat(string(bg), w))
	}
	return g
}

func (g *Grid) Size() (w, h int) { return g.w, g.h }

// Set writes r at (x, y). Out-of-range cells are ignored.
func (g *Grid) Set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y][x] = r
}

func (g *Grid) At(x, y int) rune {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return 0
	}
	return g.cells[y][x]
}

// Line draws from (x0, y0) to (x1, y1). Endpoints get a dot; interior cells
// get ─, │, ╲ or ╱ depending on the step that reached them.
func (g *Grid) Line(x0, y0, x1, y1 int) {
	bresenham(x0, y0, x1, y1, func(x, y int, s step) {
		glyph := '•'
		switch {
		case (x == x1 && y == y1) || s == (step{}):
		case s.dx != 0 && s.dy != 0:
			if s.dx == s.dy {
				glyph = '╲'
			} else {
				glyph = '╱'
			}
		case s.dx != 0:
			glyph = '─'
		default:
			glyph = '│'
		}
		g.Set(x, y, glyph)
	})
}

// Clear resets every cell to the background rune.
func (g *Grid) Clear() {
	for _, row := range g.cells {
		for x := range row {
			row[x] = g.bg
		}
	}
}

func (g *Grid) Rows() []string {
	out := make([]string, g.h)
	for y, row := range g.cells {
		out[y] = string(row)
	}
	return out
}

func (g *Grid) String() string { return strings.Join(g.Rows(), "\n") }
