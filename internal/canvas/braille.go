// Package canvas rasterises lines and meshes into terminal text: a braille
// buffer with 2x4 dots per cell and a plain glyph grid.
package canvas

import "strings"

// Braille is a w x h cell buffer addressed in dot ("micro") coordinates,
// 2 dots wide and 4 dots tall per cell.
type Braille struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell dot mask
}

func NewBraille(w, h int) *Braille {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &Braille{w: w, h: h, m: m}
}

// DotSize is the buffer size in dots.
func (b *Braille) DotSize() (w, h int) { return b.w * 2, b.h * 4 }

var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Set turns on the dot at (mx, my). Out-of-range dots are ignored.
func (b *Braille) Set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.m[cy][cx] |= dotBits[mx%2][my%4]
}

// Line draws a Bresenham line in dot coordinates.
func (b *Braille) Line(x0, y0, x1, y1 int) {
	bresenham(x0, y0, x1, y1, func(x, y int, _ step) { b.Set(x, y) })
}

func (b *Braille) Clear() {
	for y := range b.m {
		clear(b.m[y])
	}
}

// Rows renders one string per cell row; empty cells are spaces.
func (b *Braille) Rows() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			if mask := b.m[y][x]; mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

func (b *Braille) String() string { return strings.Join(b.Rows(), "\n") }
