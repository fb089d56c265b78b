package canvas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genuary/internal/mesh"
)

func TestBrailleSet(t *testing.T) {
	b := NewBraille(2, 1)
	b.Set(0, 0)
	b.Set(3, 3)
	b.Set(-1, 0)
	b.Set(10, 10)
	assert.Equal(t, "⠁⢀", b.String())

	w, h := b.DotSize()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)

	b.Clear()
	assert.Equal(t, "  ", b.String())
}

func TestBrailleLine(t *testing.T) {
	b := NewBraille(2, 1)
	b.Line(0, 0, 3, 0)
	// top row of both cells
	assert.Equal(t, "⠉⠉", b.String())
}

func TestGridLineGlyphs(t *testing.T) {
	g := NewGrid(5, 1, '.')
	g.Line(0, 0, 4, 0)
	assert.Equal(t, "•───•", g.String())

	g = NewGrid(3, 3, '.')
	g.Line(0, 0, 2, 2)
	assert.Equal(t, "•..\n.╲.\n..•", g.String())

	g = NewGrid(3, 3, '.')
	g.Line(2, 0, 0, 2)
	assert.Equal(t, ".╱", string([]rune(g.Rows()[1])[:2]))

	g = NewGrid(1, 3, ' ')
	g.Line(0, 0, 0, 2)
	assert.Equal(t, '│', g.At(0, 1))
	assert.Equal(t, rune(0), g.At(5, 5))
}

func TestGridClipsAndClears(t *testing.T) {
	g := NewGrid(3, 2, '·')
	g.Line(-2, 0, 5, 0)
	assert.Equal(t, "───\n···", g.String())

	g.Clear()
	assert.Equal(t, "···\n···", g.String())
	w, h := g.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
}

func TestDrawGeometry(t *testing.T) {
	m, err := mesh.New([]float32{0, 0, 10, 0, 0, 10, 10, 10}, mesh.Lines, mesh.All)
	require.NoError(t, err)

	b := NewBraille(6, 3)
	w, h := b.DotSize()
	DrawGeometry(b, m, func(v []float32) (int, int, bool) {
		return int(v[7] * float32(w-1)), int((1 - v[8]) * float32(h-1)), true
	})

	rows := b.Rows()
	require.Len(t, rows, 3)
	// corners of the square are lit
	assert.NotEqual(t, ' ', []rune(rows[0])[0])
	assert.NotEqual(t, ' ', []rune(rows[0])[5])
	assert.NotEqual(t, ' ', []rune(rows[2])[0])
	assert.NotEqual(t, ' ', []rune(rows[2])[5])

	culled := NewBraille(6, 3)
	DrawGeometry(culled, m, func([]float32) (int, int, bool) { return 0, 0, false })
	assert.Equal(t, strings.Repeat(" ", 6), culled.Rows()[0])
}
