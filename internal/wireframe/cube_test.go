package wireframe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"genuary/internal/canvas"
)

type recorder struct{ lines [][4]int }

func (r *recorder) Line(x0, y0, x1, y1 int) {
	r.lines = append(r.lines, [4]int{x0, y0, x1, y1})
}

func TestUnrotatedProjection(t *testing.T) {
	c := New()
	p := c.Project(10, 50, 50)
	assert.Equal(t, [2]int{40, 40}, p[0])
	assert.Equal(t, [2]int{60, 40}, p[1])
	assert.Equal(t, [2]int{60, 60}, p[6])
}

func TestStepAdvancesAngles(t *testing.T) {
	c := New()
	c.Step(10)
	a := c.Angles()
	assert.InDelta(t, 0.3, a[0], 1e-6)
	assert.InDelta(t, 0.2, a[1], 1e-6)
	assert.InDelta(t, 0.1, a[2], 1e-6)
}

func TestRotationPreservesEdgeLength(t *testing.T) {
	c := New()
	c.Step(37)
	for _, e := range edges {
		a, b := c.rotate(vertices[e[0]]), c.rotate(vertices[e[1]])
		dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
		assert.InDelta(t, 4.0, dx*dx+dy*dy+dz*dz, 1e-4)
	}
}

func TestDrawEmitsTwelveEdges(t *testing.T) {
	r := &recorder{}
	New().Draw(r, 5, 0, 0)
	assert.Len(t, r.lines, 12)

	g := canvas.NewGrid(32, 32, '·')
	New().Draw(g, 8, 16, 16)
	assert.Equal(t, '•', g.At(8, 8))
}
