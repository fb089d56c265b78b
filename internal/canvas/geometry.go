package canvas

import (
	"genuary/internal/mesh"
)

// Projector maps one interleaved vertex (mesh.Stride floats) to dot
// coordinates. ok=false culls the vertex and every primitive using it.
type Projector func(vertex []float32) (x, y int, ok bool)

// DrawGeometry rasterises the edges of g into b. Triangle lists draw each
// triangle's outline; line lists draw each index pair. Padding after
// g.IndexCount() is skipped.
func DrawGeometry(b *Braille, g mesh.GeometryBuffer, project Projector) {
	verts := g.Vertices()
	n := len(verts) / mesh.Stride
	screen := make([][2]int, n)
	visible := make([]bool, n)
	for i := 0; i < n; i++ {
		x, y, ok := project(verts[i*mesh.Stride : (i+1)*mesh.Stride])
		screen[i] = [2]int{x, y}
		visible[i] = ok
	}
	edge := func(a, c uint32) {
		if int(a) >= n || int(c) >= n || !visible[a] || !visible[c] {
			return
		}
		b.Line(screen[a][0], screen[a][1], screen[c][0], screen[c][1])
	}

	idx := g.Indices()
	count := min(g.IndexCount(), len(idx))
	switch g.Topology() {
	case mesh.Lines:
		for i := 0; i+1 < count; i += 2 {
			edge(idx[i], idx[i+1])
		}
	default:
		for i := 0; i+2 < count; i += 3 {
			edge(idx[i], idx[i+1])
			edge(idx[i+1], idx[i+2])
			edge(idx[i+2], idx[i])
		}
	}
}
