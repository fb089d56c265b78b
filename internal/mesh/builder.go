// Package mesh turns scattered 2D points into renderable Delaunay geometry:
// an interleaved vertex buffer and a triangle-list or line-list index buffer.
package mesh

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/chewxy/math32"
	"github.com/fogleman/delaunay"

	"genuary/internal/logx"
)

// Builder owns the vertex and index buffers of one Delaunay mesh.
// The zero value is usable; call Build before reading the buffers.
type Builder struct {
	vertices   []float32
	indices    []uint32
	indexCount int
	hull       []uint32
	bbox       BBox

	topology  Topology
	selection Selection
	dedup     bool
	dirty     bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithDedupEdges makes line topologies emit every shared edge once instead
// of once per adjacent triangle.
func WithDedupEdges(on bool) Option {
	return func(b *Builder) { b.dedup = on }
}

// New builds a mesh from a flat x,y point array.
func New(points []float32, topology Topology, selection Selection, opts ...Option) (*Builder, error) {
	b := &Builder{}
	for _, o := range opts {
		o(b)
	}
	if err := b.Build(points, topology, selection); err != nil {
		return nil, err
	}
	return b, nil
}

// SetDedupEdges changes edge deduplication for subsequent builds.
func (b *Builder) SetDedupEdges(on bool) { b.dedup = on }

// DedupEdges reports whether line topologies deduplicate shared edges.
func (b *Builder) DedupEdges() bool { return b.dedup }

// Build recomputes both buffers from points. On error the previous buffers
// are kept.
func (b *Builder) Build(points []float32, topology Topology, selection Selection) error {
	if len(points)%2 != 0 {
		return fmt.Errorf("%w: got %d values", ErrOddPointCount, len(points))
	}
	n := len(points) / 2
	if n < 3 {
		return fmt.Errorf("%w: got %d", ErrInsufficientPoints, n)
	}
	for i, v := range points {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return fmt.Errorf("%w: value %d is %v", ErrNonFinitePoint, i, v)
		}
	}

	if collinear(points) {
		return fmt.Errorf("%w: all points are collinear or coincident", ErrDegenerateGeometry)
	}

	bbox := boundsOf(points)

	pts := make([]delaunay.Point, n)
	for i := range pts {
		pts[i] = delaunay.Point{X: float64(points[2*i]), Y: float64(points[2*i+1])}
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDegenerateGeometry, err)
	}
	if len(tri.Triangles) == 0 {
		return fmt.Errorf("%w: no triangles", ErrDegenerateGeometry)
	}

	vertices := interleave(points, bbox)
	hull := hullOf(tri.Triangles, tri.Halfedges)

	var indices []uint32
	switch selection {
	case Hull:
		fan := fanTriangles(hull)
		if topology == Lines {
			if b.dedup {
				indices = uniqueEdges(fan)
			} else {
				indices = triangleEdges(fan)
			}
		} else {
			indices = fan
		}
	default:
		all := toUint32(tri.Triangles)
		if topology == Lines {
			if b.dedup {
				indices = halfedgeEdges(tri.Triangles, tri.Halfedges)
			} else {
				indices = triangleEdges(all)
			}
		} else {
			indices = all
		}
	}

	indexCount := len(indices)
	for len(indices)%IndexAlignment != 0 {
		indices = append(indices, 0)
	}

	b.vertices = vertices
	b.indices = indices
	b.indexCount = indexCount
	b.hull = hull
	b.bbox = bbox
	b.topology = topology
	b.selection = selection
	b.dirty = true

	logx.Logger().Debug("mesh built",
		"points", n,
		"triangles", len(tri.Triangles)/3,
		"hull", len(hull),
		"topology", topology.String(),
		"selection", selection.String(),
		"indices", indexCount,
	)
	return nil
}

// collinear reports whether every point lies on one line through the first
// two distinct points (or all points coincide).
func collinear(points []float32) bool {
	x0, y0 := float64(points[0]), float64(points[1])
	j := -1
	for i := 2; i < len(points); i += 2 {
		if float64(points[i]) != x0 || float64(points[i+1]) != y0 {
			j = i
			break
		}
	}
	if j < 0 {
		return true
	}
	dx, dy := float64(points[j])-x0, float64(points[j+1])-y0
	for i := j + 2; i < len(points); i += 2 {
		if dx*(float64(points[i+1])-y0)-dy*(float64(points[i])-x0) != 0 {
			return false
		}
	}
	return true
}

func boundsOf(points []float32) BBox {
	bb := BBox{
		MinX: math32.Inf(1), MinY: math32.Inf(1),
		MaxX: math32.Inf(-1), MaxY: math32.Inf(-1),
	}
	for i := 0; i < len(points); i += 2 {
		bb.MinX = math32.Min(bb.MinX, points[i])
		bb.MaxX = math32.Max(bb.MaxX, points[i])
		bb.MinY = math32.Min(bb.MinY, points[i+1])
		bb.MaxY = math32.Max(bb.MaxY, points[i+1])
	}
	return bb
}

// interleave emits one vertex per point: position (x, y, 0, 1), normal
// (0, 0, 1) and uv normalised against bbox. The extent is taken in float64 so
// finite inputs spanning more than MaxFloat32 still map into [0, 1]. A zero
// extent is replaced by DegenerateEpsilon so every uv stays finite.
func interleave(points []float32, bbox BBox) []float32 {
	minX, minY := float64(bbox.MinX), float64(bbox.MinY)
	width, height := float64(bbox.MaxX)-minX, float64(bbox.MaxY)-minY
	if width == 0 {
		width = float64(DegenerateEpsilon)
	}
	if height == 0 {
		height = float64(DegenerateEpsilon)
	}
	n := len(points) / 2
	vertices := make([]float32, 0, n*Stride)
	for i := 0; i < n; i++ {
		x, y := points[2*i], points[2*i+1]
		vertices = append(vertices,
			x, y, 0, 1,
			0, 0, 1,
			float32((float64(x)-minX)/width), float32((float64(y)-minY)/height),
		)
	}
	return vertices
}

func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// hullOf walks the boundary half-edges (those without a twin) to recover the
// convex hull as an ordered cycle of point indices, starting at the lowest index.
func hullOf(triangles, halfedges []int) []uint32 {
	next := make(map[int]int)
	start := -1
	for e, twin := range halfedges {
		if twin != -1 {
			continue
		}
		from := triangles[e]
		next[from] = triangles[nextHalfedge(e)]
		if start == -1 || from < start {
			start = from
		}
	}
	if start == -1 {
		return nil
	}
	hull := make([]uint32, 0, len(next))
	for v := start; len(hull) < len(next); {
		hull = append(hull, uint32(v))
		n, ok := next[v]
		if !ok || n == start {
			break
		}
		v = n
	}
	return hull
}

// fanTriangles triangulates a convex polygon from its first vertex.
func fanTriangles(hull []uint32) []uint32 {
	if len(hull) < 3 {
		return nil
	}
	out := make([]uint32, 0, (len(hull)-2)*3)
	for i := 1; i < len(hull)-1; i++ {
		out = append(out, hull[0], hull[i], hull[i+1])
	}
	return out
}

// triangleEdges converts a triangle list into a line list with three edges per
// triangle. Edges shared by two triangles appear twice.
func triangleEdges(tris []uint32) []uint32 {
	out := make([]uint32, 0, len(tris)*2)
	for i := 0; i+2 < len(tris); i += 3 {
		a, c, d := tris[i], tris[i+1], tris[i+2]
		out = append(out, a, c, c, d, d, a)
	}
	return out
}

// halfedgeEdges emits each edge of the triangulation once, keeping the lower
// half-edge of every twin pair and every boundary half-edge.
func halfedgeEdges(triangles, halfedges []int) []uint32 {
	out := make([]uint32, 0, len(triangles))
	for e := range triangles {
		twin := halfedges[e]
		if twin != -1 && twin < e {
			continue
		}
		out = append(out, uint32(triangles[e]), uint32(triangles[nextHalfedge(e)]))
	}
	return out
}

// uniqueEdges is triangleEdges with duplicates removed, for triangle sets that
// carry no half-edge adjacency.
func uniqueEdges(tris []uint32) []uint32 {
	seen := make(map[[2]uint32]bool)
	out := make([]uint32, 0, len(tris)*2)
	add := func(a, c uint32) {
		k := [2]uint32{a, c}
		if c < a {
			k = [2]uint32{c, a}
		}
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, a, c)
	}
	for i := 0; i+2 < len(tris); i += 3 {
		add(tris[i], tris[i+1])
		add(tris[i+1], tris[i+2])
		add(tris[i+2], tris[i])
	}
	return out
}

func toUint32(in []int) []uint32 {
	out := make([]uint32, len(in))
	for i, v := range in {
		out[i] = uint32(v)
	}
	return out
}

// Vertices returns the interleaved vertex buffer. Callers must not modify it.
func (b *Builder) Vertices() []float32 { return b.vertices }

// Indices returns the padded index buffer. Callers must not modify it.
func (b *Builder) Indices() []uint32 { return b.indices }

// IndexCount is the number of meaningful indices, excluding padding.
func (b *Builder) IndexCount() int { return b.indexCount }

// DrawCount is the padded index buffer length.
func (b *Builder) DrawCount() int { return len(b.indices) }

// VertexCount equals the number of input points.
func (b *Builder) VertexCount() int { return len(b.vertices) / Stride }

// Hull returns the convex hull point indices in boundary order.
func (b *Builder) Hull() []uint32 { return b.hull }

func (b *Builder) BBox() BBox           { return b.bbox }
func (b *Builder) Topology() Topology   { return b.topology }
func (b *Builder) Selection() Selection { return b.selection }

// NeedsUpload reports whether the buffers changed since the last MarkUploaded.
func (b *Builder) NeedsUpload() bool { return b.dirty }

func (b *Builder) MarkUploaded() { b.dirty = false }

// Uint16Indices converts the index buffer for renderers that bind 16-bit indices.
func (b *Builder) Uint16Indices() ([]uint16, error) {
	out := make([]uint16, len(b.indices))
	for i, v := range b.indices {
		if v > math.MaxUint16 {
			return nil, fmt.Errorf("%w: index %d is %d", ErrIndexOverflow, i, v)
		}
		out[i] = uint16(v)
	}
	return out, nil
}

// WriteBinary writes the vertex buffer followed by the padded index buffer,
// both little-endian.
func (b *Builder) WriteBinary(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, b.vertices); err != nil {
		return fmt.Errorf("mesh: write vertices: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, b.indices); err != nil {
		return fmt.Errorf("mesh: write indices: %w", err)
	}
	return nil
}

var _ GeometryBuffer = (*Builder)(nil)
