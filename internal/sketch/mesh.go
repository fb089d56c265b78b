package sketch

import (
	"fmt"
	"math"
	"time"

	"github.com/chewxy/math32"

	"genuary/internal/canvas"
	"genuary/internal/config"
	"genuary/internal/logx"
	"genuary/internal/mesh"
	"genuary/internal/points"
)

// Mesh is the day-13 sketch: a Delaunay mesh of scattered points with a
// travelling sine wave lifting it out of the plane.
type Mesh struct {
	cfg     config.Mesh
	env     Env
	builder *mesh.Builder
	points  []float32
	topo    mesh.Topology
	sel     mesh.Selection
	elapsed float32

	// screen-space extent, recomputed when the builder has new buffers
	bbox   mesh.BBox
	canvas *canvas.Braille
}

func NewMesh(env Env) (*Mesh, error) {
	topo, sel, err := env.Config.MeshMode()
	if err != nil {
		return nil, err
	}
	s := &Mesh{
		cfg:     env.Config.Mesh,
		env:     env,
		builder: &mesh.Builder{},
		topo:    topo,
		sel:     sel,
	}
	s.builder.SetDedupEdges(s.cfg.DedupEdges)
	pts := env.Points
	if pts == nil {
		pts = s.randomPoints()
	}
	if err := s.SetPoints(pts); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Mesh) randomPoints() []float32 {
	return points.Random(s.env.Rand, s.cfg.Points, s.cfg.SpreadX, s.cfg.SpreadY)
}

// SetPoints rebuilds the mesh from a new point set. On error the current
// mesh stays on screen.
func (s *Mesh) SetPoints(pts []float32) error {
	if err := s.builder.Build(pts, s.topo, s.sel); err != nil {
		logx.Logger().Warn("mesh rebuild failed", "err", err, "values", len(pts))
		return err
	}
	s.points = pts
	return nil
}

func (s *Mesh) rebuild() error {
	return s.builder.Build(s.points, s.topo, s.sel)
}

func (s *Mesh) Name() string { return "mesh" }

func (s *Mesh) Tick(dt time.Duration) {
	s.elapsed += float32(dt.Seconds())
}

func (s *Mesh) Key(k string) (string, bool) {
	topo, sel, dedup := s.topo, s.sel, s.builder.DedupEdges()
	var err error
	switch k {
	case "r":
		err = s.SetPoints(s.randomPoints())
	case "t":
		if s.topo == mesh.Lines {
			s.topo = mesh.Triangles
		} else {
			s.topo = mesh.Lines
		}
		err = s.rebuild()
	case "s":
		if s.sel == mesh.Hull {
			s.sel = mesh.All
		} else {
			s.sel = mesh.Hull
		}
		err = s.rebuild()
	case "d":
		s.builder.SetDedupEdges(!s.builder.DedupEdges())
		err = s.rebuild()
	default:
		return "", false
	}
	if err != nil {
		s.topo, s.sel = topo, sel
		s.builder.SetDedupEdges(dedup)
		return "mesh: " + err.Error(), true
	}
	return s.Status(), true
}

// Status summarises the current mesh.
func (s *Mesh) Status() string {
	b := s.builder
	dedup := ""
	if b.DedupEdges() {
		dedup = " dedup"
	}
	return fmt.Sprintf("mesh: %s/%s%s  vertices=%d indices=%d hull=%d",
		b.Selection(), b.Topology(), dedup, b.VertexCount(), b.IndexCount(), len(b.Hull()))
}

// displace is the wave height of a vertex at the current time.
func (s *Mesh) displace(u float32) float32 {
	phase := u*s.cfg.WaveFrequency*2*math32.Pi + s.elapsed*s.cfg.WaveSpeed
	return math32.Sin(phase) * s.cfg.WaveAmplitude
}

func (s *Mesh) Render(w, h int) string {
	if w < 1 || h < 1 {
		return ""
	}
	if s.builder.NeedsUpload() {
		s.bbox = s.builder.BBox()
		s.builder.MarkUploaded()
	}
	s.canvas = reuseBraille(s.canvas, w, h)
	b := s.canvas
	dw, dh := b.DotSize()

	lift := float64(math32.Abs(s.cfg.WaveAmplitude * s.cfg.Tilt))
	minX, minY := float64(s.bbox.MinX), float64(s.bbox.MinY)
	width := max(float64(s.bbox.MaxX)-minX, float64(mesh.DegenerateEpsilon))
	height := max(float64(s.bbox.MaxY)-minY+2*lift, float64(mesh.DegenerateEpsilon))

	canvas.DrawGeometry(b, s.builder, func(v []float32) (int, int, bool) {
		x, y, u := float64(v[0]), float64(v[1]), v[7]
		y += float64(s.displace(u) * s.cfg.Tilt)
		nx := (x - minX) / width
		ny := (y - minY + lift) / height
		if math.IsNaN(nx) || math.IsNaN(ny) {
			return 0, 0, false
		}
		return int(nx * float64(dw-1)), int((1 - ny) * float64(dh-1)), true
	})
	return b.String()
}

func (s *Mesh) Help() []string {
	return []string{"r new points", "t topology", "s hull/all", "d dedup"}
}

func (s *Mesh) Builder() *mesh.Builder { return s.builder }
