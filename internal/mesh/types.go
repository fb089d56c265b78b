package mesh

import (
	"fmt"
	"strings"
)

// Stride is the number of float32 values per interleaved vertex:
// position (x, y, z, w), normal (x, y, z) and uv (u, v).
const Stride = 9

// IndexAlignment is the element multiple the index buffer is padded to.
const IndexAlignment = 4

// DegenerateEpsilon replaces a zero bounding-box extent when computing UVs.
const DegenerateEpsilon float32 = 1e-6

// Topology is the primitive assembly mode of the index buffer.
type Topology int

const (
	Triangles Topology = iota
	Lines
)

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	}
	return fmt.Sprintf("Topology(%d)", int(t))
}

// ParseTopology accepts "triangles" or "lines" (case-insensitive).
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "triangles", "triangle", "triangle-list":
		return Triangles, nil
	case "lines", "line", "line-list":
		return Lines, nil
	}
	return Triangles, fmt.Errorf("mesh: unknown topology %q", s)
}

// Selection chooses which points contribute triangles.
type Selection int

const (
	All Selection = iota
	Hull
)

func (s Selection) String() string {
	switch s {
	case All:
		return "all"
	case Hull:
		return "hull"
	}
	return fmt.Sprintf("Selection(%d)", int(s))
}

// ParseSelection accepts "all" or "hull" (case-insensitive).
func ParseSelection(s string) (Selection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return All, nil
	case "hull":
		return Hull, nil
	}
	return All, fmt.Errorf("mesh: unknown selection %q", s)
}

// BBox is the axis-aligned extent of the input points.
type BBox struct {
	MinX float32
	MinY float32
	MaxX float32
	MaxY float32
}

func (b BBox) Width() float32  { return b.MaxX - b.MinX }
func (b BBox) Height() float32 { return b.MaxY - b.MinY }

// GeometryBuffer is what a renderer needs from a mesh: read-only buffers and
// an upload flag it clears once it has consumed a new version.
type GeometryBuffer interface {
	Vertices() []float32
	Indices() []uint32
	IndexCount() int
	Topology() Topology
	NeedsUpload() bool
	MarkUploaded()
}
