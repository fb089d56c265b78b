package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"genuary/internal/mesh"
	"genuary/internal/points"
	"genuary/internal/sketch"
)

type meshOptions struct {
	topology  string
	selection string
	dedup     bool
	out       string
	index16   bool
}

func newMeshCmd(root *rootOptions) *cobra.Command {
	opts := &meshOptions{}
	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Triangulate a point set and report or dump the buffers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig(cmd, root)
			if opts.topology != "" {
				cfg.Mesh.Topology = opts.topology
			}
			if opts.selection != "" {
				cfg.Mesh.Selection = opts.selection
			}
			if cmd.Flags().Changed("dedup") {
				cfg.Mesh.DedupEdges = opts.dedup
			}
			topo, sel, err := cfg.MeshMode()
			if err != nil {
				return err
			}
			pts, err := loadPoints(cfg)
			if err != nil {
				return err
			}
			if pts == nil {
				pts = points.Random(sketch.NewRand(cfg.Seed), cfg.Mesh.Points, cfg.Mesh.SpreadX, cfg.Mesh.SpreadY)
			}

			b, err := mesh.New(pts, topo, sel, mesh.WithDedupEdges(cfg.Mesh.DedupEdges))
			if err != nil {
				return err
			}
			bb := b.BBox()
			fmt.Fprintf(cmd.OutOrStdout(),
				"points=%d vertices=%d indices=%d padded=%d hull=%d topology=%s selection=%s dedup=%v bbox=[%g %g %g %g]\n",
				len(pts)/2, b.VertexCount(), b.IndexCount(), b.DrawCount(), len(b.Hull()),
				b.Topology(), b.Selection(), b.DedupEdges(), bb.MinX, bb.MinY, bb.MaxX, bb.MaxY)

			if opts.out == "" {
				return nil
			}
			return writeMesh(opts.out, b, opts.index16)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.topology, "topology", "", "triangles or lines (default from config)")
	f.StringVar(&opts.selection, "selection", "", "all or hull (default from config)")
	f.BoolVar(&opts.dedup, "dedup", false, "emit shared edges once in line topology")
	f.StringVar(&opts.out, "out", "", "write vertex and index buffers (little-endian) to this file")
	f.BoolVar(&opts.index16, "index16", false, "write 16-bit indices (fails if an index does not fit)")
	return cmd
}

// writeMesh dumps the vertex buffer followed by the padded index buffer.
func writeMesh(path string, b *mesh.Builder, index16 bool) error {
	var idx16 []uint16
	if index16 {
		var err error
		if idx16, err = b.Uint16Indices(); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if index16 {
		err = binary.Write(w, binary.LittleEndian, b.Vertices())
		if err == nil {
			err = binary.Write(w, binary.LittleEndian, idx16)
		}
	} else {
		err = b.WriteBinary(w)
	}
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
