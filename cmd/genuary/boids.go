package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"genuary/internal/boids"
	"genuary/internal/sketch"
)

func newBoidsCmd(root *rootOptions) *cobra.Command {
	var frames, every int
	cmd := &cobra.Command{
		Use:   "boids",
		Short: "Run the flock headless and print the grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if frames < 0 || every < 0 {
				return fmt.Errorf("frames and every must not be negative")
			}
			cfg := loadConfig(cmd, root)
			f, err := boids.New(cfg.BoidParams(), sketch.NewRand(cfg.Seed))
			if err != nil {
				return err
			}
			g := boids.DefaultGlyphs()
			g.Headings = cfg.Boids.Headings
			out := cmd.OutOrStdout()
			for i := 0; i < frames; i++ {
				f.Step()
				if every > 0 && f.Frame()%every == 0 && f.Frame() != frames {
					fmt.Fprintf(out, "frame %d\n%s\n\n", f.Frame(), f.Render(g))
				}
			}
			fmt.Fprintf(out, "frame %d\n%s\n", f.Frame(), f.Render(g))
			return nil
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 100, "frames to simulate")
	cmd.Flags().IntVar(&every, "every", 0, "also print every n-th frame")
	return cmd
}
