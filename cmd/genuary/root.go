package main

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"genuary/internal/calendar"
	"genuary/internal/config"
	"genuary/internal/logx"
	"genuary/internal/points"
	"genuary/internal/tui"
)

type rootOptions struct {
	configPath string
	seed       uint64
	pointsPath string
	sketch     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "genuary",
		Short:         "Genuary sketches in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", config.DefaultPath, "TOML config file")
	pf.Uint64Var(&opts.seed, "seed", 0, "random seed (overrides config; 0 uses the clock)")
	pf.StringVar(&opts.pointsPath, "points", "", "point file for the mesh (.csv, .wkt, .geojson, .kml)")
	cmd.Flags().StringVar(&opts.sketch, "sketch", "", "open a sketch directly (boids, cube, mesh)")

	cmd.AddCommand(newMeshCmd(opts), newBoidsCmd(opts), newCalendarCmd(), newInitConfigCmd(opts))
	return cmd
}

// loadConfig applies the config file and the persistent flag overrides. A
// config that cannot be read or fails validation is reported and replaced by
// the defaults.
func loadConfig(cmd *cobra.Command, opts *rootOptions) config.Config {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "genuary: %v (using defaults)\n", err)
		logx.Logger().Warn("config ignored", "path", opts.configPath, "err", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = opts.seed
	}
	if opts.pointsPath != "" {
		cfg.Mesh.PointsFile = opts.pointsPath
	}
	return cfg
}

// loadPoints returns the configured point file, or nil for random points.
func loadPoints(cfg config.Config) ([]float32, error) {
	if cfg.Mesh.PointsFile == "" {
		return nil, nil
	}
	p, err := homedir.Expand(cfg.Mesh.PointsFile)
	if err != nil {
		return nil, err
	}
	return points.Load(p)
}

// setupLogging sends structured logs to cfg.LogFile. The returned closer is
// never nil.
func setupLogging(cfg config.Config) (io.Closer, error) {
	if cfg.LogFile == "" {
		return io.NopCloser(nil), nil
	}
	p, err := homedir.Expand(cfg.LogFile)
	if err != nil {
		return io.NopCloser(nil), err
	}
	f, err := tea.LogToFile(p, "genuary")
	if err != nil {
		return io.NopCloser(nil), fmt.Errorf("log file: %w", err)
	}
	logx.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f, nil
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	cfg := loadConfig(cmd, opts)
	closer, err := setupLogging(cfg)
	defer closer.Close()
	if err != nil {
		return err
	}
	pts, err := loadPoints(cfg)
	if err != nil {
		return err
	}
	cal, err := calendar.Load()
	if err != nil {
		return err
	}

	name := opts.sketch
	if name == "" && pts != nil {
		name = "mesh"
	}
	var m tea.Model
	if name != "" {
		m = tui.NewWithSketch(cfg, cal, name, pts)
	} else {
		m = tui.New(cfg, cal)
	}
	logx.Logger().Info("starting", "sketch", name, "seed", cfg.Seed, "fps", cfg.FPS)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
	return err
}
