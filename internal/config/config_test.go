package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genuary/internal/mesh"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	topo, sel, err := cfg.MeshMode()
	require.NoError(t, err)
	assert.Equal(t, mesh.Lines, topo)
	assert.Equal(t, mesh.All, sel)

	p := cfg.BoidParams()
	assert.Equal(t, 64, p.Count)
	assert.Equal(t, 1.1, p.SeparationWeight)
	assert.Equal(t, 10.0, p.CohesionPerception)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
seed = 7
fps = 60

[boids]
count = 16

[mesh]
topology = "triangles"
selection = "hull"
dedup_edges = true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, 16, cfg.Boids.Count)
	assert.Equal(t, 32, cfg.Boids.Width)
	assert.True(t, cfg.Mesh.DedupEdges)
	assert.Equal(t, float32(300), cfg.Mesh.SpreadX)

	topo, sel, err := cfg.MeshMode()
	require.NoError(t, err)
	assert.Equal(t, mesh.Triangles, topo)
	assert.Equal(t, mesh.Hull, sel)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"syntax":  "fps = [",
		"unknown": "colour = 3",
		"invalid": "fps = 0",
		"mode":    "[mesh]\ntopology = \"points\"",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			cfg, err := Load(path)
			assert.Error(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.FPS = 0
	cfg.Mesh.Points = 1
	cfg.Cube.Scale = 2
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "fps")
	assert.ErrorContains(t, err, "mesh.points")
	assert.ErrorContains(t, err, "cube.scale")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Seed = 99
	cfg.Mesh.Selection = "hull"
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
