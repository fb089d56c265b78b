// Package sketch holds the terminal sketches. Each sketch owns all of its
// state; the TUI drives it with Tick once per frame and asks it to Render
// into the space it has.
package sketch

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"genuary/internal/canvas"
	"genuary/internal/config"
)

type Sketch interface {
	Name() string
	// Tick advances the animation by one frame of length dt.
	Tick(dt time.Duration)
	// Key handles a key press. ok is false for keys the sketch ignores.
	Key(k string) (status string, ok bool)
	// Render draws the current frame into at most w x h cells.
	Render(w, h int) string
	// Help lists the sketch's own key bindings.
	Help() []string
}

// Env is what a sketch may draw on when it is created.
type Env struct {
	Config config.Config
	Rand   *rand.Rand
	// Points, when non-nil, seeds the mesh sketch instead of random points.
	Points []float32
}

// Names lists the available sketches.
var Names = []string{"boids", "cube", "mesh"}

// New creates the sketch called name.
func New(name string, env Env) (Sketch, error) {
	switch name {
	case "boids":
		return NewBoids(env)
	case "cube":
		return NewCube(env), nil
	case "mesh":
		return NewMesh(env)
	}
	return nil, fmt.Errorf("sketch: unknown sketch %q", name)
}

// NewRand seeds a generator; seed 0 uses the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// crop trims text to at most w runes per line and h lines.
func crop(s string, w, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for i, l := range lines {
		if r := []rune(l); len(r) > w {
			lines[i] = string(r[:w])
		}
	}
	return strings.Join(lines, "\n")
}

// reuseBraille clears buf for the next frame, or allocates a new one when
// the view is not w x h cells.
func reuseBraille(buf *canvas.Braille, w, h int) *canvas.Braille {
	if buf == nil {
		return canvas.NewBraille(w, h)
	}
	if dw, dh := buf.DotSize(); dw != 2*w || dh != 4*h {
		return canvas.NewBraille(w, h)
	}
	buf.Clear()
	return buf
}

func reuseGrid(buf *canvas.Grid, w, h int, bg rune) *canvas.Grid {
	if buf == nil {
		return canvas.NewGrid(w, h, bg)
	}
	if gw, gh := buf.Size(); gw != w || gh != h {
		return canvas.NewGrid(w, h, bg)
	}
	buf.Clear()
	return buf
}
