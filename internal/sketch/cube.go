package sketch

import (
	"time"

	"genuary/internal/canvas"
	"genuary/internal/wireframe"
)

// framesPerSecond is the frame rate the rotation rates were tuned for.
const framesPerSecond = 60

// Cube is the day-7 spinning wireframe.
type Cube struct {
	cube    *wireframe.Cube
	scale   float32
	braille bool

	dots  *canvas.Braille
	cells *canvas.Grid
}

func NewCube(env Env) *Cube {
	return &Cube{
		cube:    wireframe.New(),
		scale:   env.Config.Cube.Scale,
		braille: env.Config.Cube.Braille,
	}
}

func (s *Cube) Name() string { return "cube" }

func (s *Cube) Tick(dt time.Duration) {
	s.cube.Step(float32(dt.Seconds() * framesPerSecond))
}

func (s *Cube) Key(k string) (string, bool) {
	switch k {
	case "b":
		s.braille = !s.braille
		if s.braille {
			return "cube: braille", true
		}
		return "cube: glyphs", true
	}
	return "", false
}

func (s *Cube) Render(w, h int) string {
	if w < 1 || h < 1 {
		return ""
	}
	if s.braille {
		s.dots = reuseBraille(s.dots, w, h)
		b := s.dots
		dw, dh := b.DotSize()
		s.cube.Draw(b, s.scale*float32(min(dw, dh)), float32(dw)/2, float32(dh)/2)
		return b.String()
	}
	s.cells = reuseGrid(s.cells, w, h, '·')
	g := s.cells
	s.cube.Draw(g, s.scale*float32(min(w, h)), float32(w)/2, float32(h)/2)
	return g.String()
}

func (s *Cube) Help() []string { return []string{"b braille"} }
