package sketch

import (
	"time"

	"genuary/internal/boids"
)

// Boids is the day-7 text-mode flock.
type Boids struct {
	env    Env
	flock  *boids.Flock
	glyphs boids.Glyphs
	paused bool
}

func NewBoids(env Env) (*Boids, error) {
	f, err := boids.New(env.Config.BoidParams(), env.Rand)
	if err != nil {
		return nil, err
	}
	g := boids.DefaultGlyphs()
	g.Headings = env.Config.Boids.Headings
	return &Boids{env: env, flock: f, glyphs: g}, nil
}

func (s *Boids) Name() string { return "boids" }

func (s *Boids) Tick(time.Duration) {
	if !s.paused {
		s.flock.Step()
	}
}

func (s *Boids) Key(k string) (string, bool) {
	switch k {
	case "r":
		f, err := boids.New(s.env.Config.BoidParams(), s.env.Rand)
		if err != nil {
			return "boids: " + err.Error(), true
		}
		s.flock = f
		return "boids: new flock", true
	case "a":
		s.glyphs.Headings = !s.glyphs.Headings
		if s.glyphs.Headings {
			return "boids: headings", true
		}
		return "boids: dots", true
	case " ":
		s.paused = !s.paused
		if s.paused {
			return "boids: paused", true
		}
		return "boids: running", true
	}
	return "", false
}

func (s *Boids) Render(w, h int) string {
	return crop(s.flock.Render(s.glyphs), w, h)
}

func (s *Boids) Help() []string {
	return []string{"r reset", "a arrows", "space pause"}
}

func (s *Boids) Flock() *boids.Flock { return s.flock }
