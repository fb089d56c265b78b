// Package boids is a small flocking simulation (alignment, cohesion,
// separation and a pull toward the centre) on a wrapping grid, meant to be
// drawn as text.
package boids

import (
	"errors"
	"math"
	"math/rand/v2"
)

// Params configures a flock. Zero perception radii or weights disable the
// matching behaviour.
type Params struct {
	Width  int
	Height int
	Count  int

	MaxSpeed float64
	MaxForce float64

	AlignPerception      float64
	CohesionPerception   float64
	SeparationPerception float64

	AlignWeight      float64
	CohesionWeight   float64
	SeparationWeight float64
	CenterWeight     float64
}

// DefaultParams matches the day-7 text sketch: 64 birds on a 32x32 grid.
func DefaultParams() Params {
	return Params{
		Width:                32,
		Height:               32,
		Count:                64,
		MaxSpeed:             2,
		MaxForce:             0.1,
		AlignPerception:      10,
		CohesionPerception:   10,
		SeparationPerception: 10,
		AlignWeight:          1,
		CohesionWeight:       1,
		SeparationWeight:     1.1,
		CenterWeight:         0.6,
	}
}

var ErrInvalidParams = errors.New("boids: invalid parameters")

// Validate checks that the grid, population and limits are usable.
func (p Params) Validate() error {
	switch {
	case p.Width < 1 || p.Height < 1:
		return errors.Join(ErrInvalidParams, errors.New("grid must be at least 1x1"))
	case p.Count < 0:
		return errors.Join(ErrInvalidParams, errors.New("count must not be negative"))
	case p.MaxSpeed <= 0 || p.MaxForce <= 0:
		return errors.Join(ErrInvalidParams, errors.New("max speed and max force must be positive"))
	}
	return nil
}

// Boid is one agent.
type Boid struct {
	Position     Vector
	Velocity     Vector
	Acceleration Vector
	MaxForce     float64
	MaxSpeed     float64
}

// Flock is a fixed population advanced one frame at a time.
type Flock struct {
	params Params
	rng    *rand.Rand
	boids  []Boid
	frame  int
}

// New scatters p.Count boids uniformly over the grid with random headings.
func New(p Params, rng *rand.Rand) (*Flock, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	f := &Flock{params: p, rng: rng, boids: make([]Boid, p.Count)}
	for i := range f.boids {
		f.boids[i] = Boid{
			Position: Vector{rng.Float64() * float64(p.Width), rng.Float64() * float64(p.Height)},
			Velocity: f.randomVelocity(),
			MaxForce: p.MaxForce,
			MaxSpeed: p.MaxSpeed,
		}
	}
	return f, nil
}

// randomVelocity picks a heading in the unit square, capped at MaxSpeed.
func (f *Flock) randomVelocity() Vector {
	return Vector{f.rng.Float64()*2 - 1, f.rng.Float64()*2 - 1}.Limit(f.params.MaxSpeed)
}

func (f *Flock) center() Vector {
	return Vector{float64(f.params.Width) / 2, float64(f.params.Height) / 2}
}

// Boids returns the agents. Callers must not modify them.
func (f *Flock) Boids() []Boid  { return f.boids }
func (f *Flock) Params() Params { return f.params }
func (f *Flock) Frame() int     { return f.frame }

// Step advances the simulation by one frame. Steering is computed for every
// boid from the same snapshot before any boid moves.
func (f *Flock) Step() {
	steer := make([]Vector, len(f.boids))
	for i := range f.boids {
		steer[i] = f.steer(i)
	}
	for i := range f.boids {
		b := &f.boids[i]
		b.Acceleration = b.Acceleration.Add(steer[i])
		f.integrate(b)
	}
	f.frame++
}

// steer sums the weighted flocking forces acting on boid i.
func (f *Flock) steer(i int) Vector {
	p := f.params
	self := f.boids[i]

	var alignSum, cohesionSum, separationSum Vector
	var alignN, cohesionN, separationN int
	for j, other := range f.boids {
		if j == i {
			continue
		}
		d := self.Position.Dist(other.Position)
		if d < p.AlignPerception {
			alignSum = alignSum.Add(other.Velocity)
			alignN++
		}
		if d < p.CohesionPerception {
			cohesionSum = cohesionSum.Add(other.Position)
			cohesionN++
		}
		// coincident boids push with undefined direction; skip them
		if d < p.SeparationPerception && d > 0 {
			separationSum = separationSum.Add(self.Position.Sub(other.Position).Div(d * d))
			separationN++
		}
	}

	var alignment, cohesion, separation Vector
	if alignN > 0 {
		alignment = self.desire(alignSum.Div(float64(alignN)))
	}
	if cohesionN > 0 {
		cohesion = self.desire(cohesionSum.Div(float64(cohesionN)).Sub(self.Position))
	}
	if separationN > 0 {
		separation = self.desire(separationSum.Div(float64(separationN)))
	}
	centre := self.Seek(f.center())

	return alignment.Mult(p.AlignWeight).
		Add(cohesion.Mult(p.CohesionWeight)).
		Add(separation.Mult(p.SeparationWeight)).
		Add(centre.Mult(p.CenterWeight))
}

// desire turns a desired direction into a steering force: full speed along
// dir, minus current velocity, capped at MaxForce.
func (b Boid) desire(dir Vector) Vector {
	return dir.Normalize().Mult(b.MaxSpeed).Sub(b.Velocity).Limit(b.MaxForce)
}

// Seek returns the steering force toward target.
func (b Boid) Seek(target Vector) Vector {
	return b.desire(target.Sub(b.Position))
}

func (f *Flock) integrate(b *Boid) {
	b.Velocity = b.Velocity.Add(b.Acceleration).Limit(b.MaxSpeed)
	b.Position = b.Position.Add(b.Velocity)
	b.Acceleration = Vector{}

	if !b.Position.IsFinite() {
		b.Position = f.center()
		b.Velocity = f.randomVelocity()
	}
	f.wrap(b)
	if m := b.Velocity.Mag(); m < 0.01 || math.IsNaN(m) || math.IsInf(m, 0) {
		b.Velocity = f.randomVelocity()
	}
}

// wrap moves a boid that left the grid to the opposite edge.
func (f *Flock) wrap(b *Boid) {
	w, h := float64(f.params.Width), float64(f.params.Height)
	if b.Position.X > w-1 {
		b.Position.X = 0
	}
	if b.Position.X < 0 {
		b.Position.X = w - 1
	}
	if b.Position.Y > h-1 {
		b.Position.Y = 0
	}
	if b.Position.Y < 0 {
		b.Position.Y = h - 1
	}
}
