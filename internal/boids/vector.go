package boids

import "math"

// Vector is a 2D vector with value semantics.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector   { return Vector{v.X + o.X, v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector   { return Vector{v.X - o.X, v.Y - o.Y} }
func (v Vector) Mult(n float64) Vector { return Vector{v.X * n, v.Y * n} }
func (v Vector) Div(n float64) Vector  { return Vector{v.X / n, v.Y / n} }
func (v Vector) Mag() float64          { return math.Hypot(v.X, v.Y) }
func (v Vector) IsFinite() bool        { return isFinite(v.X) && isFinite(v.Y) }
func (v Vector) Dist(o Vector) float64 { return v.Sub(o).Mag() }

// Normalize returns the unit vector, or v unchanged when its length is zero.
func (v Vector) Normalize() Vector {
	if m := v.Mag(); m != 0 {
		return v.Div(m)
	}
	return v
}

// Limit caps the length of v at max.
func (v Vector) Limit(max float64) Vector {
	if v.Mag() > max {
		return v.Normalize().Mult(max)
	}
	return v
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
