package boids

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func TestVector(t *testing.T) {
	v := Vector{3, 4}
	assert.Equal(t, 5.0, v.Mag())
	assert.InDelta(t, 1.0, v.Normalize().Mag(), 1e-12)
	assert.Equal(t, Vector{}, Vector{}.Normalize())
	assert.InDelta(t, 2.0, v.Limit(2).Mag(), 1e-12)
	assert.Equal(t, v, v.Limit(10))
	assert.Equal(t, Vector{4, 6}, v.Add(Vector{1, 2}))
	assert.Equal(t, Vector{1.5, 2}, v.Div(2))
	assert.False(t, Vector{math.NaN(), 0}.IsFinite())
}

func TestFlockInvariants(t *testing.T) {
	p := DefaultParams()
	f, err := New(p, newRand(42))
	require.NoError(t, err)
	require.Len(t, f.Boids(), p.Count)

	for frame := 0; frame < 500; frame++ {
		f.Step()
		for i, b := range f.Boids() {
			assert.GreaterOrEqual(t, b.Position.X, 0.0, "boid %d frame %d", i, frame)
			assert.Less(t, b.Position.X, float64(p.Width), "boid %d frame %d", i, frame)
			assert.GreaterOrEqual(t, b.Position.Y, 0.0, "boid %d frame %d", i, frame)
			assert.Less(t, b.Position.Y, float64(p.Height), "boid %d frame %d", i, frame)
			assert.LessOrEqual(t, b.Velocity.Mag(), p.MaxSpeed+1e-9)
			assert.Equal(t, Vector{}, b.Acceleration)
		}
	}
	assert.Equal(t, 500, f.Frame())
}

func TestNonFiniteBoidIsReset(t *testing.T) {
	p := DefaultParams()
	p.Count = 3
	f, err := New(p, newRand(1))
	require.NoError(t, err)

	f.boids[0].Position = Vector{math.Inf(1), math.NaN()}
	f.boids[1].Velocity = Vector{math.NaN(), 0}
	f.Step()

	for _, b := range f.Boids() {
		assert.True(t, b.Position.IsFinite())
		assert.True(t, b.Velocity.IsFinite())
	}
}

func TestSlowFlockStaysUnderMaxSpeed(t *testing.T) {
	p := DefaultParams()
	p.Count = 20
	p.MaxSpeed = 0.5
	p.MaxForce = 0.02
	f, err := New(p, newRand(9))
	require.NoError(t, err)
	for i, b := range f.Boids() {
		assert.LessOrEqual(t, b.Velocity.Mag(), p.MaxSpeed+1e-9, "boid %d at start", i)
	}

	for i := range f.boids {
		f.boids[i].Position = Vector{math.Inf(1), math.Inf(1)}
	}
	f.Step()
	for i, b := range f.Boids() {
		assert.True(t, b.Position.IsFinite(), "boid %d", i)
		assert.LessOrEqual(t, b.Velocity.Mag(), p.MaxSpeed+1e-9, "boid %d after reset", i)
	}

	for i := range f.boids {
		f.boids[i].Velocity = Vector{math.NaN(), math.NaN()}
	}
	f.Step()
	for i, b := range f.Boids() {
		assert.LessOrEqual(t, b.Velocity.Mag(), p.MaxSpeed+1e-9, "boid %d after velocity reset", i)
	}
}

func TestCoincidentBoidsStayFinite(t *testing.T) {
	p := DefaultParams()
	p.Count = 4
	f, err := New(p, newRand(9))
	require.NoError(t, err)
	for i := range f.boids {
		f.boids[i].Position = Vector{5, 5}
	}
	for i := 0; i < 10; i++ {
		f.Step()
	}
	for _, b := range f.Boids() {
		assert.True(t, b.Position.IsFinite())
	}
}

func TestSeekPointsAtTarget(t *testing.T) {
	b := Boid{MaxSpeed: 2, MaxForce: 0.1}
	s := b.Seek(Vector{10, 0})
	assert.InDelta(t, 0.1, s.Mag(), 1e-12)
	assert.Greater(t, s.X, 0.0)
	assert.InDelta(t, 0.0, s.Y, 1e-12)
}

func TestDeterministicFromSeed(t *testing.T) {
	a, err := New(DefaultParams(), newRand(5))
	require.NoError(t, err)
	b, err := New(DefaultParams(), newRand(5))
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		a.Step()
		b.Step()
	}
	assert.Equal(t, a.Boids(), b.Boids())
}

func TestValidate(t *testing.T) {
	p := DefaultParams()
	p.Width = 0
	_, err := New(p, newRand(1))
	assert.ErrorIs(t, err, ErrInvalidParams)

	p = DefaultParams()
	p.MaxSpeed = 0
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
}

func TestRender(t *testing.T) {
	p := DefaultParams()
	p.Width, p.Height, p.Count = 4, 3, 1
	f, err := New(p, newRand(2))
	require.NoError(t, err)
	f.boids[0].Position = Vector{1.5, 2.2}
	f.boids[0].Velocity = Vector{1, 0}

	out := f.Render(Glyphs{Empty: '.', Boid: 'B'})
	assert.Equal(t, ". . . .\n. . . .\n. B . .", out)

	rows := f.Grid(DefaultGlyphs())
	assert.Equal(t, '→', rows[2][1])
	assert.Equal(t, 3, len(strings.Split(f.Render(DefaultGlyphs()), "\n")))
}

func TestHeading(t *testing.T) {
	assert.Equal(t, '↓', heading(Vector{0, 1}))
	assert.Equal(t, '↑', heading(Vector{0, -1}))
	assert.Equal(t, '←', heading(Vector{-1, 0}))
	assert.Equal(t, '↗', heading(Vector{1, -1}))
}
