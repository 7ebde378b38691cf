package flock

import (
	"math"
	"math/rand/v2"

	"github.com/flocklab/go-boids-simulation/pkg/geometry"
)

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds and related group motion.
// Fields are exported so the renderer can read them; only the owning Flock
// may write them.
type Boid struct {
	Position     geometry.Vector2D
	Velocity     geometry.Vector2D
	Acceleration geometry.Vector2D
}

// NewBoid creates a boid with a random position uniform over the world bounds
// and a random velocity: uniform direction, speed uniform in [1, MaxSpeed).
func NewBoid(r *rand.Rand, cfg *Config) *Boid {
	speed := 1 + r.Float64()*(cfg.MaxSpeed-1)
	theta := r.Float64() * 2 * math.Pi
	return &Boid{
		Position: geometry.Vector2D{
			X: r.Float64() * cfg.WorldWidth,
			Y: r.Float64() * cfg.WorldHeight,
		},
		Velocity: geometry.NewVectorPolar(speed, theta),
	}
}

// Integrate advances the boid by dt seconds and resets the acceleration
// accumulator. The order matters: velocity is updated from the pre-step
// acceleration, clamped, and only then applied to the position.
func (b *Boid) Integrate(dt, maxSpeed float64) {
	b.Velocity = b.Velocity.Add(b.Acceleration.Mul(dt))
	if b.Velocity.Len() > maxSpeed {
		b.Velocity = b.Velocity.Normalize().Mul(maxSpeed)
	}
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
	b.Acceleration = geometry.Vector2D{}
}

// Wrap applies toroidal boundaries: a boid exiting one edge re-enters at the
// opposite edge. This is wraparound, not reflection or clamping.
func (b *Boid) Wrap(width, height float64) {
	if b.Position.X > width {
		b.Position.X = 0
	} else if b.Position.X < 0 {
		b.Position.X = width
	}
	if b.Position.Y > height {
		b.Position.Y = 0
	} else if b.Position.Y < 0 {
		b.Position.Y = height
	}
}
