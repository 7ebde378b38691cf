package flock

import (
	"github.com/flocklab/go-boids-simulation/pkg/geometry"
)

// The steering behaviors are pure functions over (acting boid, candidate
// neighbors, parameters). Candidates may be the full population or any
// superset of the true neighbors (see grid.go); every behavior re-filters by
// exact radius, excludes self by identity, and requires a strictly positive
// distance so the direction math never normalizes a zero vector.
// Each returned force is clamped to cfg.MaxForce.

// Alignment steers towards the average velocity of visible neighbors.
func Alignment(self *Boid, candidates []*Boid, cfg *Config) geometry.Vector2D {
	var steering geometry.Vector2D
	total := 0
	for _, other := range candidates {
		if other == self {
			continue
		}
		d := self.Position.DistanceTo(other.Position)
		if d <= 0 || d >= cfg.PerceptionRadius {
			continue
		}
		steering = steering.Add(other.Velocity)
		total++
	}
	if total == 0 {
		return geometry.Vector2D{}
	}
	steering = steering.Mul(1 / float64(total))
	steering = steering.Normalize().Mul(cfg.MaxSpeed)
	steering = steering.Sub(self.Velocity)
	return steering.ClampLen(cfg.MaxForce)
}

// Cohesion steers towards the average position of visible neighbors.
func Cohesion(self *Boid, candidates []*Boid, cfg *Config) geometry.Vector2D {
	var center geometry.Vector2D
	total := 0
	for _, other := range candidates {
		if other == self {
			continue
		}
		d := self.Position.DistanceTo(other.Position)
		if d <= 0 || d >= cfg.PerceptionRadius {
			continue
		}
		center = center.Add(other.Position)
		total++
	}
	if total == 0 {
		return geometry.Vector2D{}
	}
	center = center.Mul(1 / float64(total))
	steering := center.Sub(self.Position)
	steering = steering.Normalize().Mul(cfg.MaxSpeed)
	steering = steering.Sub(self.Velocity)
	return steering.ClampLen(cfg.MaxForce)
}

// Separation steers away from neighbors inside the separation radius.
// Each contribution is the normalized offset divided by the raw distance:
// an inverse-linear falloff, deliberately not inverse-square.
func Separation(self *Boid, candidates []*Boid, cfg *Config) geometry.Vector2D {
	var steering geometry.Vector2D
	total := 0
	for _, other := range candidates {
		if other == self {
			continue
		}
		d := self.Position.DistanceTo(other.Position)
		if d <= 0 || d >= cfg.SeparationRadius {
			continue
		}
		diff := self.Position.Sub(other.Position).Normalize().Mul(1 / d)
		steering = steering.Add(diff)
		total++
	}
	if total == 0 {
		return geometry.Vector2D{}
	}
	steering = steering.Mul(1 / float64(total))
	steering = steering.Normalize().Mul(cfg.MaxSpeed)
	steering = steering.Sub(self.Velocity)
	return steering.ClampLen(cfg.MaxForce)
}

// PointerReaction steers towards the pointer when attract is true and away
// from it otherwise. A pointer outside the perception radius, or exactly atop
// the boid, produces no force.
func PointerReaction(self *Boid, pointer geometry.Vector2D, attract bool, cfg *Config) geometry.Vector2D {
	d := self.Position.DistanceTo(pointer)
	if d <= 0 || d >= cfg.MousePerception {
		return geometry.Vector2D{}
	}
	diff := pointer.Sub(self.Position).Normalize()
	if !attract {
		diff = diff.Mul(-1)
	}
	return diff.Mul(cfg.MouseForce).ClampLen(cfg.MaxForce)
}
