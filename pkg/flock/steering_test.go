package flock

import (
	"math"
	"testing"

	"github.com/flocklab/go-boids-simulation/pkg/geometry"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func TestSteering_IsolatedBoidZeroForces(t *testing.T) {
	// A single boid with no neighbors in range gets exactly zero from all
	// three flocking behaviors.
	cfg := testConfig()
	me := &Boid{Position: geometry.Vector2D{X: 100, Y: 100}, Velocity: geometry.Vector2D{X: 1, Y: 0}}
	far := &Boid{Position: geometry.Vector2D{X: 900, Y: 700}}
	candidates := []*Boid{me, far}

	zero := geometry.Vector2D{}
	if got := Alignment(me, candidates, cfg); got != zero {
		t.Errorf("Alignment with no neighbors = %v; want exact zero", got)
	}
	if got := Cohesion(me, candidates, cfg); got != zero {
		t.Errorf("Cohesion with no neighbors = %v; want exact zero", got)
	}
	if got := Separation(me, candidates, cfg); got != zero {
		t.Errorf("Separation with no neighbors = %v; want exact zero", got)
	}
}

func TestSteering_SelfExcludedByIdentity(t *testing.T) {
	// Two distinct boids at the same position: the coincident one must be
	// skipped by the distance > 0 rule without producing NaN, and self is
	// excluded by identity rather than by zero distance.
	cfg := testConfig()
	me := &Boid{Position: geometry.Vector2D{X: 50, Y: 50}, Velocity: geometry.Vector2D{X: 1, Y: 0}}
	twin := &Boid{Position: geometry.Vector2D{X: 50, Y: 50}, Velocity: geometry.Vector2D{X: -3, Y: 2}}
	candidates := []*Boid{me, twin}

	for name, got := range map[string]geometry.Vector2D{
		"Alignment":  Alignment(me, candidates, cfg),
		"Cohesion":   Cohesion(me, candidates, cfg),
		"Separation": Separation(me, candidates, cfg),
	} {
		if math.IsNaN(got.X) || math.IsNaN(got.Y) {
			t.Errorf("%s produced NaN for coincident boids: %v", name, got)
		}
		if got != (geometry.Vector2D{}) {
			t.Errorf("%s = %v; coincident boid must not qualify as neighbor", name, got)
		}
	}
}

func TestAlignment_SteersTowardsNeighborVelocity(t *testing.T) {
	cfg := testConfig()
	me := &Boid{Position: geometry.Vector2D{X: 100, Y: 100}}
	other := &Boid{
		Position: geometry.Vector2D{X: 110, Y: 100},
		Velocity: geometry.Vector2D{X: 10, Y: 0},
	}

	got := Alignment(me, []*Boid{me, other}, cfg)
	if got.X <= 0 {
		t.Errorf("expected positive x alignment force, got %v", got)
	}
	if got.Len() > cfg.MaxForce+geometry.Epsilon {
		t.Errorf("alignment force %g exceeds max force %g", got.Len(), cfg.MaxForce)
	}
}

func TestCohesion_SteersTowardsNeighborPosition(t *testing.T) {
	cfg := testConfig()
	me := &Boid{Position: geometry.Vector2D{X: 100, Y: 100}}
	other := &Boid{Position: geometry.Vector2D{X: 130, Y: 100}}

	got := Cohesion(me, []*Boid{me, other}, cfg)
	if got.X <= 0 {
		t.Errorf("expected positive x cohesion force, got %v", got)
	}
	if got.Len() > cfg.MaxForce+geometry.Epsilon {
		t.Errorf("cohesion force %g exceeds max force %g", got.Len(), cfg.MaxForce)
	}
}

func TestSeparation_SteersAwayFromNeighbor(t *testing.T) {
	cfg := testConfig()
	me := &Boid{Position: geometry.Vector2D{X: 100, Y: 100}}
	other := &Boid{Position: geometry.Vector2D{X: 105, Y: 100}}

	got := Separation(me, []*Boid{me, other}, cfg)
	if got.X >= 0 {
		t.Errorf("expected negative x separation force, got %v", got)
	}
	if got.Len() > cfg.MaxForce+geometry.Epsilon {
		t.Errorf("separation force %g exceeds max force %g", got.Len(), cfg.MaxForce)
	}
}

func TestSeparation_InverseDistanceWeighting(t *testing.T) {
	// The raw accumulated repulsion from a closer neighbor must be stronger
	// than from a farther one: pull one neighbor in and the pre-normalization
	// accumulation grows as 1/d, tipping the averaged direction its way.
	cfg := testConfig()
	cfg.MaxForce = 1e9 // no clamping, observe the raw direction
	me := &Boid{Position: geometry.Vector2D{X: 100, Y: 100}}
	near := &Boid{Position: geometry.Vector2D{X: 102, Y: 100}}    // 2 to the right
	farther := &Boid{Position: geometry.Vector2D{X: 100, Y: 120}} // 20 above

	got := Separation(me, []*Boid{me, near, farther}, cfg)
	// Repulsion from the near neighbor (pointing -x, weight 1/2) dominates
	// repulsion from the farther one (pointing -y, weight 1/20).
	if math.Abs(got.X) <= math.Abs(got.Y) {
		t.Errorf("expected near-neighbor repulsion to dominate, got %v", got)
	}
}

func TestPointerReaction_Attract(t *testing.T) {
	cfg := testConfig()
	me := &Boid{Position: geometry.Vector2D{X: 100, Y: 100}}
	pointer := geometry.Vector2D{X: 110, Y: 100} // distance 10, inside perception 100

	got := PointerReaction(me, pointer, true, cfg)
	want := math.Min(cfg.MouseForce, cfg.MaxForce)
	if got.X <= 0 {
		t.Errorf("expected positive x attraction force, got %v", got)
	}
	if math.Abs(got.Len()-want) > geometry.Epsilon {
		t.Errorf("attraction magnitude = %g; want %g", got.Len(), want)
	}
}

func TestPointerReaction_Repel(t *testing.T) {
	cfg := testConfig()
	me := &Boid{Position: geometry.Vector2D{X: 100, Y: 100}}
	pointer := geometry.Vector2D{X: 110, Y: 100}

	got := PointerReaction(me, pointer, false, cfg)
	if got.X >= 0 {
		t.Errorf("expected negative x repulsion force, got %v", got)
	}
	want := math.Min(cfg.MouseForce, cfg.MaxForce)
	if math.Abs(got.Len()-want) > geometry.Epsilon {
		t.Errorf("repulsion magnitude = %g; want %g", got.Len(), want)
	}
}

func TestPointerReaction_OutOfRange(t *testing.T) {
	cfg := testConfig()
	me := &Boid{Position: geometry.Vector2D{X: 100, Y: 100}}
	pointer := geometry.Vector2D{X: 500, Y: 500}

	if got := PointerReaction(me, pointer, true, cfg); got != (geometry.Vector2D{}) {
		t.Errorf("pointer outside perception radius must give zero force, got %v", got)
	}
}

func TestPointerReaction_PointerAtopBoid(t *testing.T) {
	cfg := testConfig()
	me := &Boid{Position: geometry.Vector2D{X: 100, Y: 100}}

	got := PointerReaction(me, me.Position, true, cfg)
	if got != (geometry.Vector2D{}) {
		t.Errorf("pointer exactly atop boid must give zero force, got %v", got)
	}
}

func TestPointerReaction_ClampedToMaxForce(t *testing.T) {
	cfg := testConfig()
	cfg.MouseForce = 10 * cfg.MaxForce
	me := &Boid{Position: geometry.Vector2D{X: 100, Y: 100}}
	pointer := geometry.Vector2D{X: 110, Y: 100}

	got := PointerReaction(me, pointer, true, cfg)
	if math.Abs(got.Len()-cfg.MaxForce) > geometry.Epsilon {
		t.Errorf("expected force clamped to %g, got %g", cfg.MaxForce, got.Len())
	}
}
