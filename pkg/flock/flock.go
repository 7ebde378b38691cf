package flock

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/tochemey/goakt/v3/log"
	"golang.org/x/sync/errgroup"

	"github.com/flocklab/go-boids-simulation/pkg/geometry"
)

// Flock owns the boid population and orchestrates the per-frame update.
// External callers interact only through Step, Grow, Shrink and the read
// accessors; they never mutate boids directly.
type Flock struct {
	cfg    *Config
	boids  []*Boid
	grid   *grid
	rng    *rand.Rand
	logger log.Logger
}

// New validates the configuration, seeds the RNG and spawns the initial
// population.
func New(cfg *Config, logger log.Logger) (*Flock, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.DefaultLogger
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	f := &Flock{
		cfg:    cfg,
		grid:   newGrid(cfg),
		rng:    rand.New(rand.NewPCG(seed, seed)),
		logger: logger,
	}
	f.boids = make([]*Boid, 0, cfg.InitialBoids)
	for i := 0; i < cfg.InitialBoids; i++ {
		f.boids = append(f.boids, NewBoid(f.rng, cfg))
	}

	f.logger.Infof("flock spawned: %d boids in %gx%g world (seed %d)",
		len(f.boids), cfg.WorldWidth, cfg.WorldHeight, seed)
	return f, nil
}

// Step advances the whole population by dt seconds.
//
// Phase 1 evaluates the four steering behaviors for every boid against the
// pre-step snapshot and sums them into the boid's acceleration. Phase 2 then
// integrates and wraps every boid. Phase 1 only reads positions/velocities and
// writes each boid's own acceleration, so it may run in parallel; the errgroup
// Wait is the barrier that keeps phase-1 reads from ever seeing phase-2 writes.
func (f *Flock) Step(dt float64, pointer geometry.Vector2D, attract bool) error {
	if dt <= 0 || math.IsInf(dt, 0) || math.IsNaN(dt) {
		return fmt.Errorf("invalid time delta: %g", dt)
	}

	f.grid.rebuild(f.boids)

	if f.cfg.Workers > 1 && len(f.boids) > 1 {
		f.accumulateParallel(pointer, attract)
	} else {
		var buf []*Boid
		for _, b := range f.boids {
			buf = f.accumulate(b, buf[:0], pointer, attract)
		}
	}

	for _, b := range f.boids {
		b.Integrate(dt, f.cfg.MaxSpeed)
		b.Wrap(f.cfg.WorldWidth, f.cfg.WorldHeight)
	}
	return nil
}

// accumulate computes the summed behavior force for one boid and assigns it
// as the boid's acceleration. buf is a reusable candidate slice.
func (f *Flock) accumulate(b *Boid, buf []*Boid, pointer geometry.Vector2D, attract bool) []*Boid {
	buf = f.grid.nearby(b.Position.X, b.Position.Y, buf)

	force := Alignment(b, buf, f.cfg)
	force = force.Add(Cohesion(b, buf, f.cfg))
	force = force.Add(Separation(b, buf, f.cfg))
	force = force.Add(PointerReaction(b, pointer, attract, f.cfg))

	b.Acceleration = b.Acceleration.Add(force)
	return buf
}

func (f *Flock) accumulateParallel(pointer geometry.Vector2D, attract bool) {
	workers := f.cfg.Workers
	chunk := (len(f.boids) + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < len(f.boids); start += chunk {
		end := min(start+chunk, len(f.boids))
		part := f.boids[start:end]
		g.Go(func() error {
			var buf []*Boid
			for _, b := range part {
				buf = f.accumulate(b, buf[:0], pointer, attract)
			}
			return nil
		})
	}
	// Full barrier: no integration until every force is computed.
	_ = g.Wait()
}

// Grow appends n newly constructed boids with random initial state.
func (f *Flock) Grow(n int) {
	if n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		f.boids = append(f.boids, NewBoid(f.rng, f.cfg))
	}
	f.logger.Debugf("flock grew by %d to %d", n, len(f.boids))
}

// Shrink removes up to n boids from the tail of the population. Requests
// larger than the population clamp to removing all remaining boids.
func (f *Flock) Shrink(n int) {
	if n <= 0 {
		return
	}
	if n > len(f.boids) {
		n = len(f.boids)
	}
	for i := len(f.boids) - n; i < len(f.boids); i++ {
		f.boids[i] = nil
	}
	f.boids = f.boids[:len(f.boids)-n]
	f.logger.Debugf("flock shrank by %d to %d", n, len(f.boids))
}

// Boids returns the population for rendering. Callers must treat the slice
// and the boids it points to as read-only.
func (f *Flock) Boids() []*Boid {
	return f.boids
}

// Len returns the current population count.
func (f *Flock) Len() int {
	return len(f.boids)
}
