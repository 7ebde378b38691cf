package flock

import "math"

type cellKey struct {
	x, y int
}

// grid is a uniform spatial hash rebuilt once per step. Cells are at least as
// large as the largest behavior radius, so the 3x3 block around a position is
// guaranteed to contain every boid any behavior could qualify as a neighbor.
// The behaviors re-filter by exact radius, which keeps the resulting neighbor
// sets identical to a brute-force scan of the full population.
type grid struct {
	cells    map[cellKey][]*Boid
	cellSize float64
}

func newGrid(cfg *Config) *grid {
	size := math.Max(cfg.PerceptionRadius, cfg.SeparationRadius)
	size = math.Max(size, cfg.MousePerception)
	// Floor avoids degenerate cells when all radii are tiny
	size = math.Max(size, 10.0)
	return &grid{
		cells:    make(map[cellKey][]*Boid),
		cellSize: size,
	}
}

// rebuild reindexes the population. Existing cell slices are truncated to
// length 0 but keep their capacity, so steady-state rebuilds allocate nothing.
func (g *grid) rebuild(boids []*Boid) {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	for _, b := range boids {
		key := g.keyFor(b.Position.X, b.Position.Y)
		g.cells[key] = append(g.cells[key], b)
	}
}

func (g *grid) keyFor(x, y float64) cellKey {
	return cellKey{x: int(math.Floor(x / g.cellSize)), y: int(math.Floor(y / g.cellSize))}
}

// nearby appends all boids in the 3x3 cell block around (x, y) to buf and
// returns it. The result is a superset of the true neighbors for every
// behavior radius.
func (g *grid) nearby(x, y float64, buf []*Boid) []*Boid {
	center := g.keyFor(x, y)
	for i := center.x - 1; i <= center.x+1; i++ {
		for j := center.y - 1; j <= center.y+1; j++ {
			if cell, ok := g.cells[cellKey{x: i, y: j}]; ok {
				buf = append(buf, cell...)
			}
		}
	}
	return buf
}
