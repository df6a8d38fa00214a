package tsp

import (
	"math"

	"github.com/katalvlaran/drillpath/board"
)

// Instance is the immutable distance model of a drilling job.
// Node i is the i-th point; node 0 is the depot where every tour starts and ends.
//
// Distances are Euclidean, symmetric and zero on the diagonal. They are stored
// in a dense row-major buffer w[i*n+j] so the neighborhood scan never goes
// through an interface.
type Instance struct {
	n        int
	pts      [][2]float64
	w        []float64
	infinite float64
}

// NewInstance builds an Instance from point coordinates.
// Returns ErrTooFewPoints when fewer than two points are given.
//
// Complexity: O(n²) time and memory.
func NewInstance(pts [][2]float64) (*Instance, error) {
	n := len(pts)
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	inst := &Instance{
		n:   n,
		pts: make([][2]float64, n),
		w:   make([]float64, n*n),
	}
	copy(inst.pts, pts)

	// Fill upper triangle, mirror to lower triangle; the diagonal stays exactly 0.
	var (
		i, j   int
		dx, dy float64
		d, sum float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			d = math.Sqrt(dx*dx + dy*dy)
			inst.w[i*n+j] = d
			inst.w[j*n+i] = d
			sum += 2 * d
		}
	}

	// The sentinel must stay strictly above any feasible tour cost. When every
	// point coincides all tours cost 0, so 2·Σ would not be; use 1 instead.
	inst.infinite = 2 * sum
	if inst.infinite == 0 {
		inst.infinite = 1
	}

	return inst, nil
}

// FromBoard builds an Instance from the holes of b, in row-major scan order.
func FromBoard(b *board.Board) (*Instance, error) {
	holes := b.Holes()
	pts := make([][2]float64, len(holes))
	for i, h := range holes {
		pts[i] = [2]float64{float64(h.X), float64(h.Y)}
	}

	return NewInstance(pts)
}

// N returns the number of points.
func (in *Instance) N() int { return in.n }

// Cost returns the distance between nodes i and j.
// Complexity: O(1).
func (in *Instance) Cost(i, j int) float64 { return in.w[i*in.n+j] }

// Infinite returns the sentinel used to signal "no admissible move":
// twice the sum of cost[i][j] over the full matrix.
func (in *Instance) Infinite() float64 { return in.infinite }

// Point returns the coordinates of node i.
func (in *Instance) Point(i int) [2]float64 { return in.pts[i] }
