// Package tsp_test provides lightweight helpers shared across *_test.go files
// in this package: deterministic geometries, instance builders and tour checks.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drillpath/tsp"
)

const (
	// epsCost is the tolerance for comparing tour costs.
	epsCost = 1e-9

	// seedDet is a fixed seed for RNG-driven components.
	seedDet = int64(42)
)

// squarePlusCenter is the unit square with its center, depot at the origin.
func squarePlusCenter() [][2]float64 {
	return [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}
}

// rippledCircle places n points on a circle with a small deterministic radius
// ripple so that ties are rare.
func rippledCircle(n int) [][2]float64 {
	pts := make([][2]float64, n)
	var (
		i     int
		th, r float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 10.0 + 0.25*float64((i*5)%7)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}

	return pts
}

// scattered returns n grid-like points in a scrambled but deterministic order.
func scattered(n int) [][2]float64 {
	pts := make([][2]float64, n)
	var i int
	for i = 0; i < n; i++ {
		pts[i] = [2]float64{float64((i * 7) % 11), float64((i * 3) % 5)}
	}

	return pts
}

// mustInstance builds an Instance or fails the test.
func mustInstance(t testing.TB, pts [][2]float64) *tsp.Instance {
	t.Helper()
	in, err := tsp.NewInstance(pts)
	require.NoError(t, err)

	return in
}

// requireValidTour asserts the closed-tour invariants for n points.
func requireValidTour(t testing.TB, tour []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(tour, n), "tour %v", tour)
}

// scrambled returns a valid tour over n points that is not the identity.
func scrambled(n int, seed int64) tsp.Solution {
	s := tsp.NewSolution(n)
	tsp.InitShuffle(&s, tsp.NewRand(seed))

	return s
}

// edgeSlotsDiff counts positions k where (a[k],a[k+1]) differs from (b[k],b[k+1]).
func edgeSlotsDiff(a, b []int) int {
	var d, k int
	for k = 0; k+1 < len(a); k++ {
		if a[k] != b[k] || a[k+1] != b[k+1] {
			d++
		}
	}

	return d
}

// quietOptions returns defaults with a short budget, suitable for unit runs.
func quietOptions(maxIter int) tsp.Options {
	o := tsp.DefaultOptions()
	o.MaxIterations = maxIter
	o.Seed = seedDet

	return o
}
