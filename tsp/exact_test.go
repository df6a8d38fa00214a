package tsp_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drillpath/tsp"
)

// bruteForce returns the optimal closed-tour cost by enumerating every
// permutation of the interior nodes.
func bruteForce(in *tsp.Instance) float64 {
	n := in.N()
	perm := make([]int, n-1)
	for i := range perm {
		perm[i] = i + 1
	}
	best := math.Inf(1)
	var rec func(k int)
	rec = func(k int) {
		if k == len(perm) {
			seq := append(append([]int{0}, perm...), 0)
			if c := tsp.Evaluate(in, tsp.Solution{Sequence: seq}); c < best {
				best = c
			}
			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)

	return best
}

func TestSolveExact_MatchesBruteForce(t *testing.T) {
	cases := map[string][][2]float64{
		"square plus center": squarePlusCenter(),
		"triangle":           {{0, 0}, {3, 0}, {3, 4}},
		"two points":         {{0, 0}, {2, 0}},
		"circle 7":           rippledCircle(7),
		"scattered 8":        scattered(8),
	}
	for name, pts := range cases {
		t.Run(name, func(t *testing.T) {
			in := mustInstance(t, pts)
			res, err := tsp.SolveExact(in)
			require.NoError(t, err)
			requireValidTour(t, res.Tour, in.N())

			got, err := tsp.TourCost(in, res.Tour)
			require.NoError(t, err)
			assert.InDelta(t, got, res.Cost, epsCost)
			assert.InDelta(t, bruteForce(in), res.Cost, epsCost)
		})
	}
}

func TestSolveExact_Limits(t *testing.T) {
	_, err := tsp.SolveExact(nil)
	require.ErrorIs(t, err, tsp.ErrTooFewPoints)

	in := mustInstance(t, rippledCircle(tsp.MaxExactPoints+1))
	_, err = tsp.SolveExact(in)
	require.ErrorIs(t, err, tsp.ErrTooManyPoints)
}

func TestSolveExact_HeuristicNeverBeatsOptimum(t *testing.T) {
	in := mustInstance(t, scattered(10))
	exact, err := tsp.SolveExact(in)
	require.NoError(t, err)

	o := quietOptions(500)
	o.Init = tsp.InitSwaps
	s, err := tsp.NewSolver(in, o)
	require.NoError(t, err)
	var res tsp.Result
	res, err = s.Solve(context.Background(), tsp.NewSolution(in.N()))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.Cost, exact.Cost-epsCost)
}
