// Package tsp: cost utilities shared by the tabu search and the exact solver.
//
// Evaluate is the hot-path closed-tour length; TourCost is the checked variant
// for tours that come from outside the package.
//
// Complexity:
//   - O(n) time for a tour of length n+1, O(1) extra space.
package tsp

import "math"

// Evaluate returns the closed-tour length of s:
//
//	Σ cost[seq[k]][seq[k+1]]  for k = 0..n-1.
//
// The return edge to the depot is already encoded by seq[n] == Depot.
// s must be a valid tour for in; use TourCost for unchecked input.
//
// Complexity: O(n).
func Evaluate(in *Instance, s Solution) float64 {
	var (
		sum float64
		seq = s.Sequence
		k   int
	)
	for k = 0; k+1 < len(seq); k++ {
		sum += in.Cost(seq[k], seq[k+1])
	}

	return sum
}

// TourCost validates tour against in and returns its length.
// Returns ErrDimensionMismatch or ErrStartOutOfRange from ValidateTour.
//
// Complexity: O(n).
func TourCost(in *Instance, tour []int) (float64, error) {
	if err := ValidateTour(tour, in.N()); err != nil {
		return 0, err
	}

	return Evaluate(in, Solution{Sequence: tour}), nil
}

// roundScale controls cost stabilization precision (1e-9) for reporting.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
// Used only on reported costs; the search itself works on raw sums.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
