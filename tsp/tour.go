// Tour structure helpers. Nothing here looks at distances; invalid input is
// reported with the sentinel errors of types.go.
package tsp

import (
	"strconv"
	"strings"
)

// Depot is the node every tour starts and ends at.
const Depot = 0

// Solution is a candidate tour. Sequence has length n+1 with
// Sequence[0] == Sequence[n] == Depot, and Sequence[1..n-1] is a permutation
// of {1,…,n-1}. Value caches the tour cost; it is only meaningful after Evaluate.
type Solution struct {
	Sequence []int
	Value    float64
}

// NewSolution returns the identity tour 0,1,…,n-1,0 for n points.
//
// Complexity: O(n) time, O(n) space.
func NewSolution(n int) Solution {
	if n < 1 {
		return Solution{}
	}
	seq := make([]int, n+1)
	for v := range seq[:n] {
		seq[v] = v
	}
	seq[n] = Depot

	return Solution{Sequence: seq}
}

// SolutionFromTour wraps a copy of tour after checking it is a valid closed
// tour over n points.
func SolutionFromTour(tour []int, n int) (Solution, error) {
	if err := ValidateTour(tour, n); err != nil {
		return Solution{}, err
	}
	seq := make([]int, len(tour))
	copy(seq, tour)

	return Solution{Sequence: seq}, nil
}

// Clone returns an independent copy of s.
func (s Solution) Clone() Solution {
	if s.Sequence == nil {
		return Solution{Value: s.Value}
	}
	seq := make([]int, len(s.Sequence))
	copy(seq, s.Sequence)

	return Solution{Sequence: seq, Value: s.Value}
}

// Len returns the number of points the tour visits.
func (s Solution) Len() int {
	if len(s.Sequence) == 0 {
		return 0
	}

	return len(s.Sequence) - 1
}

// Equal reports whether s and o visit the nodes in the same order.
func (s Solution) Equal(o Solution) bool {
	if len(s.Sequence) != len(o.Sequence) {
		return false
	}
	for i := range s.Sequence {
		if s.Sequence[i] != o.Sequence[i] {
			return false
		}
	}

	return true
}

// ValidateTour checks that tour is a closed tour over n points starting at
// Depot: n+1 entries, Depot at both ends, and every node of 0..n-1 exactly
// once among the first n entries.
func ValidateTour(tour []int, n int) error {
	switch {
	case n <= 0, len(tour) != n+1:
		return ErrDimensionMismatch
	case tour[0] != Depot || tour[n] != Depot:
		return ErrStartOutOfRange
	}

	visited := make([]bool, n)
	for _, node := range tour[:n] {
		if node < 0 || node >= n || visited[node] {
			return ErrDimensionMismatch
		}
		visited[node] = true
	}

	return nil
}

// reverseArcInPlace reverses positions a..b of a closed tour, both included.
// The depot entries at either end stay put, so 1 ≤ a < b ≤ n-1.
func reverseArcInPlace(tour []int, a, b int) error {
	last := len(tour) - 1
	if last < 2 || tour[0] != tour[last] {
		return ErrDimensionMismatch
	}
	if a < 1 || b >= last || a >= b {
		return ErrMoveOutOfRange
	}
	for ; a < b; a, b = a+1, b-1 {
		tour[a], tour[b] = tour[b], tour[a]
	}

	return nil
}

// DebugString formats tour as "[0 3 1 2 | 0]", the bar separating the
// closing depot.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	last := len(tour) - 1
	parts := make([]string, last)
	for k, node := range tour[:last] {
		parts[k] = strconv.Itoa(node)
	}

	return "[" + strings.Join(parts, " ") + " | " + strconv.Itoa(tour[last]) + "]"
}
