package tsp

// TenureController holds the short-term memory of the search: when each node
// was last moved, and how long a move stays forbidden.
//
// A move touching nodes i and j is tabu at iteration t iff both nodes were
// touched within the current tenure:
//
//	t - last[i] ≤ length  &&  t - last[j] ≤ length
//
// The tenure adapts between min and max: it halves on every new incumbent and
// doubles once per stagnation episode.
type TenureController struct {
	length int
	min    int
	max    int
	adapt  int

	last        []int
	stagnation  int
	diversified bool
}

// NewTenureController returns a controller for n nodes.
// initial is clamped into [min, max]; adapt is the stagnation count at which
// the tenure doubles. Every node starts far enough in the past that nothing is
// tabu at iteration 0, even after the tenure reaches max.
//
// Complexity: O(n).
func NewTenureController(n, initial, min, max, adapt int) *TenureController {
	if max < 1 {
		max = 1
	}
	if min < 1 {
		min = 1
	}
	if min > max {
		min = max
	}
	if initial < min {
		initial = min
	}
	if initial > max {
		initial = max
	}

	tc := &TenureController{
		length: initial,
		min:    min,
		max:    max,
		adapt:  adapt,
		last:   make([]int, n),
	}
	var v int
	for v = range tc.last {
		tc.last[v] = -max - 1
	}

	return tc
}

// Length returns the current tenure.
func (tc *TenureController) Length() int { return tc.length }

// Bounds returns the tenure floor and cap.
func (tc *TenureController) Bounds() (min, max int) { return tc.min, tc.max }

// Stagnation returns the number of consecutive non-improving iterations.
func (tc *TenureController) Stagnation() int { return tc.stagnation }

// IsTabu reports whether a move touching nodes i and j is forbidden at iter.
func (tc *TenureController) IsTabu(i, j, iter int) bool {
	return iter-tc.last[i] <= tc.length && iter-tc.last[j] <= tc.length
}

// Touch records that nodes i and j were moved at iter.
func (tc *TenureController) Touch(i, j, iter int) {
	tc.last[i] = iter
	tc.last[j] = iter
}

// Intensify halves the tenure (floored at min) and closes the current
// stagnation episode.
func (tc *TenureController) Intensify() {
	tc.length /= 2
	if tc.length < tc.min {
		tc.length = tc.min
	}
	tc.stagnation = 0
	tc.diversified = false
}

// Stagnate counts one more non-improving iteration. Once the count reaches the
// adapt threshold it doubles the tenure (capped at max), at most once per
// episode, and reports whether it did.
func (tc *TenureController) Stagnate() bool {
	tc.stagnation++
	if tc.stagnation < tc.adapt || tc.diversified {
		return false
	}
	tc.length *= 2
	if tc.length > tc.max {
		tc.length = tc.max
	}
	tc.diversified = true

	return true
}

// ResetEpisode clears the stagnation counter and the episode flag after a
// shake. The tenure itself is kept.
func (tc *TenureController) ResetEpisode() {
	tc.stagnation = 0
	tc.diversified = false
}
