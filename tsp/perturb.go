package tsp

import "math/rand"

// minBridgePoints is the smallest tour a double-bridge is applied to.
const minBridgePoints = 8

// DoubleBridge perturbs s in place with a double-bridge exchange and reports
// whether the tour changed.
//
// Four cut points are drawn, one per quartile of the tour:
//
//	p1 ∈ [1, q), p2 ∈ [q, 2q), p3 ∈ [2q, 3q), p4 ∈ [3q, n)   with q = n/4
//
// splitting Sequence into S1=[0,p1) S2=[p1,p2) S3=[p2,p3) S4=[p3,p4) S5=[p4,n].
// The tour is reassembled as S1 S3 S2 S4 S5. No single 2-opt move undoes it.
//
// Tours over fewer than 8 points are left unchanged. Value is not updated.
//
// Complexity: O(n).
func DoubleBridge(s *Solution, rng *rand.Rand) bool {
	n := s.Len()
	if n < minBridgePoints {
		return false
	}
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	q := n / 4
	p1 := 1 + r.Intn(q-1)
	p2 := q + r.Intn(q)
	p3 := 2*q + r.Intn(q)
	p4 := 3*q + r.Intn(n-3*q)

	seq := s.Sequence
	out := make([]int, 0, len(seq))
	out = append(out, seq[:p1]...)
	out = append(out, seq[p2:p3]...)
	out = append(out, seq[p1:p2]...)
	out = append(out, seq[p3:p4]...)
	out = append(out, seq[p4:]...)
	copy(seq, out)

	return true
}
