package tsp

// Move is a 2-opt candidate: reverse Sequence[From..To] inclusive.
//
// For a tour over n points the valid range is 1 ≤ From < To ≤ n-1, which keeps
// both depot positions fixed. The pair (1, n-1) reverses the whole interior; it
// only flips the tour orientation and is never generated by the neighborhood.
// Scanning the full range 1 ≤ From < To ≤ n-1 with (1, n-1) included yields the
// same costs, since that pair always has a zero delta.
type Move struct {
	From int
	To   int
}

// Valid reports whether mv can be applied to a tour over n points.
func (mv Move) Valid(n int) bool {
	return mv.From >= 1 && mv.From < mv.To && mv.To <= n-1
}

// Apply2Opt reverses s.Sequence[mv.From..mv.To] in place.
// Applying the same move twice restores the original sequence.
// Value is left untouched; callers track cost through delta or Evaluate.
//
// Returns ErrMoveOutOfRange when mv does not fit the tour.
//
// Complexity: O(To-From).
func Apply2Opt(s *Solution, mv Move) error {
	return reverseArcInPlace(s.Sequence, mv.From, mv.To)
}

// delta returns the raw 2-opt cost change of reversing seq[a..b]:
//
//	-c(h,i) - c(j,l) + c(h,j) + c(i,l)
//
// where h=seq[a-1], i=seq[a], j=seq[b], l=seq[b+1]. Symmetric costs make the
// interior of the reversed segment cost-neutral.
//
// Complexity: O(1).
func delta(in *Instance, seq []int, a, b int) float64 {
	h := seq[a-1]
	i := seq[a]
	j := seq[b]
	l := seq[b+1]

	return -in.Cost(h, i) - in.Cost(j, l) + in.Cost(h, j) + in.Cost(i, l)
}

// Delta is the exported form of delta for a validated move.
// Returns ErrMoveOutOfRange when mv does not fit s.
func Delta(in *Instance, s Solution, mv Move) (float64, error) {
	if !mv.Valid(s.Len()) {
		return 0, ErrMoveOutOfRange
	}

	return delta(in, s.Sequence, mv.From, mv.To), nil
}
