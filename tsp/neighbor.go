package tsp

// candidate is the outcome of one neighborhood scan.
type candidate struct {
	mv    Move
	score float64 // raw delta plus frequency penalty; drives selection
	raw   float64 // raw 2-opt delta; drives the tour value
	tabu  bool    // admitted through aspiration
	found bool
}

// findBestNeighbor scans every 2-opt pair 1 ≤ a < b ≤ n-1 except the full
// interior reversal (1, n-1), and returns the admissible move with the
// smallest penalized score. Ties keep the first pair in scan order.
//
// A move is admissible when it is not tabu, or when its raw delta would
// produce a new incumbent: curr + raw < best - ε (aspiration).
// When nothing is admissible the returned score is the instance sentinel.
//
// Complexity: O(n²).
func (r *run) findBestNeighbor() candidate {
	var (
		seq  = r.curr.Sequence
		n    = r.in.N()
		best = candidate{score: r.in.Infinite()}
		goal = r.bestValue - r.o.Epsilon

		a, b       int
		h, i, j, l int
		raw, score float64
		tabu       bool
	)

	for a = 1; a <= n-2; a++ {
		h = seq[a-1]
		i = seq[a]
		for b = a + 1; b <= n-1; b++ {
			if a == 1 && b == n-1 {
				continue
			}
			j = seq[b]
			l = seq[b+1]

			raw = delta(r.in, seq, a, b)
			tabu = r.tenure.IsTabu(i, j, r.iter)
			if tabu && !(r.currValue+raw < goal) {
				continue
			}

			score = raw + r.freq.Penalty(h, i, j, l)
			if score < best.score {
				best = candidate{
					mv:    Move{From: a, To: b},
					score: score,
					raw:   raw,
					tabu:  tabu,
					found: true,
				}
			}
		}
	}

	return best
}
