package tsp

// FrequencyMemory is the long-term memory of the search. It counts how often
// each undirected edge has been part of the accepted tour at refresh points,
// weighted by a fixed increment, and turns those counts into a move penalty.
//
// A disabled memory never accumulates and always reports a zero penalty.
type FrequencyMemory struct {
	n         int
	f         []float64
	increment float64
	lambda    float64
	enabled   bool
}

// NewFrequencyMemory returns an empty memory for n nodes.
// increment is added per edge on every Refresh; lambda scales penalties.
func NewFrequencyMemory(n int, increment, lambda float64, enabled bool) *FrequencyMemory {
	fm := &FrequencyMemory{
		n:         n,
		increment: increment,
		lambda:    lambda,
		enabled:   enabled,
	}
	if enabled {
		fm.f = make([]float64, n*n)
	}

	return fm
}

// Enabled reports whether the memory contributes penalties.
func (fm *FrequencyMemory) Enabled() bool { return fm.enabled }

// Refresh adds the increment to every consecutive edge of seq, in both
// directions so the matrix stays symmetric.
//
// Complexity: O(len(seq)).
func (fm *FrequencyMemory) Refresh(seq []int) {
	if !fm.enabled {
		return
	}
	var (
		k, a, b int
	)
	for k = 0; k+1 < len(seq); k++ {
		a = seq[k]
		b = seq[k+1]
		fm.f[a*fm.n+b] += fm.increment
		if a != b {
			fm.f[b*fm.n+a] += fm.increment
		}
	}
}

// At returns the accumulated frequency of edge (i, j).
func (fm *FrequencyMemory) At(i, j int) float64 {
	if !fm.enabled {
		return 0
	}

	return fm.f[i*fm.n+j]
}

// Penalty returns λ·(f[i][j] + f[h][i] + f[j][l]) for the 2-opt move whose
// boundary nodes are h, i (segment start), j (segment end) and l.
func (fm *FrequencyMemory) Penalty(h, i, j, l int) float64 {
	if !fm.enabled {
		return 0
	}
	n := fm.n

	return fm.lambda * (fm.f[i*n+j] + fm.f[h*n+i] + fm.f[j*n+l])
}
