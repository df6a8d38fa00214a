package tsp

import "math/rand"

// eliteEntry is one archived solution with the score it was offered at.
type eliteEntry struct {
	sol   Solution
	score float64
}

// ElitePool is a bounded archive of the best distinct solutions seen.
//
// Invariant: once the pool is full, no solution ever offered and rejected or
// evicted has a strictly better score than the current worst member.
type ElitePool struct {
	cap     int
	entries []eliteEntry
}

// NewElitePool returns an empty pool holding at most size solutions.
// A size below 1 yields a pool that rejects every offer.
func NewElitePool(size int) *ElitePool {
	if size < 0 {
		size = 0
	}

	return &ElitePool{cap: size, entries: make([]eliteEntry, 0, size)}
}

// Len returns the number of archived solutions.
func (p *ElitePool) Len() int { return len(p.entries) }

// Cap returns the pool bound.
func (p *ElitePool) Cap() int { return p.cap }

// Offer archives a copy of sol with the given score and reports whether it was
// kept. While the pool has room every new sequence is inserted; once full the
// worst member is replaced only by a strictly better score. A sequence already
// in the pool is never archived twice.
//
// Complexity: O(size·n).
func (p *ElitePool) Offer(sol Solution, score float64) bool {
	if p.cap == 0 {
		return false
	}
	var k int
	for k = range p.entries {
		if p.entries[k].sol.Equal(sol) {
			return false
		}
	}

	e := eliteEntry{sol: sol.Clone(), score: score}
	e.sol.Value = score
	if len(p.entries) < p.cap {
		p.entries = append(p.entries, e)
		return true
	}

	w := p.worstIndex()
	if score < p.entries[w].score {
		p.entries[w] = e
		return true
	}

	return false
}

// Worst returns the largest archived score, or false when the pool is empty.
func (p *ElitePool) Worst() (float64, bool) {
	if len(p.entries) == 0 {
		return 0, false
	}

	return p.entries[p.worstIndex()].score, true
}

// Best returns a copy of the member with the smallest score, or false when the
// pool is empty.
func (p *ElitePool) Best() (Solution, bool) {
	if len(p.entries) == 0 {
		return Solution{}, false
	}
	b := 0
	var k int
	for k = 1; k < len(p.entries); k++ {
		if p.entries[k].score < p.entries[b].score {
			b = k
		}
	}

	return p.entries[b].sol.Clone(), true
}

// Pick returns a copy of a uniformly chosen member, or false when the pool is
// empty.
func (p *ElitePool) Pick(rng *rand.Rand) (Solution, bool) {
	if len(p.entries) == 0 {
		return Solution{}, false
	}

	return p.entries[rng.Intn(len(p.entries))].sol.Clone(), true
}

// worstIndex returns the first member holding the maximum score.
func (p *ElitePool) worstIndex() int {
	w := 0
	var k int
	for k = 1; k < len(p.entries); k++ {
		if p.entries[k].score > p.entries[w].score {
			w = k
		}
	}

	return w
}
