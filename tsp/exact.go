package tsp

import "math"

// MaxExactPoints is the largest instance SolveExact accepts.
// Memory is n·2ⁿ float64 plus as many int32 parents (≈ 12 MiB at 16).
const MaxExactPoints = 16

// SolveExact returns an optimal tour of in using the Held–Karp
// dynamic-programming algorithm. It is the reference the heuristic is measured
// against on small boards.
//
// dp[mask·n + j] is the minimum cost of a path that starts at the depot, visits
// exactly the nodes in mask (bit 0 always set) and ends at j. The tour is
// closed by returning from the best last node to the depot.
//
// Errors: ErrTooFewPoints if in is nil, ErrTooManyPoints above MaxExactPoints.
//
// Time complexity:   O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func SolveExact(in *Instance) (Result, error) {
	if in == nil {
		return Result{}, ErrTooFewPoints
	}
	n := in.N()
	if n > MaxExactPoints {
		return Result{}, ErrTooManyPoints
	}

	var (
		full   = 1 << n
		all    = full - 1
		dp     = make([]float64, full*n)
		parent = make([]int32, full*n)

		mask, prev  int
		j, k        int
		cand, inf   = 0.0, math.Inf(1)
		best        = inf
		last        = -1
		startMask   = 1 << Depot
		cell, pcell int
	)
	for k = range dp {
		dp[k] = inf
		parent[k] = -1
	}
	dp[startMask*n+Depot] = 0

	// Fill DP for every subset that contains the depot.
	for mask = startMask; mask <= all; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			cell = mask*n + j
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 {
					continue
				}
				pcell = prev*n + k
				if math.IsInf(dp[pcell], 1) {
					continue
				}
				cand = dp[pcell] + in.Cost(k, j)
				if cand < dp[cell] {
					dp[cell] = cand
					parent[cell] = int32(k)
				}
			}
		}
	}

	// Close the tour at the depot.
	for j = 1; j < n; j++ {
		cand = dp[all*n+j] + in.Cost(j, Depot)
		if cand < best {
			best = cand
			last = j
		}
	}

	// Reconstruct backwards from the last node.
	tour := make([]int, n+1)
	tour[0] = Depot
	tour[n] = Depot
	mask = all
	j = last
	for k = n - 1; k >= 1; k-- {
		tour[k] = j
		p := int(parent[mask*n+j])
		mask ^= 1 << j
		j = p
	}

	cost := round1e9(best)

	return Result{
		Tour:        tour,
		Cost:        cost,
		InitialCost: cost,
		Reason:      StopNone,
	}, nil
}
