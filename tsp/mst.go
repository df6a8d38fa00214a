package tsp

import "math"

// MinimumSpanningTree computes a minimum spanning tree on the complete
// Euclidean graph of in with Prim's algorithm and returns its weight and the
// parent of every node (-1 for the root, node 0).
//
// Time:  O(n²).
// Space: O(n).
func MinimumSpanningTree(in *Instance) (weight float64, parents []int) {
	return primSkipping(in, -1)
}

// MSTLowerBound returns the weight of a minimum spanning tree of in. Removing
// any edge from an optimal tour leaves a spanning path, so the bound never
// exceeds the optimum.
func MSTLowerBound(in *Instance) float64 {
	w, _ := MinimumSpanningTree(in)

	return round1e9(w)
}

// OneTreeBound returns the 1-tree lower bound: an MST over nodes 1..n-1 plus
// the two cheapest edges incident to the depot. Every tour is a 1-tree, and
// the bound is never below MSTLowerBound. For n == 2 it is 2·cost(0,1).
//
// Time: O(n²).
func OneTreeBound(in *Instance) float64 {
	n := in.N()
	w, _ := primSkipping(in, Depot)

	first, second := math.Inf(1), math.Inf(1)
	var v int
	for v = 1; v < n; v++ {
		c := in.Cost(Depot, v)
		switch {
		case c < first:
			second = first
			first = c
		case c < second:
			second = c
		}
	}
	if n == 2 {
		second = first
	}

	return round1e9(w + first + second)
}

// primSkipping runs Prim over every node except skip (use -1 to keep all).
func primSkipping(in *Instance, skip int) (float64, []int) {
	n := in.N()
	var (
		inTree   = make([]bool, n)
		bestCost = make([]float64, n)
		parents  = make([]int, n)
		root     = 0
		total    float64
		it, u, v int
		minW     float64
	)
	for v = range bestCost {
		bestCost[v] = math.Inf(1)
		parents[v] = -1
	}
	if skip == root {
		root = 1
	}
	if skip >= 0 {
		inTree[skip] = true
	}
	bestCost[root] = 0

	for it = 0; it < n; it++ {
		// Pick the cheapest vertex not yet in the tree.
		u, minW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		if u < 0 {
			break
		}
		inTree[u] = true
		total += minW

		for v = 0; v < n; v++ {
			if !inTree[v] && in.Cost(u, v) < bestCost[v] {
				bestCost[v] = in.Cost(u, v)
				parents[v] = u
			}
		}
	}

	return total, parents
}
