// Package drillpath computes short drilling paths for circuit boards.
//
// A board is a square 0/1 grid; every 1 is a hole the drill must visit. The
// holes become the points of a symmetric Euclidean TSP with the first hole as
// depot, and the tour is built by adaptive tabu search.
//
// The module is organized as:
//
//	board/          grid model and the text board format
//	tsp/            instance, 2-opt moves, tabu search with adaptive tenure,
//	                frequency memory, elite restarts and double-bridge shakes;
//	                Held–Karp and MST / 1-tree bounds for small reference boards
//	tracelog/       line-oriented search log writer and reader
//	cmd/drilltour/  command line driver
//
// Quick start:
//
//	b, _ := board.Load("board.txt")
//	in, _ := tsp.FromBoard(b)
//	opts := tsp.DefaultOptions()
//	opts.Seed = 42
//	res, _ := tsp.Solve(ctx, in, opts)
//	fmt.Println(res.Cost, res.Tour)
package drillpath
