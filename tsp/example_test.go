// Package tsp_test provides runnable, deterministic examples that show how to
// build an instance, run the tabu search and compare it with the exact optimum.
package tsp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/drillpath/tsp"
)

// ExampleSolver solves a five-hole board (unit square plus its center) and
// prints the best tour cost, which is the optimum 3+√2.
func ExampleSolver() {
	in, err := tsp.NewInstance([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	opts := tsp.DefaultOptions()
	opts.Seed = 42
	opts.Init = tsp.InitSwaps
	opts.MaxIterations = 200

	s, err := tsp.NewSolver(in, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := s.Solve(context.Background(), tsp.NewSolution(in.N()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cost=%.4f reason=%s\n", res.Cost, res.Reason)
	// Output: cost=4.4142 reason=iteration-budget
}

// ExampleSolveExact prints the Held–Karp optimum of a small triangle.
func ExampleSolveExact() {
	in, _ := tsp.NewInstance([][2]float64{{0, 0}, {3, 0}, {3, 4}})
	res, _ := tsp.SolveExact(in)

	fmt.Printf("cost=%.1f\n", res.Cost)
	// Output: cost=12.0
}

// ExampleCollector records the event stream of a short run.
func ExampleCollector() {
	in, _ := tsp.NewInstance([][2]float64{{0, 0}, {4, 0}, {0, 3}})

	var events tsp.Collector
	opts := tsp.DefaultOptions()
	opts.Sink = &events

	res, _ := tsp.Solve(context.Background(), in, opts)
	for _, e := range events.Events() {
		fmt.Println(e.Kind)
	}
	fmt.Println(res.Reason)
	// Output:
	// start
	// iteration
	// no-legal-neighbor
	// final
	// no-legal-neighbor
}
