// Package tsp_test: benchmarks for the tabu search and its building blocks.
// Scope:
//   - Neighborhood-dominated Solve on medium boards.
//   - Held–Karp on a small board.
//   - Micro-benchmarks for Evaluate, Apply2Opt and DoubleBridge.
//
// Policy:
//   - Deterministic geometry (rippled circles) and fixed seeds (seedDet).
//   - Inputs built outside the timer; only the algorithmic core is measured.
package tsp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/drillpath/tsp"
)

func benchSolve(b *testing.B, n, iters int) {
	in := mustInstance(b, rippledCircle(n))
	o := quietOptions(iters)
	o.Init = tsp.InitSwaps
	s, err := tsp.NewSolver(in, o)
	if err != nil {
		b.Fatal(err)
	}
	start := tsp.NewSolution(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = s.Solve(context.Background(), start); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_n50_i500(b *testing.B)  { benchSolve(b, 50, 500) }
func BenchmarkSolve_n200_i200(b *testing.B) { benchSolve(b, 200, 200) }

func BenchmarkSolveExact_n12(b *testing.B) {
	in := mustInstance(b, rippledCircle(12))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.SolveExact(in); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluate_n500(b *testing.B) {
	in := mustInstance(b, rippledCircle(500))
	s := scrambled(500, seedDet)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tsp.Evaluate(in, s)
	}
}

func BenchmarkApply2Opt_n500(b *testing.B) {
	s := scrambled(500, seedDet)
	mv := tsp.Move{From: 100, To: 400}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tsp.Apply2Opt(&s, mv); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDoubleBridge_n500(b *testing.B) {
	s := scrambled(500, seedDet)
	rng := tsp.NewRand(seedDet)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tsp.DoubleBridge(&s, rng)
	}
}
