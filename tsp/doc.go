// Package tsp finds short closed drilling tours with adaptive tabu search.
//
// An Instance holds the Euclidean distances between the holes of a board;
// node 0 is the depot where every tour starts and ends. A Solver improves an
// initial tour with best-improvement 2-opt moves and combines:
//
//   - Short-term memory (TenureController): a move whose two endpoint nodes
//     were both moved within the current tenure is tabu, unless it yields a
//     new incumbent (aspiration).
//
//   - Adaptive tenure: halved on every new incumbent, doubled once per
//     stagnation episode, kept within [min, max].
//
//   - Long-term memory (FrequencyMemory): edges that keep appearing in the
//     accepted tour make the moves that remove them more expensive.
//
//   - Elite archive (ElitePool) and shaking: after a long stagnation the search
//     restarts from an elite tour or applies a double-bridge perturbation.
//
// Every mechanism can be switched off through Options, which reduces the
// solver to plain tabu search with aspiration.
//
// Determinism: all randomness comes from Options.Rand or from a generator
// seeded with Options.Seed, created afresh for every Solve call. Equal seeds
// give equal results.
//
// Observability: the package does no I/O. Search decisions are reported to an
// EventSink; see package tracelog for the textual log writer.
//
// For small boards (n ≤ MaxExactPoints) SolveExact returns a Held–Karp optimum,
// and MSTLowerBound and OneTreeBound give cheap lower bounds for any size.
//
// Complexity:
//   - Instance construction: O(n²) time and memory.
//   - One search iteration: O(n²), dominated by the neighborhood scan.
//   - SolveExact: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
package tsp
