package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/drillpath/board"
	"github.com/katalvlaran/drillpath/tracelog"
	"github.com/katalvlaran/drillpath/tsp"
)

// solveFlags holds the flags of the solve command. Numeric defaults mirror
// tsp.DefaultOptions; only flags set explicitly override a parameter file.
type solveFlags struct {
	alpha         float64
	beta          float64
	decayFactor   float64
	lambda        float64
	epsilon       float64
	tabuLength    int
	minTenure     int
	maxTenure     int
	decayInterval int
	eliteSize     int
	maxIterations int
	seed          int64
	init          string
	noFrequency   bool
	noElite       bool
	noShaking     bool

	params  string
	logFile string
	noLog   bool
	repeat  int
	exact   bool
}

func newSolveCmd(global *GlobalFlags) *cobra.Command {
	f := &solveFlags{}
	d := tsp.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "solve BOARD",
		Short: "Compute a drilling tour for a board file",
		Long: `Solve reads a board file, builds the hole distance model and runs
adaptive tabu search from a randomized initial tour.

Parameters come from tsp defaults, then from --params (YAML), then from
explicitly set flags. A seed of 0 draws a seed from the clock; the seed used
is always reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, global, f, args[0])
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&f.alpha, "alpha", d.Alpha, "No-improvement threshold as a fraction of the hole count")
	fl.Float64Var(&f.beta, "beta", d.Beta, "Tenure-adapt threshold as a fraction of the no-improvement threshold")
	fl.Float64Var(&f.decayFactor, "decay-factor", d.DecayFactor, "Frequency increment per edge and refresh")
	fl.Float64Var(&f.lambda, "lambda", d.Lambda, "Weight of the frequency penalty")
	fl.Float64Var(&f.epsilon, "epsilon", d.Epsilon, "Improvement tolerance")
	fl.IntVar(&f.tabuLength, "tabu-length", d.TabuLength, "Initial tenure (0: max(5, n/10))")
	fl.IntVar(&f.minTenure, "min-tenure", d.MinTenure, "Tenure floor")
	fl.IntVar(&f.maxTenure, "max-tenure", d.MaxTenure, "Tenure cap (0: number of holes)")
	fl.IntVar(&f.decayInterval, "decay-interval", d.DecayInterval, "Iterations between frequency refreshes")
	fl.IntVar(&f.eliteSize, "elite-size", d.EliteSize, "Elite pool size")
	fl.IntVar(&f.maxIterations, "max-iterations", d.MaxIterations, "Iteration budget")
	fl.Int64Var(&f.seed, "seed", 0, "Random seed (0: derived from the clock)")
	fl.StringVar(&f.init, "init", "swaps", "Initial tour policy (swaps|uniform|identity)")
	fl.BoolVar(&f.noFrequency, "no-frequency", false, "Disable the frequency penalty")
	fl.BoolVar(&f.noElite, "no-elite-restart", false, "Disable restarts from the elite pool")
	fl.BoolVar(&f.noShaking, "no-shaking", false, "Disable shaking")

	fl.StringVar(&f.params, "params", "", "YAML parameter file")
	fl.StringVar(&f.logFile, "log-file", "", "Event log path (default: <board>_log.txt)")
	fl.BoolVar(&f.noLog, "no-log", false, "Do not write an event log")
	fl.IntVar(&f.repeat, "repeat", 1, "Number of independent runs")
	fl.BoolVar(&f.exact, "exact", false, "Also compute the Held–Karp optimum (small boards only)")

	return cmd
}

// options resolves defaults, the parameter file and explicit flags, in that order.
func (f *solveFlags) options(cmd *cobra.Command) (tsp.Options, error) {
	o := tsp.DefaultOptions()
	o.Init = tsp.InitSwaps

	if f.params != "" {
		p, err := LoadParams(f.params)
		if err != nil {
			return o, err
		}
		if err := p.Apply(&o); err != nil {
			return o, err
		}
	}

	fl := cmd.Flags()
	set := func(name string, apply func()) {
		if fl.Changed(name) {
			apply()
		}
	}
	set("alpha", func() { o.Alpha = f.alpha })
	set("beta", func() { o.Beta = f.beta })
	set("decay-factor", func() { o.DecayFactor = f.decayFactor })
	set("lambda", func() { o.Lambda = f.lambda })
	set("epsilon", func() { o.Epsilon = f.epsilon })
	set("tabu-length", func() { o.TabuLength = f.tabuLength })
	set("min-tenure", func() { o.MinTenure = f.minTenure })
	set("max-tenure", func() { o.MaxTenure = f.maxTenure })
	set("decay-interval", func() { o.DecayInterval = f.decayInterval })
	set("elite-size", func() { o.EliteSize = f.eliteSize })
	set("max-iterations", func() { o.MaxIterations = f.maxIterations })
	set("seed", func() { o.Seed = f.seed })
	set("no-frequency", func() { o.EnableFrequencyPenalty = !f.noFrequency })
	set("no-elite-restart", func() { o.EnableEliteRestart = !f.noElite })
	set("no-shaking", func() { o.EnableShaking = !f.noShaking })
	if fl.Changed("init") {
		policy, err := parseInitPolicy(f.init)
		if err != nil {
			return o, err
		}
		o.Init = policy
	}

	return o, nil
}

// defaultLogPath returns <board without extension>_log.txt.
func defaultLogPath(boardPath string) string {
	return strings.TrimSuffix(boardPath, filepath.Ext(boardPath)) + "_log.txt"
}

// runReport is one solver run.
type runReport struct {
	Seed       int64   `json:"seed"`
	Tour       []int   `json:"tour"`
	Cost       float64 `json:"cost"`
	Initial    float64 `json:"initial_cost"`
	Iterations int     `json:"iterations"`
	Reason     string  `json:"reason"`
	ElapsedMS  float64 `json:"elapsed_ms"`
}

// solveReport is the outcome of the solve command.
type solveReport struct {
	RunID      string      `json:"run_id"`
	Board      string      `json:"board"`
	Holes      int         `json:"holes"`
	LogFile    string      `json:"log_file,omitempty"`
	FinalValue float64     `json:"final_value"` // first run, the one the log records
	Best       runReport   `json:"best"`
	Runs       []runReport `json:"runs,omitempty"`
	Mean       float64     `json:"mean_cost,omitempty"`
	StdDev     float64     `json:"std_cost,omitempty"`
	Median     float64     `json:"median_cost,omitempty"`
	MSTBound   float64     `json:"mst_bound"`
	OneTree    float64     `json:"one_tree_bound"`
	Optimum    *float64    `json:"optimum,omitempty"`
	OptimumGap *float64    `json:"optimum_gap_pct,omitempty"`
}

func runSolve(cmd *cobra.Command, global *GlobalFlags, f *solveFlags, boardPath string) error {
	ctx := cmd.Context()
	runID := uuid.NewString()
	logger := global.NewLogger(cmd.ErrOrStderr()).With("run", runID)

	if f.repeat < 1 {
		return fmt.Errorf("--repeat must be at least 1, got %d", f.repeat)
	}
	opts, err := f.options(cmd)
	if err != nil {
		return err
	}

	b, err := board.Load(boardPath)
	if err != nil {
		return err
	}
	in, err := tsp.FromBoard(b)
	if err != nil {
		return fmt.Errorf("board %s: %w", boardPath, err)
	}
	logger.Info("board loaded", "path", boardPath, "size", b.Size, "holes", in.N())

	baseSeed := opts.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	rep := solveReport{
		RunID:    runID,
		Board:    boardPath,
		Holes:    in.N(),
		MSTBound: tsp.MSTLowerBound(in),
		OneTree:  tsp.OneTreeBound(in),
	}

	var trace *tracelog.Writer
	if !f.noLog {
		rep.LogFile = f.logFile
		if rep.LogFile == "" {
			rep.LogFile = defaultLogPath(boardPath)
		}
		if trace, err = tracelog.Create(rep.LogFile); err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer trace.Close()
		trace.Header(runID)
	}

	costs := make([]float64, 0, f.repeat)
	for k := 0; k < f.repeat; k++ {
		o := opts
		o.Seed = baseSeed
		if k > 0 {
			o.Seed = tsp.DeriveSeed(baseSeed, uint64(k))
		}
		// Only the first run is traced.
		if k == 0 && trace != nil {
			o.Sink = trace
		}

		rr, err := solveOnce(ctx, in, o, logger)
		if err != nil {
			return err
		}
		rep.Runs = append(rep.Runs, rr)
		costs = append(costs, rr.Cost)
		if k == 0 {
			rep.FinalValue = rr.Cost
		}
		if k == 0 || rr.Cost < rep.Best.Cost {
			rep.Best = rr
		}
		if ctx.Err() != nil {
			logger.Warn("interrupted", "completed_runs", k+1)
			break
		}
	}

	if trace != nil {
		if err := trace.Close(); err != nil {
			return fmt.Errorf("log file: %w", err)
		}
	}

	if len(costs) > 1 {
		rep.Mean, rep.StdDev = stat.MeanStdDev(costs, nil)
		sorted := append([]float64(nil), costs...)
		sort.Float64s(sorted)
		rep.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	} else {
		rep.Runs = nil
	}

	if f.exact {
		if in.N() > tsp.MaxExactPoints {
			logger.Warn("board too large for exact solve", "holes", in.N(), "max", tsp.MaxExactPoints)
		} else {
			ex, err := tsp.SolveExact(in)
			if err != nil {
				return err
			}
			opt := ex.Cost
			rep.Optimum = &opt
			if opt > 0 {
				gap := 100 * (rep.Best.Cost - opt) / opt
				rep.OptimumGap = &gap
			}
		}
	}

	return writeSolveReport(cmd.OutOrStdout(), global.GetOutputFormat(), &rep)
}

// solveOnce runs a single search and reports it.
func solveOnce(ctx context.Context, in *tsp.Instance, o tsp.Options, logger *slog.Logger) (runReport, error) {
	s, err := tsp.NewSolver(in, o)
	if err != nil {
		return runReport{}, err
	}

	begin := time.Now()
	res, err := s.Solve(ctx, tsp.NewSolution(in.N()))
	elapsed := time.Since(begin)
	if err != nil {
		logger.Error("search failed", "seed", o.Seed, "error", err)
		return runReport{}, err
	}
	logger.Debug("search finished",
		"seed", o.Seed,
		"cost", res.Cost,
		"initial", res.InitialCost,
		"iterations", res.Iterations,
		"reason", res.Reason.String(),
		"elapsed", elapsed)

	return runReport{
		Seed:       o.Seed,
		Tour:       res.Tour,
		Cost:       res.Cost,
		Initial:    res.InitialCost,
		Iterations: res.Iterations,
		Reason:     res.Reason.String(),
		ElapsedMS:  float64(elapsed.Microseconds()) / 1000,
	}, nil
}

func writeSolveReport(w io.Writer, format OutputFormat, rep *solveReport) error {
	if format == FormatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rep)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Board: %s (%d holes)\n", rep.Board, rep.Holes)
	fmt.Fprintf(&sb, "Run: %s\n", rep.RunID)
	// The per-run lines describe the logged run.
	first := rep.Best
	if len(rep.Runs) > 0 {
		first = rep.Runs[0]
	}
	fmt.Fprintf(&sb, "Seed: %d\n", first.Seed)
	fmt.Fprintf(&sb, "Tour: %s\n", joinInts(first.Tour))
	fmt.Fprintf(&sb, "Initial value: %g\n", first.Initial)
	fmt.Fprintf(&sb, "Iterations: %d (%s)\n", first.Iterations, first.Reason)
	fmt.Fprintf(&sb, "Elapsed: %.3f ms\n", first.ElapsedMS)
	fmt.Fprintf(&sb, "Lower bounds: mst=%g one-tree=%g\n", rep.MSTBound, rep.OneTree)
	if len(rep.Runs) > 1 {
		fmt.Fprintf(&sb, "Runs: %d mean=%g std=%g median=%g\n", len(rep.Runs), rep.Mean, rep.StdDev, rep.Median)
		fmt.Fprintf(&sb, "Best of %d: %g (seed %d)\n", len(rep.Runs), rep.Best.Cost, rep.Best.Seed)
	}
	if rep.Optimum != nil {
		fmt.Fprintf(&sb, "Optimum: %g", *rep.Optimum)
		if rep.OptimumGap != nil {
			fmt.Fprintf(&sb, " (gap %.2f%%)", *rep.OptimumGap)
		}
		sb.WriteByte('\n')
	}
	if rep.LogFile != "" {
		fmt.Fprintf(&sb, "Log: %s\n", rep.LogFile)
	}
	// Same value as the log's FINAL_VALUE line.
	fmt.Fprintf(&sb, "FINAL_VALUE: %g\n", rep.FinalValue)

	_, err := io.WriteString(w, sb.String())
	return err
}

func joinInts(seq []int) string {
	parts := make([]string, len(seq))
	for k, v := range seq {
		parts[k] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
