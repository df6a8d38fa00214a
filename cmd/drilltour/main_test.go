package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drillpath/tracelog"
	"github.com/katalvlaran/drillpath/tsp"
)

// crossBoard has holes on the corners and center of a 3×3 grid; the optimal
// tour costs 6+2√2.
const crossBoard = `3
1 0 1
0 1 0
1 0 1
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

//----------------------------------------------------------------------------//
// Flags and parameters
//----------------------------------------------------------------------------//

func TestGlobalFlags_Validate(t *testing.T) {
	assert.NoError(t, (&GlobalFlags{OutputFormat: "text"}).Validate())
	assert.NoError(t, (&GlobalFlags{OutputFormat: "json", Verbose: true}).Validate())
	assert.Error(t, (&GlobalFlags{OutputFormat: "yaml"}).Validate())
	assert.Error(t, (&GlobalFlags{OutputFormat: "text", Verbose: true, Quiet: true}).Validate())
}

func TestGlobalFlags_LogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, (&GlobalFlags{}).LogLevel())
	assert.Equal(t, slog.LevelDebug, (&GlobalFlags{Verbose: true}).LogLevel())
	assert.Equal(t, slog.LevelWarn, (&GlobalFlags{Quiet: true}).LogLevel())
}

func TestParseInitPolicy(t *testing.T) {
	for name, want := range map[string]tsp.InitPolicy{
		"swaps":    tsp.InitSwaps,
		"uniform":  tsp.InitUniform,
		"identity": tsp.InitIdentity,
	} {
		got, err := parseInitPolicy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := parseInitPolicy("random")
	assert.Error(t, err)
}

func TestLoadParams_Apply(t *testing.T) {
	path := writeFile(t, "params.yaml", `
alpha: 2.5
beta: 0.25
tabu_length: 7
max_iterations: 321
seed: 99
init: uniform
shaking: false
`)
	p, err := LoadParams(path)
	require.NoError(t, err)

	o := tsp.DefaultOptions()
	require.NoError(t, p.Apply(&o))
	assert.Equal(t, 2.5, o.Alpha)
	assert.Equal(t, 0.25, o.Beta)
	assert.Equal(t, 7, o.TabuLength)
	assert.Equal(t, 321, o.MaxIterations)
	assert.Equal(t, int64(99), o.Seed)
	assert.Equal(t, tsp.InitUniform, o.Init)
	assert.False(t, o.EnableShaking)

	// Untouched keys keep their defaults.
	d := tsp.DefaultOptions()
	assert.Equal(t, d.Lambda, o.Lambda)
	assert.Equal(t, d.EliteSize, o.EliteSize)
	assert.True(t, o.EnableEliteRestart)
}

func TestLoadParams_Errors(t *testing.T) {
	_, err := LoadParams(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadParams(writeFile(t, "unknown.yaml", "alpah: 1\n"))
	assert.Error(t, err, "unknown keys are rejected")

	p, err := LoadParams(writeFile(t, "badinit.yaml", "init: sorted\n"))
	require.NoError(t, err)
	o := tsp.DefaultOptions()
	assert.Error(t, p.Apply(&o))

	p, err = LoadParams(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	require.NoError(t, p.Apply(&o))
	assert.Equal(t, tsp.DefaultOptions().Alpha, o.Alpha)
}

func TestDefaultLogPath(t *testing.T) {
	assert.Equal(t, "boards/b1_log.txt", defaultLogPath("boards/b1.txt"))
	assert.Equal(t, "b2_log.txt", defaultLogPath("b2"))
}

//----------------------------------------------------------------------------//
// Commands
//----------------------------------------------------------------------------//

func TestSolve_TextWritesLog(t *testing.T) {
	boardPath := writeFile(t, "cross.txt", crossBoard)

	out, _, err := execute(t, "solve", boardPath, "--seed", "7", "--max-iterations", "300")
	require.NoError(t, err)
	assert.Contains(t, out, "Board: "+boardPath+" (5 holes)")
	assert.Contains(t, out, "Seed: 7\n")
	assert.Contains(t, out, "FINAL_VALUE: ")

	logPath := strings.TrimSuffix(boardPath, ".txt") + "_log.txt"
	f, err := os.Open(logPath)
	require.NoError(t, err)
	defer f.Close()
	tr, err := tracelog.Read(f)
	require.NoError(t, err)
	assert.True(t, tr.HasFinal)
	assert.NotEmpty(t, tr.RunID)
	assert.GreaterOrEqual(t, tr.FinalValue, 6+2*math.Sqrt2-1e-9)
	assert.Len(t, tr.FinalTour, 6)
}

func TestSolve_JSONWithExactAndRepeat(t *testing.T) {
	boardPath := writeFile(t, "cross.txt", crossBoard)
	logPath := filepath.Join(t.TempDir(), "run.log")

	out, _, err := execute(t, "-o", "json", "-q", "solve", boardPath,
		"--seed", "11", "--repeat", "3", "--exact", "--log-file", logPath)
	require.NoError(t, err)

	var rep solveReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 5, rep.Holes)
	assert.Equal(t, logPath, rep.LogFile)
	require.Len(t, rep.Runs, 3)
	assert.Equal(t, int64(11), rep.Runs[0].Seed)
	assert.NotEqual(t, rep.Runs[0].Seed, rep.Runs[1].Seed)

	require.NotNil(t, rep.Optimum)
	assert.InDelta(t, 6+2*math.Sqrt2, *rep.Optimum, 1e-9)
	require.NotNil(t, rep.OptimumGap)
	assert.GreaterOrEqual(t, *rep.OptimumGap, -1e-9)
	assert.LessOrEqual(t, rep.OneTree, *rep.Optimum+1e-9)
	assert.LessOrEqual(t, rep.MSTBound, *rep.Optimum+1e-9)

	for _, r := range rep.Runs {
		assert.GreaterOrEqual(t, r.Cost, rep.Best.Cost)
	}
	assert.GreaterOrEqual(t, rep.Median, rep.Best.Cost)

	// The log holds the first run only.
	f, err := os.Open(logPath)
	require.NoError(t, err)
	defer f.Close()
	v, err := tracelog.ReadFinalValue(f)
	require.NoError(t, err)
	assert.InDelta(t, rep.Runs[0].Cost, v, 1e-9)
	assert.Equal(t, rep.Runs[0].Cost, rep.FinalValue)
}

// TestSolve_RepeatStdoutMatchesLog checks that stdout and the log agree on
// FINAL_VALUE when several runs are made.
func TestSolve_RepeatStdoutMatchesLog(t *testing.T) {
	boardPath := writeFile(t, "ring.txt", `6
0 1 1 0 1 0
1 0 0 0 0 1
1 0 1 1 0 0
0 0 0 0 0 1
1 0 1 0 0 1
0 1 0 1 1 0
`)
	logPath := filepath.Join(t.TempDir(), "ring.log")

	out, _, err := execute(t, "-q", "solve", boardPath, "--seed", "21", "--repeat", "4",
		"--max-iterations", "40", "--log-file", logPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Best of 4: ")
	assert.Contains(t, out, "Seed: 21\n")

	fromStdout, err := tracelog.ReadFinalValue(strings.NewReader(out))
	require.NoError(t, err)

	f, err := os.Open(logPath)
	require.NoError(t, err)
	defer f.Close()
	fromLog, err := tracelog.ReadFinalValue(f)
	require.NoError(t, err)

	assert.InDelta(t, fromLog, fromStdout, 1e-9)
}

func TestSolve_ParamsFileAndFlagOverride(t *testing.T) {
	boardPath := writeFile(t, "cross.txt", crossBoard)
	params := writeFile(t, "p.yaml", "max_iterations: 5\nseed: 3\n")

	out, _, err := execute(t, "-o", "json", "solve", boardPath, "--no-log",
		"--params", params, "--max-iterations", "12")
	require.NoError(t, err)

	var rep solveReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, int64(3), rep.Best.Seed, "seed comes from the file")
	assert.Empty(t, rep.LogFile)
	if rep.Best.Reason == tsp.StopIterationBudget.String() {
		assert.Equal(t, 13, rep.Best.Iterations, "flag overrides the file")
	}
	_, err = os.Stat(strings.TrimSuffix(boardPath, ".txt") + "_log.txt")
	assert.True(t, os.IsNotExist(err))
}

func TestSolve_Errors(t *testing.T) {
	boardPath := writeFile(t, "cross.txt", crossBoard)

	_, _, err := execute(t, "solve", filepath.Join(t.TempDir(), "none.txt"))
	assert.Error(t, err)

	_, _, err = execute(t, "solve", writeFile(t, "bad.txt", "2\n1 0\n0\n"), "--no-log")
	assert.Error(t, err)

	_, _, err = execute(t, "solve", boardPath, "--no-log", "--beta", "1")
	assert.ErrorIs(t, err, tsp.ErrInvalidThresholds)

	_, _, err = execute(t, "solve", boardPath, "--no-log", "--repeat", "0")
	assert.Error(t, err)

	_, _, err = execute(t, "solve", boardPath, "--no-log", "--init", "sorted")
	assert.Error(t, err)

	_, _, err = execute(t, "-o", "xml", "solve", boardPath)
	assert.Error(t, err)
}

func TestReplay(t *testing.T) {
	boardPath := writeFile(t, "cross.txt", crossBoard)
	logPath := filepath.Join(t.TempDir(), "cross.log")

	out, _, err := execute(t, "-o", "json", "solve", boardPath, "--seed", "5", "--log-file", logPath)
	require.NoError(t, err)
	var rep solveReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))

	out, _, err = execute(t, "replay", logPath, "--final-value")
	require.NoError(t, err)
	v, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	assert.InDelta(t, rep.Best.Cost, v, 1e-9)

	out, _, err = execute(t, "-o", "json", "replay", logPath)
	require.NoError(t, err)
	var sum replaySummary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, rep.RunID, sum.RunID)
	assert.Equal(t, rep.Best.Iterations, sum.Iterations)
	assert.Equal(t, rep.Best.Tour, sum.FinalTour)
	assert.InDelta(t, rep.Best.Cost, sum.FinalValue, 1e-9)
	assert.InDelta(t, rep.Best.Initial, sum.StartValue, 1e-9)
	assert.LessOrEqual(t, sum.BestSeen, sum.StartValue)

	out, _, err = execute(t, "replay", logPath)
	require.NoError(t, err)
	assert.Contains(t, out, "FINAL_VALUE: ")

	_, _, err = execute(t, "replay", writeFile(t, "empty.log", ""), "--final-value")
	assert.ErrorIs(t, err, tracelog.ErrNoFinalValue)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "drilltour "+version)
}
