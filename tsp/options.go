package tsp

import "math/rand"

// Options configures a Solver.
//
// Zero values are not defaults: start from DefaultOptions and override the
// fields you need. MaxTenure == 0 means "resolve from n at Solve time"; every
// other numeric field is taken verbatim.
type Options struct {
	// Alpha scales n into the no-improvement threshold: floor(Alpha·n).
	// That threshold is also the shake threshold.
	Alpha float64

	// Beta scales the no-improvement threshold into the tenure-adapt
	// threshold: floor(Beta·floor(Alpha·n)). It must stay below the shake
	// threshold.
	Beta float64

	// DecayFactor is the amount added to an edge frequency on every refresh.
	DecayFactor float64

	// Lambda weighs the frequency penalty against the raw 2-opt delta.
	Lambda float64

	// TabuLength is the initial tenure. 0 selects max(5, n/10).
	TabuLength int

	// MinTenure floors the adaptive tenure.
	MinTenure int

	// MaxTenure caps the adaptive tenure. 0 selects max(initial, n).
	MaxTenure int

	// DecayInterval is the number of iterations between frequency refreshes.
	// 0 disables periodic refreshes; refreshes after tenure doubling still run.
	DecayInterval int

	// EliteSize bounds the elite pool.
	EliteSize int

	// MaxIterations is the iteration budget. The search stops once the
	// counter exceeds it.
	MaxIterations int

	// Epsilon is the improvement tolerance used by aspiration and incumbent
	// updates.
	Epsilon float64

	// Seed feeds the default generator when Rand is nil (0 ⇒ fixed stream).
	Seed int64

	// Rand, when set, is used as-is. It must not be shared with another
	// concurrent Solve.
	Rand *rand.Rand

	// Init randomizes the initial tour before the search starts.
	// InitIdentity keeps the tour given to Solve.
	Init InitPolicy

	// EnableFrequencyPenalty turns the long-term memory on.
	EnableFrequencyPenalty bool

	// EnableEliteRestart allows shakes to restart from an elite member.
	EnableEliteRestart bool

	// EnableShaking turns the whole shake step on.
	EnableShaking bool

	// Sink receives search events. nil is a no-op.
	Sink EventSink
}

// Default parameter values.
const (
	DefaultAlpha         = 0.75
	DefaultBeta          = 0.5
	DefaultDecayFactor   = 0.9
	DefaultLambda        = 0.01
	DefaultTabuLength    = 10
	DefaultMinTenure     = 5
	DefaultDecayInterval = 100
	DefaultEliteSize     = 5
	DefaultMaxIterations = 1000
	DefaultEpsilon       = 0.01
)

// DefaultOptions returns the documented fallbacks with every mechanism on.
// The initial tour is used as given (InitIdentity).
func DefaultOptions() Options {
	return Options{
		Alpha:                  DefaultAlpha,
		Beta:                   DefaultBeta,
		DecayFactor:            DefaultDecayFactor,
		Lambda:                 DefaultLambda,
		TabuLength:             DefaultTabuLength,
		MinTenure:              DefaultMinTenure,
		MaxTenure:              0,
		DecayInterval:          DefaultDecayInterval,
		EliteSize:              DefaultEliteSize,
		MaxIterations:          DefaultMaxIterations,
		Epsilon:                DefaultEpsilon,
		Init:                   InitIdentity,
		EnableFrequencyPenalty: true,
		EnableEliteRestart:     true,
		EnableShaking:          true,
	}
}
