package tsp

import "errors"

// Sentinel errors. Every message is prefixed with "tsp: " and callers match
// them with errors.Is.
var (
	// ErrTooFewPoints is returned when an instance has fewer than two points.
	ErrTooFewPoints = errors.New("tsp: instance needs at least two points")

	// ErrTooManyPoints is returned by SolveExact above MaxExactPoints.
	ErrTooManyPoints = errors.New("tsp: too many points for exact solve")

	// ErrDimensionMismatch signals a tour whose length or contents do not match
	// the instance (wrong length, open cycle, duplicate or out-of-range node).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange signals a tour that does not start and end at the depot.
	ErrStartOutOfRange = errors.New("tsp: tour must start and end at node 0")

	// ErrMoveOutOfRange signals a 2-opt move outside 1 ≤ From < To ≤ n-1.
	ErrMoveOutOfRange = errors.New("tsp: move out of range")

	// ErrInvalidOption signals a negative, NaN or inconsistent option value.
	ErrInvalidOption = errors.New("tsp: invalid option")

	// ErrInvalidThresholds signals shakeThreshold ≤ tenureAdaptThreshold,
	// i.e. the search would shake before it ever adapts its tenure.
	ErrInvalidThresholds = errors.New("tsp: shake threshold must exceed tenure adapt threshold")

	// ErrSearchAborted is returned when the search loop fails unexpectedly.
	// No solution accompanies it.
	ErrSearchAborted = errors.New("tsp: search aborted")
)

// StopReason tells why a search returned.
type StopReason int

const (
	// StopNone is the zero value; it is never returned by a finished search.
	StopNone StopReason = iota
	// StopNoLegalNeighbor: every candidate move was tabu and none met aspiration,
	// or the neighborhood was empty.
	StopNoLegalNeighbor
	// StopIterationBudget: the iteration counter exceeded MaxIterations.
	StopIterationBudget
	// StopCanceled: the context was done before the budget ran out.
	StopCanceled
)

// String returns a short label for r.
func (r StopReason) String() string {
	switch r {
	case StopNoLegalNeighbor:
		return "no-legal-neighbor"
	case StopIterationBudget:
		return "iteration-budget"
	case StopCanceled:
		return "canceled"
	default:
		return "none"
	}
}

// Result holds the outcome of a search.
type Result struct {
	// Tour is the best sequence found, starting and ending at 0.
	// For n points, len(Tour) == n+1 and Tour[0]==Tour[n]==0.
	Tour []int

	// Cost is the closed-tour length of Tour.
	Cost float64

	// InitialCost is the length of the tour the search started from.
	InitialCost float64

	// Iterations is the number of iterations entered, including the last one.
	Iterations int

	// Reason tells which terminal state ended the search.
	Reason StopReason
}
