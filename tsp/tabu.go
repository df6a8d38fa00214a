package tsp

import (
	"context"
	"fmt"
	"math/rand"
)

// Solver runs adaptive tabu search over one Instance.
//
// A Solver only holds immutable configuration; every Solve call builds its own
// memories, elite pool and counters. One Solver may serve many sequential
// calls, and independent Solvers may run concurrently. Concurrent Solve calls
// on the same Solver are safe only when Options.Rand is nil.
type Solver struct {
	in   *Instance
	opts Options
	p    params
}

// NewSolver validates opts against in and returns a ready Solver.
//
// Errors:
//   - ErrTooFewPoints if in is nil.
//   - ErrInvalidOption for negative, NaN or inconsistent options.
//   - ErrInvalidThresholds when floor(alpha·n) ≤ floor(beta·floor(alpha·n)).
func NewSolver(in *Instance, opts Options) (*Solver, error) {
	if in == nil {
		return nil, ErrTooFewPoints
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	p, err := resolve(opts, in.N())
	if err != nil {
		return nil, err
	}

	return &Solver{in: in, opts: opts, p: p}, nil
}

// Instance returns the instance the Solver works on.
func (s *Solver) Instance() *Instance { return s.in }

// Thresholds returns the resolved no-improvement, tenure-adapt and shake
// thresholds.
func (s *Solver) Thresholds() (noImprove, adapt, shake int) {
	return s.p.noImprove, s.p.adapt, s.p.shake
}

// Tenure returns the resolved initial tenure and its bounds.
func (s *Solver) Tenure() (initial, min, max int) {
	return s.p.tenure, s.p.minTenure, s.p.maxTenure
}

// Solve searches from initial and returns the best tour found.
//
// initial must be a valid closed tour over the instance; it is copied, never
// mutated. When Options.Init is not InitIdentity the copy is randomized first.
//
// The search ends when no admissible move exists, when the iteration counter
// exceeds MaxIterations, or when ctx is done. All three are normal outcomes
// and return the incumbent with a nil error. ctx is checked once per
// iteration.
//
// An unexpected failure inside the loop returns a zero Result and an error
// wrapping ErrSearchAborted.
func (s *Solver) Solve(ctx context.Context, initial Solution) (res Result, err error) {
	start, err := SolutionFromTour(initial.Sequence, s.in.N())
	if err != nil {
		return Result{}, err
	}

	r := s.newRun()
	defer func() {
		if rec := recover(); rec != nil {
			res = Result{}
			err = fmt.Errorf("%w: %v", ErrSearchAborted, rec)
			r.emitSafe(Event{Kind: EventAborted, Iter: r.iter, Detail: fmt.Sprint(rec)})
		}
	}()

	return r.search(ctx, start), nil
}

// Solve is a convenience wrapper: it builds a Solver and searches from the
// identity tour, randomized according to opts.Init.
func Solve(ctx context.Context, in *Instance, opts Options) (Result, error) {
	s, err := NewSolver(in, opts)
	if err != nil {
		return Result{}, err
	}

	return s.Solve(ctx, NewSolution(in.N()))
}

// run is the mutable state of one Solve call.
type run struct {
	in      *Instance
	o       Options
	p       params
	rng     *rand.Rand
	sink    EventSink
	tracing bool

	tenure *TenureController
	freq   *FrequencyMemory
	elite  *ElitePool

	curr      Solution
	best      Solution
	currValue float64
	bestValue float64
	iter      int
}

func (s *Solver) newRun() *run {
	n := s.in.N()
	r := &run{
		in:     s.in,
		o:      s.opts,
		p:      s.p,
		rng:    s.opts.Rand,
		sink:   s.opts.Sink,
		tenure: NewTenureController(n, s.p.tenure, s.p.minTenure, s.p.maxTenure, s.p.adapt),
		freq:   NewFrequencyMemory(n, s.opts.DecayFactor, s.opts.Lambda, s.opts.EnableFrequencyPenalty),
		elite:  NewElitePool(s.opts.EliteSize),
	}
	if r.rng == nil {
		r.rng = rngFromSeed(s.opts.Seed)
	}
	r.tracing = r.sink != nil
	if !r.tracing {
		r.sink = NopSink{}
	}

	return r
}

// search runs the state machine Init → Iterating → Terminal.
func (r *run) search(ctx context.Context, start Solution) Result {
	// Init.
	r.curr = start
	r.o.Init.Randomize(&r.curr, r.rng)
	r.currValue = Evaluate(r.in, r.curr)
	r.curr.Value = r.currValue
	r.bestValue = r.currValue
	r.best = r.curr.Clone()
	r.elite.Offer(r.curr, r.currValue)
	initial := r.currValue
	r.emit(Event{Kind: EventStart, Tour: r.tour(r.curr), Value: r.currValue, Tenure: r.tenure.Length(), Detail: r.tenureNote()})

	// Iterating.
	var reason StopReason
	for reason == StopNone {
		if ctx.Err() != nil {
			reason = StopCanceled
			break
		}
		r.iter++
		r.emit(Event{Kind: EventIteration, Iter: r.iter, Tour: r.tour(r.curr), Value: r.currValue})

		if r.o.DecayInterval > 0 && r.iter%r.o.DecayInterval == 0 {
			r.refresh()
		}

		c := r.findBestNeighbor()
		if !c.found || r.currValue+c.score >= r.in.Infinite() {
			r.emit(Event{Kind: EventNoLegalNeighbor, Iter: r.iter})
			reason = StopNoLegalNeighbor
			break
		}
		r.step(c)

		if r.iter > r.o.MaxIterations {
			reason = StopIterationBudget
		}
	}

	// Terminal.
	cost := round1e9(Evaluate(r.in, r.best))
	r.emit(Event{Kind: EventFinal, Iter: r.iter, Tour: r.tour(r.best), Value: cost, Reason: reason})

	return Result{
		Tour:        r.best.Clone().Sequence,
		Cost:        cost,
		InitialCost: round1e9(initial),
		Iterations:  r.iter,
		Reason:      reason,
	}
}

// step applies the chosen move and updates incumbent and memories.
func (r *run) step(c candidate) {
	seq := r.curr.Sequence
	r.emit(Event{Kind: EventMove, Iter: r.iter, Move: c.mv})
	if c.tabu {
		r.emit(Event{Kind: EventAspiration, Iter: r.iter, Move: c.mv})
	}

	r.tenure.Touch(seq[c.mv.From], seq[c.mv.To], r.iter)
	if err := Apply2Opt(&r.curr, c.mv); err != nil {
		panic(err)
	}
	r.currValue += c.raw
	r.curr.Value = r.currValue

	if r.currValue < r.bestValue-r.o.Epsilon {
		r.bestValue = r.currValue
		r.best = r.curr.Clone()
		r.elite.Offer(r.best, r.bestValue)
		r.tenure.Intensify()
		r.emit(Event{Kind: EventImproved, Iter: r.iter, Value: r.bestValue})
		r.emit(Event{Kind: EventIntensify, Iter: r.iter, Tenure: r.tenure.Length()})
		return
	}

	if r.tenure.Stagnate() {
		r.emit(Event{Kind: EventDiversify, Iter: r.iter, Tenure: r.tenure.Length()})
		r.refresh()
	}
	if r.o.EnableShaking && r.tenure.Stagnation() >= r.p.shake {
		r.shake()
	}
}

// refresh updates the long-term memory from the current tour.
func (r *run) refresh() {
	if !r.freq.Enabled() {
		return
	}
	r.freq.Refresh(r.curr.Sequence)
	r.emit(Event{Kind: EventFrequencyRefresh, Iter: r.iter})
}

// shake restarts from an elite member with probability ½ when allowed,
// otherwise applies a double-bridge. Either way the stagnation episode ends.
func (r *run) shake() {
	restarted := false
	if r.o.EnableEliteRestart && r.elite.Len() > 0 && r.rng.Intn(2) == 0 {
		if sol, ok := r.elite.Pick(r.rng); ok {
			r.curr = sol
			r.currValue = Evaluate(r.in, r.curr)
			r.curr.Value = r.currValue
			restarted = true
			r.emit(Event{Kind: EventEliteRestart, Iter: r.iter, Value: r.currValue})
		}
	}
	if !restarted && DoubleBridge(&r.curr, r.rng) {
		r.currValue = Evaluate(r.in, r.curr)
		r.curr.Value = r.currValue
		r.emit(Event{Kind: EventDoubleBridge, Iter: r.iter, Value: r.currValue})
	}
	r.tenure.ResetEpisode()
}

// tenureNote describes a requested tenure that did not fit the instance, or
// returns "" when it was used as given.
func (r *run) tenureNote() string {
	if r.p.tenure == r.p.requested {
		return ""
	}

	return fmt.Sprintf("tenure %d (requested %d, bounds %d..%d)", r.p.tenure, r.p.requested, r.p.minTenure, r.p.maxTenure)
}

func (r *run) emit(e Event) { r.sink.Emit(e) }

// emitSafe is emit for the abort path, where the sink itself may be the
// source of the failure.
func (r *run) emitSafe(e Event) {
	defer func() { _ = recover() }()
	r.sink.Emit(e)
}

// tour returns a copy of s for an event, or nil when nobody listens.
func (r *run) tour(s Solution) []int {
	if !r.tracing {
		return nil
	}

	return s.Clone().Sequence
}
