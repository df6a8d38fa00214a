package tsp

import "sync"

// EventKind labels a search event.
type EventKind int

const (
	// EventStart is emitted once with the initial tour and its value. Detail
	// is set when the requested tenure had to be clamped to the instance.
	EventStart EventKind = iota
	// EventIteration opens an iteration with the current tour and value.
	EventIteration
	// EventMove reports the move chosen for this iteration.
	EventMove
	// EventNoLegalNeighbor reports that no admissible move exists.
	EventNoLegalNeighbor
	// EventAspiration reports that the chosen move was tabu but admitted.
	EventAspiration
	// EventImproved reports a new incumbent.
	EventImproved
	// EventIntensify reports a tenure halving; Tenure holds the new length.
	EventIntensify
	// EventDiversify reports a tenure doubling; Tenure holds the new length.
	EventDiversify
	// EventFrequencyRefresh reports a long-term memory update.
	EventFrequencyRefresh
	// EventEliteRestart reports a restart from an elite member.
	EventEliteRestart
	// EventDoubleBridge reports a double-bridge perturbation.
	EventDoubleBridge
	// EventFinal closes the search with the best tour and its value.
	EventFinal
	// EventAborted reports a search that failed; Detail holds the cause.
	EventAborted
)

var eventKindNames = [...]string{
	EventStart:            "start",
	EventIteration:        "iteration",
	EventMove:             "move",
	EventNoLegalNeighbor:  "no-legal-neighbor",
	EventAspiration:       "aspiration",
	EventImproved:         "improved",
	EventIntensify:        "intensify",
	EventDiversify:        "diversify",
	EventFrequencyRefresh: "frequency-refresh",
	EventEliteRestart:     "elite-restart",
	EventDoubleBridge:     "double-bridge",
	EventFinal:            "final",
	EventAborted:          "aborted",
}

// String returns a short label for k.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}

	return eventKindNames[k]
}

// Event is one observable decision of the search.
// Only the fields relevant to Kind are set. Tour is a copy owned by the
// receiver.
type Event struct {
	Kind   EventKind
	Iter   int
	Tour   []int
	Value  float64
	Move   Move
	Tenure int
	Reason StopReason
	Detail string
}

// EventSink receives search events synchronously, on the goroutine running
// Solve. Implementations must not retain the Solver.
type EventSink interface {
	Emit(Event)
}

// NopSink discards every event.
type NopSink struct{}

// Emit implements EventSink.
func (NopSink) Emit(Event) {}

// EventFunc adapts a function to EventSink.
type EventFunc func(Event)

// Emit implements EventSink.
func (f EventFunc) Emit(e Event) { f(e) }

// Collector records every event it receives. It is safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	events []Event
}

// Emit implements EventSink.
func (c *Collector) Emit(e Event) {
	c.mu.Lock()
	c.events = append(c.events, e)
	c.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)

	return out
}

// Count returns how many events of kind k were recorded.
func (c *Collector) Count(k EventKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	for _, e := range c.events {
		if e.Kind == k {
			n++
		}
	}

	return n
}
