// Package tracelog writes and reads the line-oriented search log.
//
// A Writer is a tsp.EventSink. Each search event becomes one or more lines:
//
//	RUN <id>                  optional header
//	TOUR 0 3 1 2 0            initial tour
//	VALUE 12.5                initial value
//	ITERATION 1
//	TOUR 0 3 1 2 0
//	VALUE 12.5
//	MOVE 1 , 2
//	ASPIRATION_ACCEPTED
//	IMPROVED 11.2
//	TENURE_HALVED 5
//	TENURE_DOUBLED 10
//	FREQUENCY_UPDATE
//	ELITE_RESTART 11.9
//	DOUBLE_BRIDGE 13.0
//	NO legal neighbour
//	FINAL_SOLUTION
//	0 1 3 2 0
//	FINAL_VALUE 11.2
//
// The FINAL_VALUE line is read by tuning tools; ReadFinalValue accepts both
// "FINAL_VALUE 1.5" and "FINAL_VALUE: 1.5".
package tracelog

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/katalvlaran/drillpath/tsp"
)

// Writer renders tsp events as log lines. Write errors are sticky: the first
// one stops all further output and is reported by Err, Flush and Close.
type Writer struct {
	mu  sync.Mutex
	bw  *bufio.Writer
	c   io.Closer
	err error
	buf []byte
}

var _ tsp.EventSink = (*Writer)(nil)

// New returns a Writer on w. Close flushes but does not close w.
func New(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Create truncates or creates path and returns a Writer that owns the file.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := New(f)
	w.c = f

	return w, nil
}

// Header writes the RUN line identifying the run.
func (w *Writer) Header(runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.line("RUN " + runID)
}

// Emit implements tsp.EventSink.
func (w *Writer) Emit(e tsp.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return
	}

	switch e.Kind {
	case tsp.EventStart:
		w.tour("TOUR ", e.Tour)
		w.value("VALUE ", e.Value)
		if e.Detail != "" {
			w.line("TENURE_CLAMPED " + e.Detail)
		}
	case tsp.EventIteration:
		w.line("ITERATION " + strconv.Itoa(e.Iter))
		w.tour("TOUR ", e.Tour)
		w.value("VALUE ", e.Value)
	case tsp.EventMove:
		w.line("MOVE " + strconv.Itoa(e.Move.From) + " , " + strconv.Itoa(e.Move.To))
	case tsp.EventAspiration:
		w.line("ASPIRATION_ACCEPTED")
	case tsp.EventImproved:
		w.value("IMPROVED ", e.Value)
	case tsp.EventIntensify:
		w.line("TENURE_HALVED " + strconv.Itoa(e.Tenure))
	case tsp.EventDiversify:
		w.line("TENURE_DOUBLED " + strconv.Itoa(e.Tenure))
	case tsp.EventFrequencyRefresh:
		w.line("FREQUENCY_UPDATE")
	case tsp.EventEliteRestart:
		w.value("ELITE_RESTART ", e.Value)
	case tsp.EventDoubleBridge:
		w.value("DOUBLE_BRIDGE ", e.Value)
	case tsp.EventNoLegalNeighbor:
		w.line("NO legal neighbour")
	case tsp.EventFinal:
		w.line("FINAL_SOLUTION")
		w.tour("", e.Tour)
		w.value("FINAL_VALUE ", e.Value)
	case tsp.EventAborted:
		w.line("ABORTED " + e.Detail)
	}
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.err
}

// Flush writes buffered lines to the underlying writer.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err == nil {
		w.err = w.bw.Flush()
	}

	return w.err
}

// Close flushes and, for Writers returned by Create, closes the file.
func (w *Writer) Close() error {
	err := w.Flush()
	if w.c != nil {
		if cerr := w.c.Close(); err == nil {
			err = cerr
		}
		w.c = nil
	}

	return err
}

func (w *Writer) line(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.bw.WriteString(s); err != nil {
		w.err = err
		return
	}
	w.err = w.bw.WriteByte('\n')
}

func (w *Writer) value(prefix string, v float64) {
	w.buf = append(w.buf[:0], prefix...)
	w.buf = strconv.AppendFloat(w.buf, v, 'f', -1, 64)
	w.line(string(w.buf))
}

func (w *Writer) tour(prefix string, seq []int) {
	w.buf = append(w.buf[:0], prefix...)
	for k, v := range seq {
		if k > 0 {
			w.buf = append(w.buf, ' ')
		}
		w.buf = strconv.AppendInt(w.buf, int64(v), 10)
	}
	w.line(string(w.buf))
}
