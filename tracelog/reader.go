package tracelog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/drillpath/tsp"
)

var (
	// ErrNoFinalValue is returned when a log has no FINAL_VALUE line.
	ErrNoFinalValue = errors.New("tracelog: no FINAL_VALUE line")

	// ErrMalformedLine is returned for a line whose payload cannot be parsed.
	ErrMalformedLine = errors.New("tracelog: malformed line")
)

const finalValueToken = "FINAL_VALUE"

// ReadFinalValue scans r for the first line starting with FINAL_VALUE followed
// by ':' or whitespace, and returns the number after it.
func ReadFinalValue(r io.Reader) (float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		v, ok, err := parseFinalValue(sc.Text())
		if err != nil {
			return 0, err
		}
		if ok {
			return v, nil
		}
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}

	return 0, ErrNoFinalValue
}

// parseFinalValue reports whether line is a FINAL_VALUE record and parses it.
func parseFinalValue(line string) (float64, bool, error) {
	rest, ok := strings.CutPrefix(line, finalValueToken)
	if !ok || rest == "" {
		return 0, false, nil
	}
	switch rest[0] {
	case ':', ' ', '\t':
	default:
		return 0, false, nil
	}
	rest = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), ":"))
	v, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	return v, true, nil
}

// maxLine bounds a single log line; tour lines grow with the board.
const maxLine = 16 << 20

// Step is one iteration as recorded in the log.
type Step struct {
	Iter  int
	Tour  []int
	Value float64
	Move  tsp.Move
	Moved bool
}

// Trace is a parsed search log.
type Trace struct {
	RunID        string
	StartTour    []int
	StartValue   float64
	Steps        []Step
	Improvements []float64
	Shakes       int
	Refreshes    int
	FinalTour    []int
	FinalValue   float64
	HasFinal     bool
	Aborted      string
	TenureNote   string
}

// Read parses a complete log written by Writer.
func Read(r io.Reader) (*Trace, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		tr        Trace
		started   bool
		wantFinal bool
		cur       *Step
		line      string
		err       error
	)
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if wantFinal {
			if tr.FinalTour, err = parseTour(line); err != nil {
				return nil, err
			}
			wantFinal = false
			continue
		}

		key, rest, _ := strings.Cut(line, " ")
		switch key {
		case "RUN":
			tr.RunID = rest
		case "TOUR":
			seq, perr := parseTour(rest)
			if perr != nil {
				return nil, perr
			}
			if cur != nil {
				cur.Tour = seq
			} else if !started {
				tr.StartTour = seq
			}
		case "VALUE":
			v, perr := parseValue(line, rest)
			if perr != nil {
				return nil, perr
			}
			if cur != nil {
				cur.Value = v
			} else if !started {
				tr.StartValue = v
				started = true
			}
		case "ITERATION":
			it, perr := strconv.Atoi(rest)
			if perr != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			tr.Steps = append(tr.Steps, Step{Iter: it})
			cur = &tr.Steps[len(tr.Steps)-1]
		case "MOVE":
			mv, perr := parseMove(line, rest)
			if perr != nil {
				return nil, perr
			}
			if cur != nil {
				cur.Move = mv
				cur.Moved = true
			}
		case "IMPROVED":
			v, perr := parseValue(line, rest)
			if perr != nil {
				return nil, perr
			}
			tr.Improvements = append(tr.Improvements, v)
		case "ELITE_RESTART", "DOUBLE_BRIDGE":
			tr.Shakes++
		case "FREQUENCY_UPDATE":
			tr.Refreshes++
		case "FINAL_SOLUTION":
			wantFinal = true
		case "ABORTED":
			tr.Aborted = rest
		case "TENURE_CLAMPED":
			tr.TenureNote = rest
		default:
			if v, ok, perr := parseFinalValue(line); perr != nil {
				return nil, perr
			} else if ok {
				tr.FinalValue = v
				tr.HasFinal = true
			}
		}
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}

	return &tr, nil
}

func parseTour(s string) ([]int, error) {
	fields := strings.Fields(s)
	seq := make([]int, len(fields))
	for k, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: tour %q", ErrMalformedLine, s)
		}
		seq[k] = v
	}

	return seq, nil
}

func parseValue(line, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	return v, nil
}

func parseMove(line, s string) (tsp.Move, error) {
	from, to, ok := strings.Cut(s, ",")
	if !ok {
		return tsp.Move{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	a, err1 := strconv.Atoi(strings.TrimSpace(from))
	b, err2 := strconv.Atoi(strings.TrimSpace(to))
	if err1 != nil || err2 != nil {
		return tsp.Move{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	return tsp.Move{From: a, To: b}, nil
}
