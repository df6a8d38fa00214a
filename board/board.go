// Package board provides the drilling-board grid and its text codec.
//
// Cells with value Hole become tour nodes; node i is the i-th hole met while
// scanning rows top to bottom and, inside a row, columns left to right.
package board

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// NewBoard constructs a Board from a non-empty, square 2D slice of 0/1 values.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs from the row count,
// ErrCellValue if any value is not Empty or Hole.
// Complexity: O(S²) time and memory.
func NewBoard(cells [][]int) (*Board, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	s := len(cells)
	for _, row := range cells {
		if len(row) != s {
			return nil, ErrNonRectangular
		}
		for _, v := range row {
			if v != Empty && v != Hole {
				return nil, ErrCellValue
			}
		}
	}
	// Deep copy to prevent external mutation
	cp := make([][]int, s)
	for y := 0; y < s; y++ {
		cp[y] = make([]int, s)
		copy(cp[y], cells[y])
	}

	return &Board{Size: s, Cells: cp}, nil
}

// allocHint caps the capacity Parse reserves up front from the declared size.
const allocHint = 1024

// Parse reads a board in text form: the size S followed by S×S cell values
// in row-major order. Memory grows with the cells actually read, so a header
// announcing more cells than the input holds yields ErrTruncated.
// Complexity: O(S²).
func Parse(r io.Reader) (*Board, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	next := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, ErrTruncated
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformed, sc.Text())
		}
		return v, nil
	}

	size, err := next()
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, ErrEmptyGrid
	}

	// Rows grow as cells arrive; the header alone never sizes an allocation.
	cells := make([][]int, 0, min(size, allocHint))
	var x, y, v int
	for y = 0; y < size; y++ {
		row := make([]int, 0, min(size, allocHint))
		for x = 0; x < size; x++ {
			if v, err = next(); err != nil {
				return nil, err
			}
			if v != Empty && v != Hole {
				return nil, fmt.Errorf("%w: %d at row %d, column %d", ErrCellValue, v, y, x)
			}
			row = append(row, v)
		}
		cells = append(cells, row)
	}

	return &Board{Size: size, Cells: cells}, nil
}

// Load opens path and parses it with Parse.
func Load(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("board: open %s: %w", path, err)
	}
	defer f.Close()

	b, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("board: parse %s: %w", path, err)
	}

	return b, nil
}

// Holes returns the drilled cells in row-major scan order.
// The index of a point in the result is its node index.
// Complexity: O(S²).
func (b *Board) Holes() []Point {
	pts := make([]Point, 0, b.HoleCount())
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			if b.Cells[y][x] == Hole {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}

	return pts
}

// HoleCount reports how many cells are marked as holes.
// Complexity: O(S²).
func (b *Board) HoleCount() int {
	var n int
	for _, row := range b.Cells {
		for _, v := range row {
			if v == Hole {
				n++
			}
		}
	}

	return n
}

// Encode writes b in the format accepted by Parse.
func (b *Board) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", b.Size); err != nil {
		return err
	}
	for _, row := range b.Cells {
		for x, v := range row {
			if x > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.Itoa(v)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
