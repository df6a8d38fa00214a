// Package board defines core types and sentinel errors for drilling boards.
package board

import "errors"

// Sentinel errors for board operations.
var (
	// ErrEmptyGrid indicates a board with no cells.
	ErrEmptyGrid = errors.New("board: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths or a non-square grid.
	ErrNonRectangular = errors.New("board: grid must be square")
	// ErrCellValue indicates a cell value other than 0 or 1.
	ErrCellValue = errors.New("board: cell value must be 0 or 1")
	// ErrMalformed indicates a token that could not be parsed as an integer.
	ErrMalformed = errors.New("board: malformed token")
	// ErrTruncated indicates the input ended before the declared grid was complete.
	ErrTruncated = errors.New("board: unexpected end of input")
)

// Cell values.
const (
	// Empty marks a cell without a hole.
	Empty = 0
	// Hole marks a cell that must be drilled.
	Hole = 1
)

// Point is the position of a hole: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Board is a square S×S grid. Cells[y][x] holds Empty or Hole.
// It is immutable once built.
type Board struct {
	Size  int
	Cells [][]int
}
