// Package board models a square drilling board and reads it from its plain-text
// description.
//
// What:
//
//   - Board wraps an S×S grid of 0/1 cells; a 1 marks a hole to be drilled.
//   - Holes lists the drilled cells as (column,row) points in row-major scan order.
//   - Parse / Load read the text format; Encode writes it back.
//
// Why:
//
//   - The row-major scan order fixes node indices for every downstream solver,
//     so the same board always yields the same instance.
//
// Format:
//
//	S
//	c(0,0) c(0,1) … c(0,S-1)
//	…
//	c(S-1,0) …     c(S-1,S-1)
//
// Tokens are whitespace separated; line breaks carry no meaning.
//
// Complexity:
//
//   - Parse, NewBoard, Holes, Encode: O(S²) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: size is zero or negative, or the grid has no rows.
//   - ErrNonRectangular: rows have differing lengths or the grid is not square.
//   - ErrCellValue: a cell is neither 0 nor 1.
//   - ErrMalformed: a token is not an integer.
//   - ErrTruncated: the stream ends before S×S cells were read.
package board
