// Package grid models the patrol city: a square matrix of cells, each either
// an impassable block or a road segment carrying a travel cost in 0..9.
//
// What:
//
//   - Grid wraps a square [][]Cell and is immutable once built.
//   - Point addresses a cell as (X, Y) with X the column and Y the row.
//   - Direction names the four unit moves U, D, L, R used by routes.
//   - Parse reads the plain-text city description.
//
// Input format (whitespace separated):
//
//	n
//	start_row start_col
//	n rows of n characters, '#' for a block or '0'..'9' for a road cost
//
// Costs are paid on entry: moving into a road cell adds that cell's cost.
//
// Errors:
//
//   - ErrEmptyGrid: the grid has no rows.
//   - ErrNonSquare: a row length differs from the number of rows.
//   - ErrBadCell: a character other than '#' or a digit.
//   - ErrMalformedInput: missing or non-numeric header tokens.
//   - ErrStartOutOfBounds, ErrStartBlocked: the start cell is unusable.
package grid
