package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonSquare indicates a row whose length differs from the row count.
	ErrNonSquare = errors.New("grid: all rows must have exactly n cells")
	// ErrBadCell indicates a cell character other than '#' or '0'..'9'.
	ErrBadCell = errors.New("grid: cell must be '#' or a digit")
	// ErrMalformedInput indicates the textual header could not be read.
	ErrMalformedInput = errors.New("grid: malformed input")
	// ErrStartOutOfBounds indicates a start cell outside the grid.
	ErrStartOutOfBounds = errors.New("grid: start cell out of bounds")
	// ErrStartBlocked indicates a start cell that is a block.
	ErrStartBlocked = errors.New("grid: start cell is a block")
)
