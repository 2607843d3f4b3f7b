package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadShape indicates the grid is not an account record (3 rows × 27 columns).
	ErrBadShape = errors.New("grid: record must be 3 rows of 27 columns")
)
