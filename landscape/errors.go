package landscape

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("landscape: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("landscape: all rows must have the same length")
	// ErrNonSquare indicates a rectangular grid whose width differs from its height.
	ErrNonSquare = errors.New("landscape: grid must be n×n")
	// ErrNaNInf indicates a cell value that is NaN or ±Inf.
	ErrNaNInf = errors.New("landscape: altitude must be finite")
	// ErrOutOfRange indicates a coordinate outside [0, n) × [0, n).
	ErrOutOfRange = errors.New("landscape: coordinate out of range")
	// ErrConfig indicates a configuration document that could not be decoded.
	ErrConfig = errors.New("landscape: invalid configuration")
)
