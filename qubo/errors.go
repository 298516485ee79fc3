package qubo

import "errors"

var (
	// ErrInvalidInput indicates arguments outside the builder's contract
	// (n < 1, nil height function) or a malformed assignment vector.
	ErrInvalidInput = errors.New("qubo: invalid input")

	// ErrDomain indicates that the height function is not defined for a
	// coordinate in range: it returned an error, panicked, or returned NaN/±Inf.
	ErrDomain = errors.New("qubo: height function undefined")
)
