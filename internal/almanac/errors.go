package almanac

import "errors"

var (
	// ErrEmptyInput indicates that a query has no seed values or ranges to traverse.
	ErrEmptyInput = errors.New("no seed input")

	// ErrUnknownMode indicates a query mode other than points or ranges.
	ErrUnknownMode = errors.New("unknown query mode")
)
