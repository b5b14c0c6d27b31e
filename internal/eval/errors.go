package eval

import "errors"

var (
	// ShapeMismatchErr indicates input vectors of different lengths.
	ShapeMismatchErr = errors.New("shape mismatch")
	// InsufficientDataErr indicates a degenerate or empty outcome class.
	InsufficientDataErr = errors.New("insufficient data")
	// InvalidInputErr indicates the wrong number of distinct categories.
	InvalidInputErr = errors.New("invalid input")
	// InvalidModelErr indicates unusable model output e.g. a zero null log-likelihood.
	InvalidModelErr = errors.New("invalid model")
)
