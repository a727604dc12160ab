package similarity

import "errors"

var (
	// ErrDimensionMismatch is returned when two vectors being compared have
	// different lengths, or when a vector is empty.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrDegenerateVector is returned when a vector has zero norm, which
	// leaves cosine similarity undefined.
	ErrDegenerateVector = errors.New("degenerate vector")
)
