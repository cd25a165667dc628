package quartic

import "errors"

// Error taxonomy. InvariantViolation is a programming-logic defect and maps
// to a distinct exit code; the other two are user input problems reported
// with a clean message.
var (
	// ErrInvariantViolation signals an internal combinatorial check failure,
	// e.g. splitting-type multiplicities not summing to the group order.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrInvalidBound signals a conductor bound outside the valid domain
	// (non-positive, or a sweep that is not strictly ascending).
	ErrInvalidBound = errors.New("invalid conductor bound")

	// ErrPrecisionInsufficient signals a prime truncation limit too small to
	// cover the requested conductor bounds.
	ErrPrecisionInsufficient = errors.New("prime truncation limit insufficient")
)
