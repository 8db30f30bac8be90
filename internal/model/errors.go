package model

import "errors"

// Error taxonomy for the whole pipeline. All of these indicate structural
// problems with the input data, never transient conditions, so nothing in
// this repository retries on them.
var (
	// ErrDegenerateInput: too few points, duplicate (lithiation, temperature)
	// pairs, or a geometrically degenerate point set.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrOutOfDomain: a query outside the convex domain of the available
	// samples. Nothing extrapolates; this is the one policy applied by both
	// the 2D surface and the hull-restricted 1D interpolator.
	ErrOutOfDomain = errors.New("query out of domain")

	// ErrInsufficientHull: fewer than 2 distinct stable hull vertices, so no
	// piecewise-linear segment can be built or differentiated.
	ErrInsufficientHull = errors.New("insufficient hull vertices")
)
