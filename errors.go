package bezier

import (
	"errors"
)

// All failures in this package are invalid-input conditions, validated at
// the boundary of the operation that needs the invariant and surfaced
// immediately. There is no retry, clamping, or recovery; callers decide how
// to handle invalid input. Errors returned by this package wrap one of the
// sentinels below.
var (
	// ErrTooFewPoints indicates that a curve constructor was given fewer
	// than two control points.
	ErrTooFewPoints = errors.New("bezier: curve needs at least two control points")

	// ErrInvalidStep indicates a point-generation step outside (0, 1].
	ErrInvalidStep = errors.New("bezier: step must be in (0, 1]")

	// ErrInvalidSampleCount indicates an arc-length query with fewer than
	// two samples.
	ErrInvalidSampleCount = errors.New("bezier: sample count must be at least 2")

	// ErrInvalidDistance indicates an arc-length query with a negative
	// distance, or one exceeding the curve's total length.
	ErrInvalidDistance = errors.New("bezier: distance outside curve length")

	// ErrInvalidBounds indicates a bounding box whose minimum corner
	// exceeds its maximum corner on some axis.
	ErrInvalidBounds = errors.New("bezier: bounding box min exceeds max")
)
