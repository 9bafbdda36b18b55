package bezier

import (
	"fmt"
)

// derivativeEpsilon is the derivative magnitude below which [Tangent]
// reports the zero vector instead of normalizing, to avoid dividing by a
// near-zero magnitude at stationary points.
const derivativeEpsilon = 1e-10

// Curve describes a Bézier curve parametrized over [0, 1].
//
// All variants are immutable values: no method mutates its receiver, and
// [Curve.Split] produces new curves. Evaluation and differentiation must be
// defined for any finite t, extrapolating along the curve's polynomial
// outside [0, 1].
type Curve interface {
	// Evaluate returns the curve position at parameter t.
	Evaluate(t float64) Point

	// Derivative returns the curve's velocity at parameter t. The
	// derivative of a degree-n Bézier is itself a Bézier of degree n−1
	// whose control vectors are n·(Pᵢ₊₁−Pᵢ).
	Derivative(t float64) Vec2

	// Split subdivides the curve at parameter t. The two halves are the
	// same variant as the receiver, and their concatenation reproduces the
	// original curve's shape over [0, t] and [t, 1].
	Split(t float64) (Curve, Curve)

	// BoundingBox returns an axis-aligned box containing the curve over
	// [0, 1]. The fixed-degree variants return the tightest such box;
	// [Bezier] returns a sampled approximation.
	BoundingBox() BoundingBox

	// Start returns the curve's start point, equal to Evaluate(0).
	Start() Point
	// End returns the curve's end point, equal to Evaluate(1).
	End() Point
}

// Extremer describes curves that report the parameters of their interior
// axis-aligned extrema, in increasing order. The fixed-degree variants
// implement it by solving for the roots of their derivatives.
type Extremer interface {
	Extrema() []float64
}

// FromPoints constructs the curve defined by the given control points,
// returning the closed-form variant for degrees one through five and an
// arbitrary-degree [Bezier] above that. It returns [ErrTooFewPoints] if
// fewer than two points are given.
func FromPoints(pts []Point) (Curve, error) {
	switch len(pts) {
	case 0, 1:
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(pts))
	case 2:
		return Line{pts[0], pts[1]}, nil
	case 3:
		return QuadBez{pts[0], pts[1], pts[2]}, nil
	case 4:
		return CubicBez{pts[0], pts[1], pts[2], pts[3]}, nil
	case 5:
		return QuarticBez{pts[0], pts[1], pts[2], pts[3], pts[4]}, nil
	case 6:
		return QuinticBez{pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]}, nil
	default:
		b, err := NewBezier(pts)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
}

// Tangent returns the unit-length tangent of c at parameter t. If the
// derivative's magnitude is below 1e-10, as at a stationary point, it
// returns the zero vector.
func Tangent(c Curve, t float64) Vec2 {
	d := c.Derivative(t)
	if d.Hypot() < derivativeEpsilon {
		return Vec2{}
	}
	return d.Normalize()
}

// Normal returns the unit-length normal of c at parameter t, which is the
// tangent rotated 90 degrees counter-clockwise. Like [Tangent], it returns
// the zero vector at stationary points.
func Normal(c Curve, t float64) Vec2 {
	return Tangent(c, t).Turn90()
}

// extremaBoundingBox returns the smallest axis-aligned box that encloses
// the curve over [0, 1], given the curve's interior extrema.
func extremaBoundingBox(c Curve, extrema []float64) BoundingBox {
	bbox := BoundingBoxFromPoints(c.Evaluate(0), c.Evaluate(1))
	for _, t := range extrema {
		bbox = bbox.UnionPoint(c.Evaluate(t))
	}
	return bbox
}
