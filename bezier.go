package bezier

import (
	"fmt"
	"slices"
)

// Bezier is a Bézier curve of arbitrary degree, defined by its control
// polygon. Unlike the fixed-degree variants, it evaluates and splits with
// the generic De Casteljau recursion, which stays numerically stable at
// degrees where expanded polynomial coefficients would cancel
// catastrophically.
type Bezier struct {
	pts []Point
}

var _ Curve = Bezier{}

// NewBezier returns the curve of degree len(pts)−1 defined by the given
// control points. It returns [ErrTooFewPoints] if fewer than two points are
// given. The points are copied; the caller keeps ownership of the slice.
func NewBezier(pts []Point) (Bezier, error) {
	if len(pts) < 2 {
		return Bezier{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(pts))
	}
	return Bezier{pts: slices.Clone(pts)}, nil
}

// Degree returns the curve's degree, its control point count minus one.
func (b Bezier) Degree() int {
	return len(b.pts) - 1
}

// ControlPoints returns a copy of the curve's control polygon.
func (b Bezier) ControlPoints() []Point {
	return slices.Clone(b.pts)
}

func (b Bezier) IsInf() bool {
	for _, pt := range b.pts {
		if pt.IsInf() {
			return true
		}
	}
	return false
}

func (b Bezier) IsNaN() bool {
	for _, pt := range b.pts {
		if pt.IsNaN() {
			return true
		}
	}
	return false
}

func (b Bezier) Evaluate(t float64) Point {
	return deCasteljau(b.pts, t)
}

func (b Bezier) Derivative(t float64) Vec2 {
	return deCasteljauVec(derivativePoints(b.pts), t)
}

// Split subdivides the curve at t, using de Casteljau. Both halves have the
// same degree as the original.
func (b Bezier) Split(t float64) (Curve, Curve) {
	l, r := splitPoints(b.pts, t)
	return Bezier{pts: l}, Bezier{pts: r}
}

// bezierBoxSamples is the number of subintervals sampled by
// [Bezier.BoundingBox].
const bezierBoxSamples = 256

// BoundingBox returns an axis-aligned box containing the curve over [0, 1].
//
// There is no practical exact extrema solver for arbitrary degree, so the
// box is approximated by sampling the curve at 257 evenly spaced
// parameters, endpoints included. The reported box contains every sampled
// point but may undershoot the true extent between samples.
func (b Bezier) BoundingBox() BoundingBox {
	bbox := BoundingBoxFromPoints(b.Start(), b.End())
	for i := 1; i < bezierBoxSamples; i++ {
		t := float64(i) / bezierBoxSamples
		bbox = bbox.UnionPoint(b.Evaluate(t))
	}
	return bbox
}

func (b Bezier) Start() Point { return b.pts[0] }
func (b Bezier) End() Point   { return b.pts[len(b.pts)-1] }
