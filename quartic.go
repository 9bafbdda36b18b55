package bezier

import (
	"sort"
)

// QuarticBez is a quartic (degree-4) Bézier curve.
type QuarticBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
	P4 Point
}

var _ Curve = QuarticBez{}
var _ Extremer = QuarticBez{}

func (q QuarticBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf() || q.P3.IsInf() || q.P4.IsInf()
}

func (q QuarticBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN() || q.P3.IsNaN() || q.P4.IsNaN()
}

func (q QuarticBez) Evaluate(t float64) Point {
	mt := 1.0 - t
	v := Vec2(q.P0).Mul(mt * mt * mt * mt).
		Add(Vec2(q.P1).Mul(4.0 * mt * mt * mt * t)).
		Add(Vec2(q.P2).Mul(6.0 * mt * mt * t * t)).
		Add(Vec2(q.P3).Mul(4.0 * mt * t * t * t)).
		Add(Vec2(q.P4).Mul(t * t * t * t))
	return Point(v)
}

// Derivative returns the velocity at t. The derivative of a quartic is the
// cubic Bézier over the hull vectors 4·(Pᵢ₊₁−Pᵢ).
func (q QuarticBez) Derivative(t float64) Vec2 {
	h0 := q.P1.Sub(q.P0).Mul(4.0)
	h1 := q.P2.Sub(q.P1).Mul(4.0)
	h2 := q.P3.Sub(q.P2).Mul(4.0)
	h3 := q.P4.Sub(q.P3).Mul(4.0)
	mt := 1.0 - t
	return h0.Mul(mt * mt * mt).
		Add(h1.Mul(3.0 * mt * mt * t)).
		Add(h2.Mul(3.0 * mt * t * t)).
		Add(h3.Mul(t * t * t))
}

// Split subdivides the quartic at t, using de Casteljau.
func (q QuarticBez) Split(t float64) (Curve, Curve) {
	l, r := splitPoints([]Point{q.P0, q.P1, q.P2, q.P3, q.P4}, t)
	return QuarticBez{l[0], l[1], l[2], l[3], l[4]},
		QuarticBez{r[0], r[1], r[2], r[3], r[4]}
}

// BoundingBox returns the tightest axis-aligned box containing the curve
// over [0, 1], computed from the curve's extrema.
func (q QuarticBez) BoundingBox() BoundingBox {
	return extremaBoundingBox(q, q.Extrema())
}

func (q QuarticBez) Start() Point { return q.P0 }
func (q QuarticBez) End() Point   { return q.P4 }

// Extrema implements [Extremer].
//
// The extrema are the roots of the derivative, a cubic Bézier, found per
// axis by converting its Bernstein form to power-basis coefficients.
func (q QuarticBez) Extrema() []float64 {
	var out []float64
	oneCoord := func(e0, e1, e2, e3 float64) {
		c0 := e0
		c1 := 3.0 * (e1 - e0)
		c2 := 3.0 * (e0 - 2.0*e1 + e2)
		c3 := e3 - 3.0*e2 + 3.0*e1 - e0
		roots, n := SolveCubic(c0, c1, c2, c3)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out = append(out, t)
			}
		}
	}

	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	d2 := q.P3.Sub(q.P2)
	d3 := q.P4.Sub(q.P3)
	oneCoord(d0.X, d1.X, d2.X, d3.X)
	oneCoord(d0.Y, d1.Y, d2.Y, d3.Y)
	sort.Float64s(out)
	return out
}

// Raise returns a quintic Bézier segment that exactly represents this
// quartic.
func (q QuarticBez) Raise() QuinticBez {
	return QuinticBez{
		q.P0,
		q.P0.Lerp(q.P1, 4.0/5.0),
		q.P1.Lerp(q.P2, 3.0/5.0),
		q.P2.Lerp(q.P3, 2.0/5.0),
		q.P3.Lerp(q.P4, 1.0/5.0),
		q.P4,
	}
}
