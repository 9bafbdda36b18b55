package bezier

import (
	"sort"
)

// QuadBez is a quadratic (degree-2) Bézier curve.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

var _ Curve = QuadBez{}
var _ Extremer = QuadBez{}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) Evaluate(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Derivative returns the velocity at t, a linear interpolation between the
// derivative hull vectors 2·(P1−P0) and 2·(P2−P1).
func (q QuadBez) Derivative(t float64) Vec2 {
	d0 := q.P1.Sub(q.P0).Mul(2.0)
	d1 := q.P2.Sub(q.P1).Mul(2.0)
	return d0.Lerp(d1, t)
}

// Split subdivides the quadratic at t, using de Casteljau.
func (q QuadBez) Split(t float64) (Curve, Curve) {
	p01 := q.P0.Lerp(q.P1, t)
	p12 := q.P1.Lerp(q.P2, t)
	pm := p01.Lerp(p12, t)
	return QuadBez{q.P0, p01, pm}, QuadBez{pm, p12, q.P2}
}

// BoundingBox returns the tightest axis-aligned box containing the curve
// over [0, 1], computed from the curve's extrema.
func (q QuadBez) BoundingBox() BoundingBox {
	return extremaBoundingBox(q, q.Extrema())
}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

// Extrema implements [Extremer].
//
// Finding the extrema of a quadratic Bézier means finding the roots of the
// quadratic's first derivative, which is a line.
func (q QuadBez) Extrema() []float64 {
	var out []float64
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out = append(out, t)
		}
	}
	if dd.Y != 0.0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out = append(out, t)
		}
	}
	sort.Float64s(out)
	return out
}

// Raise returns a cubic Bézier segment that exactly represents this
// quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}
