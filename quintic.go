package bezier

import (
	"sort"
)

// QuinticBez is a quintic (degree-5) Bézier curve, the highest degree with
// a closed-form bounding box: its derivative is a quartic, the highest
// degree polynomial with a practical exact solver.
type QuinticBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
	P4 Point
	P5 Point
}

var _ Curve = QuinticBez{}
var _ Extremer = QuinticBez{}

func (q QuinticBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf() ||
		q.P3.IsInf() || q.P4.IsInf() || q.P5.IsInf()
}

func (q QuinticBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN() ||
		q.P3.IsNaN() || q.P4.IsNaN() || q.P5.IsNaN()
}

func (q QuinticBez) Evaluate(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t
	v := Vec2(q.P0).Mul(mt2 * mt2 * mt).
		Add(Vec2(q.P1).Mul(5.0 * mt2 * mt2 * t)).
		Add(Vec2(q.P2).Mul(10.0 * mt2 * mt * t2)).
		Add(Vec2(q.P3).Mul(10.0 * mt2 * t2 * t)).
		Add(Vec2(q.P4).Mul(5.0 * mt * t2 * t2)).
		Add(Vec2(q.P5).Mul(t2 * t2 * t))
	return Point(v)
}

// Derivative returns the velocity at t. The derivative of a quintic is the
// quartic Bézier over the hull vectors 5·(Pᵢ₊₁−Pᵢ).
func (q QuinticBez) Derivative(t float64) Vec2 {
	h0 := q.P1.Sub(q.P0).Mul(5.0)
	h1 := q.P2.Sub(q.P1).Mul(5.0)
	h2 := q.P3.Sub(q.P2).Mul(5.0)
	h3 := q.P4.Sub(q.P3).Mul(5.0)
	h4 := q.P5.Sub(q.P4).Mul(5.0)
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t
	return h0.Mul(mt2 * mt2).
		Add(h1.Mul(4.0 * mt2 * mt * t)).
		Add(h2.Mul(6.0 * mt2 * t2)).
		Add(h3.Mul(4.0 * mt * t2 * t)).
		Add(h4.Mul(t2 * t2))
}

// Split subdivides the quintic at t, using de Casteljau.
func (q QuinticBez) Split(t float64) (Curve, Curve) {
	l, r := splitPoints([]Point{q.P0, q.P1, q.P2, q.P3, q.P4, q.P5}, t)
	return QuinticBez{l[0], l[1], l[2], l[3], l[4], l[5]},
		QuinticBez{r[0], r[1], r[2], r[3], r[4], r[5]}
}

// BoundingBox returns the tightest axis-aligned box containing the curve
// over [0, 1], computed from the curve's extrema.
func (q QuinticBez) BoundingBox() BoundingBox {
	return extremaBoundingBox(q, q.Extrema())
}

func (q QuinticBez) Start() Point { return q.P0 }
func (q QuinticBez) End() Point   { return q.P5 }

// Extrema implements [Extremer].
//
// The extrema are the roots of the derivative, a quartic Bézier, found per
// axis by converting its Bernstein form to power-basis coefficients and
// solving with [SolveQuartic]. Up to eight extrema can be reported, four
// per axis.
func (q QuinticBez) Extrema() []float64 {
	var out []float64
	oneCoord := func(e0, e1, e2, e3, e4 float64) {
		c0 := e0
		c1 := 4.0 * (e1 - e0)
		c2 := 6.0 * (e0 - 2.0*e1 + e2)
		c3 := 4.0 * (e3 - 3.0*e2 + 3.0*e1 - e0)
		c4 := e0 - 4.0*e1 + 6.0*e2 - 4.0*e3 + e4
		roots, n := SolveQuartic(c0, c1, c2, c3, c4)
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
	d4 := q.P5.Sub(q.P4)
	oneCoord(d0.X, d1.X, d2.X, d3.X, d4.X)
	oneCoord(d0.Y, d1.Y, d2.Y, d3.Y, d4.Y)
	sort.Float64s(out)
	return out
}
