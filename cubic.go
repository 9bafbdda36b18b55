package bezier

import (
	"sort"
)

// CubicBez is a cubic (degree-3) Bézier curve.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

var _ Curve = CubicBez{}
var _ Extremer = CubicBez{}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (cb CubicBez) Evaluate(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Derivative returns the velocity at t. The derivative of a cubic is the
// quadratic Bézier over the hull vectors 3·(Pᵢ₊₁−Pᵢ).
func (c CubicBez) Derivative(t float64) Vec2 {
	h0 := c.P1.Sub(c.P0).Mul(3.0)
	h1 := c.P2.Sub(c.P1).Mul(3.0)
	h2 := c.P3.Sub(c.P2).Mul(3.0)
	mt := 1.0 - t
	return h0.Mul(mt * mt).
		Add(h1.Mul(2.0 * mt * t)).
		Add(h2.Mul(t * t))
}

// Split subdivides the cubic at t, using de Casteljau.
func (c CubicBez) Split(t float64) (Curve, Curve) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return CubicBez{c.P0, p01, p012, pm}, CubicBez{pm, p123, p23, c.P3}
}

// BoundingBox returns the tightest axis-aligned box containing the curve
// over [0, 1], computed from the curve's extrema.
func (c CubicBez) BoundingBox() BoundingBox {
	return extremaBoundingBox(c, c.Extrema())
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

// Extrema implements [Extremer].
func (c CubicBez) Extrema() []float64 {
	// Two calls to oneCoord, up to 2 roots per call, for a total of 4
	// possible values.
	var out []float64
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out = append(out, t)
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out)
	return out
}

// Raise returns a quartic Bézier segment that exactly represents this
// cubic.
func (c CubicBez) Raise() QuarticBez {
	return QuarticBez{
		c.P0,
		c.P0.Lerp(c.P1, 3.0/4.0),
		c.P1.Lerp(c.P2, 0.5),
		c.P2.Lerp(c.P3, 1.0/4.0),
		c.P3,
	}
}
