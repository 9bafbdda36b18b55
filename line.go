package bezier

// Line is a degree-1 Bézier curve, i.e. a line segment.
type Line struct {
	P0 Point
	P1 Point
}

var _ Curve = Line{}
var _ Extremer = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Evaluate(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Derivative returns the line's constant velocity.
func (l Line) Derivative(t float64) Vec2 {
	return l.P1.Sub(l.P0)
}

func (l Line) Split(t float64) (Curve, Curve) {
	pm := l.Evaluate(t)
	return Line{l.P0, pm}, Line{pm, l.P1}
}

func (l Line) BoundingBox() BoundingBox {
	return BoundingBoxFromPoints(l.P0, l.P1)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Extrema implements [Extremer]. A line has no interior extrema.
func (l Line) Extrema() []float64 {
	return nil
}

// Raise returns a quadratic Bézier segment that exactly represents this
// line.
func (l Line) Raise() QuadBez {
	return QuadBez{
		l.P0,
		l.P0.Midpoint(l.P1),
		l.P1,
	}
}
