package bezier

import (
	"math"
	"sort"
	"testing"
)

func TestQuarticBezExtremaAreStationary(t *testing.T) {
	q := QuarticBez{
		Pt(0.0, 0.0),
		Pt(1.0, 4.0),
		Pt(2.0, -4.0),
		Pt(3.0, 4.0),
		Pt(4.0, 0.0),
	}
	extrema := q.Extrema()
	if len(extrema) == 0 {
		t.Fatal("wavy quartic reported no extrema")
	}
	if !sort.Float64sAreSorted(extrema) {
		t.Errorf("extrema not sorted: %v", extrema)
	}
	for _, ts := range extrema {
		if ts <= 0.0 || ts >= 1.0 {
			t.Errorf("extremum %g outside (0, 1)", ts)
		}
		d := q.Derivative(ts)
		if math.Abs(d.X) > 1e-9 && math.Abs(d.Y) > 1e-9 {
			t.Errorf("t=%g: derivative %v has no stationary axis", ts, d)
		}
	}
}

func TestQuarticBezMatchesRaisedCubic(t *testing.T) {
	c := CubicBez{Pt(0.0, 0.0), Pt(25.0, 120.0), Pt(75.0, 80.0), Pt(100.0, 0.0)}
	q := c.Raise()
	const n = 16
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, q.Evaluate(ts), c.Evaluate(ts), 1e-9)
		assertNearVec(t, q.Derivative(ts), c.Derivative(ts), 1e-8)
	}

	// Exact bounds agree as well, since both describe the same curve.
	cb := c.BoundingBox()
	qb := q.BoundingBox()
	assertNear(t, qb.Min, cb.Min, 1e-9)
	assertNear(t, qb.Max, cb.Max, 1e-9)
}
