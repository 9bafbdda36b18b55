package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezExtrema(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	// x is monotone; y has two interior extrema at (3 ± √3) / 6.
	c := CubicBez{Pt(0.0, 0.0), Pt(1.0, 2.0), Pt(2.0, -2.0), Pt(3.0, 0.0)}
	want := []float64{(3.0 - math.Sqrt(3)) / 6.0, (3.0 + math.Sqrt(3)) / 6.0}
	diff(t, c.Extrema(), want, approx)

	for _, ts := range c.Extrema() {
		if dy := c.Derivative(ts).Y; math.Abs(dy) > 1e-9 {
			t.Errorf("t=%g: dy/dt = %g, want 0", ts, dy)
		}
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	c := CubicBez{Pt(0.0, 0.0), Pt(25.0, 120.0), Pt(75.0, 80.0), Pt(100.0, 0.0)}
	bbox := c.BoundingBox()
	// Endpoints give x bounds; the y maximum is interior.
	assertNear(t, bbox.Min, Pt(0.0, 0.0), 1e-9)
	if bbox.Max.Y <= 60.0 || bbox.Max.Y >= 120.0 {
		t.Errorf("interior y maximum %v outside the hull-implied range", bbox.Max.Y)
	}
	if bbox.Max.X != 100.0 {
		t.Errorf("got max x %v, want 100", bbox.Max.X)
	}
}

func TestCubicBezSplitDegenerateT(t *testing.T) {
	c := CubicBez{Pt(0.0, 0.0), Pt(1.0, 2.0), Pt(3.0, 2.0), Pt(4.0, 0.0)}
	// Splitting at the ends produces a degenerate and a full copy.
	left, right := c.Split(0.0)
	assertNear(t, left.Start(), left.End(), 1e-12)
	for i := range 11 {
		ts := float64(i) / 10.0
		assertNear(t, right.Evaluate(ts), c.Evaluate(ts), 1e-12)
	}
	_, rightEnd := c.Split(1.0)
	assertNear(t, rightEnd.Start(), rightEnd.End(), 1e-12)
}
