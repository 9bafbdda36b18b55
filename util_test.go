package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Errorf("%v != %v (within %g, distance %g)", p0, p1, epsilon, d)
	}
}

func assertNearVec(t *testing.T, v0 Vec2, v1 Vec2, epsilon float64) {
	t.Helper()
	if d := v1.Sub(v0).Hypot(); d > epsilon {
		t.Errorf("%v != %v (within %g, distance %g)", v0, v1, epsilon, d)
	}
}
