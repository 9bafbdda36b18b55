package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectionsCrossingLines(t *testing.T) {
	a := Line{Pt(0.0, 0.0), Pt(2.0, 2.0)}
	b := Line{Pt(0.0, 2.0), Pt(2.0, 0.0)}

	got := Intersections(a, b, DefaultIntersectionTolerance, DefaultMaxDepth)
	require.Len(t, got, 1)

	ix := got[0]
	assert.InDelta(t, 1.0, ix.Point.X, 0.02)
	assert.InDelta(t, 1.0, ix.Point.Y, 0.02)
	assert.InDelta(t, 0.5, ix.TA, 0.01)
	assert.InDelta(t, 0.5, ix.TB, 0.01)

	// The reported parameters map back onto the reported point.
	assert.InDelta(t, 0.0, a.Evaluate(ix.TA).Distance(ix.Point), 0.02)
	assert.InDelta(t, 0.0, b.Evaluate(ix.TB).Distance(ix.Point), 0.02)
}

func TestIntersectionsDisjoint(t *testing.T) {
	a := QuadBez{Pt(0.0, 10.0), Pt(1.0, 12.0), Pt(2.0, 10.0)}
	b := Line{Pt(0.0, 0.0), Pt(5.0, 0.0)}
	got := Intersections(a, b, DefaultIntersectionTolerance, DefaultMaxDepth)
	assert.Empty(t, got)
}

func TestIntersectionsDepthExhausted(t *testing.T) {
	a := Line{Pt(0.0, 0.0), Pt(2.0, 2.0)}
	b := Line{Pt(0.0, 2.0), Pt(2.0, 0.0)}
	got := Intersections(a, b, DefaultIntersectionTolerance, 0)
	assert.Empty(t, got)
}

func TestIntersectionsLineThroughArch(t *testing.T) {
	arch := archCubic()
	line := Line{Pt(-10.0, 30.0), Pt(110.0, 30.0)}

	got := Intersections(arch, line, DefaultIntersectionTolerance, DefaultMaxDepth)
	require.Len(t, got, 2, "a horizontal line through the arch crosses it twice")

	for _, ix := range got {
		assert.InDelta(t, 30.0, ix.Point.Y, 0.05)
		assert.InDelta(t, 0.0, arch.Evaluate(ix.TA).Distance(ix.Point), 0.05)
		assert.InDelta(t, 0.0, line.Evaluate(ix.TB).Distance(ix.Point), 0.05)
	}
	// One crossing on the way up, one on the way down.
	assert.Less(t, got[0].TA, 0.25)
	assert.Greater(t, got[1].TA, 0.75)
}

func TestIntersectionsMixedVariants(t *testing.T) {
	// The generic form of the arch must intersect exactly where the
	// closed form does.
	arch := archCubic()
	generic, err := NewBezier([]Point{arch.P0, arch.P1, arch.P2, arch.P3})
	require.NoError(t, err)
	line := Line{Pt(-10.0, 30.0), Pt(110.0, 30.0)}

	want := Intersections(arch, line, DefaultIntersectionTolerance, DefaultMaxDepth)
	got := Intersections(generic, line, DefaultIntersectionTolerance, DefaultMaxDepth)
	require.Len(t, got, len(want))
	for i := range got {
		assert.InDelta(t, want[i].TA, got[i].TA, 0.01)
		assert.InDelta(t, want[i].TB, got[i].TB, 0.01)
	}
}

func TestIntersectionsTangentialTouch(t *testing.T) {
	// The parabola touches the line at its apex. Subdivision reports the
	// touch region as one deduplicated intersection near the apex.
	para := QuadBez{Pt(0.0, 0.0), Pt(1.0, 2.0), Pt(2.0, 0.0)}
	line := Line{Pt(-1.0, 1.0), Pt(3.0, 1.0)}

	got := Intersections(para, line, DefaultIntersectionTolerance, DefaultMaxDepth)
	require.NotEmpty(t, got)
	for _, ix := range got {
		assert.InDelta(t, 1.0, ix.Point.X, 0.1)
		assert.InDelta(t, 1.0, ix.Point.Y, 0.05)
	}
}

func TestIntersectionsSelfTerminates(t *testing.T) {
	// A curve tested against itself overlaps everywhere. The depth budget
	// bounds the recursion and dedup keeps the result finite.
	c := archCubic()
	got := Intersections(c, c, DefaultIntersectionTolerance, DefaultMaxDepth)
	assert.NotEmpty(t, got)
	for _, ix := range got {
		assert.InDelta(t, 0.0, c.Evaluate(ix.TA).Distance(ix.Point), 0.1)
	}
}
