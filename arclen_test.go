package bezier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

// archCubic is an arch-shaped cubic with a straight-line endpoint distance
// of exactly 100.
func archCubic() CubicBez {
	return CubicBez{Pt(0.0, 0.0), Pt(25.0, 120.0), Pt(75.0, 80.0), Pt(100.0, 0.0)}
}

func TestLengthValidation(t *testing.T) {
	c := archCubic()
	_, err := Length(c, 1)
	require.ErrorIs(t, err, ErrInvalidSampleCount)
	_, err = Length(c, 0)
	require.ErrorIs(t, err, ErrInvalidSampleCount)
	_, err = Length(c, -5)
	require.ErrorIs(t, err, ErrInvalidSampleCount)
}

func TestLengthLine(t *testing.T) {
	// A line has constant speed, so the trapezoidal estimate is exact at
	// any sample count.
	l := Line{Pt(1.0, 1.0), Pt(4.0, 5.0)}
	got, err := Length(l, 2)
	require.NoError(t, err)
	assert.True(t, scalar.EqualWithinAbs(got, 5.0, 1e-12), "got %v, want 5", got)
}

func TestLengthConvergence(t *testing.T) {
	c := archCubic()
	l100, err := Length(c, 100)
	require.NoError(t, err)
	l1000, err := Length(c, 1000)
	require.NoError(t, err)

	assert.Less(t, math.Abs(l100-l1000), 0.01, "estimates haven't converged")
	chord := c.P0.Distance(c.P3)
	assert.Equal(t, 100.0, chord)
	assert.Greater(t, l100, chord, "arc length must exceed the chord")
	assert.False(t, math.IsInf(l100, 0) || math.IsNaN(l100))
}

func TestParameterAtDistanceValidation(t *testing.T) {
	c := archCubic()
	_, err := ParameterAtDistance(c, 10.0, 1)
	require.ErrorIs(t, err, ErrInvalidSampleCount)
	_, err = ParameterAtDistance(c, -1e-9, DefaultSamples)
	require.ErrorIs(t, err, ErrInvalidDistance)

	total, err := Length(c, DefaultSamples)
	require.NoError(t, err)
	_, err = ParameterAtDistance(c, total+1.0, DefaultSamples)
	require.ErrorIs(t, err, ErrInvalidDistance)
}

func TestParameterAtDistanceEndpoints(t *testing.T) {
	c := archCubic()
	got, err := ParameterAtDistance(c, 0.0, DefaultSamples)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	// The total length bound is computed with the same sample count, so a
	// distance of exactly that length maps to exactly 1.
	total, err := Length(c, DefaultSamples)
	require.NoError(t, err)
	got, err = ParameterAtDistance(c, total, DefaultSamples)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestParameterAtDistanceMonotonic(t *testing.T) {
	c := archCubic()
	total, err := Length(c, DefaultSamples)
	require.NoError(t, err)

	prev := 0.0
	const n = 50
	for i := range n + 1 {
		d := total * float64(i) / float64(n)
		got, err := ParameterAtDistance(c, d, DefaultSamples)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev, "parameter decreased at distance %g", d)
		assert.LessOrEqual(t, got, 1.0)
		prev = got
	}
	assert.Equal(t, 1.0, prev)
}

func TestParameterAtDistanceAgainstDenseTable(t *testing.T) {
	c := archCubic()
	total, err := Length(c, DefaultSamples)
	require.NoError(t, err)

	dense := buildArcLengthTable(c, 100000)
	for _, frac := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		d := total * frac
		got, err := ParameterAtDistance(c, d, DefaultSamples)
		require.NoError(t, err)
		want := dense.parameterAt(d)
		assert.InDelta(t, want, got, 1e-3, "distance %g", d)
	}

	// The arch's speed varies a lot, so the arc-length midpoint is not the
	// parameter midpoint.
	mid, err := ParameterAtDistance(c, total/2, DefaultSamples)
	require.NoError(t, err)
	assert.InDelta(t, dense.parameterAt(total/2), mid, 1e-3)
}

func TestPointAtDistanceConstantSpeed(t *testing.T) {
	c := archCubic()
	total, err := Length(c, 1000)
	require.NoError(t, err)

	// Points at evenly spaced distances must be approximately evenly
	// spaced in the plane.
	const n = 20
	var pts []Point
	for i := range n + 1 {
		pt, err := PointAtDistance(c, total*float64(i)/float64(n), 1000)
		require.NoError(t, err)
		pts = append(pts, pt)
	}
	mean := total / n
	for i := 1; i < len(pts); i++ {
		gap := pts[i].Distance(pts[i-1])
		// Chord length trails arc length slightly; allow a few percent.
		assert.InEpsilon(t, mean, gap, 0.05, "gap %d", i)
	}
}

func TestPointAtDistanceValidation(t *testing.T) {
	c := archCubic()
	_, err := PointAtDistance(c, -1.0, DefaultSamples)
	require.ErrorIs(t, err, ErrInvalidDistance)
	_, err = PointAtDistance(c, 1.0, 1)
	require.ErrorIs(t, err, ErrInvalidSampleCount)

	pt, err := PointAtDistance(c, 0.0, DefaultSamples)
	require.NoError(t, err)
	assert.Equal(t, c.P0, pt)
}
