package bezier

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/integrate"
)

// DefaultSamples is a sample count for the arc-length operations that is
// suitable for general-purpose use, such as animation along a path. Long or
// tightly-curved paths may need more samples for the same accuracy.
const DefaultSamples = 100

// distanceEpsilon is the tolerance within which a queried distance is
// considered equal to the curve's total length.
const distanceEpsilon = 1e-10

// Bézier arc length has no closed form, so the operations below integrate
// the curve's speed |derivative(t)| numerically over equal subintervals of
// [0, 1] with the trapezoidal rule. The same accumulation, kept per
// subinterval, forms a cumulative-distance table that maps distances back
// to parameters by binary search and linear interpolation. Tables are
// rebuilt per call; callers issuing many queries against the same curve
// should not assume caching.

// sampleSpeeds returns the parameters of samples+1 evenly spaced points in
// [0, 1] and the curve's speed at each.
func sampleSpeeds(c Curve, samples int) (params, speeds []float64) {
	params = make([]float64, samples+1)
	speeds = make([]float64, samples+1)
	for i := range params {
		t := float64(i) / float64(samples)
		params[i] = t
		speeds[i] = c.Derivative(t).Hypot()
	}
	return params, speeds
}

// Length returns the arc length of c over [0, 1], estimated by trapezoidal
// integration of the curve's speed over the given number of equal
// subintervals. It returns [ErrInvalidSampleCount] if samples is less than
// 2. Estimates converge to a stable value as samples grows; see
// [DefaultSamples].
func Length(c Curve, samples int) (float64, error) {
	if samples < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, samples)
	}
	params, speeds := sampleSpeeds(c, samples)
	return integrate.Trapezoidal(params, speeds), nil
}

// arcLengthTable is a cumulative-distance lookup table: dists[i] is the
// estimated arc length from parameter 0 to params[i]. Both fields are
// non-decreasing, with (0, 0) first and (1, total length) last.
type arcLengthTable struct {
	params []float64
	dists  []float64
}

// buildArcLengthTable samples samples+1 evenly spaced parameters and
// accumulates the same per-subinterval trapezoids that [Length] sums, so
// the table's final entry agrees exactly with Length for the same sample
// count.
func buildArcLengthTable(c Curve, samples int) arcLengthTable {
	params, speeds := sampleSpeeds(c, samples)
	dists := make([]float64, samples+1)
	for i := 1; i <= samples; i++ {
		dists[i] = dists[i-1] + 0.5*(params[i]-params[i-1])*(speeds[i]+speeds[i-1])
	}
	return arcLengthTable{params: params, dists: dists}
}

func (tab arcLengthTable) total() float64 {
	return tab.dists[len(tab.dists)-1]
}

// parameterAt maps a cumulative distance to a curve parameter by binary
// search for the bracketing table entries and linear interpolation between
// them. The interpolation assumes near-uniform speed within a subinterval;
// the error shrinks as the table grows.
func (tab arcLengthTable) parameterAt(distance float64) float64 {
	hi := sort.SearchFloat64s(tab.dists, distance)
	if hi == 0 {
		return tab.params[0]
	}
	if hi == len(tab.dists) {
		return tab.params[len(tab.params)-1]
	}
	lo := hi - 1
	span := tab.dists[hi] - tab.dists[lo]
	if span == 0 {
		// Stationary subinterval, e.g. all control points identical.
		return tab.params[lo]
	}
	frac := (distance - tab.dists[lo]) / span
	return tab.params[lo] + frac*(tab.params[hi]-tab.params[lo])
}

// ParameterAtDistance returns the parameter t at which the arc length of c
// from 0 to t equals distance, using a lookup table with samples+1 entries.
//
// It returns [ErrInvalidSampleCount] if samples is less than 2, and
// [ErrInvalidDistance] if distance is negative or exceeds the curve's total
// length as estimated with the same sample count. A distance of 0 maps to
// exactly 0.0, and a distance equal to the total length (within 1e-10) maps
// to exactly 1.0.
func ParameterAtDistance(c Curve, distance float64, samples int) (float64, error) {
	if samples < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, samples)
	}
	if distance < 0 {
		return 0, fmt.Errorf("%w: negative distance %g", ErrInvalidDistance, distance)
	}
	if distance == 0 {
		return 0.0, nil
	}
	tab := buildArcLengthTable(c, samples)
	total := tab.total()
	if distance > total+distanceEpsilon {
		return 0, fmt.Errorf("%w: distance %g exceeds curve length %g", ErrInvalidDistance, distance, total)
	}
	if total-distance <= distanceEpsilon {
		return 1.0, nil
	}
	return tab.parameterAt(distance), nil
}

// PointAtDistance returns the point on c at the given arc-length distance
// from the start, i.e. the curve evaluated at
// [ParameterAtDistance](c, distance, samples). It shares that function's
// failure modes.
//
// Evaluating at evenly spaced distances yields approximately evenly spaced
// points in space, i.e. constant-speed traversal.
func PointAtDistance(c Curve, distance float64, samples int) (Point, error) {
	t, err := ParameterAtDistance(c, distance, samples)
	if err != nil {
		return Point{}, err
	}
	return c.Evaluate(t), nil
}
