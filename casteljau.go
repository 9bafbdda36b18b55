package bezier

// De Casteljau's algorithm: repeatedly interpolate every adjacent pair of
// control points at ratio t until a single point remains. Compared with
// evaluating polynomial coefficients directly, it avoids catastrophic
// cancellation at higher degrees and needs no per-degree formula. The same
// reduction, keeping the first and last point of every level, yields the
// control polygons of the two halves of the curve split at t.

// deCasteljau evaluates the Bézier curve defined by pts at parameter t. It
// is valid for any finite t and any hull of at least one point; a hull of
// identical points reduces to that point for every t.
func deCasteljau(pts []Point, t float64) Point {
	if len(pts) == 1 {
		return pts[0]
	}
	scratch := make([]Point, len(pts))
	copy(scratch, pts)
	for n := len(scratch) - 1; n > 0; n-- {
		for i := range n {
			scratch[i] = scratch[i].Lerp(scratch[i+1], t)
		}
	}
	return scratch[0]
}

// splitPoints returns the control polygons of the two curves obtained by
// splitting the Bézier curve defined by pts at parameter t. Both polygons
// have the same degree as the input; left spans the original [0, t], right
// spans [t, 1].
func splitPoints(pts []Point, t float64) (left, right []Point) {
	n := len(pts)
	left = make([]Point, n)
	right = make([]Point, n)
	scratch := make([]Point, n)
	copy(scratch, pts)
	for lvl := range n {
		left[lvl] = scratch[0]
		right[n-1-lvl] = scratch[n-1-lvl]
		for i := range n - 1 - lvl {
			scratch[i] = scratch[i].Lerp(scratch[i+1], t)
		}
	}
	return left, right
}

// derivativePoints returns the control vectors of the derivative of the
// Bézier curve defined by pts, which is a Bézier of one degree lower.
func derivativePoints(pts []Point) []Vec2 {
	n := float64(len(pts) - 1)
	d := make([]Vec2, len(pts)-1)
	for i := range d {
		d[i] = pts[i+1].Sub(pts[i]).Mul(n)
	}
	return d
}

// deCasteljauVec is deCasteljau for vector-valued hulls, used to evaluate
// derivative curves.
func deCasteljauVec(vs []Vec2, t float64) Vec2 {
	if len(vs) == 1 {
		return vs[0]
	}
	scratch := make([]Vec2, len(vs))
	copy(scratch, vs)
	for n := len(scratch) - 1; n > 0; n-- {
		for i := range n {
			scratch[i] = scratch[i].Lerp(scratch[i+1], t)
		}
	}
	return scratch[0]
}
