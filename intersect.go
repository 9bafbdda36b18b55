package bezier

// DefaultMaxDepth is a recursion depth for [Intersections] that lets the
// search subdivide each curve into segments as short as 2^-16 of its
// parameter range.
const DefaultMaxDepth = 16

// DefaultIntersectionTolerance is a tolerance for [Intersections] suitable
// for coordinates at pixel-like scales.
const DefaultIntersectionTolerance = 0.01

// Intersection is an approximate crossing of two curves: the location and
// the parameter on each curve at which it occurs.
type Intersection struct {
	// Point is the estimated crossing location, the average of the two
	// curves' positions at TA and TB. The two positions each lie within
	// the search tolerance of the true crossing, so they need not
	// coincide exactly.
	Point Point
	// TA is the parameter of the intersection on the first curve.
	TA float64
	// TB is the parameter of the intersection on the second curve.
	TB float64
}

// segment is a subdivided piece of an input curve together with the
// parameter interval it covers on the original curve. Reported parameters
// must be in the original curve's frame, not the locally-split segment's.
type segment struct {
	curve      Curve
	tMin, tMax float64
}

func (s segment) mid() float64 {
	return 0.5 * (s.tMin + s.tMax)
}

func (s segment) split() (segment, segment) {
	l, r := s.curve.Split(0.5)
	tm := s.mid()
	return segment{l, s.tMin, tm}, segment{r, tm, s.tMax}
}

// Intersections returns the approximate intersections of a and b, found by
// adaptive subdivision: segment pairs whose bounding boxes don't overlap
// are discarded, and pairs whose boxes have both shrunk below tolerance are
// reported as intersections. maxDepth bounds the subdivision depth; each
// level splits both curves in half, so the search gives up on crossings
// that need segments finer than 2^-maxDepth of the parameter range. An
// empty result is valid and means no intersections were found within the
// depth budget.
//
// Reported intersections closer than tolerance to an earlier one are
// dropped, as the search can find the same true crossing from several
// neighboring branches.
//
// Curves that overlap along a whole sub-arc, including a curve paired with
// itself, keep overlapping bounding boxes at every depth; the depth budget
// guarantees termination, and such queries may report many touching points
// along the shared region.
func Intersections(a, b Curve, tolerance float64, maxDepth int) []Intersection {
	if !a.BoundingBox().Overlaps(b.BoundingBox()) {
		return nil
	}
	found := intersectSegments(segment{a, 0, 1}, segment{b, 0, 1}, tolerance, maxDepth)
	return dedupeIntersections(found, tolerance)
}

// intersectSegments is the recursive subdivision search. Each branch
// accumulates its own result slice, merged by the caller, rather than
// writing to shared state.
func intersectSegments(sa, sb segment, tolerance float64, depth int) []Intersection {
	ba := sa.curve.BoundingBox()
	bb := sb.curve.BoundingBox()
	if !ba.Overlaps(bb) {
		return nil
	}
	if ba.MaxSide() < tolerance && bb.MaxSide() < tolerance {
		// Both segments have shrunk to tolerance; report their interval
		// midpoints. Evaluating a segment at its local 0.5 equals
		// evaluating the original curve at the interval midpoint, since
		// splits reproduce the original shape exactly.
		pa := sa.curve.Evaluate(0.5)
		pb := sb.curve.Evaluate(0.5)
		return []Intersection{{
			Point: pa.Midpoint(pb),
			TA:    sa.mid(),
			TB:    sb.mid(),
		}}
	}
	if depth <= 0 {
		// Depth budget exhausted before convergence; accept
		// under-reporting to bound worst-case cost.
		return nil
	}
	aL, aR := sa.split()
	bL, bR := sb.split()
	var out []Intersection
	out = append(out, intersectSegments(aL, bL, tolerance, depth-1)...)
	out = append(out, intersectSegments(aL, bR, tolerance, depth-1)...)
	out = append(out, intersectSegments(aR, bL, tolerance, depth-1)...)
	out = append(out, intersectSegments(aR, bR, tolerance, depth-1)...)
	return out
}

// dedupeIntersections collapses reported points closer than tolerance to
// one, first-seen wins.
func dedupeIntersections(in []Intersection, tolerance float64) []Intersection {
	if len(in) < 2 {
		return in
	}
	out := make([]Intersection, 0, len(in))
	for _, cand := range in {
		dup := false
		for _, kept := range out {
			if kept.Point.Distance(cand.Point) < tolerance {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, cand)
		}
	}
	return out
}
