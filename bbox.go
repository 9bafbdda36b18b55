package bezier

import (
	"fmt"
)

// BoundingBox is an axis-aligned rectangle described by its minimum and
// maximum corners. The invariant Min.X ≤ Max.X and Min.Y ≤ Max.Y always
// holds for boxes produced by this package. Degenerate boxes with zero
// width or height are valid.
type BoundingBox struct {
	Min Point
	Max Point
}

// NewBoundingBox returns the box with corners min and max. It returns
// [ErrInvalidBounds] if min exceeds max on either axis.
func NewBoundingBox(min, max Point) (BoundingBox, error) {
	if min.X > max.X || min.Y > max.Y {
		return BoundingBox{}, fmt.Errorf("%w: min %v exceeds max %v", ErrInvalidBounds, min, max)
	}
	return BoundingBox{Min: min, Max: max}, nil
}

// BoundingBoxFromPoints returns the smallest box containing p0 and p1. The
// points may be in any order.
func BoundingBoxFromPoints(p0, p1 Point) BoundingBox {
	return BoundingBox{
		Min: Point{X: min(p0.X, p1.X), Y: min(p0.Y, p1.Y)},
		Max: Point{X: max(p0.X, p1.X), Y: max(p0.Y, p1.Y)},
	}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("%v–%v", b.Min, b.Max)
}

// Width returns the box's extent along the x axis.
func (b BoundingBox) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the box's extent along the y axis.
func (b BoundingBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// MaxSide returns the larger of the box's width and height.
func (b BoundingBox) MaxSide() float64 {
	return max(b.Width(), b.Height())
}

// Center returns the box's center point.
func (b BoundingBox) Center() Point {
	return b.Min.Midpoint(b.Max)
}

// Contains reports whether pt lies within the box, bounds included.
func (b BoundingBox) Contains(pt Point) bool {
	return pt.X >= b.Min.X &&
		pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y &&
		pt.Y <= b.Max.Y
}

// Union returns the smallest box enclosing b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		Min: Point{X: min(b.Min.X, o.Min.X), Y: min(b.Min.Y, o.Min.Y)},
		Max: Point{X: max(b.Max.X, o.Max.X), Y: max(b.Max.Y, o.Max.Y)},
	}
}

// UnionPoint returns the smallest box enclosing b and pt.
func (b BoundingBox) UnionPoint(pt Point) BoundingBox {
	return BoundingBox{
		Min: Point{X: min(b.Min.X, pt.X), Y: min(b.Min.Y, pt.Y)},
		Max: Point{X: max(b.Max.X, pt.X), Y: max(b.Max.Y, pt.Y)},
	}
}

// Overlaps reports whether b and o intersect. Boxes that merely touch are
// considered overlapping.
func (b BoundingBox) Overlaps(o BoundingBox) bool {
	return b.Min.X <= o.Max.X &&
		o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y &&
		o.Min.Y <= b.Max.Y
}
