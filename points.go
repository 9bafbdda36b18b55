package bezier

import (
	"fmt"
	"iter"
)

// Points returns an iterator over the points of c evaluated at parameters
// 0, step, 2·step, … and finally exactly 1. It returns [ErrInvalidStep] if
// step is outside (0, 1]. The sequence is finite and can be ranged over
// multiple times.
func Points(c Curve, step float64) (iter.Seq[Point], error) {
	if step <= 0 || step > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidStep, step)
	}
	return func(yield func(Point) bool) {
		for i := 0; float64(i)*step < 1.0; i++ {
			if !yield(c.Evaluate(float64(i) * step)) {
				return
			}
		}
		yield(c.Evaluate(1.0))
	}, nil
}
