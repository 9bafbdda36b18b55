// Package bezier evaluates, subdivides, measures, and intersects 2D Bézier
// curves of arbitrary degree.
//
// # Curves
//
// [Curve] describes parametrized Bézier curves. A curve is defined by an
// ordered sequence of at least two control points and can be evaluated at
// t ∈ [0, 1], returning points in a 2D Cartesian coordinate system.
// Evaluation remains defined outside [0, 1], where it extrapolates along the
// curve's polynomial.
//
// The package provides closed-form variants for degrees one through five
// ([Line], [QuadBez], [CubicBez], [QuarticBez], and [QuinticBez]) and the
// arbitrary-degree [Bezier], which evaluates with De Casteljau's algorithm.
// [FromPoints] picks the right variant for a given control polygon. The
// closed-form variants compute exact bounding boxes by solving for the roots
// of their derivatives, using [SolveQuadratic], [SolveCubic], and
// [SolveQuartic].
//
// # Derived operations
//
// [Tangent], [Normal], [Length], [ParameterAtDistance], [PointAtDistance],
// [Intersections], and [Points] are built once on top of the [Curve]
// interface and work uniformly across all variants.
//
// Bézier arc length has no closed form; [Length] integrates curve speed
// numerically, and [ParameterAtDistance] inverts the result with a
// cumulative-distance lookup table, enabling constant-speed traversal.
// [Intersections] finds curve-curve intersections by adaptive subdivision
// with bounding-box pruning.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [Algorithm 1010: Boosting Efficiency in Solving Quartic Equations with No Compromise in Accuracy] by Orellana and De Michele
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Algorithm 1010: Boosting Efficiency in Solving Quartic Equations with No Compromise in Accuracy]: https://cristiano-de-michele.netlify.app/publication/orellana-2020/orellana-2020.pdf
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
package bezier
