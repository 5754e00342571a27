// Package sphergo provides robust geometric predicates for points on the
// unit sphere.
//
// Floating-point geometry fails in the places where it matters most: two
// nearly collinear points, two nearly equidistant sites, an edge passing
// almost exactly through a vertex. Sphergo answers these questions exactly.
// Every predicate returns the sign the true mathematical result would have,
// for any finite inputs, and resolves exact ties deterministically.
//
// The packages are:
//
//   - predicate: the predicate catalog (orientation, distance comparison,
//     edge distance, Voronoi site exclusion, circumcenter and small-circle
//     tests), evaluated through a float64 / double-double / exact-rational
//     precision cascade
//   - s1: angles and chord angles, the distance representation that makes
//     exact comparisons possible without trigonometry
//   - r3: plain and exact-rational 3-vectors
//
// # Quick Start
//
//	a := r3.Vector{X: 1, Y: 0, Z: 0}
//	b := r3.Vector{X: 0, Y: 1, Z: 0}
//	c := r3.Vector{X: 0, Y: 0, Z: 1}
//
//	// +1 if a, b, c are counterclockwise, -1 if clockwise. Never 0:
//	// collinear triples are resolved by symbolic perturbation.
//	s := predicate.Sign(a, b, c)
//
//	// Which of a and b is closer to c? Exact even when the distances
//	// agree to hundreds of bits.
//	d := predicate.CompareDistances(c, a, b)
//
//	// Is c within radius r of the edge ab?
//	in := predicate.CompareEdgeDistance(c, a, b, r) <= 0
//
// # Precision Cascade
//
// Predicates first evaluate in ordinary float64 alongside a running error
// bound. When the error bound cannot certify the sign, evaluation escalates
// to double-double arithmetic, then to arbitrary-precision rationals, and
// finally, for true ties, to a symbolic perturbation of the inputs. The
// common case pays roughly the cost of the naive computation; the exact
// stages are reached only near degeneracies.
//
// # Key Features
//
//   - Exact sign results for all finite float64 inputs
//   - Deterministic symbolic tie-breaking (predicates such as Sign never
//     return zero)
//   - ChordAngle distance thresholds comparable without inverse trig
//   - Pure functions, safe for concurrent use, no shared state
package sphergo
