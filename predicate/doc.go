// Package predicate implements exact geometric predicates on the unit
// sphere.
//
// Each predicate returns a sign that is correct for the exact mathematical
// values of its arguments, even when the computation in double precision
// would be dominated by rounding error. Results are computed by a cascade
// of arithmetic stages: ordinary float64 with a running error bound, then
// double-double extended precision, then arbitrary-precision rational
// arithmetic. The first stage whose result is certain wins, so the common
// case costs little more than the naive computation.
//
// Predicates that can encounter true mathematical ties (such as Sign)
// resolve them by symbolic perturbation, a deterministic tie-break
// equivalent to displacing the inputs by infinitesimals in a canonical
// order. Such predicates never return zero. Predicates whose ties are
// meaningful (such as SignDotProd) report them as zero.
//
// All functions are pure and safe for concurrent use.
package predicate
