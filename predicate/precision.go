package predicate

import "math"

// Precision identifies the arithmetic stage that produced a predicate
// result. It is reported for introspection and testing only; callers get
// the same answer regardless of which stage resolved it.
type Precision int

const (
	// PrecisionDouble means the result was certified by float64 arithmetic
	// with a running rounding-error bound.
	PrecisionDouble Precision = iota

	// PrecisionExtended means the result needed the double-double stage.
	PrecisionExtended

	// PrecisionExact means the result needed arbitrary-precision rational
	// arithmetic.
	PrecisionExact

	// PrecisionSymbolic means exact arithmetic proved a true mathematical
	// tie, which was then broken by symbolic perturbation.
	PrecisionSymbolic
)

func (p Precision) String() string {
	switch p {
	case PrecisionDouble:
		return "double"
	case PrecisionExtended:
		return "extended"
	case PrecisionExact:
		return "exact"
	case PrecisionSymbolic:
		return "symbolic"
	default:
		return "unknown"
	}
}

// hasExtended reports whether the extended-precision stage is enabled.
// The double-double stage always carries more significand bits than
// float64, but it is kept behind an explicit switch because it is an
// optional accelerator: correctness relies only on the exact stage.
const hasExtended = true

const (
	// dblEpsilon is the difference between 1 and the next larger float64.
	dblEpsilon = 2.220446049250313e-16

	// dblError is the maximum rounding error of a single float64
	// operation, half an ulp of 1.
	dblError = 0.5 * dblEpsilon

	// extError is the maximum relative rounding error attributed to a
	// single double-double operation. The representation carries at least
	// 106 significand bits; the bound below is deliberately loose to
	// absorb the renormalization error of the non-exact product and sum
	// algorithms.
	extError = 1.0 / (1 << 30) / (1 << 30) / (1 << 42) // 2^-102
)

// epsilonForDigits returns the rounding epsilon of a floating-point type
// with the given number of significand digits, 2^-digits.
func epsilonForDigits(digits int) float64 {
	return math.Ldexp(1, -digits)
}
