// Package dd implements double-double arithmetic: an unevaluated sum of two
// float64 values carrying roughly 106 bits of significand. It is an internal
// package providing the extended-precision evaluation stage that sits
// between plain float64 and exact rational arithmetic.
//
// The algorithms are the classic error-free transformations (Dekker,
// Knuth), with products made exact via math.FMA.
package dd

import "math"

// Float is a double-double value hi+lo, with |lo| <= ulp(hi)/2.
type Float struct {
	hi, lo float64
}

// FromFloat64 converts a float64 exactly.
func FromFloat64(v float64) Float {
	return Float{hi: v}
}

// Float64 returns the nearest float64 approximation.
func (f Float) Float64() float64 { return f.hi }

// twoSum returns s, e such that s = fl(a+b) and a+b = s+e exactly.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)

	return s, e
}

// quickTwoSum is twoSum for |a| >= |b|.
func quickTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)

	return s, e
}

// twoProd returns p, e such that p = fl(a*b) and a*b = p+e exactly.
func twoProd(a, b float64) (p, e float64) {
	p = a * b
	e = math.FMA(a, b, -p)

	return p, e
}

// Add returns f+g.
func (f Float) Add(g Float) Float {
	s1, s2 := twoSum(f.hi, g.hi)
	t1, t2 := twoSum(f.lo, g.lo)
	s2 += t1
	s1, s2 = quickTwoSum(s1, s2)
	s2 += t2
	s1, s2 = quickTwoSum(s1, s2)

	return Float{hi: s1, lo: s2}
}

// Sub returns f-g.
func (f Float) Sub(g Float) Float {
	return f.Add(g.Neg())
}

// Mul returns f*g.
func (f Float) Mul(g Float) Float {
	p1, p2 := twoProd(f.hi, g.hi)
	p2 += f.hi*g.lo + f.lo*g.hi
	p1, p2 = quickTwoSum(p1, p2)

	return Float{hi: p1, lo: p2}
}

// Neg returns -f.
func (f Float) Neg() Float {
	return Float{hi: -f.hi, lo: -f.lo}
}

// Abs returns |f|.
func (f Float) Abs() Float {
	if f.hi < 0 || (f.hi == 0 && f.lo < 0) {
		return f.Neg()
	}

	return f
}

// Sign returns -1, 0, or +1 according to the sign of f.
func (f Float) Sign() int {
	switch {
	case f.hi > 0 || (f.hi == 0 && f.lo > 0):
		return 1
	case f.hi < 0 || (f.hi == 0 && f.lo < 0):
		return -1
	default:
		return 0
	}
}

// Sqrt returns the square root of f, which must be nonnegative. It uses
// one Newton iteration on the float64 estimate, which restores nearly the
// full double-double precision.
func (f Float) Sqrt() Float {
	if f.hi == 0 && f.lo == 0 {
		return Float{}
	}
	y := math.Sqrt(f.hi)
	// r = y + (f - y²) / (2y)
	y2 := FromFloat64(y).Mul(FromFloat64(y))
	diff := f.Sub(y2)
	corr := diff.Float64() / (2 * y)
	s, e := twoSum(y, corr)

	return Float{hi: s, lo: e}
}
