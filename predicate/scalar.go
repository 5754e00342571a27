package predicate

import (
	"math"
	"math/big"

	"github.com/hupe1980/sphergo/internal/dd"
	"github.com/hupe1980/sphergo/r3"
)

// scalar is the arithmetic trait shared by the precision stages. Every
// predicate formula is written once against this interface and then
// instantiated with float64, double-double, and rational arithmetic.
//
// Sign returns the sign of the value together with a certainty flag. The
// flag is false when accumulated rounding error could hide the true sign;
// a false flag always forces escalation, so implementations may be
// conservative but must never report a wrong sign as certain.
type scalar[T any] interface {
	// FromFloat converts a float64 exactly into this stage's type. The
	// receiver is only used for type dispatch and may be the zero value.
	FromFloat(v float64) T

	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	Sign() (sign int, certain bool)

	// Sqrt returns the square root of a nonnegative value, or ok == false
	// when the stage has no square root (exact rationals are not closed
	// under it). Callers that receive ok == false must fall back to a
	// formulation that compares squared magnitudes instead.
	Sqrt() (root T, ok bool)
}

// fpScalar is the float64 stage. Alongside each value it carries a bound
// on the absolute error accumulated so far, so that Sign can tell whether
// the computed sign is trustworthy. The bound is propagated per operation
// and is valid for all finite inputs; it does not assume unit-length
// vectors or any other scaling.
type fpScalar struct {
	v, err float64
}

func (fpScalar) FromFloat(v float64) fpScalar { return fpScalar{v: v} }

func (a fpScalar) Add(b fpScalar) fpScalar {
	s := a.v + b.v
	return fpScalar{s, a.err + b.err + dblError*math.Abs(s)}
}

func (a fpScalar) Sub(b fpScalar) fpScalar {
	s := a.v - b.v
	return fpScalar{s, a.err + b.err + dblError*math.Abs(s)}
}

func (a fpScalar) Mul(b fpScalar) fpScalar {
	p := a.v * b.v
	err := math.Abs(a.v)*b.err + math.Abs(b.v)*a.err + a.err*b.err +
		dblError*math.Abs(p)
	return fpScalar{p, err}
}

func (a fpScalar) Neg() fpScalar { return fpScalar{-a.v, a.err} }

func (a fpScalar) Sqrt() (fpScalar, bool) {
	// The value may stray slightly negative through rounding; the interval
	// endpoints are clamped to the representable range of the root.
	v := math.Max(a.v, 0)
	s := math.Sqrt(v)
	lo := math.Sqrt(math.Max(v-a.err, 0))
	hi := math.Sqrt(v + a.err)
	// One ulp of slack absorbs the rounding of s, lo and hi themselves.
	return fpScalar{s, (hi - lo) + 2*dblError*s}, true
}

func (a fpScalar) Sign() (int, bool) {
	switch {
	case a.v > a.err:
		return 1, true
	case a.v < -a.err:
		return -1, true
	default:
		return 0, a.v == 0 && a.err == 0
	}
}

// xpScalar is the double-double stage, around 106 significand bits. The
// error bound is tracked the same way as in fpScalar but with the much
// smaller per-operation epsilon.
type xpScalar struct {
	v   dd.Float
	err float64
}

func (xpScalar) FromFloat(v float64) xpScalar {
	return xpScalar{v: dd.FromFloat64(v)}
}

func (a xpScalar) Add(b xpScalar) xpScalar {
	s := a.v.Add(b.v)
	return xpScalar{s, a.err + b.err + extError*math.Abs(s.Float64())}
}

func (a xpScalar) Sub(b xpScalar) xpScalar {
	s := a.v.Sub(b.v)
	return xpScalar{s, a.err + b.err + extError*math.Abs(s.Float64())}
}

func (a xpScalar) Mul(b xpScalar) xpScalar {
	p := a.v.Mul(b.v)
	av, bv := math.Abs(a.v.Float64()), math.Abs(b.v.Float64())
	err := av*b.err + bv*a.err + a.err*b.err + extError*math.Abs(p.Float64())
	return xpScalar{p, err}
}

func (a xpScalar) Neg() xpScalar { return xpScalar{a.v.Neg(), a.err} }

func (a xpScalar) Sqrt() (xpScalar, bool) {
	v := a.v
	if v.Sign() < 0 {
		v = dd.FromFloat64(0)
	}
	s := v.Sqrt()
	sf := s.Float64()
	// The certified interval has to contain the root of every admissible
	// value in [v-err, v+err], including zero when the error bound swallows
	// the value itself, so both endpoints are mapped through the root and
	// the larger one-sided deviation becomes the bound.
	e := dd.FromFloat64(a.err)
	hi := v.Add(e).Sqrt()
	lo := dd.FromFloat64(0)
	if v.Sub(e).Sign() > 0 {
		lo = v.Sub(e).Sqrt()
	}
	d := math.Max(s.Sub(lo).Float64(), hi.Sub(s).Float64())
	return xpScalar{s, d*(1+2*dblEpsilon) + 2*extError*sf}, true
}

func (a xpScalar) Sign() (int, bool) {
	s := a.v.Sign()
	v := math.Abs(a.v.Float64())
	if v > a.err && s != 0 {
		return s, true
	}
	return 0, a.err == 0 && s == 0
}

// xfScalar is the exact stage. Every float64 converts to a rational
// without loss, every operation is exact, and every sign is certain.
type xfScalar struct {
	v *big.Rat
}

func (xfScalar) FromFloat(v float64) xfScalar {
	return xfScalar{new(big.Rat).SetFloat64(v)}
}

func (a xfScalar) Add(b xfScalar) xfScalar {
	return xfScalar{new(big.Rat).Add(a.v, b.v)}
}

func (a xfScalar) Sub(b xfScalar) xfScalar {
	return xfScalar{new(big.Rat).Sub(a.v, b.v)}
}

func (a xfScalar) Mul(b xfScalar) xfScalar {
	return xfScalar{new(big.Rat).Mul(a.v, b.v)}
}

func (a xfScalar) Neg() xfScalar {
	return xfScalar{new(big.Rat).Neg(a.v)}
}

func (a xfScalar) Sign() (int, bool) { return a.v.Sign(), true }

func (xfScalar) Sqrt() (xfScalar, bool) { return xfScalar{}, false }

// vec3 is a 3-vector over a stage scalar.
type vec3[T scalar[T]] struct {
	x, y, z T
}

func toVec3[T scalar[T]](v r3.Vector) vec3[T] {
	var z T
	return vec3[T]{z.FromFloat(v.X), z.FromFloat(v.Y), z.FromFloat(v.Z)}
}

func (v vec3[T]) add(o vec3[T]) vec3[T] {
	return vec3[T]{v.x.Add(o.x), v.y.Add(o.y), v.z.Add(o.z)}
}

func (v vec3[T]) sub(o vec3[T]) vec3[T] {
	return vec3[T]{v.x.Sub(o.x), v.y.Sub(o.y), v.z.Sub(o.z)}
}

func (v vec3[T]) dot(o vec3[T]) T {
	return v.x.Mul(o.x).Add(v.y.Mul(o.y)).Add(v.z.Mul(o.z))
}

func (v vec3[T]) cross(o vec3[T]) vec3[T] {
	return vec3[T]{
		v.y.Mul(o.z).Sub(v.z.Mul(o.y)),
		v.z.Mul(o.x).Sub(v.x.Mul(o.z)),
		v.x.Mul(o.y).Sub(v.y.Mul(o.x)),
	}
}

func (v vec3[T]) norm2() T { return v.dot(v) }

// signLinSqrt returns the sign of u + v*sqrt(w) for w >= 0. Stages with a
// square root evaluate the expression directly, which keeps the certified
// range as wide as the stage's error bounds allow. The exact stage
// decides through signs and squared magnitudes instead; there the sign of
// the radical coefficient v is established before the sign of u, and
// callers that encode a sine term in v and a cosine term in u rely on
// that order.
func signLinSqrt[T scalar[T]](u, v, w T) (int, bool) {
	if root, ok := w.Sqrt(); ok {
		if s, certain := u.Add(v.Mul(root)).Sign(); certain {
			return s, true
		}
		return 0, false
	}
	return signLinSqrtSplit(u, v, w)
}

func signLinSqrtSplit[T scalar[T]](u, v, w T) (int, bool) {
	sv, ok := v.Sign()
	if !ok {
		return 0, false
	}
	su, ok := u.Sign()
	if !ok {
		return 0, false
	}
	if sv == 0 || su == sv {
		return su, true
	}
	sw, ok := w.Sign()
	if !ok {
		return 0, false
	}
	if sw == 0 {
		return su, true
	}
	if su == 0 {
		return sv, true
	}
	// u and v*sqrt(w) have opposite signs; square to compare magnitudes.
	d := u.Mul(u).Sub(w.Mul(v).Mul(v))
	sd, ok := d.Sign()
	if !ok {
		return 0, false
	}
	if sd == 0 {
		return 0, true
	}
	if sd > 0 {
		return su, true
	}
	return sv, true
}

// signCmpSqrt returns the sign of u1*sqrt(w1) - u2*sqrt(w2). Requires
// w1 > 0 and w2 > 0, which callers guarantee by construction (the
// radicals are squared norms of nonzero vectors). As in signLinSqrt,
// stages with a square root evaluate directly and the exact stage
// compares squared magnitudes.
func signCmpSqrt[T scalar[T]](u1, w1, u2, w2 T) (int, bool) {
	if root1, ok := w1.Sqrt(); ok {
		root2, _ := w2.Sqrt()
		if s, certain := u1.Mul(root1).Sub(u2.Mul(root2)).Sign(); certain {
			return s, true
		}
		return 0, false
	}
	return signCmpSqrtSplit(u1, w1, u2, w2)
}

func signCmpSqrtSplit[T scalar[T]](u1, w1, u2, w2 T) (int, bool) {
	s1, ok := u1.Sign()
	if !ok {
		return 0, false
	}
	s2, ok := u2.Sign()
	if !ok {
		return 0, false
	}
	if s1 != s2 {
		if s1 > s2 {
			return 1, true
		}
		return -1, true
	}
	if s1 == 0 {
		return 0, true
	}
	// Same nonzero sign on both terms; compare u1²·w1 against u2²·w2.
	d := u1.Mul(u1).Mul(w1).Sub(u2.Mul(u2).Mul(w2))
	sd, ok := d.Sign()
	if !ok {
		return 0, false
	}
	return s1 * sd, true
}
