package predicate

import (
	"math"
	"math/big"

	"github.com/hupe1980/sphergo/r3"
)

// detErrorMultiplier bounds the rounding error of the edge-based
// determinant in stableSign, as a multiple of the product of the two
// shortest edge lengths.
const detErrorMultiplier = 3.2321 * dblEpsilon

// Sign returns +1 if the points a, b, c are counterclockwise and -1 if
// they are clockwise, viewed from outside the sphere centered at the
// origin. When the three points are exactly coplanar with the origin the
// tie is broken by a symbolic perturbation of the inputs, so that for all
// triples of distinct points Sign(a,b,c) = -Sign(c,b,a),
// Sign(a,b,c) = -Sign(b,a,c) and Sign(a,b,c) = Sign(b,c,a). The result
// is zero only when two of the points are identical.
func Sign(a, b, c r3.Vector) int {
	s, _ := signDetail(a, b, c)
	return s
}

// signDetail reports the orientation together with the precision that
// resolved it.
func signDetail(a, b, c r3.Vector) (int, Precision) {
	if a == b || b == c || a == c {
		return 0, PrecisionDouble
	}
	return cascade(
		func() (int, bool) {
			if s, ok := triageSign(toVec3[fpScalar](a), toVec3[fpScalar](b), toVec3[fpScalar](c)); ok {
				return s, true
			}
			if s := stableSign(a, b, c); s != 0 {
				return s, true
			}
			return 0, false
		},
		func() (int, bool) {
			s, ok := triageSign(toVec3[xpScalar](a), toVec3[xpScalar](b), toVec3[xpScalar](c))
			return s, ok && s != 0
		},
		func() (int, bool) {
			return exactSign(a, b, c), true
		},
		func() int { return symbolicSign(a, b, c) })
}

// triageSign evaluates the determinant (a × b) · c in stage arithmetic.
func triageSign[T scalar[T]](a, b, c vec3[T]) (int, bool) {
	return a.cross(b).dot(c).Sign()
}

// stableSign recomputes the determinant in a form that subtracts nearby
// points before multiplying, which is much more accurate when the three
// points are close together. It returns 0 when the sign could not be
// certified. As in triageSign, a nonzero return is the sign of the
// determinant (a × b) · c.
func stableSign(a, b, c r3.Vector) int {
	ab := b.Sub(a)
	bc := c.Sub(b)
	ca := a.Sub(c)
	ab2 := ab.Norm2()
	bc2 := bc.Norm2()
	ca2 := ca.Norm2()

	// The determinant equals the triple product of any two edges with any
	// vertex. Choosing the two shortest edges minimizes the error bound,
	// so the longest edge is dropped.
	var det, e2prod float64
	if ab2 >= bc2 && ab2 >= ca2 {
		det = -ca.Cross(bc).Dot(c)
		e2prod = ca2 * bc2
	} else if bc2 >= ca2 {
		det = -ab.Cross(ca).Dot(a)
		e2prod = ab2 * ca2
	} else {
		det = -bc.Cross(ab).Dot(b)
		e2prod = bc2 * ab2
	}
	// If the product of squared edge lengths reaches the subnormal range
	// the error bound below is no longer valid, so the sign cannot be
	// certified at this precision.
	if e2prod < math.SmallestNonzeroFloat64/dblEpsilon {
		return 0
	}
	maxErr := detErrorMultiplier * math.Sqrt(e2prod)
	switch {
	case det > maxErr:
		return 1
	case det < -maxErr:
		return -1
	default:
		return 0
	}
}

// exactSign computes the sign of the determinant exactly. It returns 0
// only when the points are truly coplanar with the origin.
func exactSign(a, b, c r3.Vector) int {
	perm, xa, xb, xc := sortedPrecise(a, b, c)
	return perm * xa.Dot(xb.Cross(xc)).Sign()
}

// symbolicSign breaks an exact determinant tie. The caller must have
// already established that the exact determinant is zero.
func symbolicSign(a, b, c r3.Vector) int {
	perm, xa, xb, xc := sortedPrecise(a, b, c)
	return perm * symbolicallyPerturbedSign(xa, xb, xc, xb.Cross(xc))
}

// sortedPrecise sorts the three points into lexicographic order, tracking
// the permutation parity, and converts them to exact rationals. Sorting
// makes the symbolic perturbation independent of argument order, which is
// what guarantees the antisymmetry identities for degenerate inputs.
func sortedPrecise(a, b, c r3.Vector) (perm int, xa, xb, xc r3.PreciseVector) {
	perm = 1
	if a.Cmp(b) > 0 {
		a, b = b, a
		perm = -perm
	}
	if b.Cmp(c) > 0 {
		b, c = c, b
		perm = -perm
	}
	if a.Cmp(b) > 0 {
		a, b = b, a
		perm = -perm
	}
	return perm, r3.PreciseVectorFromVector(a), r3.PreciseVectorFromVector(b), r3.PreciseVectorFromVector(c)
}

// symbolicallyPerturbedSign resolves the orientation of three points whose
// exact determinant is zero. Conceptually each coordinate is displaced by
// an infinitesimal, with the magnitudes ordered so that every perturbation
// is infinitely smaller than the previous one:
//
//	det(a + (ε⁹, ε⁸, ε⁷), b + (ε⁶, ε⁵, ε⁴), c + (ε³, ε², ε))
//
// for ε chosen smaller than any distinguishable quantity. Expanding this
// determinant yields a sequence of coefficient terms, tested from the
// largest perturbation downward; the first nonzero coefficient decides.
// The constant term of the expansion is the true determinant, already
// known to vanish, and the final coefficient is the constant 1, so the
// result is never zero. The points must be in lexicographic order.
func symbolicallyPerturbedSign(a, b, c, bCrossC r3.PreciseVector) int {
	if s := bCrossC.Z.Sign(); s != 0 {
		return s
	}
	if s := bCrossC.Y.Sign(); s != 0 {
		return s
	}
	if s := bCrossC.X.Sign(); s != 0 {
		return s
	}
	if s := det2Sign(c.X, c.Y, a.X, a.Y); s != 0 {
		return s
	}
	if s := c.X.Sign(); s != 0 {
		return s
	}
	if s := c.Y.Sign(); s != 0 {
		return -s
	}
	if s := det2Sign(c.Z, c.X, a.Z, a.X); s != 0 {
		return s
	}
	if s := c.Z.Sign(); s != 0 {
		return s
	}
	// The remaining cases can only occur when c is the origin.
	if s := det2Sign(a.X, a.Y, b.X, b.Y); s != 0 {
		return s
	}
	if s := b.X.Sign(); s != 0 {
		return -s
	}
	if s := b.Y.Sign(); s != 0 {
		return s
	}
	if s := a.X.Sign(); s != 0 {
		return s
	}
	return 1
}

// det2Sign returns the sign of the 2x2 determinant a1*b2 - a2*b1.
func det2Sign(a1, a2, b1, b2 *big.Rat) int {
	x := new(big.Rat).Mul(a1, b2)
	y := new(big.Rat).Mul(a2, b1)
	return x.Sub(x, y).Sign()
}

// OrderedCCW reports whether the edges OA, OB, OC are encountered in that
// order when sweeping counterclockwise around the point o, starting from
// a. Equal points are handled consistently, so exactly one of
// OrderedCCW(a,b,c,o) and OrderedCCW(c,b,a,o) holds strictly between
// distinct edges.
func OrderedCCW(a, b, c, o r3.Vector) bool {
	// At most one of the three orientation conditions below can be false,
	// if the answer is yes.
	sum := 0
	if Sign(b, o, a) >= 0 {
		sum++
	}
	if Sign(c, o, b) >= 0 {
		sum++
	}
	if Sign(a, o, c) > 0 {
		sum++
	}
	return sum >= 2
}
