package predicate

import (
	"math"

	"github.com/hupe1980/sphergo/r3"
	"github.com/hupe1980/sphergo/s1"
)

const sqrtHalf = 0.7071067811865476

// CompareDistances returns -1, 0, or +1 according to whether the angular
// distance from x to a is less than, equal to, or greater than the
// distance from x to b. Distances are measured between the directions of
// the vectors, so the arguments need not be unit length. Exact ties are
// broken by symbolic perturbation such that the lexicographically larger
// of a and b is treated as closer; consequently the result is zero only
// when a == b exactly.
func CompareDistances(x, a, b r3.Vector) int {
	s, _ := compareDistancesDetail(x, a, b)
	return s
}

func compareDistancesDetail(x, a, b r3.Vector) (int, Precision) {
	if a == b {
		return 0, PrecisionDouble
	}
	return cascade(
		func() (int, bool) { return compareDistancesStage(toVec3[fpScalar], x, a, b) },
		func() (int, bool) { return compareDistancesStage(toVec3[xpScalar], x, a, b) },
		func() (int, bool) {
			return compareCosDistances(toVec3[xfScalar](x), toVec3[xfScalar](a), toVec3[xfScalar](b))
		},
		func() int { return symbolicCompareDistances(a, b) })
}

// compareDistancesStage evaluates one triage stage. The cosine comparison
// is valid for all angles and is tried first; when it cannot be certified
// the two distances are nearly equal, and if both are well clear of 90°
// the far more accurate sine-squared comparison is used instead.
func compareDistancesStage[T scalar[T]](conv func(r3.Vector) vec3[T], x, a, b r3.Vector) (int, bool) {
	xs, as, bs := conv(x), conv(a), conv(b)
	if s, ok := compareCosDistances(xs, as, bs); ok {
		return s, true
	}
	// The 45/135 degree screening must be scale invariant, so the dot
	// products are normalized here. Plain float64 is plenty: the screening
	// only decides which certified formula to try next.
	xn := math.Sqrt(x.Norm2())
	cosAX := a.Dot(x) / (math.Sqrt(a.Norm2()) * xn)
	cosBX := b.Dot(x) / (math.Sqrt(b.Norm2()) * xn)
	switch {
	case cosAX > sqrtHalf && cosBX > sqrtHalf:
		return compareSin2Distances(xs, as, bs)
	case cosAX < -sqrtHalf && cosBX < -sqrtHalf:
		// d(x,p) = pi - d(-x,p), so comparing against -x and negating
		// moves both angles below 90 degrees.
		s, ok := compareSin2Distances(conv(x.Neg()), as, bs)
		return -s, ok
	}
	return 0, false
}

// compareCosDistances compares the two distances through their cosines:
// d(x,a) > d(x,b) exactly when cos(ax)·|b| < cos(bx)·|a|, where the
// cosines are scaled by the vector norms that the dot products carry.
func compareCosDistances[T scalar[T]](x, a, b vec3[T]) (int, bool) {
	return signCmpSqrt(b.dot(x), a.norm2(), a.dot(x), b.norm2())
}

// compareSin2Distances compares the two distances through their squared
// sines. Valid only when both angles are below 90 degrees. The normal of
// each pair is computed as (p-x)×(p+x) = 2(p×x), which loses far less
// accuracy than p×x when p and x are nearly equal.
func compareSin2Distances[T scalar[T]](x, a, b vec3[T]) (int, bool) {
	na := a.sub(x).cross(a.add(x))
	nb := b.sub(x).cross(b.add(x))
	return na.norm2().Mul(b.norm2()).Sub(nb.norm2().Mul(a.norm2())).Sign()
}

// symbolicCompareDistances breaks an exact distance tie between distinct
// points: the lexicographically larger point is treated as closer, which
// matches the perturbation order used by symbolicallyPerturbedSign.
func symbolicCompareDistances(a, b r3.Vector) int {
	switch a.Cmp(b) {
	case -1:
		return 1
	case 1:
		return -1
	default:
		return 0
	}
}

// CompareDistance returns -1, 0, or +1 according to whether the angular
// distance between x and y is less than, equal to, or greater than the
// chord angle r. Unlike CompareDistances there is no symbolic tie-break:
// a configuration at exactly the threshold distance reports 0.
func CompareDistance(x, y r3.Vector, r s1.ChordAngle) int {
	s, _ := compareDistanceDetail(x, y, r)
	return s
}

func compareDistanceDetail(x, y r3.Vector, r s1.ChordAngle) (int, Precision) {
	// Every distance is below Infinity and at least Zero > Negative.
	if r == s1.InfChordAngle() {
		return -1, PrecisionDouble
	}
	if r < 0 {
		return 1, PrecisionDouble
	}
	r2 := float64(r)
	sinValid := r < s1.RightChordAngle
	return cascade(
		func() (int, bool) {
			return compareDistanceStage(toVec3[fpScalar](x), toVec3[fpScalar](y), r2, sinValid)
		},
		func() (int, bool) {
			return compareDistanceStage(toVec3[xpScalar](x), toVec3[xpScalar](y), r2, sinValid)
		},
		func() (int, bool) {
			return compareCosDistance(toVec3[xfScalar](x), toVec3[xfScalar](y), r2)
		},
		nil)
}

func compareDistanceStage[T scalar[T]](x, y vec3[T], r2 float64, sinValid bool) (int, bool) {
	if s, ok := compareCosDistance(x, y, r2); ok {
		return s, true
	}
	if sinValid {
		// The cosine comparison failed, so the distance is close to r,
		// hence also below 90 degrees and inside the sine formula's range.
		return compareSin2Distance(x, y, r2)
	}
	return 0, false
}

// compareCosDistance compares d(x,y) against r through cosines: with
// cos(r) = 1 - r²/2 computed exactly from the squared chord length, the
// result is the negated sign of x·y - cos(r)·|x||y|. Valid for the whole
// range of r including the sentinels.
func compareCosDistance[T scalar[T]](x, y vec3[T], r2 float64) (int, bool) {
	var z T
	cr := z.FromFloat(1).Sub(z.FromFloat(0.5).Mul(z.FromFloat(r2)))
	s, ok := signLinSqrt(x.dot(y), cr.Neg(), x.norm2().Mul(y.norm2()))
	return -s, ok
}

// compareSin2Distance compares d(x,y) against r through squared sines,
// using sin²(r) = r²(1 - r²/4) in chord form. Valid only when both the
// distance and r are below 90 degrees.
func compareSin2Distance[T scalar[T]](x, y vec3[T], r2 float64) (int, bool) {
	var z T
	n := x.sub(y).cross(x.add(y)) // 2(x × y)
	tr := z.FromFloat(r2)
	sin2r := tr.Mul(z.FromFloat(1).Sub(z.FromFloat(0.25).Mul(tr)))
	rhs := z.FromFloat(4).Mul(sin2r).Mul(x.norm2()).Mul(y.norm2())
	return n.norm2().Sub(rhs).Sign()
}
