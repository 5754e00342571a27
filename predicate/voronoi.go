package predicate

import (
	"github.com/hupe1980/sphergo/r3"
	"github.com/hupe1980/sphergo/s1"
)

// Excluded is the outcome of VoronoiSiteExclusion.
type Excluded int

const (
	// ExcludedNeither means neither site can be discarded.
	ExcludedNeither Excluded = iota

	// ExcludedFirst means the first site is farther than the second at
	// every point of the edge it covers, so it can be discarded.
	ExcludedFirst

	// ExcludedSecond means the second site can be discarded.
	ExcludedSecond

	// excludedUncertain is an internal stage outcome that forces
	// escalation; it never escapes the package.
	excludedUncertain
)

func (e Excluded) String() string {
	switch e {
	case ExcludedNeither:
		return "neither"
	case ExcludedFirst:
		return "first"
	case ExcludedSecond:
		return "second"
	default:
		return "uncertain"
	}
}

// VoronoiSiteExclusion decides whether one of the two candidate nearest
// sites a and b can be excluded for the edge x0x1 with coverage radius r,
// meaning the other site is closer at every point of the edge that the
// excluded site covers. Requires that a is no farther from x0 than b
// (resolve with CompareDistances(x0, a, b) first) and that both sites are
// within distance r of the edge. Distance ties are broken in favor of the
// lexicographically larger site, consistently with CompareDistances, so
// identical sites are the only configuration reported as coverage-equal.
func VoronoiSiteExclusion(a, b, x0, x1 r3.Vector, r s1.ChordAngle) Excluded {
	e, _ := voronoiSiteExclusionDetail(a, b, x0, x1, r)
	return e
}

func voronoiSiteExclusionDetail(a, b, x0, x1 r3.Vector, r s1.ChordAngle) (Excluded, Precision) {
	if a == b {
		return ExcludedNeither, PrecisionDouble
	}
	// If a is closer at x1 as well, it is closer at every edge point, and
	// b's tie-broken distance can never beat it.
	if CompareDistances(x1, a, b) < 0 {
		return ExcludedSecond, PrecisionDouble
	}
	r2 := float64(r)
	return cascade(
		func() (Excluded, bool) { return voronoiStage(toVec3[fpScalar], a, b, x0, x1, r2) },
		func() (Excluded, bool) { return voronoiStage(toVec3[xpScalar], a, b, x0, x1, r2) },
		func() (Excluded, bool) { return voronoiStage(toVec3[xfScalar], a, b, x0, x1, r2) },
		nil)
}

// voronoiStage evaluates the exclusion test in one arithmetic stage.
//
// A site can only be excluded if it does not cover the edge endpoint
// where it is the closer of the two: a is closer at x0, and by the check
// above b is at least tied at x1. A site that misses that endpoint covers
// a sub-interval of the edge whose far boundary is at distance exactly r
// from the site, and it is excluded exactly when the other site is closer
// at that boundary point.
//
// The boundary-point comparison reduces to the sign of U + V·sqrt(W) in
// the edge-frame coordinates cS = s·x0 and tS = s·(n × x0), with n the
// edge normal, n2 = n·n and cr = 1 - r²/2. The V term carries the sine of
// the boundary angle and the U term its cosine; signLinSqrt settles the
// sine factor first, which matters for inputs that nearly annihilate
// both.
func voronoiStage[T scalar[T]](conv func(r3.Vector) vec3[T], a, b, x0, x1 r3.Vector, r2 float64) (Excluded, bool) {
	var z T
	va, vb, v0, v1 := conv(a), conv(b), conv(x0), conv(x1)
	n := v0.cross(v1)
	nx0 := n.cross(v0)
	n2 := n.norm2()
	cr := z.FromFloat(1).Sub(z.FromFloat(0.5).Mul(z.FromFloat(r2)))

	cA := va.dot(v0)
	cB := vb.dot(v0)
	tA := va.dot(nx0)
	tB := vb.dot(nx0)

	sA, ok := compareCosDistance(va, v0, r2)
	if !ok {
		return excludedUncertain, false
	}
	sB, ok := compareCosDistance(vb, v1, r2)
	if !ok {
		return excludedUncertain, false
	}

	excludeA := false
	if sA > 0 {
		u := cr.Mul(n2.Mul(cA).Mul(cB.Sub(cA)).Add(tA.Mul(tB.Sub(tA))))
		v := tB.Mul(cA).Sub(tA.Mul(cB))
		w := n2.Mul(cA.Mul(cA).Sub(cr.Mul(cr))).Add(tA.Mul(tA))
		s, ok := signLinSqrt(u, v, w)
		if !ok {
			return excludedUncertain, false
		}
		if s == 0 {
			// Exact tie at the boundary point; the larger site is closer.
			excludeA = b.Cmp(a) > 0
		} else {
			excludeA = s > 0
		}
	}

	excludeB := false
	if sB > 0 {
		u := cr.Mul(n2.Mul(cB).Mul(cA.Sub(cB)).Add(tB.Mul(tA.Sub(tB))))
		v := tA.Mul(cB).Sub(tB.Mul(cA))
		w := n2.Mul(cB.Mul(cB).Sub(cr.Mul(cr))).Add(tB.Mul(tB))
		s, ok := signLinSqrt(u, v, w)
		if !ok {
			return excludedUncertain, false
		}
		if s == 0 {
			excludeB = a.Cmp(b) > 0
		} else {
			excludeB = s > 0
		}
	}

	switch {
	case excludeA && excludeB:
		// Both coverage intervals are dominated; keeping the site that is
		// closer at x0 preserves the caller's ordering.
		return ExcludedSecond, true
	case excludeA:
		return ExcludedFirst, true
	case excludeB:
		return ExcludedSecond, true
	default:
		return ExcludedNeither, true
	}
}
