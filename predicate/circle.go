package predicate

import "github.com/hupe1980/sphergo/r3"

// CircleEdgeIntersectionOrdering orders the points where two edges cross
// a common great circle. Both ab and cd must cross the circle with normal
// m; the crossing points are ordered along m's circle by their position
// relative to the reference circle with normal n, and the result is +1,
// -1, or 0 as ab's crossing sorts after, before, or exactly at cd's
// crossing. Identical and reversed edges are recognized directly and
// report 0. Negating n, or swapping the roles of ab and cd, negates the
// result.
func CircleEdgeIntersectionOrdering(a, b, c, d, m, n r3.Vector) int {
	s, _ := circleEdgeIntersectionOrderingDetail(a, b, c, d, m, n)
	return s
}

func circleEdgeIntersectionOrderingDetail(a, b, c, d, m, n r3.Vector) (int, Precision) {
	// The same edge crosses at the same point, regardless of direction.
	if (a == c && b == d) || (a == d && b == c) {
		return 0, PrecisionDouble
	}
	return cascade(
		func() (int, bool) {
			return circleIntersectionOrderingCore(toVec3[fpScalar](a), toVec3[fpScalar](b), toVec3[fpScalar](c), toVec3[fpScalar](d), toVec3[fpScalar](m), toVec3[fpScalar](n))
		},
		func() (int, bool) {
			return circleIntersectionOrderingCore(toVec3[xpScalar](a), toVec3[xpScalar](b), toVec3[xpScalar](c), toVec3[xpScalar](d), toVec3[xpScalar](m), toVec3[xpScalar](n))
		},
		func() (int, bool) {
			return circleIntersectionOrderingCore(toVec3[xfScalar](a), toVec3[xfScalar](b), toVec3[xfScalar](c), toVec3[xfScalar](d), toVec3[xfScalar](m), toVec3[xfScalar](n))
		},
		nil)
}

// circleIntersectionOrderingCore computes the crossing directions
// p1 = (a × b) × m and p2 = (c × d) × m, which both lie in the plane of
// circle m, and returns the sign of (p1 × p2)·n. The cross product of two
// vectors in m's plane is parallel to m, so the result compares the
// angular order of the crossings with the orientation given by n.
func circleIntersectionOrderingCore[T scalar[T]](a, b, c, d, m, n vec3[T]) (int, bool) {
	p1 := a.cross(b).cross(m)
	p2 := c.cross(d).cross(m)
	return p1.cross(p2).dot(n).Sign()
}

// CircleEdgeIntersectionSign reports which side of the circle with normal
// x the crossing point of edge ab with the circle with normal n lies on:
// +1 for the positive side, -1 for the negative side, and 0 when the
// crossing lies exactly on circle x.
func CircleEdgeIntersectionSign(a, b, n, x r3.Vector) int {
	s, _ := circleEdgeIntersectionSignDetail(a, b, n, x)
	return s
}

func circleEdgeIntersectionSignDetail(a, b, n, x r3.Vector) (int, Precision) {
	return cascade(
		func() (int, bool) {
			return circleIntersectionSignCore(toVec3[fpScalar](a), toVec3[fpScalar](b), toVec3[fpScalar](n), toVec3[fpScalar](x))
		},
		func() (int, bool) {
			return circleIntersectionSignCore(toVec3[xpScalar](a), toVec3[xpScalar](b), toVec3[xpScalar](n), toVec3[xpScalar](x))
		},
		func() (int, bool) {
			return circleIntersectionSignCore(toVec3[xfScalar](a), toVec3[xfScalar](b), toVec3[xfScalar](n), toVec3[xfScalar](x))
		},
		nil)
}

// circleIntersectionSignCore returns the sign of ((a × b) × n)·x, written
// as (a × b)·(n × x) to share the cancellation behavior of the other
// crossing predicates. (a × b) × n is the crossing direction of edge ab
// with circle n.
func circleIntersectionSignCore[T scalar[T]](a, b, n, x vec3[T]) (int, bool) {
	return a.cross(b).dot(n.cross(x)).Sign()
}
