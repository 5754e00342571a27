package predicate

import "github.com/hupe1980/sphergo/r3"

// EdgeCircumcenterSign returns +1 if the circumcenter of triangle abc is
// on the left side of the great circle through the edge x0x1, -1 if it is
// on the right side, and 0 if the five points are degenerate enough that
// even symbolic perturbation cannot separate them. The circumcenter here
// is the point equidistant from a, b, and c on the same side of plane abc
// as the triangle's positive orientation; the orientation Sign(a, b, c)
// is folded in so that the answer depends only on the triangle, not on
// the order of its vertices. Swapping x0 and x1 negates the result.
func EdgeCircumcenterSign(x0, x1, a, b, c r3.Vector) int {
	s, _ := edgeCircumcenterSignDetail(x0, x1, a, b, c)
	return s
}

func edgeCircumcenterSignDetail(x0, x1, a, b, c r3.Vector) (int, Precision) {
	abcSign := Sign(a, b, c)
	return cascade(
		func() (int, bool) {
			s, ok := edgeCircumcenterSignCore(toVec3[fpScalar](x0), toVec3[fpScalar](x1), toVec3[fpScalar](a), toVec3[fpScalar](b), toVec3[fpScalar](c))
			return abcSign * s, ok && s != 0
		},
		func() (int, bool) {
			s, ok := edgeCircumcenterSignCore(toVec3[xpScalar](x0), toVec3[xpScalar](x1), toVec3[xpScalar](a), toVec3[xpScalar](b), toVec3[xpScalar](c))
			return abcSign * s, ok && s != 0
		},
		func() (int, bool) {
			s, _ := edgeCircumcenterSignCore(toVec3[xfScalar](x0), toVec3[xfScalar](x1), toVec3[xfScalar](a), toVec3[xfScalar](b), toVec3[xfScalar](c))
			return abcSign * s, true
		},
		func() int { return symbolicEdgeCircumcenterSign(x0, x1, a, b, c) })
}

// edgeCircumcenterSignCore returns the sign of nx·z, where nx is the
// normal of edge x0x1 and z = (a-b) × (b-c) is the circumcenter axis of
// the triangle. z points toward the circumcenter of a positively oriented
// triangle, so the caller multiplies by the triangle orientation.
func edgeCircumcenterSignCore[T scalar[T]](x0, x1, a, b, c vec3[T]) (int, bool) {
	nx := x0.sub(x1).cross(x0.add(x1))
	z := a.sub(b).cross(b.sub(c))
	return nx.dot(z).Sign()
}

// symbolicEdgeCircumcenterSign resolves the case where the circumcenter
// lies exactly on the great circle through x0 and x1. Conceptually the
// circle is perturbed infinitesimally toward each triangle vertex in
// turn, in lexicographic vertex order; the first vertex strictly off the
// circle decides the side. If all three vertices lie exactly on the
// circle there is nothing left to separate and the result is 0.
func symbolicEdgeCircumcenterSign(x0, x1, a, b, c r3.Vector) int {
	sites := [3]r3.Vector{a, b, c}
	if sites[0].Cmp(sites[1]) > 0 {
		sites[0], sites[1] = sites[1], sites[0]
	}
	if sites[1].Cmp(sites[2]) > 0 {
		sites[1], sites[2] = sites[2], sites[1]
	}
	if sites[0].Cmp(sites[1]) > 0 {
		sites[0], sites[1] = sites[1], sites[0]
	}
	px0 := r3.PreciseVectorFromVector(x0)
	px1 := r3.PreciseVectorFromVector(x1)
	for _, site := range sites {
		if s := px0.Dot(px1.Cross(r3.PreciseVectorFromVector(site))).Sign(); s != 0 {
			return s
		}
	}
	return 0
}
