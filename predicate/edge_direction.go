package predicate

import "github.com/hupe1980/sphergo/r3"

// CompareEdgeDirections returns +1 if the edges a0a1 and b0b1 turn in the
// same direction (their great-circle normals are within 90 degrees), -1
// if they turn in opposite directions, and 0 if the normals are exactly
// orthogonal or either edge is degenerate. Reversing either edge negates
// the result; swapping the two edges leaves it unchanged.
func CompareEdgeDirections(a0, a1, b0, b1 r3.Vector) int {
	s, _ := compareEdgeDirectionsDetail(a0, a1, b0, b1)
	return s
}

func compareEdgeDirectionsDetail(a0, a1, b0, b1 r3.Vector) (int, Precision) {
	// A degenerate edge has a zero normal, making the result zero for any
	// other edge. Antipodal endpoint pairs reach the same answer through
	// the exact stage, where the normal vanishes identically.
	if a0 == a1 || b0 == b1 {
		return 0, PrecisionDouble
	}
	return cascade(
		func() (int, bool) {
			return compareEdgeDirectionsCore(toVec3[fpScalar](a0), toVec3[fpScalar](a1), toVec3[fpScalar](b0), toVec3[fpScalar](b1))
		},
		func() (int, bool) {
			return compareEdgeDirectionsCore(toVec3[xpScalar](a0), toVec3[xpScalar](a1), toVec3[xpScalar](b0), toVec3[xpScalar](b1))
		},
		func() (int, bool) {
			return compareEdgeDirectionsCore(toVec3[xfScalar](a0), toVec3[xfScalar](a1), toVec3[xfScalar](b0), toVec3[xfScalar](b1))
		},
		nil)
}

// compareEdgeDirectionsCore returns the sign of the dot product of the
// two edge normals, each computed in the cancellation-resistant form
// (p0 - p1) × (p0 + p1) = 2(p0 × p1).
func compareEdgeDirectionsCore[T scalar[T]](a0, a1, b0, b1 vec3[T]) (int, bool) {
	na := a0.sub(a1).cross(a0.add(a1))
	nb := b0.sub(b1).cross(b0.add(b1))
	return na.dot(nb).Sign()
}
