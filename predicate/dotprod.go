package predicate

import "github.com/hupe1980/sphergo/r3"

// SignDotProd returns the sign of the dot product a·b, that is, whether
// the angle between the two vectors is acute (+1), obtuse (-1), or
// exactly 90 degrees (0). The dot product of two float64 vectors is a
// polynomial in representable values, so exact arithmetic always settles
// the right-angle case and no symbolic perturbation is needed.
func SignDotProd(a, b r3.Vector) int {
	s, _ := signDotProdDetail(a, b)
	return s
}

func signDotProdDetail(a, b r3.Vector) (int, Precision) {
	return cascade(
		func() (int, bool) {
			return toVec3[fpScalar](a).dot(toVec3[fpScalar](b)).Sign()
		},
		func() (int, bool) {
			return toVec3[xpScalar](a).dot(toVec3[xpScalar](b)).Sign()
		},
		func() (int, bool) {
			return toVec3[xfScalar](a).dot(toVec3[xfScalar](b)).Sign()
		},
		nil)
}
