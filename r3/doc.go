// Package r3 provides 3-dimensional vector math for points on the unit
// sphere.
//
// Vector is the plain float64 representation used by the fast evaluation
// paths. PreciseVector mirrors the same operations over exact rational
// arithmetic and is used when a sign computation cannot be certified in
// floating point.
package r3
