package r3

import (
	"fmt"
	"math"
)

// Vector represents a point in ℝ³.
type Vector struct {
	X, Y, Z float64
}

func (v Vector) String() string {
	return fmt.Sprintf("(%0.24g, %0.24g, %0.24g)", v.X, v.Y, v.Z)
}

// Norm returns the vector's norm.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Norm2 returns the square of the norm.
func (v Vector) Norm2() float64 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction as v, or the zero
// vector if v is zero.
func (v Vector) Normalize() Vector {
	n2 := v.Norm2()
	if n2 == 0 {
		return Vector{}
	}

	return v.Mul(1 / math.Sqrt(n2))
}

// IsUnit reports whether the norm of v is within a small tolerance of 1.
func (v Vector) IsUnit() bool {
	const epsilon = 5e-14

	return math.Abs(v.Norm2()-1) <= epsilon
}

// Abs returns the vector with nonnegative components.
func (v Vector) Abs() Vector {
	return Vector{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

// Add returns the sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the difference of v and o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns the scalar multiple of v by m.
func (v Vector) Mul(m float64) Vector {
	return Vector{m * v.X, m * v.Y, m * v.Z}
}

// Neg returns the negation of v.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Angle returns the angle between v and o in radians.
func (v Vector) Angle(o Vector) float64 {
	return math.Atan2(v.Cross(o).Norm(), v.Dot(o))
}

// Cmp compares v and o lexicographically by component and returns -1, 0, or
// +1. It defines the canonical total order used by symbolic tie-breaking.
func (v Vector) Cmp(o Vector) int {
	switch {
	case v.X < o.X:
		return -1
	case v.X > o.X:
		return 1
	case v.Y < o.Y:
		return -1
	case v.Y > o.Y:
		return 1
	case v.Z < o.Z:
		return -1
	case v.Z > o.Z:
		return 1
	default:
		return 0
	}
}

// Ortho returns a unit vector orthogonal to v. v must be nonzero.
func (v Vector) Ortho() Vector {
	// Cross against the axis of the smallest component to avoid cancellation.
	ov := Vector{}
	switch {
	case math.Abs(v.X) <= math.Abs(v.Y) && math.Abs(v.X) <= math.Abs(v.Z):
		ov.X = 1
	case math.Abs(v.Y) <= math.Abs(v.Z):
		ov.Y = 1
	default:
		ov.Z = 1
	}

	return v.Cross(ov).Normalize()
}
