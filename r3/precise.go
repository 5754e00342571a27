package r3

import "math/big"

// PreciseVector represents a point in ℝ³ using exact rational coordinates.
// Every float64 is exactly representable as a rational, so converting a
// Vector and operating on the result is free of rounding error.
type PreciseVector struct {
	X, Y, Z *big.Rat
}

// PreciseVectorFromVector creates an exact copy of v.
func PreciseVectorFromVector(v Vector) PreciseVector {
	return PreciseVector{
		X: new(big.Rat).SetFloat64(v.X),
		Y: new(big.Rat).SetFloat64(v.Y),
		Z: new(big.Rat).SetFloat64(v.Z),
	}
}

// Vector returns the nearest floating point approximation of v.
func (v PreciseVector) Vector() Vector {
	x, _ := v.X.Float64()
	y, _ := v.Y.Float64()
	z, _ := v.Z.Float64()

	return Vector{x, y, z}
}

// IsZero reports whether all components are exactly zero.
func (v PreciseVector) IsZero() bool {
	return v.X.Sign() == 0 && v.Y.Sign() == 0 && v.Z.Sign() == 0
}

// Add returns the sum of v and o.
func (v PreciseVector) Add(o PreciseVector) PreciseVector {
	return PreciseVector{
		X: new(big.Rat).Add(v.X, o.X),
		Y: new(big.Rat).Add(v.Y, o.Y),
		Z: new(big.Rat).Add(v.Z, o.Z),
	}
}

// Sub returns the difference of v and o.
func (v PreciseVector) Sub(o PreciseVector) PreciseVector {
	return PreciseVector{
		X: new(big.Rat).Sub(v.X, o.X),
		Y: new(big.Rat).Sub(v.Y, o.Y),
		Z: new(big.Rat).Sub(v.Z, o.Z),
	}
}

// Dot returns the dot product of v and o.
func (v PreciseVector) Dot(o PreciseVector) *big.Rat {
	d := new(big.Rat).Mul(v.X, o.X)
	d.Add(d, new(big.Rat).Mul(v.Y, o.Y))

	return d.Add(d, new(big.Rat).Mul(v.Z, o.Z))
}

// Norm2 returns the square of the norm.
func (v PreciseVector) Norm2() *big.Rat {
	return v.Dot(v)
}

// Cross returns the cross product of v and o.
func (v PreciseVector) Cross(o PreciseVector) PreciseVector {
	return PreciseVector{
		X: new(big.Rat).Sub(new(big.Rat).Mul(v.Y, o.Z), new(big.Rat).Mul(v.Z, o.Y)),
		Y: new(big.Rat).Sub(new(big.Rat).Mul(v.Z, o.X), new(big.Rat).Mul(v.X, o.Z)),
		Z: new(big.Rat).Sub(new(big.Rat).Mul(v.X, o.Y), new(big.Rat).Mul(v.Y, o.X)),
	}
}
