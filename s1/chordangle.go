package s1

import (
	"math"
)

// ChordAngle represents the angle subtended by a chord (the straight line
// segment between two points on the unit sphere), stored as the squared
// chord length. The squared length of the chord between two unit vectors a
// and b is |a-b|², which ranges from 0 (for equal points) to 4 (for
// antipodal points), and is related to the angle θ between them by
// |a-b|² = 4·sin²(θ/2).
//
// The representation trades inverse trigonometry for polynomial identities:
// for a ChordAngle r, cos(r) = 1 - r/2 and sin²(r) = r·(1 - r/4) are exact
// rational functions of the squared length, which is what makes exact
// distance comparisons possible.
//
// Two sentinel values extend the ordinary range: NegativeChordAngle sorts
// before every valid angle and InfChordAngle() after.
type ChordAngle float64

const (
	// NegativeChordAngle represents a chord angle smaller than the zero
	// angle. The only valid operations on it are comparisons and conversions
	// to and from Angle.
	NegativeChordAngle = ChordAngle(-1)

	// RightChordAngle represents a chord angle of 90 degrees, exactly.
	RightChordAngle = ChordAngle(2)

	// StraightChordAngle represents a chord angle of 180 degrees, exactly.
	StraightChordAngle = ChordAngle(4)

	// maxLength2 is the square of the maximum length allowed in a ChordAngle.
	maxLength2 = 4.0
)

// InfChordAngle returns a chord angle larger than any finite chord angle.
// The only valid operations on it are comparisons and conversions to and
// from Angle.
func InfChordAngle() ChordAngle {
	return ChordAngle(math.Inf(1))
}

// ChordAngleFromAngle returns a ChordAngle from the given Angle.
func ChordAngleFromAngle(a Angle) ChordAngle {
	if a < 0 {
		return NegativeChordAngle
	}
	if a.Radians() == math.Inf(1) {
		return InfChordAngle()
	}
	l := 2 * math.Sin(0.5*math.Min(math.Pi, a.Radians()))

	return ChordAngle(l * l)
}

// ChordAngleFromRadians returns a ChordAngle for the angle measured in
// radians.
func ChordAngleFromRadians(rad float64) ChordAngle {
	return ChordAngleFromAngle(Angle(rad))
}

// ChordAngleFromDegrees returns a ChordAngle for the angle measured in
// degrees.
func ChordAngleFromDegrees(deg float64) ChordAngle {
	return ChordAngleFromAngle(Angle(deg) * Degree)
}

// ChordAngleFromSquaredLength returns a ChordAngle from the given squared
// chord length. Lengths greater than 4 are clamped to 4 (the straight
// angle).
func ChordAngleFromSquaredLength(l2 float64) ChordAngle {
	if l2 > maxLength2 {
		return StraightChordAngle
	}

	return ChordAngle(l2)
}

// Angle converts the chord angle to an Angle.
func (c ChordAngle) Angle() Angle {
	if c < 0 {
		return -1 * Radian
	}
	if c.IsInfinity() {
		return InfAngle()
	}

	return Angle(2 * math.Asin(0.5*math.Sqrt(float64(c))))
}

// IsNegative reports whether this is the negative sentinel.
func (c ChordAngle) IsNegative() bool { return c < 0 }

// IsInfinity reports whether this is the infinite sentinel.
func (c ChordAngle) IsInfinity() bool { return math.IsInf(float64(c), 1) }

// IsSpecial reports whether this is one of the two sentinels.
func (c ChordAngle) IsSpecial() bool { return c.IsNegative() || c.IsInfinity() }

// IsValid reports whether this ChordAngle is a valid measurement or one of
// the sentinels.
func (c ChordAngle) IsValid() bool {
	return (c >= 0 && c <= maxLength2) || c.IsSpecial()
}

// Successor returns the smallest representable ChordAngle larger than this
// one. The successor of Straight is Infinity, and the successor of Infinity
// is Infinity itself.
func (c ChordAngle) Successor() ChordAngle {
	if c >= maxLength2 {
		return InfChordAngle()
	}
	if c < 0 {
		return 0
	}

	return ChordAngle(math.Nextafter(float64(c), 10.0))
}

// Predecessor returns the largest representable ChordAngle smaller than this
// one. The predecessor of Zero is Negative, and the predecessor of Negative
// is Negative itself.
func (c ChordAngle) Predecessor() ChordAngle {
	if c <= 0 {
		return NegativeChordAngle
	}
	if c > maxLength2 {
		return StraightChordAngle
	}

	return ChordAngle(math.Nextafter(float64(c), -10.0))
}

// MaxPointError returns the maximum error in the squared chord length when
// the endpoints of the chord were themselves only accurate to within the
// usual unit-vector construction tolerance.
func (c ChordAngle) MaxPointError() float64 {
	// The error introduced by the endpoints grows with the chord, plus a
	// small constant term for the subtraction.
	return 2.5*dblEpsilon*float64(c) + 16*dblEpsilon*dblEpsilon
}

// MaxAngleError returns the maximum error in the squared chord length for
// endpoints that are accurate to within the float64 rounding of an exact
// angle.
func (c ChordAngle) MaxAngleError() float64 {
	return dblEpsilon * float64(c)
}

// Add adds the other ChordAngle to this one, as if the angles were summed,
// and returns the resulting value clamped to [0, Straight]. Neither angle
// may be special.
func (c ChordAngle) Add(other ChordAngle) ChordAngle {
	// Optimization for the common case when other is an error tolerance
	// parameter that happens to be zero.
	if other == 0 {
		return c
	}

	// Chords longer than a diameter do not exist.
	if c+other >= maxLength2 {
		return StraightChordAngle
	}

	// Let a and b be the (non-squared) chord lengths, and let c = a+b.
	// Letting A, B, and C be the corresponding half-angles, the chord
	// length of the sum is 2·sin(A+B) = 2·(sin A cos B + cos A sin B). The
	// squared terms below are x = a²·cos²(B) and y = b²·cos²(A), so the
	// result is x + y + 2·sqrt(x·y).
	x := float64(c) * (1 - 0.25*float64(other))
	y := float64(other) * (1 - 0.25*float64(c))

	return ChordAngle(math.Min(maxLength2, x+y+2*math.Sqrt(x*y)))
}

// Sub subtracts the other ChordAngle from this one, as if the angles were
// subtracted, clamping at zero. Neither angle may be special.
func (c ChordAngle) Sub(other ChordAngle) ChordAngle {
	if other == 0 {
		return c
	}
	if c <= other {
		return 0
	}
	x := float64(c) * (1 - 0.25*float64(other))
	y := float64(other) * (1 - 0.25*float64(c))

	return ChordAngle(math.Max(0.0, x+y-2*math.Sqrt(x*y)))
}

// Expanded returns a new ChordAngle whose squared length has been adjusted
// by the given (possibly negative) error bound, clamped to the valid range.
// Sentinels are returned unchanged.
func (c ChordAngle) Expanded(e float64) ChordAngle {
	if c.IsSpecial() {
		return c
	}

	return ChordAngle(math.Max(0.0, math.Min(maxLength2, float64(c)+e)))
}

// Sin returns the sine of this chord angle, which must not be special.
func (c ChordAngle) Sin() float64 {
	return math.Sqrt(c.Sin2())
}

// Sin2 returns the square of the sine of this chord angle. It is more
// efficient than Sin and is exact for the Right and Straight angles.
func (c ChordAngle) Sin2() float64 {
	// Let a be the (non-squared) chord length, and let A be the
	// corresponding half-angle (a = 2·sin(A)). The sine of the full angle
	// is sin(2A) = 2·sin(A)·cos(A), and the identity below follows from
	// cos²(A) = 1 - a²/4.
	return float64(c) * (1 - 0.25*float64(c))
}

// Cos returns the cosine of this chord angle, which must not be special.
func (c ChordAngle) Cos() float64 {
	// cos(2A) = 1 - 2·sin²(A).
	return 1 - 0.5*float64(c)
}

// Tan returns the tangent of this chord angle.
func (c ChordAngle) Tan() float64 {
	return c.Sin() / c.Cos()
}

const dblEpsilon = 2.220446049250313e-16
