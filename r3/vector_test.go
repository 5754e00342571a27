package r3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorNorm(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want float64
	}{
		{name: "zero", v: Vector{}, want: 0},
		{name: "unit axis", v: Vector{X: 1}, want: 1},
		{name: "pythagorean", v: Vector{X: 3, Y: 4}, want: 5},
		{name: "negative components", v: Vector{X: -3, Y: -4}, want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Norm())
			assert.Equal(t, tt.want*tt.want, tt.v.Norm2())
		})
	}
}

func TestVectorNormalize(t *testing.T) {
	v := Vector{X: 1, Y: 2, Z: -3}
	n := v.Normalize()
	require.True(t, n.IsUnit())

	// Direction is preserved.
	assert.InDelta(t, 0, v.Cross(n).Norm(), 1e-15)
	assert.Greater(t, v.Dot(n), 0.0)

	require.Equal(t, Vector{}, Vector{}.Normalize())
	require.False(t, Vector{}.IsUnit())
}

func TestVectorArithmetic(t *testing.T) {
	a := Vector{X: 1, Y: 2, Z: 3}
	b := Vector{X: -4, Y: 5, Z: -6}

	require.Equal(t, Vector{X: -3, Y: 7, Z: -3}, a.Add(b))
	require.Equal(t, Vector{X: 5, Y: -3, Z: 9}, a.Sub(b))
	require.Equal(t, Vector{X: 2, Y: 4, Z: 6}, a.Mul(2))
	require.Equal(t, Vector{X: -1, Y: -2, Z: -3}, a.Neg())
	require.Equal(t, Vector{X: 4, Y: 5, Z: 6}, b.Abs())
	require.Equal(t, -12.0, a.Dot(b))
}

func TestVectorCross(t *testing.T) {
	x := Vector{X: 1}
	y := Vector{Y: 1}
	z := Vector{Z: 1}

	require.Equal(t, z, x.Cross(y))
	require.Equal(t, x, y.Cross(z))
	require.Equal(t, y, z.Cross(x))
	require.Equal(t, z.Neg(), y.Cross(x))
	require.Equal(t, Vector{}, x.Cross(x))

	// The cross product is orthogonal to both inputs.
	a := Vector{X: 1, Y: 2, Z: 3}
	b := Vector{X: -7, Y: 1, Z: 2}
	c := a.Cross(b)
	require.Equal(t, 0.0, c.Dot(a))
	require.Equal(t, 0.0, c.Dot(b))
}

func TestVectorAngle(t *testing.T) {
	x := Vector{X: 1}
	y := Vector{Y: 1}

	assert.InDelta(t, math.Pi/2, x.Angle(y), 1e-15)
	assert.InDelta(t, math.Pi, x.Angle(x.Neg()), 1e-15)
	require.Equal(t, 0.0, x.Angle(x))
}

func TestVectorCmp(t *testing.T) {
	tests := []struct {
		name string
		v, o Vector
		want int
	}{
		{name: "equal", v: Vector{X: 1, Y: 2, Z: 3}, o: Vector{X: 1, Y: 2, Z: 3}, want: 0},
		{name: "first component decides", v: Vector{X: 1, Y: 9, Z: 9}, o: Vector{X: 2}, want: -1},
		{name: "second component decides", v: Vector{X: 1, Y: 3}, o: Vector{X: 1, Y: 2, Z: 9}, want: 1},
		{name: "third component decides", v: Vector{X: 1, Y: 2, Z: 3}, o: Vector{X: 1, Y: 2, Z: 4}, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Cmp(tt.o))
			assert.Equal(t, -tt.want, tt.o.Cmp(tt.v))
		})
	}
}

func TestVectorOrtho(t *testing.T) {
	vectors := []Vector{
		{X: 1},
		{Y: 1},
		{Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: 0.012, Y: 0.0053, Z: 0.00457},
		{X: -0.012, Y: -1, Z: -0.00457},
	}
	for _, v := range vectors {
		o := v.Ortho()
		require.True(t, o.IsUnit())
		assert.InDelta(t, 0, v.Dot(o), 1e-15)
	}
}
