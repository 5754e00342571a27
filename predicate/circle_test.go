package predicate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sphergo/r3"
)

// The fixtures below all cross the equator, whose normal is m = (0, 0, 1).
// An edge from (cx, cy, h) to (cx, cy, -h) crosses the equator at the
// longitude of (cx, cy), and its crossing direction (a x b) x m points at
// (cx, cy, 0). That makes the expected ordering the sign of the 2D cross
// product of the two longitude directions, oriented by n's z component.
func TestCircleEdgeIntersectionOrderingCoverage(t *testing.T) {
	m := r3.Vector{Z: 1}
	n := r3.Vector{X: 1, Y: 1, Z: 1}

	third := 1.0 / 3.0
	eps := dblEpsilon

	tests := []struct {
		name       string
		a, b, c, d r3.Vector
		want       int
		wantPrec   Precision
	}{
		{
			name: "well separated crossings",
			a:    r3.Vector{X: 1, Z: 1}, b: r3.Vector{X: 1, Z: -1},
			c: r3.Vector{X: 1, Y: 1, Z: 1}, d: r3.Vector{X: 1, Y: 1, Z: -1},
			want: 1, wantPrec: PrecisionDouble,
		},
		{
			// Distinct edges at the same longitude cross at the same point,
			// and every term cancels exactly in the first stage.
			name: "same longitude scaled",
			a:    r3.Vector{X: 1, Z: 1}, b: r3.Vector{X: 1, Z: -1},
			c: r3.Vector{X: 2, Z: 1}, d: r3.Vector{X: 2, Z: -1},
			want: 0, wantPrec: PrecisionDouble,
		},
		{
			// The second edge is tilted so its crossing longitude differs
			// from the first by about one ulp of 1/3. The double stage
			// rounds both 3*(1/3) products to 1 and loses the difference.
			name: "nearly equal longitudes",
			a:    r3.Vector{X: 1, Z: 1}, b: r3.Vector{X: 1, Z: -1},
			c: r3.Vector{X: 1, Y: third, Z: 3}, d: r3.Vector{X: 1, Y: -(third + math.Ldexp(1, -54)), Z: -3},
			want: -1, wantPrec: PrecisionExtended,
		},
		{
			// Same construction with an exactly symmetric tilt. The true
			// value is zero, but both rounded stages carry a nonzero error
			// bound, so only exact arithmetic certifies it.
			name: "crossings coincide exactly",
			a:    r3.Vector{X: 1, Z: 1}, b: r3.Vector{X: 1, Z: -1},
			c: r3.Vector{X: 1, Y: third, Z: 3}, d: r3.Vector{X: 1, Y: -third, Z: -3},
			want: 0, wantPrec: PrecisionExact,
		},
		{
			// Longitude directions (1+eps, 1) and (1, 1-eps) differ by
			// eps^2, which is below the double-double error bound.
			name: "longitudes split by epsilon squared",
			a:    r3.Vector{X: 1 + eps, Y: 1, Z: 1}, b: r3.Vector{X: 1 + eps, Y: 1, Z: -1},
			c: r3.Vector{X: 1, Y: 1 - eps, Z: 1}, d: r3.Vector{X: 1, Y: 1 - eps, Z: -1},
			want: -1, wantPrec: PrecisionExact,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, prec := circleEdgeIntersectionOrderingDetail(tt.a, tt.b, tt.c, tt.d, m, n)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPrec, prec)

			// Swapping the edges or negating the reference circle negates
			// the result; reversing an edge flips its crossing direction.
			assert.Equal(t, -tt.want, CircleEdgeIntersectionOrdering(tt.c, tt.d, tt.a, tt.b, m, n))
			assert.Equal(t, -tt.want, CircleEdgeIntersectionOrdering(tt.a, tt.b, tt.c, tt.d, m, n.Neg()))
			assert.Equal(t, -tt.want, CircleEdgeIntersectionOrdering(tt.b, tt.a, tt.c, tt.d, m, n))
			assert.Equal(t, -tt.want, CircleEdgeIntersectionOrdering(tt.a, tt.b, tt.d, tt.c, m, n))
		})
	}
}

func TestCircleEdgeIntersectionOrderingDuplicateEdges(t *testing.T) {
	a := unit(r3.Vector{X: 1, Y: 0.5, Z: 1})
	b := unit(r3.Vector{X: 1, Y: 0.5, Z: -1})
	m := r3.Vector{Z: 1}
	n := r3.Vector{X: 1, Y: 1, Z: 1}

	got, prec := circleEdgeIntersectionOrderingDetail(a, b, a, b, m, n)
	require.Equal(t, 0, got)
	require.Equal(t, PrecisionDouble, prec)

	got, prec = circleEdgeIntersectionOrderingDetail(a, b, b, a, m, n)
	require.Equal(t, 0, got)
	require.Equal(t, PrecisionDouble, prec)
}

func TestCircleEdgeIntersectionSignCoverage(t *testing.T) {
	n := r3.Vector{Z: 1}

	third := 1.0 / 3.0
	eps := dblEpsilon

	// Edges crossing the equator at longitude (1, 0) and (1, 1/3). The
	// crossing point lies on circle x exactly when its longitude direction
	// is orthogonal to x's first two components.
	straight0 := r3.Vector{X: 1, Z: 1}
	straight1 := r3.Vector{X: 1, Z: -1}
	tilted0 := r3.Vector{X: 1, Y: third, Z: 1}
	tilted1 := r3.Vector{X: 1, Y: third, Z: -1}

	tests := []struct {
		name     string
		a, b, x  r3.Vector
		want     int
		wantPrec Precision
	}{
		{
			name: "crossing on positive side",
			a:    straight0, b: straight1, x: r3.Vector{X: 1, Y: -3, Z: 2},
			want: 1, wantPrec: PrecisionDouble,
		},
		{
			name: "crossing on negative side",
			a:    straight0, b: straight1, x: r3.Vector{X: -2, Y: 5, Z: 1},
			want: -1, wantPrec: PrecisionDouble,
		},
		{
			// The crossing at (1, 0, 0) lies on the circle through the
			// poles and (0, 1, 0); every product is an exact zero.
			name: "crossing on axis circle",
			a:    straight0, b: straight1, x: r3.Vector{Y: 1},
			want: 0, wantPrec: PrecisionDouble,
		},
		{
			// x is one ulp short of orthogonal to the crossing direction.
			// The residual is half an ulp of the cancelled terms, which the
			// double stage cannot separate from its own rounding.
			name: "barely positive side",
			a:    tilted0, b: tilted1, x: r3.Vector{X: -(third - math.Ldexp(1, -54)), Y: 1, Z: 1},
			want: 1, wantPrec: PrecisionExtended,
		},
		{
			name: "barely negative side",
			a:    tilted0, b: tilted1, x: r3.Vector{X: -(third + math.Ldexp(1, -54)), Y: 1, Z: 1},
			want: -1, wantPrec: PrecisionExtended,
		},
		{
			// Exactly orthogonal, but through products that round in both
			// the double and double-double stages.
			name: "exactly on tilted circle",
			a:    tilted0, b: tilted1, x: r3.Vector{X: -third, Y: 1, Z: 1},
			want: 0, wantPrec: PrecisionExact,
		},
		{
			// (1+eps)(1-eps) against 1 leaves a residual of eps^2, below
			// the double-double error bound.
			name: "epsilon squared off the circle",
			a:    r3.Vector{X: 1, Y: 1 + eps, Z: 1}, b: r3.Vector{X: 1, Y: 1 + eps, Z: -1},
			x:    r3.Vector{X: -1, Y: 1 - eps, Z: 1},
			want: -1, wantPrec: PrecisionExact,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, prec := circleEdgeIntersectionSignDetail(tt.a, tt.b, n, tt.x)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPrec, prec)

			// Reversing the edge, negating the side circle, or negating
			// the crossed circle negates the result.
			assert.Equal(t, -tt.want, CircleEdgeIntersectionSign(tt.b, tt.a, n, tt.x))
			assert.Equal(t, -tt.want, CircleEdgeIntersectionSign(tt.a, tt.b, n, tt.x.Neg()))
			assert.Equal(t, -tt.want, CircleEdgeIntersectionSign(tt.a, tt.b, n.Neg(), tt.x))
		})
	}
}

// BenchmarkCircleEdgeIntersectionOrdering-10    	 9402110	       127.6 ns/op	       0 B/op	       0 allocs/op
func BenchmarkCircleEdgeIntersectionOrdering(b *testing.B) {
	p := r3.Vector{X: 1, Z: 1}
	q := r3.Vector{X: 1, Z: -1}
	r := r3.Vector{X: 1, Y: 1e-15, Z: 1}
	s := r3.Vector{X: 1, Y: 1e-15, Z: -1}
	m := r3.Vector{Z: 1}
	n := r3.Vector{X: 1, Y: 1, Z: 1}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = CircleEdgeIntersectionOrdering(p, q, r, s, m, n)
	}
}
