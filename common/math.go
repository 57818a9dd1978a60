package common

import (
	"cmp"
	"math"
)

// CMP_EPSILON is the tolerance used for float comparisons and path point dedup.
const CMP_EPSILON = 1e-5

// / Returns the square of the value.
// / @param[in]		a	The value.
// / @return The square of the value.
func Sqr[T IT](a T) T {
	return a * a
}

func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}

// / Returns the absolute value.
// / @param[in]		a	The value.
// / @return The absolute value of the specified value.
func Abs[T IT](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// / Clamps the value to the specified range.
// / @param[in]		value			The value to clamp.
// / @param[in]		minInclusive	The minimum permitted return value.
// / @param[in]		maxInclusive	The maximum permitted return value.
// / @return The value, clamped to the specified range.
func Clamp[T cmp.Ordered](value, minInclusive, maxInclusive T) T {
	if value < minInclusive {
		return minInclusive
	}
	if value > maxInclusive {
		return maxInclusive
	}
	return value
}

// FloatEqual reports whether a and b differ by less than CMP_EPSILON.
func FloatEqual(a, b float32) bool {
	return Abs(a-b) < CMP_EPSILON
}

// Vequal2D reports whether both components of p0 and p1 are FloatEqual.
func Vequal2D(p0, p1 Vec2) bool {
	return FloatEqual(p0[0], p1[0]) && FloatEqual(p0[1], p1[1])
}

// Cross returns the z component of the 3D cross product of a and b.
func Cross(a, b Vec2) float32 {
	return a[0]*b[1] - a[1]*b[0]
}

// / Returns the square of the distance between two points.
func VdistSqr2D(v1, v2 Vec2) float32 {
	d := v2.Sub(v1)
	return d.Dot(d)
}

// / Returns the distance between two points.
func Vdist2D(v1, v2 Vec2) float32 {
	return float32(Sqrt(float64(VdistSqr2D(v1, v2))))
}

// Vnormalize2D returns the unit vector of v, or the zero vector when v has no length.
func Vnormalize2D(v Vec2) Vec2 {
	n := float32(Sqrt(float64(v.Dot(v))))
	if n == 0 {
		return Vec2{}
	}
	return v.Mul(1 / n)
}

// IsPointInTriangle reports whether s lies strictly inside triangle abc.
// The winding of abc does not matter. Points exactly on an edge count
// as outside for one of the two windings.
func IsPointInTriangle(s, a, b, c Vec2) bool {
	an := a.Sub(s)
	bn := b.Sub(s)
	cn := c.Sub(s)

	orientation := Cross(an, bn) > 0
	if (Cross(bn, cn) > 0) != orientation {
		return false
	}
	return (Cross(cn, an) > 0) == orientation
}

// GetClosestPointToSegment2D projects p onto segment ab, clamped to the endpoints.
// A degenerate segment returns a.
func GetClosestPointToSegment2D(p, a, b Vec2) Vec2 {
	ap := p.Sub(a)
	n := b.Sub(a)
	l2 := n.Dot(n)
	if l2 < 1e-20 {
		return a
	}
	d := n.Dot(ap) / l2
	if d <= 0 {
		return a
	} else if d >= 1 {
		return b
	}
	return a.Add(n.Mul(d))
}

// SegmentIntersectsSegment2D tests segment fromA-toA against fromB-toB and returns the
// crossing point on the first segment. Segment B touching the line of A with
// one endpoint counts on the non-negative side only.
func SegmentIntersectsSegment2D(fromA, toA, fromB, toB Vec2) (Vec2, bool) {
	B := toA.Sub(fromA)
	C := fromB.Sub(fromA)
	D := toB.Sub(fromA)

	ABlen := B.Dot(B)
	if ABlen <= 0 {
		return Vec2{}, false
	}
	Bn := B.Mul(1 / ABlen)
	C = Vec2{C[0]*Bn[0] + C[1]*Bn[1], C[1]*Bn[0] - C[0]*Bn[1]}
	D = Vec2{D[0]*Bn[0] + D[1]*Bn[1], D[1]*Bn[0] - D[0]*Bn[1]}

	if (C[1] < 0 && D[1] < 0) || (C[1] >= 0 && D[1] >= 0) {
		return Vec2{}, false
	}

	ABpos := D[0] + (C[0]-D[0])*D[1]/(D[1]-C[1])

	// Fail if segment C-D crosses line A-B outside of segment A-B.
	if ABpos < 0 || ABpos > 1 {
		return Vec2{}, false
	}

	return fromA.Add(B.Mul(ABpos)), true
}
