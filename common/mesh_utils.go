package common

// Last time I checked the if version got compiled using cmov, which was a lot faster than module (with idiv).
func Prev[T IT](i, n T) T {
	if i-1 >= 0 {
		return i - 1
	}
	return n - 1
}
func Next[T IT](i, n T) T {
	if i+1 < n {
		return i + 1
	}
	return 0
}

// Area2 returns twice the signed area of triangle abc, positive when abc turns left.
func Area2(a, b, c Vec2) float32 {
	return (b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])
}

// Returns true iff c is strictly to the left of the directed
// line through a to b.
func IsConvex(a, b, c Vec2) bool {
	return Area2(a, b, c) > 0
}

func IsReflex(a, b, c Vec2) bool {
	return Area2(a, b, c) < 0
}

// IsInsideConvexTriangle reports whether p is strictly inside the
// counter-clockwise triangle p1 p2 p3.
func IsInsideConvexTriangle(p1, p2, p3, p Vec2) bool {
	if IsConvex(p1, p, p2) {
		return false
	}
	if IsConvex(p2, p, p3) {
		return false
	}
	if IsConvex(p3, p, p1) {
		return false
	}
	return true
}

// InCone reports whether p lies in the cone formed at p2 by p1 p2 p3.
func InCone(p1, p2, p3, p Vec2) bool {
	if IsConvex(p1, p2, p3) {
		if !IsConvex(p1, p2, p) {
			return false
		}
		if !IsConvex(p2, p3, p) {
			return false
		}
		return true
	}
	if IsConvex(p1, p2, p) {
		return true
	}
	if IsConvex(p2, p3, p) {
		return true
	}
	return false
}

// SegmentsIntersect reports whether p11-p12 and p21-p22 cross. Segments sharing
// an endpoint never intersect, touching at a vertex is how bridges attach.
func SegmentsIntersect(p11, p12, p21, p22 Vec2) bool {
	if Vequal2D(p11, p21) || Vequal2D(p11, p22) || Vequal2D(p12, p21) || Vequal2D(p12, p22) {
		return false
	}

	v1ort := Vec2{p12[1] - p11[1], p11[0] - p12[0]}
	v2ort := Vec2{p22[1] - p21[1], p21[0] - p22[0]}

	dot21 := p21.Sub(p11).Dot(v1ort)
	dot22 := p22.Sub(p11).Dot(v1ort)

	dot11 := p11.Sub(p21).Dot(v2ort)
	dot12 := p12.Sub(p21).Dot(v2ort)

	if dot11*dot12 > 0 {
		return false
	}
	if dot21*dot22 > 0 {
		return false
	}
	return true
}

// GetArea returns the signed area of contour, positive for counter-clockwise.
func GetArea(contour []Vec2) float32 {
	n := len(contour)
	var a float32
	for p, q := n-1, 0; q < n; p, q = q, q+1 {
		a += Cross(contour[p], contour[q])
	}
	return a * 0.5
}

const (
	ORIENTATION_CCW = 1
	ORIENTATION_CW  = -1
)

// GetOrientation returns ORIENTATION_CCW, ORIENTATION_CW or 0 for a degenerate ring.
func GetOrientation(points []Vec2) int {
	var area float32
	for i1 := range points {
		i2 := Next(i1, len(points))
		area += points[i1][0]*points[i2][1] - points[i1][1]*points[i2][0]
	}
	if area > 0 {
		return ORIENTATION_CCW
	}
	if area < 0 {
		return ORIENTATION_CW
	}
	return 0
}

func isInsideTriangle(a, b, c, p Vec2, relaxed bool) bool {
	ax, ay := c[0]-b[0], c[1]-b[1]
	bx, by := a[0]-c[0], a[1]-c[1]
	cx, cy := b[0]-a[0], b[1]-a[1]
	apx, apy := p[0]-a[0], p[1]-a[1]
	bpx, bpy := p[0]-b[0], p[1]-b[1]
	cpx, cpy := p[0]-c[0], p[1]-c[1]

	aCROSSbp := ax*bpy - ay*bpx
	cCROSSap := cx*apy - cy*apx
	bCROSScp := bx*cpy - by*cpx

	if relaxed {
		return aCROSSbp > 0 && bCROSScp > 0 && cCROSSap > 0
	}
	return aCROSSbp >= 0 && bCROSScp >= 0 && cCROSSap >= 0
}

func snip(contour []Vec2, u, v, w, n int, V []int, relaxed bool) bool {
	a := contour[V[u]]
	b := contour[V[v]]
	c := contour[V[w]]

	// Three aligned vertices may be all that is left. A strict check would
	// refuse that last flat triangle, so the relaxed pass accepts zero area.
	threshold := float32(CMP_EPSILON)
	if relaxed {
		threshold = -CMP_EPSILON
	}
	if threshold > (b[0]-a[0])*(c[1]-a[1])-(b[1]-a[1])*(c[0]-a[0]) {
		return false
	}

	for p := 0; p < n; p++ {
		if p == u || p == v || p == w {
			continue
		}
		if isInsideTriangle(a, b, c, contour[V[p]], relaxed) {
			return false
		}
	}
	return true
}

// TriangulatePolygon ear clips a simple polygon of any winding and returns
// triangle indices into contour, three per triangle. A strict pass runs
// first; when it stalls one relaxed pass allows flat triangles. Nil means
// the polygon could not be triangulated.
func TriangulatePolygon(contour []Vec2) []int {
	n := len(contour)
	if n < 3 {
		return nil
	}

	// we want a counter-clockwise polygon in V
	V := make([]int, n)
	if GetArea(contour) > 0 {
		for v := 0; v < n; v++ {
			V[v] = v
		}
	} else {
		for v := 0; v < n; v++ {
			V[v] = (n - 1) - v
		}
	}

	relaxed := false
	nv := n
	count := 2 * nv
	result := make([]int, 0, (n-2)*3)

	for v := nv - 1; nv > 2; {
		// if we loop, it is probably a non-simple polygon
		exhausted := count <= 0
		count--
		if exhausted {
			if relaxed {
				return nil
			}
			count = 2 * nv
			relaxed = true
		}

		// three consecutive vertices in current polygon, <u,v,w>
		u := v
		if nv <= u {
			u = 0
		}
		v = u + 1
		if nv <= v {
			v = 0
		}
		w := v + 1
		if nv <= w {
			w = 0
		}

		if snip(contour, u, v, w, nv, V, relaxed) {
			result = append(result, V[u], V[v], V[w])

			// remove v from remaining polygon
			copy(V[v:nv-1], V[v+1:nv])
			nv--

			count = 2 * nv
		}
	}
	return result
}

// IsPointInPolygon reports whether point lies strictly inside one of the
// triangles of polygon.
func IsPointInPolygon(point Vec2, polygon []Vec2) bool {
	indices := TriangulatePolygon(polygon)
	for j := 0; j+3 <= len(indices); j += 3 {
		if IsPointInTriangle(point, polygon[indices[j]], polygon[indices[j+1]], polygon[indices[j+2]]) {
			return true
		}
	}
	return false
}
