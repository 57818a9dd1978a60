package navpoly

import (
	"github.com/gorustyt/gonavmesh2d/common"
)

// partitionPoly is one ring handled by the partitioner.
type partitionPoly struct {
	points []common.Vec2
	hole   bool
}

func newTriangle(p1, p2, p3 common.Vec2) *partitionPoly {
	return &partitionPoly{points: []common.Vec2{p1, p2, p3}}
}

func (p *partitionPoly) numPoints() int {
	return len(p.points)
}

// point returns the point at i wrapped into the ring.
func (p *partitionPoly) point(i int) common.Vec2 {
	n := len(p.points)
	return p.points[((i%n)+n)%n]
}

// setOrientation reverses the ring when its winding is known and differs.
func (p *partitionPoly) setOrientation(orientation int) {
	o := common.GetOrientation(p.points)
	if o != 0 && o != orientation {
		p.invert()
	}
}

func (p *partitionPoly) invert() {
	for i, j := 0, len(p.points)-1; i < j; i, j = i+1, j-1 {
		p.points[i], p.points[j] = p.points[j], p.points[i]
	}
}

type partitionVertex struct {
	isActive bool
	isConvex bool
	isEar    bool

	p        common.Vec2
	angle    float32
	previous int
	next     int
}

func updateVertex(vi int, vertices []partitionVertex) {
	v := &vertices[vi]
	v1 := vertices[v.previous].p
	v3 := vertices[v.next].p

	v.isConvex = common.IsConvex(v1, v.p, v3)

	vec1 := common.Vnormalize2D(v1.Sub(v.p))
	vec3 := common.Vnormalize2D(v3.Sub(v.p))
	v.angle = vec1.Dot(vec3)

	v.isEar = false
	if !v.isConvex {
		return
	}
	v.isEar = true
	for i := range vertices {
		q := vertices[i].p
		if q == v.p || q == v1 || q == v3 {
			continue
		}
		if common.IsInsideConvexTriangle(v1, v.p, v3, q) {
			v.isEar = false
			break
		}
	}
}

// triangulateEC clips ears from a counter-clockwise simple polygon, always
// taking the most extruded one. It returns false when no ear is left
// before the polygon is used up.
func triangulateEC(poly *partitionPoly) ([]*partitionPoly, bool) {
	numvertices := poly.numPoints()
	if numvertices < 3 {
		return nil, false
	}
	if numvertices == 3 {
		return []*partitionPoly{{points: append([]common.Vec2(nil), poly.points...)}}, true
	}

	vertices := make([]partitionVertex, numvertices)
	for i := range vertices {
		vertices[i].isActive = true
		vertices[i].p = poly.points[i]
		vertices[i].next = common.Next(i, numvertices)
		vertices[i].previous = common.Prev(i, numvertices)
	}
	for i := range vertices {
		updateVertex(i, vertices)
	}

	triangles := make([]*partitionPoly, 0, numvertices-2)
	for i := 0; i < numvertices-3; i++ {
		ear := -1
		// find the most extruded ear
		for j := range vertices {
			if !vertices[j].isActive || !vertices[j].isEar {
				continue
			}
			if ear == -1 || vertices[j].angle > vertices[ear].angle {
				ear = j
			}
		}
		if ear == -1 {
			return nil, false
		}

		e := &vertices[ear]
		triangles = append(triangles, newTriangle(vertices[e.previous].p, e.p, vertices[e.next].p))

		e.isActive = false
		vertices[e.previous].next = e.next
		vertices[e.next].previous = e.previous

		if i == numvertices-4 {
			break
		}

		updateVertex(e.previous, vertices)
		updateVertex(e.next, vertices)
	}
	for i := range vertices {
		if vertices[i].isActive {
			v := &vertices[i]
			triangles = append(triangles, newTriangle(vertices[v.previous].p, v.p, vertices[v.next].p))
			break
		}
	}
	return triangles, true
}

// triangulateFallback runs the strict then relaxed clipper, which accepts
// flat triangles along aligned vertices.
func triangulateFallback(poly *partitionPoly) ([]*partitionPoly, bool) {
	indices := common.TriangulatePolygon(poly.points)
	if len(indices) == 0 {
		return nil, false
	}
	triangles := make([]*partitionPoly, 0, len(indices)/3)
	for j := 0; j+3 <= len(indices); j += 3 {
		triangles = append(triangles, newTriangle(poly.points[indices[j]], poly.points[indices[j+1]], poly.points[indices[j+2]]))
	}
	return triangles, true
}

// convexPartitionHM splits a counter-clockwise simple polygon into convex
// parts: triangulate, then drop every diagonal whose removal keeps both
// corners convex.
func convexPartitionHM(poly *partitionPoly) ([]*partitionPoly, bool) {
	n := poly.numPoints()
	if n < 3 {
		return nil, false
	}

	// check if the poly is already convex
	reflex := false
	for i11 := 0; i11 < n; i11++ {
		if common.IsReflex(poly.point(i11-1), poly.point(i11), poly.point(i11+1)) {
			reflex = true
			break
		}
	}
	if !reflex {
		return []*partitionPoly{{points: append([]common.Vec2(nil), poly.points...)}}, true
	}

	triangles, ok := triangulateEC(poly)
	if !ok {
		if triangles, ok = triangulateFallback(poly); !ok {
			return nil, false
		}
	}

	for i1 := 0; i1 < len(triangles); i1++ {
		poly1 := triangles[i1]
		for i11 := 0; i11 < poly1.numPoints(); i11++ {
			d1 := poly1.points[i11]
			i12 := (i11 + 1) % poly1.numPoints()
			d2 := poly1.points[i12]

			i2, i21, i22 := findDiagonal(triangles, i1, d1, d2)
			if i2 < 0 {
				continue
			}
			poly2 := triangles[i2]

			p1 := poly1.point(i11 - 1)
			p2 := poly1.points[i11]
			p3 := poly2.point(i22 + 1)
			if !common.IsConvex(p1, p2, p3) {
				continue
			}

			p2 = poly1.points[i12]
			p3 = poly1.point(i12 + 1)
			p1 = poly2.point(i21 - 1)
			if !common.IsConvex(p1, p2, p3) {
				continue
			}

			newpoly := &partitionPoly{points: make([]common.Vec2, 0, poly1.numPoints()+poly2.numPoints()-2)}
			for j := i12; j != i11; j = (j + 1) % poly1.numPoints() {
				newpoly.points = append(newpoly.points, poly1.points[j])
			}
			for j := i22; j != i21; j = (j + 1) % poly2.numPoints() {
				newpoly.points = append(newpoly.points, poly2.points[j])
			}

			triangles = append(triangles[:i2], triangles[i2+1:]...)
			triangles[i1] = newpoly
			poly1 = newpoly
			i11 = -1
		}
	}
	return triangles, true
}

// findDiagonal looks for a polygon after from that owns the edge d2-d1.
// It returns the polygon index and the indices of d2 and d1 in it, or -1.
func findDiagonal(polys []*partitionPoly, from int, d1, d2 common.Vec2) (int, int, int) {
	for i2 := from + 1; i2 < len(polys); i2++ {
		poly2 := polys[i2]
		for i21 := 0; i21 < poly2.numPoints(); i21++ {
			if d2 != poly2.points[i21] {
				continue
			}
			i22 := (i21 + 1) % poly2.numPoints()
			if d1 != poly2.points[i22] {
				continue
			}
			return i2, i21, i22
		}
	}
	return -1, -1, -1
}

// removeHoles bridges every hole into an outer ring. Each step takes the
// hole point with the largest x and connects it to the visible outer
// point closest to the +x direction. Holes are clockwise, outers
// counter-clockwise.
func removeHoles(inpolys []*partitionPoly) ([]*partitionPoly, error) {
	hasHoles := false
	for _, p := range inpolys {
		if p.hole {
			hasHoles = true
			break
		}
	}
	if !hasHoles {
		return inpolys, nil
	}

	polys := append([]*partitionPoly(nil), inpolys...)
	for {
		// find the hole point with the largest x
		holeIdx, holePointIdx := -1, 0
		for pi, p := range polys {
			if !p.hole {
				continue
			}
			if holeIdx == -1 {
				holeIdx, holePointIdx = pi, 0
			}
			for i := range p.points {
				if p.points[i][0] > polys[holeIdx].points[holePointIdx][0] {
					holeIdx, holePointIdx = pi, i
				}
			}
		}
		if holeIdx == -1 {
			break
		}
		hole := polys[holeIdx]
		holePoint := hole.points[holePointIdx]

		polyIdx, polyPointIdx := -1, 0
		var bestPolyPoint common.Vec2
		for pi, p := range polys {
			if p.hole {
				continue
			}
			for i := range p.points {
				if p.points[i][0] <= holePoint[0] {
					continue
				}
				if !common.InCone(p.point(i-1), p.points[i], p.point(i+1), holePoint) {
					continue
				}
				polyPoint := p.points[i]
				if polyIdx != -1 {
					v1 := common.Vnormalize2D(polyPoint.Sub(holePoint))
					v2 := common.Vnormalize2D(bestPolyPoint.Sub(holePoint))
					if v2[0] > v1[0] {
						continue
					}
				}
				if isBridgeVisible(polys, holePoint, polyPoint) {
					polyIdx, polyPointIdx = pi, i
					bestPolyPoint = polyPoint
				}
			}
		}
		if polyIdx == -1 {
			return nil, ErrHoleBridge
		}
		outer := polys[polyIdx]

		newpoly := &partitionPoly{points: make([]common.Vec2, 0, hole.numPoints()+outer.numPoints()+2)}
		newpoly.points = append(newpoly.points, outer.points[:polyPointIdx+1]...)
		for i := 0; i <= hole.numPoints(); i++ {
			newpoly.points = append(newpoly.points, hole.point(i+holePointIdx))
		}
		newpoly.points = append(newpoly.points, outer.points[polyPointIdx:]...)

		first, second := holeIdx, polyIdx
		if first < second {
			first, second = second, first
		}
		polys = append(polys[:first], polys[first+1:]...)
		polys = append(polys[:second], polys[second+1:]...)
		polys = append(polys, newpoly)
	}
	return polys, nil
}

func isBridgeVisible(polys []*partitionPoly, from, to common.Vec2) bool {
	for _, p := range polys {
		if p.hole {
			continue
		}
		for i := range p.points {
			if common.SegmentsIntersect(from, to, p.points[i], p.point(i+1)) {
				return false
			}
		}
	}
	return true
}

// convexPartition removes holes then partitions every resulting ring.
func convexPartition(inpolys []*partitionPoly) ([]*partitionPoly, error) {
	outpolys, err := removeHoles(inpolys)
	if err != nil {
		return nil, err
	}
	var parts []*partitionPoly
	for _, p := range outpolys {
		res, ok := convexPartitionHM(p)
		if !ok {
			return nil, ErrTriangulate
		}
		parts = append(parts, res...)
	}
	return parts, nil
}
