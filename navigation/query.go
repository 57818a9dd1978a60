package navigation

import (
	"github.com/gorustyt/gonavmesh2d/common"
)

const maxDistance = 1e30

// clockTangent is positive when a, b, c turn counter-clockwise.
func clockTangent(a, b, c common.Vec2) float32 {
	return (a[0]-c[0])*(b[1]-c[1]) - (b[0]-c[0])*(a[1]-c[1])
}

// pointInPolygon tests p against the triangle fan of poly. A point on an
// internal fan diagonal is still inside when it is strictly inside every
// boundary edge.
func (n *Navigation2D) pointInPolygon(p common.Vec2, poly *Polygon) bool {
	v0 := n.GetVertex(poly.Edges[0].Point)
	for i := 2; i < len(poly.Edges); i++ {
		if common.IsPointInTriangle(p, v0, n.GetVertex(poly.Edges[i-1].Point), n.GetVertex(poly.Edges[i].Point)) {
			return true
		}
	}
	var side float32
	for i := range poly.Edges {
		a, b := n.edgeSegment(poly, i)
		c := common.Cross(b.Sub(a), p.Sub(a))
		if c == 0 || (side != 0 && (c > 0) != (side > 0)) {
			return false
		}
		side = c
	}
	return true
}

// closest returns the nearest point of the walkable area to p and the owner
// of the instance it lies in. ok is false when nothing is linked.
func (n *Navigation2D) closest(p common.Vec2) (point common.Vec2, owner any, ok bool) {
	n.eachPolygon(func(ref PolyRef, nm *NavMesh, poly *Polygon) bool {
		if n.pointInPolygon(p, poly) {
			point, owner, ok = p, nm.owner, true
			return false
		}
		return true
	})
	if ok {
		return point, owner, ok
	}

	var closestD float32 = 1e20
	n.eachPolygon(func(ref PolyRef, nm *NavMesh, poly *Polygon) bool {
		for i := range poly.Edges {
			a, b := n.edgeSegment(poly, i)
			spoint := common.GetClosestPointToSegment2D(p, a, b)
			if d := common.VdistSqr2D(spoint, p); d < closestD {
				point, owner, ok = spoint, nm.owner, true
				closestD = d
			}
		}
		return true
	})
	return point, owner, ok
}

// GetClosestPoint returns p when it is inside a linked polygon, else the
// nearest point on any polygon edge. An empty world returns the zero vector.
func (n *Navigation2D) GetClosestPoint(p common.Vec2) common.Vec2 {
	point, _, _ := n.closest(p)
	return point
}

// GetClosestPointOwner returns the owner passed to NavpolyAdd for the
// instance GetClosestPoint picks, or nil.
func (n *Navigation2D) GetClosestPointOwner(p common.Vec2) any {
	_, owner, _ := n.closest(p)
	return owner
}

// endpoint is a query point resolved to a polygon.
type endpoint struct {
	ref   PolyRef
	point common.Vec2
	d     float32
	found bool
}

// locate resolves start and end to the first polygon containing them, or
// failing that to the nearest polygon edge point.
func (n *Navigation2D) locate(start, end common.Vec2) (begin, finish endpoint) {
	begin.d, finish.d = 1e20, 1e20

	n.eachPolygon(func(ref PolyRef, nm *NavMesh, p *Polygon) bool {
		if begin.d > 0 && n.pointInPolygon(start, p) {
			begin = endpoint{ref: ref, point: start, found: true}
		}
		if finish.d > 0 && n.pointInPolygon(end, p) {
			finish = endpoint{ref: ref, point: end, found: true}
		}
		return begin.d > 0 || finish.d > 0
	})

	// start or end not inside a triangle, look for the closest segment
	if begin.d > 0 || finish.d > 0 {
		n.eachPolygon(func(ref PolyRef, nm *NavMesh, p *Polygon) bool {
			for i := range p.Edges {
				a, b := n.edgeSegment(p, i)
				if begin.d > 0 {
					spoint := common.GetClosestPointToSegment2D(start, a, b)
					if d := common.Vdist2D(spoint, start); d < begin.d {
						begin = endpoint{ref: ref, point: spoint, d: d, found: true}
					}
				}
				if finish.d > 0 {
					spoint := common.GetClosestPointToSegment2D(end, a, b)
					if d := common.Vdist2D(spoint, end); d < finish.d {
						finish = endpoint{ref: ref, point: spoint, d: d, found: true}
					}
				}
			}
			return true
		})
	}
	return begin, finish
}

// shortestExit is the distance from entry to the nearest connected edge of p.
func (n *Navigation2D) shortestExit(p *Polygon, entry common.Vec2) float32 {
	var shortest float32 = maxDistance
	for i := range p.Edges {
		if !p.Edges[i].Connected {
			continue
		}
		a, b := n.edgeSegment(p, i)
		if d := common.Vdist2D(entry, common.GetClosestPointToSegment2D(entry, a, b)); d < shortest {
			shortest = d
		}
	}
	return shortest
}

// search expands polygons from begin until finish is reached. Polygons are
// opened in order of path length so far plus the shortest hop to one of
// their own connected edges. It returns the node table, or nil when finish
// cannot be reached.
func (n *Navigation2D) search(begin, finish PolyRef, start common.Vec2) *nodeTable {
	table := newNodeTable()
	beginNode := table.visit(begin)
	beginNode.entry = start

	open := func(node *searchNode, prevEdge int, entry common.Vec2, distance float32) {
		node.prevEdge = prevEdge
		node.entry = entry
		node.distance = distance
		node.cost = distance + n.shortestExit(n.polygon(node.ref), entry)
	}

	found := false
	bp := n.polygon(begin)
	for i := range bp.Edges {
		e := &bp.Edges[i]
		if !e.Connected {
			continue
		}
		a, b := n.edgeSegment(bp, i)
		entry := common.GetClosestPointToSegment2D(start, a, b)
		distance := common.Vdist2D(start, entry)
		if node := table.get(e.C.PolyRef); node != nil {
			// two edges lead to the same neighbour, keep the cheaper one
			if node.ref != begin && node.distance > distance {
				open(node, e.C.Edge, entry, distance)
				table.update(node)
			}
		} else {
			node = table.visit(e.C.PolyRef)
			open(node, e.C.Edge, entry, distance)
			table.push(node)
		}
		if e.C.PolyRef == finish {
			found = true
		}
	}

	for !found {
		if table.open.Empty() {
			return nil
		}
		least := table.open.Peek()
		p := n.polygon(least.ref)

		// open the neighbours for search
		for i := range p.Edges {
			e := &p.Edges[i]
			if !e.Connected {
				continue
			}
			a, b := n.edgeSegment(p, i)
			edgeEntry := common.GetClosestPointToSegment2D(least.entry, a, b)
			distance := common.Vdist2D(least.entry, edgeEntry) + least.distance

			if node := table.get(e.C.PolyRef); node != nil {
				// visited already, can we win the cost?
				if node.ref != begin && node.distance > distance {
					open(node, e.C.Edge, edgeEntry, distance)
					table.update(node)
				}
			} else {
				node = table.visit(e.C.PolyRef)
				open(node, e.C.Edge, edgeEntry, distance)
				table.push(node)
				if e.C.PolyRef == finish {
					found = true
					break
				}
			}
		}
		if found {
			break
		}
		table.close(least)
	}
	return table
}

// corridorStep is one polygon of the found route and the edge it was
// entered through. The start polygon has prevEdge -1.
type corridorStep struct {
	ref      PolyRef
	prevEdge int
}

// corridor walks the prevEdge links from finish back to begin.
func (n *Navigation2D) corridor(table *nodeTable, begin, finish PolyRef) []corridorStep {
	var steps []corridorStep
	ref := finish
	for len(steps) <= len(table.nodes) {
		if ref == begin {
			return append(steps, corridorStep{ref: ref, prevEdge: -1})
		}
		node := table.get(ref)
		steps = append(steps, corridorStep{ref: ref, prevEdge: node.prevEdge})
		ref = n.polygon(ref).Edges[node.prevEdge].C.PolyRef
	}
	return nil
}

// portal returns the left and right ends of the edge a corridor step was
// entered through, ordered by the polygon winding.
func (n *Navigation2D) portal(step corridorStep) (left, right common.Vec2) {
	p := n.polygon(step.ref)
	left, right = n.edgeSegment(p, step.prevEdge)
	if p.Clockwise {
		left, right = right, left
	}
	return left, right
}

// pullString runs the funnel over steps, which are ordered from the end
// polygon back to the start polygon. The result runs from end to start.
func (n *Navigation2D) pullString(steps []corridorStep, beginPoint, endPoint common.Vec2) []common.Vec2 {
	apex := endPoint
	portalLeft := apex
	portalRight := apex
	leftPoly, rightPoly := 0, 0
	path := []common.Vec2{endPoint}

	pushApex := func() {
		if len(path) == 0 || common.Vdist2D(path[len(path)-1], apex) > common.CMP_EPSILON {
			path = append(path, apex)
		}
	}

	for i := 0; i < len(steps); i++ {
		var left, right common.Vec2
		if steps[i].prevEdge < 0 {
			left, right = beginPoint, beginPoint
		} else {
			left, right = n.portal(steps[i])
		}

		skip := false
		if clockTangent(apex, portalLeft, left) >= 0 {
			if portalLeft == apex || clockTangent(apex, left, portalRight) > 0 {
				leftPoly = i
				portalLeft = left
			} else {
				apex = portalRight
				i = rightPoly
				leftPoly = i
				portalLeft = apex
				portalRight = apex
				pushApex()
				skip = true
			}
		}

		if !skip && clockTangent(apex, portalRight, right) <= 0 {
			if portalRight == apex || clockTangent(apex, right, portalLeft) < 0 {
				rightPoly = i
				portalRight = right
			} else {
				apex = portalLeft
				i = leftPoly
				rightPoly = i
				portalRight = apex
				portalLeft = apex
				pushApex()
			}
		}
	}
	return path
}

// midpoints emits the middle of every crossed edge, from end to start.
func (n *Navigation2D) midpoints(steps []corridorStep, endPoint common.Vec2) []common.Vec2 {
	path := []common.Vec2{endPoint}
	for _, step := range steps {
		if step.prevEdge < 0 {
			break
		}
		a, b := n.edgeSegment(n.polygon(step.ref), step.prevEdge)
		path = append(path, a.Add(b).Mul(0.5))
	}
	return path
}

// GetSimplePath returns a walkable polyline from start to end. Points off
// the mesh are moved to the nearest polygon edge first. With optimize, the
// default, the corridor is string pulled, otherwise the path runs through
// the middle of every crossed edge. An empty result means no path.
func (n *Navigation2D) GetSimplePath(start, end common.Vec2, optimize ...bool) []common.Vec2 {
	opt := true
	if len(optimize) > 0 {
		opt = optimize[0]
	}

	begin, finish := n.locate(start, end)
	if !begin.found || !finish.found {
		return nil
	}
	if begin.ref == finish.ref {
		return []common.Vec2{begin.point, finish.point}
	}

	table := n.search(begin.ref, finish.ref, start)
	if table == nil {
		return nil
	}
	steps := n.corridor(table, begin.ref, finish.ref)
	if steps == nil {
		return nil
	}

	var path []common.Vec2
	if opt {
		path = n.pullString(steps, begin.point, finish.point)
	} else {
		path = n.midpoints(steps, finish.point)
	}

	if last := len(path) - 1; last > 0 && common.Vdist2D(path[last], begin.point) <= common.CMP_EPSILON {
		path[last] = begin.point
	} else {
		path = append(path, begin.point)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
