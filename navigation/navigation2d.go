// Package navigation joins navigation polygons placed in a 2D world into one
// walkable graph and answers closest point and path queries against it.
//
// Vertices of different polygons are matched on a grid of CellSize, so two
// meshes touching within one cell become neighbours. A Navigation2D is not
// safe for concurrent use.
package navigation

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/gorustyt/gonavmesh2d/common"
	"github.com/gorustyt/gonavmesh2d/common/logger"
	"go.uber.org/zap"
)

var ErrUnknownInstance = errors.New("navigation: unknown instance")

// PolygonSet is a compiled set of polygons indexing into one vertex list.
// NavigationPolygonInstance compares sets with == when their type allows it,
// so pointer implementations are the usual choice.
type PolygonSet interface {
	GetVertices() []common.Vec2
	GetPolygonCount() int
	GetPolygon(index int) []int
}

// Point is a vertex snapped to the cell grid. The low 32 bits hold x, the
// high 32 bits hold y.
type Point uint64

func MakePoint(x, y int32) Point {
	return Point(uint64(uint32(x)) | uint64(uint32(y))<<32)
}

func (p Point) X() int32 { return int32(uint32(p)) }
func (p Point) Y() int32 { return int32(uint32(p >> 32)) }

// EdgeKey identifies an edge regardless of its direction. A <= B.
type EdgeKey struct {
	A, B Point
}

func NewEdgeKey(a, b Point) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b}
}

// PolyRef addresses a linked polygon: the instance id and the polygon index
// inside that instance. It stays valid until the instance is unlinked.
type PolyRef struct {
	Mesh int
	Poly int
}

type EdgeRef struct {
	PolyRef
	Edge int
}

type Edge struct {
	Point Point
	// C is the polygon edge across this one when Connected is set.
	C         EdgeRef
	Connected bool
	// Pending edges wait in their connection until a side frees up.
	Pending bool
}

type Polygon struct {
	Edges     []Edge
	Center    common.Vec2
	Clockwise bool
}

// connection joins at most two polygon edges sharing a key. Further edges
// with the same key queue in pending and are promoted oldest first.
type connection struct {
	A       EdgeRef
	B       EdgeRef
	hasB    bool
	pending []EdgeRef
}

func (c *connection) removePending(ref EdgeRef) {
	for i, p := range c.pending {
		if p == ref {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

type NavMesh struct {
	owner    any
	xform    common.Transform2D
	linked   bool
	navpoly  PolygonSet
	polygons []Polygon
}

type Navigation2D struct {
	cellSize    float32
	connections map[EdgeKey]*connection
	navpolyMap  map[int]*NavMesh
	// ids keeps navpolyMap keys in ascending order for deterministic scans.
	ids    []int
	lastID int
}

// NewNavigation2D creates an empty world. The optional argument sets the
// vertex matching cell size, default 1.
func NewNavigation2D(cellSize ...float32) *Navigation2D {
	n := &Navigation2D{
		cellSize:    1,
		connections: make(map[EdgeKey]*connection),
		navpolyMap:  make(map[int]*NavMesh),
		lastID:      1,
	}
	if len(cellSize) > 0 && cellSize[0] > 0 {
		n.cellSize = cellSize[0]
	}
	return n
}

func (n *Navigation2D) GetCellSize() float32 {
	return n.cellSize
}

func (n *Navigation2D) GetPoint(pos common.Vec2) Point {
	x := int32(math.Floor(float64(pos[0] / n.cellSize)))
	y := int32(math.Floor(float64(pos[1] / n.cellSize)))
	return MakePoint(x, y)
}

func (n *Navigation2D) GetVertex(p Point) common.Vec2 {
	return common.Vec2{float32(p.X()), float32(p.Y())}.Mul(n.cellSize)
}

// NavpolyAdd places navpoly in the world with xform and links it. owner is
// returned by GetClosestPointOwner. The polygon set is only read.
func (n *Navigation2D) NavpolyAdd(navpoly PolygonSet, xform common.Transform2D, owner any) int {
	id := n.lastID
	n.lastID++
	n.navpolyMap[id] = &NavMesh{
		owner:   owner,
		xform:   xform,
		navpoly: navpoly,
	}
	n.ids = append(n.ids, id)
	n.navpolyLink(id)
	return id
}

// NavpolySetTransform moves an instance. An identical transform is a no-op.
func (n *Navigation2D) NavpolySetTransform(id int, xform common.Transform2D) error {
	nm, ok := n.navpolyMap[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownInstance, id)
	}
	if nm.xform == xform {
		return nil
	}
	n.navpolyUnlink(id)
	nm.xform = xform
	n.navpolyLink(id)
	return nil
}

func (n *Navigation2D) NavpolyRemove(id int) error {
	if _, ok := n.navpolyMap[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownInstance, id)
	}
	n.navpolyUnlink(id)
	delete(n.navpolyMap, id)
	i := sort.SearchInts(n.ids, id)
	n.ids = append(n.ids[:i], n.ids[i+1:]...)
	return nil
}

func (n *Navigation2D) edge(ref EdgeRef) *Edge {
	return &n.navpolyMap[ref.Mesh].polygons[ref.Poly].Edges[ref.Edge]
}

func edgeKey(p *Polygon, i int) EdgeKey {
	return NewEdgeKey(p.Edges[i].Point, p.Edges[common.Next(i, len(p.Edges))].Point)
}

// buildPolygon transforms and snaps one polygon. It fails on fewer than 3
// indices or an index outside vertices.
func (n *Navigation2D) buildPolygon(xform common.Transform2D, indices []int, vertices []common.Vec2) (Polygon, bool) {
	plen := len(indices)
	if plen < 3 {
		return Polygon{}, false
	}
	p := Polygon{Edges: make([]Edge, plen)}
	var center common.Vec2
	var sum float32
	for j, idx := range indices {
		if idx < 0 || idx >= len(vertices) {
			return Polygon{}, false
		}
		ep := common.Xform(xform, vertices[idx])
		center = center.Add(ep)
		p.Edges[j].Point = n.GetPoint(ep)

		idxn := indices[common.Next(j, plen)]
		if idxn < 0 || idxn >= len(vertices) {
			return Polygon{}, false
		}
		epn := common.Xform(xform, vertices[idxn])
		sum += (epn[0] - ep[0]) * (epn[1] + ep[1])
	}
	p.Clockwise = sum > 0
	p.Center = center.Mul(1 / float32(plen))
	return p, true
}

func (n *Navigation2D) navpolyLink(id int) {
	nm := n.navpolyMap[id]
	if nm.navpoly == nil {
		return
	}
	vertices := nm.navpoly.GetVertices()
	if len(vertices) == 0 {
		return
	}

	for i := 0; i < nm.navpoly.GetPolygonCount(); i++ {
		p, ok := n.buildPolygon(nm.xform, nm.navpoly.GetPolygon(i), vertices)
		if !ok {
			logger.Component("navigation").Debug("Navigation2D: dropped malformed polygon", zap.Int("id", id), zap.Int("polygon", i))
			continue
		}
		ref := PolyRef{Mesh: id, Poly: len(nm.polygons)}
		nm.polygons = append(nm.polygons, p)

		for j := range p.Edges {
			n.connect(EdgeRef{PolyRef: ref, Edge: j}, edgeKey(&p, j))
		}
	}
	nm.linked = true
}

func (n *Navigation2D) connect(ref EdgeRef, ek EdgeKey) {
	c, ok := n.connections[ek]
	if !ok {
		n.connections[ek] = &connection{A: ref}
		return
	}

	e := n.edge(ref)
	if c.hasB {
		c.pending = append(c.pending, ref)
		e.Pending = true
		return
	}

	c.B = ref
	c.hasB = true
	a := n.edge(c.A)
	a.C = ref
	a.Connected = true
	e.C = c.A
	e.Connected = true
}

func (n *Navigation2D) navpolyUnlink(id int) {
	nm := n.navpolyMap[id]

	for pi := range nm.polygons {
		p := &nm.polygons[pi]
		for i := range p.Edges {
			ref := EdgeRef{PolyRef: PolyRef{Mesh: id, Poly: pi}, Edge: i}
			ek := edgeKey(p, i)
			c := n.connections[ek]
			e := &p.Edges[i]

			switch {
			case e.Pending:
				c.removePending(ref)
				e.Pending = false
			case c.hasB:
				// disconnect
				b := n.edge(c.B)
				b.C, b.Connected = EdgeRef{}, false
				a := n.edge(c.A)
				a.C, a.Connected = EdgeRef{}, false

				if c.A == ref {
					c.A = c.B
				}
				c.B, c.hasB = EdgeRef{}, false

				if len(c.pending) > 0 {
					// reconnect if something is pending
					cp := c.pending[0]
					c.pending = c.pending[1:]

					c.B, c.hasB = cp, true
					a = n.edge(c.A)
					a.C, a.Connected = cp, true
					pe := n.edge(cp)
					pe.C, pe.Connected = c.A, true
					pe.Pending = false
				}
			default:
				delete(n.connections, ek)
			}
		}
	}

	nm.polygons = nil
	nm.linked = false
}

// eachPolygon visits linked polygons in instance id order until fn returns false.
func (n *Navigation2D) eachPolygon(fn func(ref PolyRef, nm *NavMesh, p *Polygon) bool) {
	for _, id := range n.ids {
		nm := n.navpolyMap[id]
		if !nm.linked {
			continue
		}
		for pi := range nm.polygons {
			if !fn(PolyRef{Mesh: id, Poly: pi}, nm, &nm.polygons[pi]) {
				return
			}
		}
	}
}

func (n *Navigation2D) polygon(ref PolyRef) *Polygon {
	return &n.navpolyMap[ref.Mesh].polygons[ref.Poly]
}

// edgeSegment returns the world space ends of edge i of p.
func (n *Navigation2D) edgeSegment(p *Polygon, i int) (common.Vec2, common.Vec2) {
	return n.GetVertex(p.Edges[i].Point), n.GetVertex(p.Edges[common.Next(i, len(p.Edges))].Point)
}

func (n *Navigation2D) GetInstanceCount() int {
	return len(n.navpolyMap)
}

// GetInstanceIDs returns the ids of all instances in ascending order.
func (n *Navigation2D) GetInstanceIDs() []int {
	return append([]int(nil), n.ids...)
}

func (n *Navigation2D) IsLinked(id int) bool {
	nm, ok := n.navpolyMap[id]
	return ok && nm.linked
}

// GetPolygonCount returns the number of polygons id contributed to the graph.
func (n *Navigation2D) GetPolygonCount(id int) int {
	nm, ok := n.navpolyMap[id]
	if !ok {
		return 0
	}
	return len(nm.polygons)
}

// GetPolygon returns a linked polygon, or nil for a stale ref.
func (n *Navigation2D) GetPolygon(ref PolyRef) *Polygon {
	nm, ok := n.navpolyMap[ref.Mesh]
	if !ok || ref.Poly < 0 || ref.Poly >= len(nm.polygons) {
		return nil
	}
	return &nm.polygons[ref.Poly]
}

func (n *Navigation2D) GetConnectionCount() int {
	return len(n.connections)
}

// Neighbors returns the polygons connected to ref, one per connected edge.
func (n *Navigation2D) Neighbors(ref PolyRef) []PolyRef {
	p := n.GetPolygon(ref)
	if p == nil {
		return nil
	}
	var res []PolyRef
	for _, e := range p.Edges {
		if e.Connected {
			res = append(res, e.C.PolyRef)
		}
	}
	return res
}

func (n *Navigation2D) GetOwner(id int) any {
	if nm, ok := n.navpolyMap[id]; ok {
		return nm.owner
	}
	return nil
}

func (n *Navigation2D) GetTransform(id int) (common.Transform2D, bool) {
	if nm, ok := n.navpolyMap[id]; ok {
		return nm.xform, true
	}
	return common.Transform2D{}, false
}
