package navigation

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/gorustyt/gonavmesh2d/common"
	"github.com/gorustyt/gonavmesh2d/navpoly"
)

func assertTrue(t *testing.T, value bool, msg string) {
	t.Helper()
	if !value {
		t.Error(msg)
	}
}

func square(x0, y0, x1, y1 float32) []common.Vec2 {
	return []common.Vec2{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func compile(t *testing.T, outlines ...[]common.Vec2) *navpoly.NavigationPolygon {
	t.Helper()
	np, err := navpoly.Compile(outlines)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return np
}

func translate(x, y float32) common.Transform2D {
	return common.NewTransform2D(0, common.Vec2{x, y})
}

// adjacency lists every connected edge as "mesh/poly/edge->mesh/poly/edge".
func adjacency(n *Navigation2D) []string {
	var res []string
	n.eachPolygon(func(ref PolyRef, nm *NavMesh, p *Polygon) bool {
		for i, e := range p.Edges {
			if e.Connected {
				res = append(res, fmt.Sprintf("%d/%d/%d->%d/%d/%d", ref.Mesh, ref.Poly, i, e.C.Mesh, e.C.Poly, e.C.Edge))
			}
		}
		return true
	})
	sort.Strings(res)
	return res
}

func checkSymmetry(t *testing.T, n *Navigation2D) {
	t.Helper()
	for ek, c := range n.connections {
		a := n.edge(c.A)
		assertTrue(t, edgeKey(n.polygon(c.A.PolyRef), c.A.Edge) == ek, "side A has another key")
		if !c.hasB {
			assertTrue(t, !a.Connected, "one sided connection must not link A")
			assertTrue(t, len(c.pending) == 0, "pending without side B")
			continue
		}
		b := n.edge(c.B)
		assertTrue(t, a.Connected && a.C == c.B, "A must point to B")
		assertTrue(t, b.Connected && b.C == c.A, "B must point to A")
		for _, p := range c.pending {
			assertTrue(t, n.edge(p).Pending, "pending edge must be flagged")
			assertTrue(t, !n.edge(p).Connected, "pending edge must not be connected")
		}
	}
}

func TestPointKey(t *testing.T) {
	n := NewNavigation2D()
	p := n.GetPoint(common.Vec2{-1.5, 2.25})
	assertTrue(t, p.X() == -2 && p.Y() == 2, "GetPoint floors both axes")
	assertTrue(t, n.GetVertex(p) == common.Vec2{-2, 2}, "GetVertex returns the cell corner")
	assertTrue(t, n.GetPoint(common.Vec2{3.1, 4.9}) == n.GetPoint(common.Vec2{3.9, 4.0}), "same cell, same key")
	assertTrue(t, n.GetPoint(common.Vec2{3.1, 4.9}) != n.GetPoint(common.Vec2{4.1, 4.9}), "different cell, different key")

	a, b := MakePoint(1, 2), MakePoint(3, -4)
	assertTrue(t, NewEdgeKey(a, b) == NewEdgeKey(b, a), "edge key ignores direction")

	coarse := NewNavigation2D(10)
	assertTrue(t, coarse.GetCellSize() == 10, "cell size option")
	assertTrue(t, coarse.GetVertex(coarse.GetPoint(common.Vec2{15, -5})) == common.Vec2{10, -10}, "coarse grid vertex")
	assertTrue(t, NewNavigation2D(0).GetCellSize() == 1, "non positive cell size falls back to 1")
}

func TestSquarePath(t *testing.T) {
	n := NewNavigation2D()
	np := compile(t, square(0, 0, 10, 10))
	assertTrue(t, np.GetPolygonCount() == 1, "unit square compiles to one polygon")
	assertTrue(t, len(np.GetPolygon(0)) == 4, "unit square polygon has 4 vertices")

	n.NavpolyAdd(np, common.Identity2D(), nil)
	path := n.GetSimplePath(common.Vec2{1, 1}, common.Vec2{9, 9})
	assertTrue(t, len(path) == 2, "same polygon path has two points")
	if len(path) == 2 {
		assertTrue(t, path[0] == common.Vec2{1, 1} && path[1] == common.Vec2{9, 9}, "path is start then end")
	}
}

func TestContainment(t *testing.T) {
	n := NewNavigation2D()
	n.NavpolyAdd(compile(t, square(0, 0, 10, 6)), common.Identity2D(), nil)
	for x := float32(0.5); x < 10; x += 1.5 {
		for y := float32(0.25); y < 6; y += 1.25 {
			p := common.Vec2{x, y}
			assertTrue(t, n.GetClosestPoint(p) == p, fmt.Sprintf("%v must be inside", p))
		}
	}
}

func TestAdjacencySymmetry(t *testing.T) {
	n := NewNavigation2D()
	a := n.NavpolyAdd(compile(t, square(0, 0, 10, 10)), common.Identity2D(), "a")
	b := n.NavpolyAdd(compile(t, square(0, 0, 10, 10)), translate(10, 0), "b")

	assertTrue(t, n.GetInstanceCount() == 2, "two instances")
	assertTrue(t, n.GetConnectionCount() == 7, "the shared edge is one connection")
	checkSymmetry(t, n)

	na := n.Neighbors(PolyRef{Mesh: a, Poly: 0})
	nb := n.Neighbors(PolyRef{Mesh: b, Poly: 0})
	assertTrue(t, len(na) == 1 && na[0] == PolyRef{Mesh: b, Poly: 0}, "a neighbours b")
	assertTrue(t, len(nb) == 1 && nb[0] == PolyRef{Mesh: a, Poly: 0}, "b neighbours a")
	assertTrue(t, n.Neighbors(PolyRef{Mesh: 99}) == nil, "stale ref has no neighbours")
}

func TestPendingPromotion(t *testing.T) {
	n := NewNavigation2D()
	np := compile(t, square(0, 0, 10, 10))
	ids := []int{
		n.NavpolyAdd(np, common.Identity2D(), nil),
		n.NavpolyAdd(np, common.Identity2D(), nil),
		n.NavpolyAdd(np, common.Identity2D(), nil),
	}
	assertTrue(t, n.GetConnectionCount() == 4, "stacked meshes share 4 connections")
	checkSymmetry(t, n)
	for _, c := range n.connections {
		assertTrue(t, c.hasB && len(c.pending) == 1, "third mesh waits in pending")
		assertTrue(t, c.A.Mesh == ids[0] && c.B.Mesh == ids[1], "first two meshes are connected")
	}

	if err := n.NavpolyRemove(ids[0]); err != nil {
		t.Fatalf("remove: %v", err)
	}
	checkSymmetry(t, n)
	for _, c := range n.connections {
		assertTrue(t, c.hasB && len(c.pending) == 0, "pending mesh is promoted")
		assertTrue(t, c.A.Mesh == ids[1] && c.B.Mesh == ids[2], "second side moved to A, pending to B")
	}

	if err := n.NavpolyRemove(ids[1]); err != nil {
		t.Fatalf("remove: %v", err)
	}
	checkSymmetry(t, n)
	assertTrue(t, n.GetConnectionCount() == 4, "last mesh keeps its edges")
	for _, c := range n.connections {
		assertTrue(t, !c.hasB && c.A.Mesh == ids[2], "only the last mesh is left")
	}

	if err := n.NavpolyRemove(ids[2]); err != nil {
		t.Fatalf("remove: %v", err)
	}
	assertTrue(t, n.GetConnectionCount() == 0, "no connection after removing everything")
	assertTrue(t, n.GetInstanceCount() == 0, "no instance after removing everything")
}

func TestPendingRemovedBeforePromotion(t *testing.T) {
	n := NewNavigation2D()
	np := compile(t, square(0, 0, 10, 10))
	first := n.NavpolyAdd(np, common.Identity2D(), nil)
	n.NavpolyAdd(np, common.Identity2D(), nil)
	third := n.NavpolyAdd(np, common.Identity2D(), nil)

	if err := n.NavpolyRemove(third); err != nil {
		t.Fatalf("remove: %v", err)
	}
	checkSymmetry(t, n)
	for _, c := range n.connections {
		assertTrue(t, c.hasB && len(c.pending) == 0, "removing a pending mesh leaves the pair")
	}
	if err := n.NavpolyRemove(first); err != nil {
		t.Fatalf("remove: %v", err)
	}
	checkSymmetry(t, n)
	for _, c := range n.connections {
		assertTrue(t, !c.hasB, "nothing to promote")
	}
}

func TestUnlinkLinkIdempotence(t *testing.T) {
	n := NewNavigation2D()
	l := []common.Vec2{{0, 0}, {10, 0}, {10, 5}, {5, 5}, {5, 10}, {0, 10}}
	id := n.NavpolyAdd(compile(t, l), common.Identity2D(), nil)
	n.NavpolyAdd(compile(t, square(10, 0, 20, 5)), common.Identity2D(), nil)

	before := adjacency(n)
	polys := n.GetPolygonCount(id)
	conns := n.GetConnectionCount()
	assertTrue(t, len(before) > 0, "L shape must have internal connections")

	n.navpolyUnlink(id)
	assertTrue(t, !n.IsLinked(id), "unlinked")
	assertTrue(t, n.GetPolygonCount(id) == 0, "unlinked instance has no polygons")
	n.navpolyLink(id)

	after := adjacency(n)
	assertTrue(t, n.IsLinked(id), "linked again")
	assertTrue(t, n.GetPolygonCount(id) == polys, "same polygon count after relink")
	assertTrue(t, n.GetConnectionCount() == conns, "same connection count after relink")
	assertTrue(t, len(before) == len(after), "same adjacency size after relink")
	for i := 0; i < len(before) && i < len(after); i++ {
		assertTrue(t, before[i] == after[i], "same adjacency after relink")
	}
	checkSymmetry(t, n)
}

func TestSetTransform(t *testing.T) {
	n := NewNavigation2D()
	n.NavpolyAdd(compile(t, square(0, 0, 10, 10)), common.Identity2D(), nil)
	b := n.NavpolyAdd(compile(t, square(0, 0, 10, 10)), translate(30, 0), nil)

	start, end := common.Vec2{5, 5}, common.Vec2{15, 5}
	assertTrue(t, len(n.GetSimplePath(start, common.Vec2{35, 5})) == 0, "islands are not connected")

	if err := n.NavpolySetTransform(b, translate(10, 0)); err != nil {
		t.Fatalf("set transform: %v", err)
	}
	checkSymmetry(t, n)
	path := n.GetSimplePath(start, end)
	assertTrue(t, len(path) == 2, "moved mesh joins the first one")
	if len(path) == 2 {
		assertTrue(t, path[0] == start && path[1] == end, "straight path across the shared edge")
	}

	conns := n.GetConnectionCount()
	if err := n.NavpolySetTransform(b, translate(10, 0)); err != nil {
		t.Fatalf("set transform: %v", err)
	}
	assertTrue(t, n.GetConnectionCount() == conns, "same transform is a no-op")

	xform, ok := n.GetTransform(b)
	assertTrue(t, ok && xform == translate(10, 0), "transform is stored")
}

func TestUnknownInstance(t *testing.T) {
	n := NewNavigation2D()
	assertTrue(t, errors.Is(n.NavpolySetTransform(1, common.Identity2D()), ErrUnknownInstance), "set transform unknown id")
	assertTrue(t, errors.Is(n.NavpolyRemove(1), ErrUnknownInstance), "remove unknown id")

	id := n.NavpolyAdd(compile(t, square(0, 0, 1, 1)), common.Identity2D(), nil)
	assertTrue(t, n.NavpolyRemove(id) == nil, "remove known id")
	assertTrue(t, errors.Is(n.NavpolyRemove(id), ErrUnknownInstance), "remove twice")
	assertTrue(t, !n.IsLinked(id), "removed instance is not linked")
}

func TestInstanceIDs(t *testing.T) {
	n := NewNavigation2D()
	np := compile(t, square(0, 0, 1, 1))
	a := n.NavpolyAdd(np, common.Identity2D(), nil)
	b := n.NavpolyAdd(np, translate(5, 0), nil)
	c := n.NavpolyAdd(np, translate(10, 0), nil)
	assertTrue(t, a == 1 && b == 2 && c == 3, "ids start at 1 and increase")

	_ = n.NavpolyRemove(b)
	d := n.NavpolyAdd(np, translate(20, 0), nil)
	assertTrue(t, d == 4, "ids are never reused")
	ids := n.GetInstanceIDs()
	assertTrue(t, len(ids) == 3 && ids[0] == a && ids[1] == c && ids[2] == d, "ids stay sorted")
}

func TestMalformedPolygons(t *testing.T) {
	np := navpoly.NewNavigationPolygon()
	np.SetVertices(square(0, 0, 10, 10))
	np.AddPolygon([]int{0, 1, 2, 3})
	np.AddPolygon([]int{0, 1, 7})
	np.AddPolygon([]int{0, 1})
	np.AddPolygon([]int{-1, 1, 2})

	n := NewNavigation2D()
	id := n.NavpolyAdd(np, common.Identity2D(), nil)
	assertTrue(t, n.IsLinked(id), "a mesh with bad polygons still links")
	assertTrue(t, n.GetPolygonCount(id) == 1, "bad polygons are dropped")
	assertTrue(t, n.GetConnectionCount() == 4, "only the good polygon is connected")

	empty := n.NavpolyAdd(navpoly.NewNavigationPolygon(), common.Identity2D(), nil)
	assertTrue(t, !n.IsLinked(empty), "a mesh without vertices is not linked")
	assertTrue(t, n.NavpolyRemove(empty) == nil, "an unlinked mesh can be removed")
}

func TestQuantizedJoin(t *testing.T) {
	tests := []struct {
		name      string
		cellSize  float32
		connected bool
	}{
		{"same cell", 1, true},
		{"fine grid", 0.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNavigation2D(tt.cellSize)
			a := n.NavpolyAdd(compile(t, square(0, 0, 10, 10)), common.Identity2D(), nil)
			n.NavpolyAdd(compile(t, square(10.3, 0, 20, 10)), common.Identity2D(), nil)
			connected := len(n.Neighbors(PolyRef{Mesh: a, Poly: 0})) == 1
			assertTrue(t, connected == tt.connected, "unexpected join result")
			path := n.GetSimplePath(common.Vec2{5, 5}, common.Vec2{15, 5})
			assertTrue(t, (len(path) > 0) == tt.connected, "path exists only when joined")
		})
	}
}
