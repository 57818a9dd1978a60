package demo

import (
	"testing"

	"github.com/gorustyt/gonavmesh2d/common"
	"github.com/gorustyt/gonavmesh2d/navigation"
	"github.com/gorustyt/gonavmesh2d/navpoly"
)

func assertTrue(t *testing.T, value bool, msg string) {
	t.Helper()
	if !value {
		t.Error(msg)
	}
}

func pathLength(path []common.Vec2) (res float32) {
	for i := 1; i < len(path); i++ {
		res += common.Vdist2D(path[i-1], path[i])
	}
	return res
}

func polygonArea(np *navpoly.NavigationPolygon) (res float32) {
	verts := np.GetVertices()
	for i := 0; i < np.GetPolygonCount(); i++ {
		var points []common.Vec2
		for _, idx := range np.GetPolygon(i) {
			points = append(points, verts[idx])
		}
		res += common.GetArea(points)
	}
	return res
}

func checkLevelPath(t *testing.T, np *navpoly.NavigationPolygon) {
	t.Helper()
	nav := navigation.NewNavigation2D()
	id := nav.NavpolyAdd(np, common.Identity2D(), "level")
	assertTrue(t, nav.GetPolygonCount(id) == np.GetPolygonCount(), "every polygon is linked")

	path := nav.GetSimplePath(PathStart, PathEnd)
	assertTrue(t, len(path) >= 2, "sample path exists")
	if len(path) < 2 {
		return
	}
	assertTrue(t, path[0] == nav.GetClosestPoint(PathStart), "path starts at the resolved start")
	assertTrue(t, path[len(path)-1] == nav.GetClosestPoint(PathEnd), "path ends at the resolved end")
	assertTrue(t, pathLength(path) >= common.Vdist2D(path[0], path[len(path)-1])-1e-3, "path is at least the straight distance")

	mid := nav.GetSimplePath(PathStart, PathEnd, false)
	assertTrue(t, len(mid) >= len(path), "midpoint path has a point per portal")
	assertTrue(t, pathLength(path) <= pathLength(mid)+1e-2, "funnel is never longer than midpoints")
	assertTrue(t, nav.GetClosestPointOwner(PathStart) == "level", "owner of the level mesh")
}

func TestPrebakedLevel(t *testing.T) {
	np := NavigationPolygon()
	assertTrue(t, np.GetPolygonCount() == len(polygons), "all prebaked polygons")
	assertTrue(t, len(np.GetVertices())*2 == len(vertices), "all prebaked vertices")
	assertTrue(t, np.GetOutlineCount() == len(outlines), "all outlines")
	for i := 0; i < np.GetPolygonCount(); i++ {
		p := np.GetPolygon(i)
		assertTrue(t, len(p) >= 3, "polygon has at least 3 vertices")
		for _, idx := range p {
			assertTrue(t, idx >= 0 && idx < len(np.GetVertices()), "index in range")
		}
	}
	checkLevelPath(t, np)
}

func TestCompiledLevel(t *testing.T) {
	np, err := CompiledNavigationPolygon()
	if err != nil {
		t.Fatalf("compile level: %v", err)
	}
	assertTrue(t, np.GetPolygonCount() > 0, "level compiles to polygons")

	ols := Outlines()
	want := common.Abs(common.GetArea(ols[0]))
	for _, ol := range ols[1:] {
		want -= common.Abs(common.GetArea(ol))
	}
	got := polygonArea(np)
	assertTrue(t, common.Abs(got-want) <= want*1e-3, "polygons cover the outer boundary minus the holes")
	checkLevelPath(t, np)
}

func TestOutlinesAreCopies(t *testing.T) {
	a := Outlines()
	a[0][0] = common.Vec2{-1, -1}
	b := Outlines()
	assertTrue(t, b[0][0] != common.Vec2{-1, -1}, "outlines are fresh copies")
}
