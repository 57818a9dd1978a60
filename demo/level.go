// Package demo ships a small sample level: a walkable room with a few
// obstacles, both as outlines and as a prebaked convex polygon set.
package demo

import (
	"github.com/gorustyt/gonavmesh2d/common"
	"github.com/gorustyt/gonavmesh2d/navpoly"
)

var (
	PathStart = common.Vec2{640, 100}
	PathEnd   = common.Vec2{160, 370}
)

// Outlines returns the level outlines. Callers may modify the result.
func Outlines() [][]common.Vec2 {
	res := make([][]common.Vec2, len(outlines))
	for i, ol := range outlines {
		res[i] = common.PairsToVec2(ol)
	}
	return res
}

// NavigationPolygon returns the level with its prebaked polygons and the
// outlines they were made from.
func NavigationPolygon() *navpoly.NavigationPolygon {
	np := navpoly.NewNavigationPolygon()
	np.SetVertices(common.PairsToVec2(vertices))
	for _, p := range polygons {
		np.AddPolygon(p)
	}
	for _, ol := range Outlines() {
		np.AddOutline(ol)
	}
	return np
}

// CompiledNavigationPolygon compiles the outlines instead of using the
// prebaked polygons.
func CompiledNavigationPolygon() (*navpoly.NavigationPolygon, error) {
	return navpoly.Compile(Outlines())
}
