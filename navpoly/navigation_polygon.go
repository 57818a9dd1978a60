// Package navpoly holds the walkable area of one navigation polygon: the
// outlines drawn by the user and the convex polygon set compiled from them.
package navpoly

import (
	"github.com/gorustyt/gonavmesh2d/common"
)

type Polygon struct {
	Indices []int
}

// Rect is an axis aligned rectangle. Size is never negative.
type Rect struct {
	Position common.Vec2
	Size     common.Vec2
}

func (r Rect) End() common.Vec2 {
	return r.Position.Add(r.Size)
}

// NavigationPolygon owns outlines and the convex polygons compiled from
// them. Polygon indices refer to GetVertices. A polygon set may also be
// filled directly with SetVertices and AddPolygon.
type NavigationPolygon struct {
	vertices []common.Vec2
	polygons []Polygon
	outlines [][]common.Vec2

	rectCache      Rect
	rectCacheDirty bool
}

func NewNavigationPolygon() *NavigationPolygon {
	return &NavigationPolygon{rectCacheDirty: true}
}

// Compile builds a polygon from outlines and runs MakePolygonsFromOutlines.
// The polygon is returned even on error so callers can inspect the outlines.
func Compile(outlines [][]common.Vec2) (*NavigationPolygon, error) {
	np := NewNavigationPolygon()
	for _, ol := range outlines {
		np.AddOutline(ol)
	}
	return np, np.MakePolygonsFromOutlines()
}

func (np *NavigationPolygon) SetVertices(vertices []common.Vec2) {
	np.vertices = append([]common.Vec2(nil), vertices...)
}

func (np *NavigationPolygon) GetVertices() []common.Vec2 {
	return np.vertices
}

func (np *NavigationPolygon) AddPolygon(indices []int) {
	np.polygons = append(np.polygons, Polygon{Indices: append([]int(nil), indices...)})
}

func (np *NavigationPolygon) GetPolygonCount() int {
	return len(np.polygons)
}

func (np *NavigationPolygon) GetPolygon(index int) []int {
	return np.polygons[index].Indices
}

func (np *NavigationPolygon) ClearPolygons() {
	np.polygons = nil
}

func (np *NavigationPolygon) AddOutline(outline []common.Vec2) {
	np.outlines = append(np.outlines, append([]common.Vec2(nil), outline...))
	np.rectCacheDirty = true
}

// AddOutlineAtIndex inserts outline before index. An index equal to the
// outline count appends.
func (np *NavigationPolygon) AddOutlineAtIndex(outline []common.Vec2, index int) {
	np.outlines = append(np.outlines, nil)
	copy(np.outlines[index+1:], np.outlines[index:])
	np.outlines[index] = append([]common.Vec2(nil), outline...)
	np.rectCacheDirty = true
}

func (np *NavigationPolygon) SetOutline(index int, outline []common.Vec2) {
	np.outlines[index] = append([]common.Vec2(nil), outline...)
	np.rectCacheDirty = true
}

func (np *NavigationPolygon) RemoveOutline(index int) {
	np.outlines = append(np.outlines[:index], np.outlines[index+1:]...)
	np.rectCacheDirty = true
}

func (np *NavigationPolygon) ClearOutlines() {
	np.outlines = nil
	np.rectCacheDirty = true
}

func (np *NavigationPolygon) GetOutline(index int) []common.Vec2 {
	return np.outlines[index]
}

func (np *NavigationPolygon) GetOutlineCount() int {
	return len(np.outlines)
}

// Bounds returns the rectangle enclosing every outline point. It is
// recomputed only after an outline changed.
func (np *NavigationPolygon) Bounds() Rect {
	if !np.rectCacheDirty {
		return np.rectCache
	}
	np.rectCache = Rect{}
	first := true
	for _, ol := range np.outlines {
		for _, p := range ol {
			if first {
				np.rectCache = Rect{Position: p}
				first = false
				continue
			}
			np.rectCache = np.rectCache.expandTo(p)
		}
	}
	np.rectCacheDirty = false
	return np.rectCache
}

func (r Rect) expandTo(p common.Vec2) Rect {
	begin := r.Position
	end := r.End()
	for i := 0; i < 2; i++ {
		if p[i] < begin[i] {
			begin[i] = p[i]
		}
		if p[i] > end[i] {
			end[i] = p[i]
		}
	}
	return Rect{Position: begin, Size: end.Sub(begin)}
}
