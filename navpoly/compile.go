package navpoly

import (
	"math"

	"github.com/gorustyt/gonavmesh2d/common"
	"github.com/gorustyt/gonavmesh2d/common/logger"
	"go.uber.org/zap"
)

// outsideOffset moves the ray target away from the outline corners so the
// crossing test does not graze a vertex.
var outsideOffset = common.Vec2{0.7239784, 0.819238}

// MakePolygonsFromOutlines replaces the polygon set with convex polygons
// covering the outlines. Outlines nested an odd number of times are holes.
// Outlines with fewer than 3 points are ignored. On error the polygon set
// is left empty.
func (np *NavigationPolygon) MakePolygonsFromOutlines() error {
	np.polygons = nil
	np.vertices = nil

	inPolys := np.classifyOutlines()
	if len(inPolys) == 0 {
		logger.Component("navpoly").Warn("NavigationPolygon: no usable outline", zap.Int("outlines", len(np.outlines)))
		return ErrNoOutlines
	}

	outPolys, err := convexPartition(inPolys)
	if err != nil {
		logger.Component("navpoly").Warn("NavigationPolygon: Convex partition failed!",
			zap.Int("outlines", len(np.outlines)), zap.Error(err))
		return err
	}

	points := newVertexIndex()
	for _, tp := range outPolys {
		p := Polygon{Indices: make([]int, 0, tp.numPoints())}
		for _, v := range tp.points {
			idx, ok := points.find(v)
			if !ok {
				idx = len(np.vertices)
				points.insert(v, idx)
				np.vertices = append(np.vertices, v)
			}
			p.Indices = append(p.Indices, idx)
		}
		np.polygons = append(np.polygons, p)
	}
	return nil
}

// classifyOutlines casts a ray from the first point of every outline to a
// point outside all of them and counts crossings with the other outlines.
func (np *NavigationPolygon) classifyOutlines() []*partitionPoly {
	outsidePoint := common.Vec2{-1e10, -1e10}
	for _, ol := range np.outlines {
		if len(ol) < 3 {
			continue
		}
		for _, p := range ol {
			outsidePoint[0] = max(p[0], outsidePoint[0])
			outsidePoint[1] = max(p[1], outsidePoint[1])
		}
	}
	outsidePoint = outsidePoint.Add(outsideOffset)

	var res []*partitionPoly
	for i, r := range np.outlines {
		if len(r) < 3 {
			continue
		}

		interscount := 0
		for k, r2 := range np.outlines {
			if i == k || len(r2) < 3 {
				continue
			}
			for l := range r2 {
				if _, ok := common.SegmentIntersectsSegment2D(r[0], outsidePoint, r2[l], r2[common.Next(l, len(r2))]); ok {
					interscount++
				}
			}
		}

		tp := &partitionPoly{points: append([]common.Vec2(nil), r...)}
		if interscount%2 == 0 {
			tp.setOrientation(common.ORIENTATION_CCW)
		} else {
			tp.setOrientation(common.ORIENTATION_CW)
			tp.hole = true
		}
		res = append(res, tp)
	}
	return res
}

type cellKey struct {
	x, y int64
}

// vertexIndex finds earlier vertices within common.CMP_EPSILON. Points are
// bucketed on an epsilon grid and the 3x3 neighbourhood is searched, so a
// match straddling a cell border is still found.
type vertexIndex struct {
	cells  map[cellKey][]int
	points map[int]common.Vec2
}

func newVertexIndex() *vertexIndex {
	return &vertexIndex{
		cells:  make(map[cellKey][]int),
		points: make(map[int]common.Vec2),
	}
}

func vertexCell(p common.Vec2) cellKey {
	return cellKey{
		x: int64(math.Floor(float64(p[0]) / common.CMP_EPSILON)),
		y: int64(math.Floor(float64(p[1]) / common.CMP_EPSILON)),
	}
}

func (vi *vertexIndex) find(p common.Vec2) (int, bool) {
	c := vertexCell(p)
	best := -1
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, idx := range vi.cells[cellKey{c.x + dx, c.y + dy}] {
				if common.Vequal2D(vi.points[idx], p) && (best == -1 || idx < best) {
					best = idx
				}
			}
		}
	}
	return best, best != -1
}

func (vi *vertexIndex) insert(p common.Vec2, idx int) {
	c := vertexCell(p)
	vi.cells[c] = append(vi.cells[c], idx)
	vi.points[idx] = p
}
