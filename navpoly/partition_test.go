package navpoly

import (
	"testing"

	"github.com/gorustyt/gonavmesh2d/common"
)

func TestTriangulateFallback(t *testing.T) {
	l := []common.Vec2{{0, 0}, {10, 0}, {10, 5}, {5, 5}, {5, 10}, {0, 10}}
	tests := []struct {
		name      string
		points    []common.Vec2
		triangles int
		area      float32
	}{
		{"l shape", l, 4, 75},
		{"clockwise l shape", reversed(l), 4, 75},
		{"aligned vertex", []common.Vec2{{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}}, 3, 100},
		{"too short", []common.Vec2{{0, 0}, {1, 1}}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := triangulateFallback(&partitionPoly{points: tt.points})
			assertTrue(t, ok == (tt.triangles > 0), "unexpected success flag")
			assertTrue(t, len(res) == tt.triangles, "unexpected triangle count")
			var area float32
			for _, tri := range res {
				assertTrue(t, tri.numPoints() == 3, "fallback emits triangles")
				a := common.GetArea(tri.points)
				assertTrue(t, a > 0, "triangles are counter-clockwise")
				area += a
			}
			assertTrue(t, common.Abs(area-tt.area) < 1e-3, "triangles cover the ring")
		})
	}
}
