package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorustyt/gonavmesh2d/common"
	"github.com/gorustyt/gonavmesh2d/common/logger"
	"github.com/gorustyt/gonavmesh2d/navigation"
	"github.com/gorustyt/gonavmesh2d/navpoly"

	"go.uber.org/zap"
)

// loadMesh reads a polygon set in the format named by its extension.
func loadMesh(path string) (*navpoly.NavigationPolygon, error) {
	format, err := navpoly.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	np, err := navpoly.Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("mesh loaded",
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.Int("vertices", len(np.GetVertices())),
		zap.Int("polygons", np.GetPolygonCount()))
	return np, nil
}

// loadWorld adds every mesh to a new world with the mesh path as owner.
// Meshes that only carry outlines are compiled first.
func (o *options) loadWorld(paths []string) (*navigation.Navigation2D, error) {
	nav := o.newNavigation()
	for _, path := range paths {
		np, err := loadMesh(path)
		if err != nil {
			return nil, err
		}
		if np.GetPolygonCount() == 0 && np.GetOutlineCount() > 0 {
			if err = np.MakePolygonsFromOutlines(); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		nav.NavpolyAdd(np, common.Identity2D(), path)
	}
	return nav, nil
}

func toPoint(name string, values []float32) (common.Vec2, error) {
	if len(values) != 2 {
		return common.Vec2{}, fmt.Errorf("--%s wants x,y, got %d values", name, len(values))
	}
	return common.Vec2{values[0], values[1]}, nil
}

func writePath(w io.Writer, path []common.Vec2) {
	for _, p := range path {
		fmt.Fprintf(w, "%g,%g\n", p[0], p[1])
	}
}

// defaultOutput replaces the extension of in with .bin. A .bin input
// gets .compiled.bin so compiling never overwrites its own input.
func defaultOutput(in string) string {
	ext := filepath.Ext(in)
	if strings.EqualFold(ext, ".bin") {
		return strings.TrimSuffix(in, ext) + ".compiled.bin"
	}
	return strings.TrimSuffix(in, ext) + ".bin"
}
