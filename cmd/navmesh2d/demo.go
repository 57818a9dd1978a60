package main

import (
	"github.com/gorustyt/gonavmesh2d/common/logger"
	"github.com/gorustyt/gonavmesh2d/demo"
	"github.com/gorustyt/gonavmesh2d/navigation"
	"github.com/gorustyt/gonavmesh2d/navpoly"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func DemoCmd(o *options) *cobra.Command {
	var compile bool
	c := &cobra.Command{
		Use:   "demo",
		Short: "run the sample level path query",
		RunE: func(cmd *cobra.Command, args []string) error {
			var np *navpoly.NavigationPolygon
			if compile {
				var err error
				if np, err = demo.CompiledNavigationPolygon(); err != nil {
					return err
				}
			} else {
				np = demo.NavigationPolygon()
			}

			inst := navigation.NewNavigationPolygonInstance(o.newNavigation())
			inst.SetNavigationPolygon(np)
			nav := inst.GetNavigation2D()
			path := nav.GetSimplePath(demo.PathStart, demo.PathEnd, o.cfg.Navigation.Optimize)
			logger.Info("demo path",
				zap.Bool("compiled", compile),
				zap.Int("polygons", nav.GetPolygonCount(inst.GetNavID())),
				zap.Int("connections", nav.GetConnectionCount()),
				zap.Int("points", len(path)))
			writePath(cmd.OutOrStdout(), path)
			return nil
		},
	}
	c.Flags().BoolVar(&compile, "compile", false, "compile the outlines instead of using the prebaked polygons")
	return c
}
