package main

import (
	"github.com/gorustyt/gonavmesh2d/common/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func PathCmd(o *options) *cobra.Command {
	var from, to []float32
	var noOptimize bool
	c := &cobra.Command{
		Use:   "path <mesh>...",
		Short: "find a path between two points",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := toPoint("from", from)
			if err != nil {
				return err
			}
			end, err := toPoint("to", to)
			if err != nil {
				return err
			}
			nav, err := o.loadWorld(args)
			if err != nil {
				return err
			}
			optimize := o.cfg.Navigation.Optimize && !noOptimize
			path := nav.GetSimplePath(start, end, optimize)
			if len(path) == 0 {
				logger.Warn("no path", zap.Any("from", start), zap.Any("to", end))
				return nil
			}
			logger.Debug("path found", zap.Int("points", len(path)), zap.Bool("optimize", optimize))
			writePath(cmd.OutOrStdout(), path)
			return nil
		},
	}
	c.Flags().Float32SliceVar(&from, "from", nil, "start point x,y")
	c.Flags().Float32SliceVar(&to, "to", nil, "end point x,y")
	c.Flags().BoolVar(&noOptimize, "no-optimize", false, "walk through edge midpoints instead of string pulling")
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	return c
}
