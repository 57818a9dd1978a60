package main

import (
	"fmt"
	"os"

	"github.com/gorustyt/gonavmesh2d/common/logger"
	"github.com/gorustyt/gonavmesh2d/navpoly"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func CompileCmd(o *options) *cobra.Command {
	var out string
	c := &cobra.Command{
		Use:   "compile <mesh>",
		Short: "compile outlines into convex polygons and save them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			np, err := loadMesh(in)
			if err != nil {
				return err
			}
			if np.GetOutlineCount() > 0 {
				if err = np.MakePolygonsFromOutlines(); err != nil {
					return fmt.Errorf("%s: %w", in, err)
				}
			}
			if out == "" {
				out = defaultOutput(in)
			}
			format, err := navpoly.FormatFromPath(out)
			if err != nil {
				return err
			}
			data, err := np.Encode(format)
			if err != nil {
				return err
			}
			if err = os.WriteFile(out, data, 0644); err != nil {
				return err
			}
			logger.Info("mesh compiled",
				zap.String("in", in),
				zap.String("out", out),
				zap.Int("outlines", np.GetOutlineCount()),
				zap.Int("polygons", np.GetPolygonCount()),
				zap.Int("bytes", len(data)))
			return nil
		},
	}
	c.Flags().StringVarP(&out, "out", "o", "", "output file, .bin .pb or .msgpack")
	return c
}
