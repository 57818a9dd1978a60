package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func ClosestCmd(o *options) *cobra.Command {
	var point []float32
	c := &cobra.Command{
		Use:   "closest <mesh>...",
		Short: "print the closest walkable point and the mesh it lies on",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := toPoint("point", point)
			if err != nil {
				return err
			}
			nav, err := o.loadWorld(args)
			if err != nil {
				return err
			}
			res := nav.GetClosestPoint(p)
			owner, _ := nav.GetClosestPointOwner(p).(string)
			fmt.Fprintf(cmd.OutOrStdout(), "%g,%g %s\n", res[0], res[1], owner)
			return nil
		},
	}
	c.Flags().Float32SliceVar(&point, "point", nil, "query point x,y")
	_ = c.MarkFlagRequired("point")
	return c
}
