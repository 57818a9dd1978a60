package main

import (
	"github.com/gorustyt/gonavmesh2d/common/logger"
	"github.com/gorustyt/gonavmesh2d/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func ConfigCmd(o *options) *cobra.Command {
	var out string
	c := &cobra.Command{
		Use:   "config",
		Short: "write the effective config to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.cfg.SaveTo(out); err != nil {
				return err
			}
			logger.Info("config saved", zap.String("path", out))
			return nil
		},
	}
	c.Flags().StringVarP(&out, "out", "o", config.FileName, "output file")
	return c
}
