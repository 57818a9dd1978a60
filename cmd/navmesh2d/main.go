package main

import (
	"fmt"
	"os"

	"github.com/gorustyt/gonavmesh2d/common/logger"
	"github.com/gorustyt/gonavmesh2d/config"
	"github.com/gorustyt/gonavmesh2d/navigation"

	"github.com/spf13/cobra"
)

var VERSION = "UNKNOWN"

// options are shared by all subcommands once the root command has loaded
// the config.
type options struct {
	configFile string
	logLevel   string
	logFile    string
	cellSize   float32
	cfg        *config.Config
}

func (o *options) newNavigation() *navigation.Navigation2D {
	return navigation.NewNavigation2D(o.cfg.Navigation.CellSize)
}

func RootCmd() *cobra.Command {
	o := &options{}
	c := &cobra.Command{
		Use:           "navmesh2d",
		Short:         "2d navigation mesh tool",
		Version:       VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(o.configFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.Logging.Level = o.logLevel
			}
			if flags.Changed("log-file") {
				cfg.Logging.LogFile = o.logFile
			}
			if flags.Changed("cell-size") {
				cfg.Navigation.CellSize = o.cellSize
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			o.cfg = cfg
			return logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	pf := c.PersistentFlags()
	pf.StringVar(&o.configFile, "config", "", "config file, defaults to "+config.FileName+" when present")
	pf.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&o.logFile, "log-file", "", "also log to this file")
	pf.Float32Var(&o.cellSize, "cell-size", 1, "grid used to match polygon edges")

	c.AddCommand(
		CompileCmd(o),
		PathCmd(o),
		ClosestCmd(o),
		DemoCmd(o),
		ConfigCmd(o),
	)
	return c
}

func main() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
