package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/black-desk/fsdetect/internal/consts"
	"github.com/black-desk/fsdetect/pkg/fsdetect/config"
	"github.com/black-desk/fsdetect/pkg/fsdetect/core"
	"github.com/black-desk/lib/go/logger"
	"github.com/spf13/cobra"
)

var flags struct {
	CfgPath string
}

var rootCmd = &cobra.Command{
	Use:   "fsdetect [directory]",
	Short: "Report files created, deleted and moved in a directory tree",
	Long: `Watch a directory recursively and print every file or directory
created, deleted or moved in it. Hidden files are ignored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf(
				"\n\n%w\n"+consts.CheckDocumentString,
				err,
			)

			return
		}()
		err = rootCmdRun(cmd.Context(), args)
		return
	},
}

func rootCmdRun(ctx context.Context, args []string) (err error) {
	log := logger.Get("fsdetect")

	var cfg *config.Config
	cfg, err = loadConfig(log)
	if err != nil {
		return
	}

	if len(args) == 1 {
		cfg.Root = args[0]
	}

	var c *core.Core
	c, err = core.New(
		core.WithConfig(cfg),
		core.WithOutput(os.Stdout),
		core.WithLogger(log),
	)
	if err != nil {
		return
	}

	err = c.Run(ctx)
	if err == nil {
		return
	}

	log.Debugw(
		"Core exited with error.",
		"error", err,
	)

	var cancelBySignal *core.ErrCancelBySignal
	if errors.As(err, &cancelBySignal) {
		log.Infow("Signal received, exiting...",
			"signal", cancelBySignal.Signal,
		)
		err = nil
		return
	}

	return
}

func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cfgPath := os.Getenv("CONFIGURATION_DIRECTORY")
	if cfgPath == "" {
		cfgPath = consts.FsdetectCfgPath
	} else {
		cfgPath += "/config.yaml"
	}

	rootCmd.PersistentFlags().StringVarP(
		&flags.CfgPath,
		"config", "c", cfgPath,
		"the configure file to use",
	)
}
