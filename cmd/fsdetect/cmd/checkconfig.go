package cmd

import (
	"fmt"

	"github.com/black-desk/fsdetect/internal/consts"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/lib/go/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkConfigCmd represents the config command
var checkConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Check configuration",
	Long:  `Validate configuration.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n%w\n"+consts.CheckDocumentString, err)

			return
		}()

		err = checkConfigCmdRun()
		return
	},
}

func checkConfigCmdRun() (err error) {
	defer Wrap(&err)

	log := zap.NewNop().Sugar()
	if checkFlags.EnableLogger {
		log = logger.Get("fsdetect")
	}

	_, err = loadConfig(log)
	if err != nil {
		return
	}

	return
}

func init() {
	checkCmd.AddCommand(checkConfigCmd)
}
