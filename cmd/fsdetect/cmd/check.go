package cmd

import (
	"fmt"

	"github.com/black-desk/fsdetect/internal/consts"
	"github.com/spf13/cobra"
)

var checkFlags struct {
	EnableLogger bool
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check requirements",
	Long:  `Check the platform and the configuration.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n\n%w\n"+consts.CheckDocumentString, err)

			return
		}()

		err = checkCmdRun()
		return
	},
}

func checkCmdRun() (err error) {
	err = checkPlatformCmdRun()
	if err != nil {
		return
	}

	err = checkConfigCmdRun()
	if err != nil {
		return
	}

	return
}

func init() {
	checkCmd.PersistentFlags().BoolVarP(
		&checkFlags.EnableLogger,
		"verbose", "v", false,
		"print logs while checking",
	)

	rootCmd.AddCommand(checkCmd)
}
