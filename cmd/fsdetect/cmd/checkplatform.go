package cmd

import (
	"fmt"
	"os"

	"github.com/black-desk/fsdetect/internal/consts"
	"github.com/black-desk/fsdetect/pkg/notifysrc"
	"github.com/black-desk/fsdetect/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/spf13/cobra"
)

// checkPlatformCmd represents the platform command
var checkPlatformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Check platform",
	Long:  `Check inotify is available by watching a temporary directory.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n\n%w\n"+consts.CheckDocumentString, err)

			return
		}()

		err = checkPlatformCmdRun()
		return
	},
}

func checkPlatformCmdRun() (err error) {
	defer Wrap(&err, "Failed to check platform.")

	var dir string
	dir, err = os.MkdirTemp("", "fsdetect-check-*")
	if err != nil {
		return
	}
	defer os.RemoveAll(dir)

	var s *notifysrc.Source
	s, err = notifysrc.New(notifysrc.WithRoot(dir))
	if err != nil {
		return
	}
	defer s.Close()

	err = s.Watch(types.EventKindCreate.Mask())
	if err != nil {
		return
	}

	return
}

func init() {
	checkCmd.AddCommand(checkPlatformCmd)
}
