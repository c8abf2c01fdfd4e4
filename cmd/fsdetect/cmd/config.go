package cmd

import (
	"errors"
	"os"

	"github.com/black-desk/fsdetect/internal/consts"
	"github.com/black-desk/fsdetect/pkg/fsdetect/config"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// loadConfig falls back to config.DefaultConfig
// only when the default configuration file is missing.
func loadConfig(log *zap.SugaredLogger) (ret *config.Config, err error) {
	content, err := os.ReadFile(flags.CfgPath)
	if errors.Is(err, os.ErrNotExist) && flags.CfgPath == consts.FsdetectCfgPath {
		log.Warnw("Configuration file missing fallback to default config.",
			"file", flags.CfgPath,
		)

		content = []byte(config.DefaultConfig)
		err = nil
	} else if err != nil {
		Wrap(
			&err,
			"read configuration from %s",
			flags.CfgPath,
		)
		return
	}

	return config.New(
		config.WithContent(content),
		config.WithLogger(log),
	)
}
