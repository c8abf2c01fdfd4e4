package core

import (
	"github.com/black-desk/fsdetect/pkg/fsdetect"
	"github.com/black-desk/fsdetect/pkg/fsdetect/config"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func provideDetector(
	cfg *config.Config,
	log *zap.SugaredLogger,
	extra detectorOpts,
) (
	ret *fsdetect.Detector, err error,
) {
	opts := []fsdetect.Opt{
		fsdetect.WithRoot(cfg.Root),
		fsdetect.WithPollTimeout(cfg.PollTimeout),
		fsdetect.WithHiddenPrefix(cfg.HiddenPrefix),
		fsdetect.WithBufferSize(cfg.BufferSize),
		fsdetect.WithLogger(log),
	}
	opts = append(opts, extra...)

	var d *fsdetect.Detector
	d, err = fsdetect.New(opts...)
	if err != nil {
		return
	}

	ret = d
	return
}

func provideComponents(d *fsdetect.Detector) *components {
	return &components{d: d}
}

var set = wire.NewSet(
	provideComponents,
	provideDetector,
)
