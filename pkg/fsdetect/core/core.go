package core

import (
	"io"
	"os"

	"github.com/black-desk/fsdetect/pkg/fsdetect"
	"github.com/black-desk/fsdetect/pkg/fsdetect/config"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// Core drives a detector built from a configuration
// and prints every event it reports.
type Core struct {
	cfg  *config.Config
	out  io.Writer
	opts detectorOpts

	log *zap.SugaredLogger

	components *components
}

type components struct {
	d *fsdetect.Detector
}

type detectorOpts []fsdetect.Opt

type Opt = (func(*Core) (*Core, error))

func New(opts ...Opt) (ret *Core, err error) {
	defer Wrap(&err, "create new fsdetect core")

	c := &Core{}
	for i := range opts {
		c, err = opts[i](c)
		if err != nil {
			c = nil
			return
		}
	}

	if c.log == nil {
		c.log = zap.NewNop().Sugar()
	}

	if c.out == nil {
		c.out = os.Stdout
	}

	if c.cfg == nil {
		err = ErrConfigMissing
		return
	}

	ret = c

	c.log.Debugw("Create a new core.",
		"root", c.cfg.Root,
		"events", c.cfg.Events,
	)

	return
}

func WithConfig(cfg *config.Config) Opt {
	return func(core *Core) (ret *Core, err error) {
		core.cfg = cfg
		ret = core
		return
	}
}

// WithOutput sets where events are printed, os.Stdout by default.
func WithOutput(out io.Writer) Opt {
	return func(core *Core) (ret *Core, err error) {
		core.out = out
		ret = core
		return
	}
}

// WithDetectorOpts appends options used when creating the detector,
// after the ones derived from the configuration.
func WithDetectorOpts(opts ...fsdetect.Opt) Opt {
	return func(core *Core) (ret *Core, err error) {
		core.opts = append(core.opts, opts...)
		ret = core
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(core *Core) (ret *Core, err error) {
		core.log = log
		ret = core
		return
	}
}
