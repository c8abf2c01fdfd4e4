package fsdetect

import (
	"time"

	"github.com/black-desk/fsdetect/pkg/dispatch"
	"github.com/black-desk/fsdetect/pkg/hidden"
	"github.com/black-desk/fsdetect/pkg/interfaces"
	"github.com/black-desk/fsdetect/pkg/maskreg"
	"github.com/black-desk/fsdetect/pkg/movecorr"
	"github.com/black-desk/fsdetect/pkg/notifysrc"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// DefaultPollTimeout is how long Poll waits for the first record.
const DefaultPollTimeout = 10 * time.Millisecond

// Detector delivers create, delete and move events
// happening in a directory tree to registered handlers.
//
// A Detector is not safe for concurrent use:
// register handlers and poll from the same goroutine.
type Detector struct {
	root         string
	timeout      time.Duration
	hiddenPrefix string
	bufferSize   int

	source     interfaces.Source
	filter     *hidden.Filter
	registry   *maskreg.Registry
	engine     *movecorr.Engine
	dispatcher *dispatch.Dispatcher

	log *zap.SugaredLogger
}

type Opt = (func(*Detector) (*Detector, error))

func New(opts ...Opt) (ret *Detector, err error) {
	defer Wrap(&err, "create detector")

	d := &Detector{
		timeout:      DefaultPollTimeout,
		hiddenPrefix: hidden.DefaultPrefix,
		bufferSize:   notifysrc.DefaultBufferSize,
	}
	for i := range opts {
		d, err = opts[i](d)
		if err != nil {
			d = nil
			return
		}
	}

	if d.log == nil {
		d.log = zap.NewNop().Sugar()
	}

	if d.root == "" {
		err = ErrRootMissing
		return
	}

	if d.source == nil {
		d.source, err = notifysrc.New(
			notifysrc.WithRoot(d.root),
			notifysrc.WithBufferSize(d.bufferSize),
			notifysrc.WithLogger(d.log),
		)
		if err != nil {
			return
		}
	}

	d.filter, err = hidden.New(
		hidden.WithRoot(d.root),
		hidden.WithPrefix(d.hiddenPrefix),
	)
	if err != nil {
		return
	}

	d.registry, err = maskreg.New(
		maskreg.WithWidenFunc(d.source.Watch),
		maskreg.WithLogger(d.log),
	)
	if err != nil {
		return
	}

	d.engine, err = movecorr.New(movecorr.WithLogger(d.log))
	if err != nil {
		return
	}

	d.dispatcher, err = dispatch.New(
		dispatch.WithChains(d.registry),
		dispatch.WithLogger(d.log),
	)
	if err != nil {
		return
	}

	ret = d

	d.log.Debugw("Create a new detector.",
		"root", d.root,
		"poll timeout", d.timeout,
	)

	return
}

// WithRoot sets the watched directory.
// Symlinks in root are resolved so that paths reported by the kernel
// compare against the same prefix.
func WithRoot(root string) Opt {
	return func(d *Detector) (ret *Detector, err error) {
		if root == "" {
			err = ErrRootMissing
			return
		}

		d.root, err = notifysrc.ResolveRoot(root)
		if err != nil {
			return
		}

		ret = d
		return
	}
}

// WithSource replaces the notify based watch source.
func WithSource(source interfaces.Source) Opt {
	return func(d *Detector) (ret *Detector, err error) {
		if source == nil {
			err = ErrSourceMissing
			return
		}

		d.source = source
		ret = d
		return
	}
}

func WithPollTimeout(timeout time.Duration) Opt {
	return func(d *Detector) (ret *Detector, err error) {
		if timeout <= 0 {
			err = ErrInvalidPollTimeout
			return
		}

		d.timeout = timeout
		ret = d
		return
	}
}

func WithHiddenPrefix(prefix string) Opt {
	return func(d *Detector) (ret *Detector, err error) {
		if prefix == "" {
			err = ErrHiddenPrefixMissing
			return
		}

		d.hiddenPrefix = prefix
		ret = d
		return
	}
}

// WithBufferSize only matters for the default watch source.
func WithBufferSize(size int) Opt {
	return func(d *Detector) (ret *Detector, err error) {
		d.bufferSize = size
		ret = d
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(d *Detector) (ret *Detector, err error) {
		d.log = log
		ret = d
		return
	}
}
