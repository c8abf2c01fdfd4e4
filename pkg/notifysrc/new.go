package notifysrc

import (
	"time"

	"github.com/black-desk/fsdetect/pkg/interfaces"
	"github.com/black-desk/fsdetect/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/rjeczalik/notify"
	"go.uber.org/zap"
)

// DefaultBufferSize is the capacity of the channel notify delivers into.
const DefaultBufferSize = 128

// DefaultSettle is how long Poll keeps waiting
// for the missing half of a rename.
const DefaultSettle = 50 * time.Millisecond

// createWindow is how long a reported create suppresses
// another create record for the same path.
const createWindow = time.Second

// Source watches a directory tree recursively with github.com/rjeczalik/notify.
//
// notify hands every record to the channel from its own goroutine,
// so records close in time may arrive in any order.
// Poll puts the move-out half of a rename right before its move-in half
// and reports the content of new directories
// created before notify could watch them.
type Source struct {
	root      string
	size      int
	settle    time.Duration
	eventsIn  chan notify.EventInfo
	installed types.Flag
	created   map[string]time.Time
	closed    bool
	log       *zap.SugaredLogger
}

var _ interfaces.Source = &Source{}

func New(opts ...Opt) (ret *Source, err error) {
	defer Wrap(&err, "create notify watch source")

	s := &Source{
		size:    DefaultBufferSize,
		settle:  DefaultSettle,
		created: map[string]time.Time{},
	}
	for i := range opts {
		s, err = opts[i](s)
		if err != nil {
			return
		}
	}

	if s.root == "" {
		err = ErrRootMissing
		return
	}

	if s.log == nil {
		s.log = zap.NewNop().Sugar()
	}

	// FIXME:
	// github.com/rjeczalik/notify drop events if receiver is too slow.
	// https://github.com/rjeczalik/notify/issues/85
	// https://github.com/rjeczalik/notify/issues/98
	s.eventsIn = make(chan notify.EventInfo, s.size)

	ret = s

	s.log.Debugw("Create a notify watch source.",
		"root", s.root,
		"buffer size", s.size,
		"settle", s.settle,
	)

	return
}

type Opt func(s *Source) (ret *Source, err error)

// WithRoot resolves root to an absolute path without symlinks,
// as notify reports paths below the resolved directory.
func WithRoot(root string) Opt {
	return func(s *Source) (ret *Source, err error) {
		if root == "" {
			err = ErrRootMissing
			return
		}

		s.root, err = ResolveRoot(root)
		if err != nil {
			return
		}

		ret = s
		return
	}
}

func WithBufferSize(size int) Opt {
	return func(s *Source) (ret *Source, err error) {
		if size <= 0 {
			err = ErrInvalidBufferSize
			return
		}

		s.size = size
		ret = s
		return
	}
}

func WithSettle(settle time.Duration) Opt {
	return func(s *Source) (ret *Source, err error) {
		if settle < 0 {
			err = ErrInvalidSettle
			return
		}

		s.settle = settle
		ret = s
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(s *Source) (ret *Source, err error) {
		s.log = log
		ret = s
		return
	}
}
