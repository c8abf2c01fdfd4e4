package movecorr

import (
	"github.com/black-desk/fsdetect/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// Emit delivers one semantic event.
type Emit func(kind types.EventKind, ev types.Event) error

// Engine pairs the two halves of a rename.
//
// It holds at most one move-out record and resolves it against the very next
// record, whatever that record is: a move-in completes the move, anything else
// proves the move-out left the watched tree.
// Inotify cookies are not used for pairing,
// so an unrelated move-in arriving right after a move-out is paired with it.
type Engine struct {
	pending *types.RawRecord
	log     *zap.SugaredLogger
}

func New(opts ...Opt) (ret *Engine, err error) {
	defer Wrap(&err, "create move correlation engine")

	e := &Engine{}
	for i := range opts {
		e, err = opts[i](e)
		if err != nil {
			return
		}
	}

	if e.log == nil {
		e.log = zap.NewNop().Sugar()
	}

	ret = e
	return
}

type Opt func(e *Engine) (ret *Engine, err error)

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(e *Engine) (ret *Engine, err error) {
		e.log = log
		ret = e
		return
	}
}
