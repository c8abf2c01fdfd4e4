package maskreg

import (
	"github.com/black-desk/fsdetect/pkg/dispatch"
	"github.com/black-desk/fsdetect/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// WidenFunc asks the watch source to report at least the bits in mask.
type WidenFunc func(mask types.Flag) error

// Registry keeps the handler chain of every subscribed kind
// and the mask installed on the watch source.
type Registry struct {
	chains    map[types.EventKind][]dispatch.Handler
	order     []types.EventKind
	installed types.Flag
	widen     WidenFunc
	log       *zap.SugaredLogger
}

var _ dispatch.Chains = &Registry{}

func New(opts ...Opt) (ret *Registry, err error) {
	defer Wrap(&err, "create mask registry")

	r := &Registry{
		chains: map[types.EventKind][]dispatch.Handler{},
	}
	for i := range opts {
		r, err = opts[i](r)
		if err != nil {
			return
		}
	}

	if r.widen == nil {
		err = ErrWidenFuncMissing
		return
	}

	if r.log == nil {
		r.log = zap.NewNop().Sugar()
	}

	ret = r
	return
}

type Opt func(r *Registry) (ret *Registry, err error)

func WithWidenFunc(fn WidenFunc) Opt {
	return func(r *Registry) (ret *Registry, err error) {
		if fn == nil {
			err = ErrWidenFuncMissing
			return
		}

		r.widen = fn
		ret = r
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(r *Registry) (ret *Registry, err error) {
		r.log = log
		ret = r
		return
	}
}
