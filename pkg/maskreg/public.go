package maskreg

import (
	"github.com/black-desk/fsdetect/pkg/dispatch"
	"github.com/black-desk/fsdetect/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
)

// Register appends h to the chain of kind,
// widening the installed mask first if kind needs more bits.
// If widening fails nothing is changed.
func (r *Registry) Register(kind types.EventKind, h dispatch.Handler) (err error) {
	defer Wrap(&err, "register handler for %s", kind)

	if h == nil {
		err = ErrHandlerMissing
		return
	}

	mask := r.installed | kind.Mask()
	if mask != r.installed {
		err = r.widen(mask)
		if err != nil {
			return
		}

		r.log.Debugw("Watch mask widened.",
			"kind", kind,
			"from", r.installed,
			"to", mask,
		)

		r.installed = mask
	}

	if _, ok := r.chains[kind]; !ok {
		r.order = append(r.order, kind)
	}
	r.chains[kind] = append(r.chains[kind], h)

	return
}

func (r *Registry) Handlers(kind types.EventKind) []dispatch.Handler {
	return r.chains[kind]
}

func (r *Registry) Installed() types.Flag {
	return r.installed
}

// Kinds returns subscribed kinds in the order of their first registration.
func (r *Registry) Kinds() []types.EventKind {
	return append([]types.EventKind(nil), r.order...)
}
