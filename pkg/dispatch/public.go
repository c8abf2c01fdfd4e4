package dispatch

import "github.com/black-desk/fsdetect/pkg/types"

// Dispatch calls the chain registered for kind in registration order.
func (d *Dispatcher) Dispatch(kind types.EventKind, ev types.Event) error {
	handlers := d.chains.Handlers(kind)

	d.log.Debugw("Dispatch event.",
		"kind", kind,
		"path", ev.Path,
		"source", ev.SrcPath,
		"handlers", len(handlers),
	)

	for i := range handlers {
		verdict, err := handlers[i].Handle(ev)
		if err != nil {
			return &HandlerFailure{
				Kind:  kind,
				Index: i,
				Event: ev,
				Err:   err,
			}
		}

		if verdict == types.Stop {
			d.log.Debugw("Handler stopped the chain.",
				"kind", kind,
				"index", i,
			)
			return nil
		}
	}

	return nil
}
