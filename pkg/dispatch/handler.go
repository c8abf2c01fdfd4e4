package dispatch

import "github.com/black-desk/fsdetect/pkg/types"

// Handler receives events of the kinds it was registered for.
// Returning types.Stop skips the handlers registered after it for the same event.
// Returning an error aborts the current poll.
type Handler interface {
	Handle(ev types.Event) (types.Verdict, error)
}

type HandlerFunc func(ev types.Event) (types.Verdict, error)

func (fn HandlerFunc) Handle(ev types.Event) (types.Verdict, error) {
	return fn(ev)
}

// Chains holds the handlers registered for each kind.
type Chains interface {
	Handlers(kind types.EventKind) []Handler
}
