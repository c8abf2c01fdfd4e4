package dispatch

import (
	"errors"
	"fmt"

	"github.com/black-desk/fsdetect/pkg/types"
)

var (
	ErrChainsMissing = errors.New("handler chains are missing.")
)

// HandlerFailure is returned when a handler fails.
// Handlers after it in the chain have not been called.
type HandlerFailure struct {
	Kind  types.EventKind
	Index int
	Event types.Event
	Err   error
}

func (e *HandlerFailure) Error() string {
	return fmt.Sprintf(
		"handler #%d for %s event (path: %q, source: %q) failed: %s",
		e.Index, e.Kind, e.Event.Path, e.Event.SrcPath, e.Err,
	)
}

func (e *HandlerFailure) Unwrap() error {
	return e.Err
}
