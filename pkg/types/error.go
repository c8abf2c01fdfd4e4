package types

import "fmt"

type ErrUnknownEventKind struct {
	Name string
}

func (e *ErrUnknownEventKind) Error() string {
	return fmt.Sprintf("unknown event kind %q.", e.Name)
}
