package core

import (
	"fmt"

	"github.com/black-desk/fsdetect/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
)

const (
	unknownSource      = "<unknown source>"
	unknownDestination = "<unknown destination>"
)

func (c *Core) register() (err error) {
	defer Wrap(&err, "register handlers")

	for _, kind := range c.cfg.Kinds {
		_, err = c.components.d.OnFunc(kind.String(), c.printer(kind))
		if err != nil {
			return
		}
	}

	return
}

func (c *Core) printer(kind types.EventKind) func(types.Event) (types.Verdict, error) {
	return func(ev types.Event) (verdict types.Verdict, err error) {
		switch kind {
		case types.EventKindMove:
			src, dst := ev.SrcPath, ev.Path
			if src == "" {
				src = unknownSource
			}
			if dst == "" {
				dst = unknownDestination
			}
			_, err = fmt.Fprintf(c.out, "moved %s to %s\n", src, dst)
		case types.EventKindCreate:
			_, err = fmt.Fprintf(c.out, "created: %s\n", ev.Path)
		case types.EventKindDelete:
			_, err = fmt.Fprintf(c.out, "deleted: %s\n", ev.Path)
		default:
			_, err = fmt.Fprintf(c.out, "%s: %s\n", kind, ev.Path)
		}

		return
	}
}
