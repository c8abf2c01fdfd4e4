package fsdetect

import (
	"github.com/black-desk/fsdetect/pkg/dispatch"
	"github.com/black-desk/fsdetect/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
)

func (d *Detector) Root() string {
	return d.root
}

// On appends h to the handlers of the event kind called name,
// widening the watch if needed.
// Unknown names fail with *types.ErrUnknownEventKind
// before the watch is touched.
// It returns d so registrations can be chained.
func (d *Detector) On(name string, h dispatch.Handler) (ret *Detector, err error) {
	defer Wrap(&err, "register handler for %q", name)

	var kind types.EventKind
	kind, err = types.ParseEventKind(name)
	if err != nil {
		return
	}

	err = d.registry.Register(kind, h)
	if err != nil {
		return
	}

	d.log.Debugw("Handler registered.",
		"kind", kind,
		"handlers", len(d.registry.Handlers(kind)),
	)

	ret = d
	return
}

func (d *Detector) OnFunc(
	name string, fn func(types.Event) (types.Verdict, error),
) (*Detector, error) {
	return d.On(name, dispatch.HandlerFunc(fn))
}

// Poll waits briefly for records, then processes every record available.
//
// Errors of the watch source are returned as they are.
// A failing handler aborts the records left in this batch
// and its *dispatch.HandlerFailure is returned.
func (d *Detector) Poll() (err error) {
	var records []types.RawRecord
	records, err = d.source.Poll(d.timeout)
	if err != nil {
		return
	}

	for i := range records {
		err = d.process(records[i])
		if err != nil {
			d.log.Debugw("Abort batch.",
				"processed", i,
				"dropped", len(records)-i-1,
				"error", err,
			)
			return
		}
	}

	return
}

// Flush reports a held move-out as a move out of the watched tree
// without waiting for another record.
func (d *Detector) Flush() error {
	return d.engine.Flush(d.dispatcher.Dispatch)
}

func (d *Detector) Close() (err error) {
	defer Wrap(&err, "close detector")

	err = d.source.Close()
	return
}
