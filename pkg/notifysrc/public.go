package notifysrc

import (
	"time"

	"github.com/black-desk/fsdetect/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/rjeczalik/notify"
)

func (s *Source) Root() string {
	return s.root
}

// Watch asks notify for the bits of mask not requested yet.
// notify merges events requested on the same channel,
// so the watch only ever grows.
func (s *Source) Watch(mask types.Flag) (err error) {
	defer Wrap(&err, "watch %s", s.root)

	if s.closed {
		err = ErrClosed
		return
	}

	add := mask &^ s.installed
	events := notifyEvents(add)
	if len(events) == 0 {
		return
	}

	err = notify.Watch(s.root+"/...", s.eventsIn, events...)
	if err != nil {
		return
	}

	s.installed |= add

	s.log.Debugw("Watch installed.",
		"root", s.root,
		"mask", s.installed,
	)

	return
}

// Poll waits up to timeout for the first record,
// then returns it together with every record already queued.
func (s *Source) Poll(timeout time.Duration) (records []types.RawRecord, err error) {
	if s.closed {
		err = ErrClosed
		return
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case event := <-s.eventsIn:
		records = append(records, s.record(event))
	case <-timer.C:
		return
	}

	records = s.drain(records)
	if unpaired(records) {
		records = s.wait(records)
	}

	records = s.expand(records, time.Now())
	records = pairMoves(records)

	s.log.Debugw("Records drained.",
		"count", len(records),
	)
	return
}

func (s *Source) Close() (err error) {
	if s.closed {
		return
	}

	s.closed = true
	notify.Stop(s.eventsIn)

	s.log.Debugw("Watch source closed.",
		"root", s.root,
	)
	return
}
