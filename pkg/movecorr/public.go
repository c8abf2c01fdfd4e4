package movecorr

import "github.com/black-desk/fsdetect/pkg/types"

// Feed advances the state machine with rec and emits what it resolves.
//
//	state       MOVED_FROM           MOVED_TO              other
//	idle        hold R               move{R, -}            R
//	holding P   move{-, P}, hold R   move{R, P}, idle      move{-, P}, R
//
// The held record is released before anything is emitted,
// so when emit fails the engine is left exactly as far as it got.
func (e *Engine) Feed(rec types.RawRecord, emit Emit) (err error) {
	switch {
	case rec.IsMovedFrom():
		err = e.Flush(emit)
		if err != nil {
			return
		}

		e.log.Debugw("Hold move-out record.",
			"path", rec.Path,
		)

		e.pending = &rec
		return

	case rec.IsMovedTo():
		ev := types.Event{Path: rec.Path}

		if p := e.take(); p != nil {
			e.checkCookie(p, &rec)
			ev.SrcPath = p.Path
		}

		err = emit(types.EventKindMove, ev)
		return

	default:
		err = e.Flush(emit)
		if err != nil {
			return
		}

		kind, ok := types.KindOf(rec.Flags)
		if !ok {
			e.log.Debugw("Record has no event kind.",
				"path", rec.Path,
				"flags", rec.Flags,
			)
			return
		}

		err = emit(kind, types.Event{Path: rec.Path})
		return
	}
}

// Flush emits the held move-out, if any, as a move out of the watched tree.
func (e *Engine) Flush(emit Emit) (err error) {
	p := e.take()
	if p == nil {
		return
	}

	e.log.Debugw("Move-out record not paired.",
		"path", p.Path,
	)

	err = emit(types.EventKindMove, types.Event{SrcPath: p.Path})
	return
}

// Pending returns the held move-out record.
func (e *Engine) Pending() (rec types.RawRecord, ok bool) {
	if e.pending == nil {
		return
	}

	rec = *e.pending
	ok = true
	return
}
