package fsdetect

import "github.com/black-desk/fsdetect/pkg/types"

func (d *Detector) process(rec types.RawRecord) error {
	if d.filter.Hidden(rec.Path) {
		d.log.Debugw("Ignore record of hidden path.",
			"path", rec.Path,
			"flags", rec.Flags,
		)
		return nil
	}

	return d.engine.Feed(rec, d.dispatcher.Dispatch)
}
