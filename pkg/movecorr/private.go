package movecorr

import "github.com/black-desk/fsdetect/pkg/types"

func (e *Engine) take() (p *types.RawRecord) {
	p = e.pending
	e.pending = nil
	return
}

func (e *Engine) checkCookie(from, to *types.RawRecord) {
	if from.Cookie == 0 || to.Cookie == 0 || from.Cookie == to.Cookie {
		return
	}

	// NOTE: Pairing is still done by adjacency.
	e.log.Warnw("Paired move records carry different cookies.",
		"from", from.Path,
		"to", to.Path,
		"from cookie", from.Cookie,
		"to cookie", to.Cookie,
	)
}
