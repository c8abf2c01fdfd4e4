package types

// Event is what handlers receive.
// An empty Path or SrcPath means the value is unknown:
// a move that left the watched tree has no Path,
// a move that entered it has no SrcPath.
// SrcPath is always empty for kinds other than move.
type Event struct {
	Path    string
	SrcPath string
}

type Verdict uint8

const (
	Continue Verdict = iota // continue
	Stop                    // stop
)

func (v Verdict) String() string {
	if v == Stop {
		return "stop"
	}
	return "continue"
}
