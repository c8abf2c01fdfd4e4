package interfaces

import (
	"time"

	"github.com/black-desk/fsdetect/pkg/types"
)

// Source produces raw records for a directory tree.
type Source interface {
	// Watch installs a recursive watch on the root, or widens the one
	// already installed, so that at least the bits in mask are reported.
	// New subdirectories are watched automatically.
	// It never narrows what is already watched.
	Watch(mask types.Flag) error
	// Poll waits at most timeout for the first record,
	// then returns it together with every record already available.
	Poll(timeout time.Duration) ([]types.RawRecord, error)
	Close() error
}
