package notifysrc

import "errors"

var (
	ErrRootMissing       = errors.New("root is missing.")
	ErrInvalidBufferSize = errors.New("buffer size must be positive.")
	ErrInvalidSettle     = errors.New("settle duration must not be negative.")
	ErrClosed            = errors.New("watch source is closed.")
)
