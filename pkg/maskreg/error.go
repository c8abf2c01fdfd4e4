package maskreg

import "errors"

var (
	ErrWidenFuncMissing = errors.New("widen function is missing.")
	ErrHandlerMissing   = errors.New("handler is missing.")
)
