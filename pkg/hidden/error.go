package hidden

import "errors"

var (
	ErrRootMissing   = errors.New("root is missing.")
	ErrPrefixMissing = errors.New("hidden prefix is missing.")
)
