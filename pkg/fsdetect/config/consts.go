package config

import (
	"time"

	"github.com/black-desk/fsdetect/pkg/fsdetect"
	"github.com/black-desk/fsdetect/pkg/hidden"
	"github.com/black-desk/fsdetect/pkg/notifysrc"
)

const (
	DefaultConfig = `
version: 1
root: /tmp/files
events:
  - create
  - delete
  - move
`
	DefaultPollTimeout  = fsdetect.DefaultPollTimeout
	DefaultInterval     = 500 * time.Millisecond
	DefaultHiddenPrefix = hidden.DefaultPrefix
	DefaultBufferSize   = notifysrc.DefaultBufferSize
)
