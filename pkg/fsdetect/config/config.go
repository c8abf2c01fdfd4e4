// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"time"

	"github.com/black-desk/fsdetect/pkg/types"
	"go.uber.org/zap"
)

type Config struct {
	Version string `yaml:"version" validate:"required,eq=1"`

	// Root is the directory to watch recursively.
	Root string `yaml:"root" validate:"required"`
	// PollTimeout is how long one poll waits for the first record.
	PollTimeout time.Duration `yaml:"poll-timeout" validate:"gte=0"`
	// Interval is how long to sleep between two polls.
	Interval time.Duration `yaml:"interval" validate:"gte=0"`
	// Records of any path with a component
	// starting with HiddenPrefix below Root are ignored.
	HiddenPrefix string `yaml:"hidden-prefix"`
	// BufferSize is the capacity of the channel
	// notify delivers records to.
	BufferSize int `yaml:"buffer-size" validate:"gte=0"`
	// Events are the names of the event kinds to report.
	Events []string `yaml:"events" validate:"dive,required"`

	// Kinds are parsed from Events.
	Kinds []types.EventKind `yaml:"-"`

	log *zap.SugaredLogger `yaml:"-"`
	raw []byte
}
