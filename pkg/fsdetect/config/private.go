// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/black-desk/fsdetect/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/go-playground/validator/v10"
)

func (c *Config) check() (err error) {
	defer Wrap(&err, "check configuration")

	var validator = validator.New()
	err = validator.Struct(c)
	if err != nil {
		err = fmt.Errorf("validator: %w", err)
		return
	}

	if c.PollTimeout == 0 {
		c.PollTimeout = DefaultPollTimeout
	}

	if c.Interval == 0 {
		c.Interval = DefaultInterval
	}

	if c.HiddenPrefix == "" {
		c.HiddenPrefix = DefaultHiddenPrefix
	}

	if c.BufferSize == 0 {
		c.BufferSize = DefaultBufferSize
	}

	if len(c.Events) == 0 {
		c.log.Warnw("No events in config, nothing will be reported.")
	}

	c.Kinds = nil
	for i := range c.Events {
		var kind types.EventKind
		kind, err = types.ParseEventKind(c.Events[i])
		if err != nil {
			return
		}

		c.Kinds = append(c.Kinds, kind)
	}

	return
}
