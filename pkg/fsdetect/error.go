// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fsdetect

import (
	"errors"
)

var (
	ErrRootMissing         = errors.New("root is missing.")
	ErrSourceMissing       = errors.New("watch source is missing.")
	ErrInvalidPollTimeout  = errors.New("poll timeout must be positive.")
	ErrHiddenPrefixMissing = errors.New("hidden prefix is missing.")
)
