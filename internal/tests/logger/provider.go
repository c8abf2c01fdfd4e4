// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"
	"time"

	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

const (
	defaultTestLogFilePathTemplate = "{{.TMPDIR}}/io.github.black-desk.fsdetect-test/{{.SUITE}}-{{.TIMESTAMP}}.log"
)

func genLogFilePathFromTemplate(templStr string, suite string) (ret string, err error) {
	defer Wrap(&err, "gen log file path from template string")

	templ := template.New("test log file path")
	templ, err = templ.Parse(templStr)
	if err != nil {
		return
	}

	buf := new(bytes.Buffer)
	err = templ.Execute(buf, map[string]string{
		"TMPDIR":    os.TempDir(),
		"SUITE":     suite,
		"TIMESTAMP": time.Now().Format("20060102T150405.000000000"),
	})
	if err != nil {
		return
	}

	ret = buf.String()
	return
}

// ProvideLogger returns a development logger writing to a file,
// so debug output of a suite does not mix with the ginkgo report.
func ProvideLogger(suite string) (ret *zap.SugaredLogger, err error) {
	defer Wrap(&err, "create a logger for test")

	logFilePath := os.Getenv("FSDETECT_TEST_LOGFILE")
	if logFilePath == "" {
		logFilePath, err = genLogFilePathFromTemplate(
			defaultTestLogFilePathTemplate, suite,
		)
		if err != nil {
			return
		}
	}

	err = os.MkdirAll(filepath.Dir(logFilePath), 0o755)
	if err != nil {
		return
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{logFilePath}

	var logger *zap.Logger
	logger, err = cfg.Build()
	if err != nil {
		Wrap(&err, "build zap logger from development config")
		return
	}

	ret = logger.Sugar()
	return
}
