//go:build wireinject
// +build wireinject

package core

import (
	"github.com/black-desk/fsdetect/pkg/fsdetect/config"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func injectedComponents(
	*config.Config, *zap.SugaredLogger, detectorOpts,
) (
	*components, error,
) {
	panic(wire.Build(set))
}
