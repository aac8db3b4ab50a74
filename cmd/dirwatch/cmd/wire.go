//go:build wireinject
// +build wireinject

package cmd

import (
	"github.com/google/wire"
	"github.com/twinpane/dirwatch/pkg/dirwatch/config"
	"go.uber.org/zap"
)

func injectedApp(
	*config.Config, *zap.SugaredLogger, paneDirs,
) (
	*app, error,
) {
	panic(wire.Build(set))
}
