//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"

	"github.com/yola1107/ludo/internal/biz"
	"github.com/yola1107/ludo/internal/conf"
	"github.com/yola1107/ludo/internal/data"
	"github.com/yola1107/ludo/internal/geometry"
)

// wireApp init ludo application.
func wireApp(*conf.Match, *conf.Data, log.Logger) (*App, func(), error) {
	panic(wire.Build(data.ProviderSet, biz.ProviderSet, geometry.NewTable, newApp))
}
