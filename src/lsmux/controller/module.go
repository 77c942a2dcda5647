package controller

import (
	"github.com/uber/lsmux/src/lsmux/controller/lifecycle"
	"github.com/uber/lsmux/src/lsmux/controller/rootmodules"
	"github.com/uber/lsmux/src/lsmux/controller/router"
	"github.com/uber/lsmux/src/lsmux/controller/status"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(lifecycle.New),
	fx.Provide(router.New),
	fx.Provide(rootmodules.New),
	fx.Provide(status.New),
)
