package handler

import (
	controller "github.com/uber/lsmux/src/lsmux/controller"
	"github.com/uber/lsmux/src/lsmux/controller/lifecycle"
	handler "github.com/uber/lsmux/src/lsmux/handler/lsmux"
	"github.com/uber/lsmux/src/lsmux/repository/session"
	"go.uber.org/fx"
)

// Module provides the lsmux server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(session.New),
	fx.Provide(handler.New),
	fx.Invoke(outputLanguageServerInfo),
	fx.Invoke(func(m handler.Handler) {}),
	fx.Invoke(func(c lifecycle.Controller) {}),
)
