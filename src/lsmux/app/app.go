package app

import (
	"context"
	"time"

	"github.com/uber-go/tally"
	"github.com/uber/lsmux/src/lsmux/gateway"
	"github.com/uber/lsmux/src/lsmux/handler"
	"github.com/uber/lsmux/src/lsmux/internal/binpath"
	"github.com/uber/lsmux/src/lsmux/internal/clock"
	"github.com/uber/lsmux/src/lsmux/internal/core"
	"github.com/uber/lsmux/src/lsmux/internal/executor"
	"github.com/uber/lsmux/src/lsmux/internal/fs"
	"github.com/uber/lsmux/src/lsmux/internal/idgen"
	"github.com/uber/lsmux/src/lsmux/internal/installer"
	"github.com/uber/lsmux/src/lsmux/internal/jsonrpcfx"
	"github.com/uber/lsmux/src/lsmux/internal/serverinfofile"
	"github.com/uber/lsmux/src/lsmux/internal/settings"
	"go.uber.org/fx"
)

// Module defines the lsmux application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	executor.Module,
	serverinfofile.Module,
	settings.Module,
	installer.Module,
	binpath.Module,
	idgen.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(clock.New),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "lsmux",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        EnvLocal,
			RuntimeEnvironment: EnvLocal,
		}
	}),
)
