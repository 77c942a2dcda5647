// Package binpath resolves the language server executable once per process.
package binpath

//go:generate mockgen -destination=binpathmock/binpath_mock.go -package=binpathmock . Resolver

import (
	"context"
	"sync"

	"github.com/uber-go/tally"
	"github.com/uber/lsmux/src/lsmux/internal/installer"
	"github.com/uber/lsmux/src/lsmux/internal/settings"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const _resolveKey = "resolve"

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Resolver returns the path to the language server executable.
type Resolver interface {
	Resolve(ctx context.Context) (string, error)
}

// Params are inbound parameters to initialize the Resolver.
type Params struct {
	fx.In

	Settings  settings.Provider
	Installer installer.Installer
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

type resolver struct {
	settings  settings.Provider
	installer installer.Installer
	logger    *zap.SugaredLogger
	stats     tally.Scope

	group singleflight.Group
	mu    sync.RWMutex
	path  string
}

// New creates a Resolver.
func New(p Params) Resolver {
	return &resolver{
		settings:  p.Settings,
		installer: p.Installer,
		logger:    p.Logger.Named("binpath"),
		stats:     p.Stats.SubScope("binpath"),
	}
}

// Resolve returns the configured override path when set. Otherwise the first call installs the
// binary and every later call gets the same path. Concurrent callers share one install, and a
// failed install is retried by the next call.
func (r *resolver) Resolve(ctx context.Context) (string, error) {
	cfg, err := r.settings.LanguageServer()
	if err != nil {
		return "", err
	}
	if cfg.PathToBinary != "" {
		return cfg.PathToBinary, nil
	}

	if path := r.cached(); path != "" {
		return path, nil
	}

	// The install is shared, so it must not be cancelled by whichever caller started it.
	installCtx := context.WithoutCancel(ctx)
	result := r.group.DoChan(_resolveKey, func() (interface{}, error) {
		if path := r.cached(); path != "" {
			return path, nil
		}

		path, err := r.installer.Install(installCtx, cfg.InstallDir)
		if err != nil {
			r.stats.Counter("install_failures").Inc(1)
			r.logger.Errorw("failed to install language server", zap.String("dir", cfg.InstallDir), zap.Error(err))
			return "", err
		}
		r.stats.Counter("installs").Inc(1)

		if err := r.installer.CleanupZips(cfg.InstallDir); err != nil {
			r.logger.Warnw("failed to clean up archives", zap.String("dir", cfg.InstallDir), zap.Error(err))
		}

		r.mu.Lock()
		r.path = path
		r.mu.Unlock()
		return path, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-result:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (r *resolver) cached() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.path
}
