// Package rootmodules polls a session's server for the root modules it has discovered.
package rootmodules

//go:generate mockgen -destination=rootmodulesmock/rootmodules_mock.go -package=rootmodulesmock . Controller

import (
	"context"
	stderr "errors"
	"fmt"
	"time"

	"github.com/uber-go/tally"
	"github.com/uber/lsmux/src/lsmux/entity"
	"github.com/uber/lsmux/src/lsmux/internal/clock"
	"github.com/uber/lsmux/src/lsmux/internal/errors"
	"github.com/uber/lsmux/src/lsmux/internal/retry"
	"github.com/uber/lsmux/src/lsmux/mapper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_attempts  = "attempts"
	_timeouts  = "timeouts"
	_successes = "successes"
	_latency   = "latency"
)

// _policy allows a single retry 100ms after the first request.
// Servers that are slow to start can exhaust it before discovery finishes.
var _policy = retry.Policy{
	Attempts: 2,
	Delay:    100 * time.Millisecond,
}

// Controller retrieves root modules from a session.
type Controller interface {
	// Query asks the session's server for the root modules of documentURI, waiting briefly while the server is still loading.
	Query(ctx context.Context, s *entity.Session, documentURI string) (*entity.RootModuleResult, error)
}

// Params are inbound parameters to initialize a new Controller.
type Params struct {
	fx.In

	Clock  clock.Clock
	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

type controller struct {
	clock  clock.Clock
	logger *zap.SugaredLogger
	stats  tally.Scope
}

// New creates a new Controller.
func New(p Params) Controller {
	return &controller{
		clock:  p.Clock,
		logger: p.Logger.Named("rootmodules"),
		stats:  p.Stats.SubScope("rootmodules"),
	}
}

func (c *controller) Query(ctx context.Context, s *entity.Session, documentURI string) (*entity.RootModuleResult, error) {
	if s == nil {
		return nil, &errors.NoSessionError{URI: documentURI}
	}
	sw := c.stats.Timer(_latency).Start()
	defer sw.Stop()

	command := mapper.PrefixedCommand(s.CommandPrefix, entity.RootModulesCommand)
	args := []string{mapper.URIArgument(documentURI)}
	logger := c.logger.With("folder", s.Key(), "uri", documentURI)

	var resp entity.RootModulesResponse
	attempts, err := retry.Do(ctx, c.clock, _policy, func(ctx context.Context, attempt int) (bool, error) {
		c.stats.Counter(_attempts).Inc(1)
		resp = entity.RootModulesResponse{}
		if err := s.Conn.SendRequest(ctx, command, args, &resp); err != nil {
			return false, fmt.Errorf("requesting %s: %w", command, err)
		}
		if !resp.DoneLoading {
			logger.Debugw("server still loading root modules", "attempt", attempt)
		}
		return resp.DoneLoading, nil
	})
	if stderr.Is(err, retry.ErrExhausted) {
		c.stats.Counter(_timeouts).Inc(1)
		logger.Warnw("root modules not loaded in time", "attempts", attempts)
		return nil, &errors.RootModulesTimeoutError{URI: documentURI, Attempts: attempts}
	} else if err != nil {
		return nil, err
	}

	c.stats.Counter(_successes).Inc(1)
	modules := resp.RootModules
	if modules == nil {
		modules = []entity.RootModule{}
	}
	return &entity.RootModuleResult{
		RootModules: modules,
		NeedsInit:   len(modules) == 0,
	}, nil
}
