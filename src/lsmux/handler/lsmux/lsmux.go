// Package lsmux implements the JSON-RPC handlers for editor connections.
package lsmux

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/uber/lsmux/src/lsmux/controller/lifecycle"
	"github.com/uber/lsmux/src/lsmux/controller/rootmodules"
	"github.com/uber/lsmux/src/lsmux/controller/router"
	"github.com/uber/lsmux/src/lsmux/controller/status"
	ideclient "github.com/uber/lsmux/src/lsmux/gateway/ide-client"
	"github.com/uber/lsmux/src/lsmux/internal/jsonrpcfx"
	"github.com/uber/lsmux/src/lsmux/repository/session"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Handler accepts editor connections from the JSON-RPC inbound.
type Handler = jsonrpcfx.ConnectionManager

// Params are inbound parameters to initialize a new Handler.
type Params struct {
	fx.In

	JSONRPC     jsonrpcfx.JSONRPCModule
	Lifecycle   lifecycle.Controller
	Router      router.Controller
	RootModules rootmodules.Controller
	Status      status.Controller
	Sessions    session.Repository
	IdeGateway  ideclient.Gateway
	Shutdowner  fx.Shutdowner
	Logger      *zap.SugaredLogger
	Stats       tally.Scope
}

// New constructs the Handler and registers it with the JSON-RPC inbound.
func New(p Params) (Handler, error) {
	m := &connectionManager{
		controllers: controllers{
			lifecycle:   p.Lifecycle,
			router:      p.Router,
			rootModules: p.RootModules,
			status:      p.Status,
			sessions:    p.Sessions,
			shutdowner:  p.Shutdowner,
		},
		ideGateway: p.IdeGateway,
		logger:     p.Logger.Named("handler"),
		stats:      p.Stats.SubScope("json_rpc"),
		newUUID:    uuid.NewV4,
	}
	if err := p.JSONRPC.RegisterConnectionManager(m); err != nil {
		return nil, err
	}
	return m, nil
}

// controllers are shared by every connection's router.
type controllers struct {
	lifecycle   lifecycle.Controller
	router      router.Controller
	rootModules rootmodules.Controller
	status      status.Controller
	sessions    session.Repository
	shutdowner  fx.Shutdowner
}

type connectionManager struct {
	controllers
	ideGateway ideclient.Gateway
	logger     *zap.SugaredLogger
	stats      tally.Scope
	newUUID    func() (uuid.UUID, error)
}

// NewConnection registers the editor for notifications and returns a router for its requests.
func (c *connectionManager) NewConnection(ctx context.Context, conn jsonrpc2.Conn) (jsonrpcfx.Router, error) {
	id, err := c.newUUID()
	if err != nil {
		return nil, fmt.Errorf("generating connection id: %w", err)
	}
	if err := c.ideGateway.RegisterClient(ctx, id, conn); err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}
	c.stats.Counter("connections").Inc(1)

	return &jsonRPCRouter{
		controllers: c.controllers,
		uuid:        id,
		logger:      c.logger.With("connection", id.String()),
		stats:       c.stats,
	}, nil
}

// RemoveConnection stops notifications to a closed editor connection. Sessions are shared and keep running.
func (c *connectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	if err := c.ideGateway.DeregisterClient(ctx, id); err != nil {
		c.logger.Warnw("unable to deregister editor", "connection", id.String(), "error", err)
	}
}
