package ideclient

//go:generate mockgen -destination=ideclientmock/ide_client_mock.go -package=ideclientmock . Gateway

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber/lsmux/src/lsmux/entity"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const _errSendToClient = "sending notification to editor %s: %w"

// Gateway is used to send outbound notifications to connected editors.
// The folder set is shared by every connected editor, so notifications are sent to all of them.
type Gateway interface {
	// RegisterClient registers a new client with the gateway. Should be called each time a new editor connection is initialized.
	RegisterClient(ctx context.Context, id uuid.UUID, conn jsonrpc2.Conn) error
	// DeregisterClient removes a client from the gateway. Should be called each time an editor connection is closed.
	DeregisterClient(ctx context.Context, id uuid.UUID) error

	// ShowMessage surfaces a message to the user.
	ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error
	// LogMessage writes a message to the editor's output channel.
	LogMessage(ctx context.Context, params *protocol.LogMessageParams) error
	// PublishStatus updates the editor's status indicator.
	PublishStatus(ctx context.Context, status *entity.StatusUpdate) error
}

type client struct {
	protocol protocol.Client
	conn     jsonrpc2.Conn
}

type gateway struct {
	clients   map[uuid.UUID]client
	clientsMu sync.Mutex
	logger    *zap.Logger
}

// New returns a Gateway for sending editor notifications.
func New(logger *zap.Logger) Gateway {
	return &gateway{
		clients: make(map[uuid.UUID]client),
		logger:  logger,
	}
}

func (g *gateway) RegisterClient(ctx context.Context, id uuid.UUID, conn jsonrpc2.Conn) error {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	g.clients[id] = client{
		protocol: protocol.ClientDispatcher(conn, g.logger),
		conn:     conn,
	}
	return nil
}

func (g *gateway) DeregisterClient(ctx context.Context, id uuid.UUID) error {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	delete(g.clients, id)
	return nil
}

func (g *gateway) ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error {
	return g.broadcast(func(c client) error {
		return c.protocol.ShowMessage(ctx, params)
	})
}

func (g *gateway) LogMessage(ctx context.Context, params *protocol.LogMessageParams) error {
	return g.broadcast(func(c client) error {
		return c.protocol.LogMessage(ctx, params)
	})
}

func (g *gateway) PublishStatus(ctx context.Context, status *entity.StatusUpdate) error {
	return g.broadcast(func(c client) error {
		return c.conn.Notify(ctx, entity.MethodStatus, status)
	})
}

// broadcast sends to every registered client. A failure for one client does not prevent delivery to the others.
func (g *gateway) broadcast(send func(c client) error) error {
	g.clientsMu.Lock()
	ids := make([]uuid.UUID, 0, len(g.clients))
	for id := range g.clients {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	targets := make([]client, 0, len(ids))
	for _, id := range ids {
		targets = append(targets, g.clients[id])
	}
	g.clientsMu.Unlock()

	if len(targets) == 0 {
		g.logger.Debug("no editor connected, dropping notification")
		return nil
	}

	var errs error
	for i, c := range targets {
		if err := send(c); err != nil {
			errs = multierr.Append(errs, fmt.Errorf(_errSendToClient, ids[i], err))
		}
	}
	return errs
}
