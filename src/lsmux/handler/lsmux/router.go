package lsmux

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/uber/lsmux/src/lsmux/entity"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

type jsonRPCRouter struct {
	controllers
	uuid   uuid.UUID
	logger *zap.SugaredLogger
	stats  tally.Scope
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("requests").Inc(1)

	switch req.Method() {
	// Lifecycle related methods.
	case protocol.MethodInitialize:
		return r.Initialize(ctx, reply, req)

	case protocol.MethodInitialized:
		return r.Initialized(ctx, reply, req)

	case protocol.MethodShutdown:
		return r.Shutdown(ctx, reply, req)

	case protocol.MethodExit:
		return r.Exit(ctx, reply, req)

	// Workspace methods
	case protocol.MethodWorkspaceDidChangeWorkspaceFolders:
		return r.DidChangeWorkspaceFolders(ctx, reply, req)

	// Session manager methods
	case entity.MethodEnable:
		return r.Enable(ctx, reply, req)

	case entity.MethodDisable:
		return r.Disable(ctx, reply, req)

	case entity.MethodRootModules:
		return r.RootModules(ctx, reply, req)

	case entity.MethodRefreshStatus:
		return r.RefreshStatus(ctx, reply, req)

	case entity.MethodExecuteCommand:
		return r.ExecuteCommand(ctx, reply, req)

	case entity.MethodSessions:
		return r.Sessions(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}
