package lsmux

import (
	"context"

	"github.com/uber/lsmux/src/lsmux/mapper"
	"github.com/uber/lsmux/src/lsmux/mapper/idl"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

const _serverName = "lsmux"

// Initialize tracks the editor's workspace folders and starts their sessions.
// Folders that fail to start are reported to the user, so the editor still gets a result.
func (r *jsonRPCRouter) Initialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToInitializeParams(req)
	if err != nil {
		return reply(ctx, nil, idl.ToJSONRPCError(err))
	}

	if err := r.lifecycle.Initialize(ctx, mapper.InitializeParamsToFolders(params)); err != nil {
		r.logger.Warnw("some sessions failed to start", "error", err)
	}

	return reply(ctx, &protocol.InitializeResult{
		ServerInfo: &protocol.ServerInfo{Name: _serverName},
	}, nil)
}

// Initialized is sent after the client received the result of the initialize request.
func (r *jsonRPCRouter) Initialized(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	return reply(ctx, nil, nil)
}

// Shutdown is acknowledged without stopping anything. Sessions are shared with other editor connections.
func (r *jsonRPCRouter) Shutdown(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	return reply(ctx, nil, nil)
}

// Exit stops every session and shuts the daemon down.
func (r *jsonRPCRouter) Exit(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	// Reply first to ensure that a reply is sent before the shutdown begins.
	if err := reply(ctx, nil, nil); err != nil {
		r.logger.Warnw("unable to acknowledge exit", "error", err)
	}

	if err := r.lifecycle.Shutdown(ctx); err != nil {
		r.logger.Warnw("sessions did not stop cleanly", "error", err)
	}
	return r.shutdowner.Shutdown()
}
