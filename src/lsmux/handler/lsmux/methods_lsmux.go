package lsmux

import (
	"context"

	"github.com/uber/lsmux/src/lsmux/entity"
	"github.com/uber/lsmux/src/lsmux/mapper"
	"github.com/uber/lsmux/src/lsmux/mapper/idl"
	"go.lsp.dev/jsonrpc2"
)

// Enable turns sessions on for every tracked folder.
func (r *jsonRPCRouter) Enable(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.lifecycle.Enable(ctx)
	return reply(ctx, nil, idl.ToJSONRPCError(err))
}

// Disable stops every session.
func (r *jsonRPCRouter) Disable(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.lifecycle.Disable(ctx)
	return reply(ctx, nil, idl.ToJSONRPCError(err))
}

// RootModules replies with the root modules of the session owning the document, or null when no session owns it.
func (r *jsonRPCRouter) RootModules(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, idl.ToJSONRPCError(err))
	}

	s, err := r.router.Resolve(ctx, params.URI)
	if err != nil {
		return reply(ctx, nil, idl.ToJSONRPCError(err))
	}
	if s == nil {
		return reply(ctx, nil, nil)
	}

	result, err := r.rootModules.Query(ctx, s, params.URI)
	if err != nil {
		return reply(ctx, nil, idl.ToJSONRPCError(err))
	}
	return reply(ctx, result, nil)
}

// RefreshStatus recomputes and publishes the status indicator for a document.
func (r *jsonRPCRouter) RefreshStatus(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, idl.ToJSONRPCError(err))
	}

	update, err := r.status.Refresh(ctx, params.URI)
	if err != nil {
		return reply(ctx, nil, idl.ToJSONRPCError(err))
	}
	return reply(ctx, update, nil)
}

// ExecuteCommand runs a server command on the session owning the document.
func (r *jsonRPCRouter) ExecuteCommand(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToExecuteCommandParams(req)
	if err != nil {
		return reply(ctx, nil, idl.ToJSONRPCError(err))
	}

	result, err := r.router.ExecuteCommand(ctx, params.URI, params.Command, params.Arguments)
	if err != nil {
		return reply(ctx, nil, idl.ToJSONRPCError(err))
	}
	return reply(ctx, result, nil)
}

// Sessions lists the live sessions.
func (r *jsonRPCRouter) Sessions(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	sessions, err := r.sessions.List(ctx)
	if err != nil {
		return reply(ctx, nil, err)
	}

	infos := make([]entity.SessionInfo, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, mapper.SessionToInfo(s))
	}
	return reply(ctx, infos, nil)
}
