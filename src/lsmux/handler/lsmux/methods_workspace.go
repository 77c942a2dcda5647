package lsmux

import (
	"context"

	"github.com/uber/lsmux/src/lsmux/mapper"
	"github.com/uber/lsmux/src/lsmux/mapper/idl"
	"go.lsp.dev/jsonrpc2"
)

// DidChangeWorkspaceFolders stops removed folders and then starts added ones.
func (r *jsonRPCRouter) DidChangeWorkspaceFolders(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDidChangeWorkspaceFoldersParams(req)
	if err != nil {
		return reply(ctx, nil, idl.ToJSONRPCError(err))
	}

	added := mapper.WorkspaceFoldersToFolders(params.Event.Added)
	removed := mapper.WorkspaceFoldersToFolders(params.Event.Removed)
	if err := r.lifecycle.DidChangeWorkspaceFolders(ctx, added, removed); err != nil {
		r.logger.Warnw("workspace folder change partially failed", "error", err)
	}
	return reply(ctx, nil, nil)
}
