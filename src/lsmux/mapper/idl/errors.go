package idl

import (
	stderr "errors"

	"github.com/uber/lsmux/src/lsmux/internal/errors"
	"go.lsp.dev/jsonrpc2"
)

// Error codes in the implementation defined server error range.
const (
	CodeNoSession          jsonrpc2.Code = -32001
	CodeRootModulesTimeout jsonrpc2.Code = -32002
	CodeConfiguration      jsonrpc2.Code = -32003
)

// ToJSONRPCError translates service domain errors into JSON-RPC errors returned to the editor.
func ToJSONRPCError(e error) error {
	if e == nil {
		return nil
	}

	switch {
	case errors.IsBadRequest(e):
		return jsonrpc2.NewError(jsonrpc2.InvalidParams, e.Error())
	case errors.IsNoSession(e):
		return jsonrpc2.NewError(CodeNoSession, e.Error())
	case errors.IsTimeout(e):
		return jsonrpc2.NewError(CodeRootModulesTimeout, e.Error())
	case errors.IsConfiguration(e):
		return jsonrpc2.NewError(CodeConfiguration, e.Error())
	}

	// Wrapped protocol errors keep their code and carry the full message.
	var rpcErr *jsonrpc2.Error
	if stderr.As(e, &rpcErr) {
		return jsonrpc2.NewError(rpcErr.Code, e.Error())
	}

	return e
}
