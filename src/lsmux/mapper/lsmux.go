package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/uber/lsmux/src/lsmux/entity"
	"github.com/uber/lsmux/src/lsmux/internal/errors"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// RequestToInitializeParams maps the parameters from a jsonrpc2.Request into protocol.InitializeParams.
func RequestToInitializeParams(req jsonrpc2.Request) (*protocol.InitializeParams, error) {
	params := protocol.InitializeParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToDidChangeWorkspaceFoldersParams maps the parameters from a jsonrpc2.Request into protocol.DidChangeWorkspaceFoldersParams.
func RequestToDidChangeWorkspaceFoldersParams(req jsonrpc2.Request) (*protocol.DidChangeWorkspaceFoldersParams, error) {
	params := protocol.DidChangeWorkspaceFoldersParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToDocumentParams maps the parameters from a jsonrpc2.Request into entity.DocumentParams.
func RequestToDocumentParams(req jsonrpc2.Request) (*entity.DocumentParams, error) {
	params := entity.DocumentParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	if params.URI == "" {
		return nil, errors.NoURIOnWireError
	}
	return &params, nil
}

// RequestToExecuteCommandParams maps the parameters from a jsonrpc2.Request into entity.ExecuteCommandParams.
func RequestToExecuteCommandParams(req jsonrpc2.Request) (*entity.ExecuteCommandParams, error) {
	params := entity.ExecuteCommandParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	if params.URI == "" {
		return nil, errors.NoURIOnWireError
	}
	if params.Command == "" {
		return nil, errors.NoCommandOnWireError
	}
	return &params, nil
}

// InitializeParamsToFolders extracts the workspace folders reported at initialization, falling back to the root URI.
func InitializeParamsToFolders(params *protocol.InitializeParams) []entity.Folder {
	if params == nil {
		return nil
	}
	if len(params.WorkspaceFolders) > 0 {
		return WorkspaceFoldersToFolders(params.WorkspaceFolders)
	}
	if params.RootURI != "" {
		return []entity.Folder{{Key: FolderKeyFromURI(string(params.RootURI)), Name: string(params.RootURI)}}
	}
	return nil
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%w: %w", jsonrpc2.ErrParse, err)
}
