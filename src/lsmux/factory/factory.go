package factory

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gofrs/uuid"
	"github.com/uber/lsmux/src/lsmux/entity"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// JSONRPCNotification is a factory for a JSON-RPC notification containing the specified method and parameters.
func JSONRPCNotification(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewNotification(method, params)
	return req
}

// Folder returns a Folder entity rooted under /home/user/<name>.
func Folder(name string) entity.Folder {
	return entity.Folder{
		Key:  entity.FolderKey(fmt.Sprintf("file:///home/user/%s", name)),
		Name: name,
	}
}

// CommandPrefix returns a random eight character command prefix.
func CommandPrefix() entity.CommandPrefix {
	return entity.CommandPrefix(fmt.Sprintf("%08x", rand.Uint32()))
}

// Session returns a Session for folder using conn.
func Session(folder entity.Folder, conn entity.Connection) *entity.Session {
	return &entity.Session{
		Folder:        folder,
		CommandPrefix: CommandPrefix(),
		Conn:          conn,
		StartedAt:     time.Now(),
	}
}
