package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lsp.dev/jsonrpc2"
)

func TestJSONRPCRequest(t *testing.T) {
	req := JSONRPCRequest("lsmux/sessions", nil)
	_, ok := req.(*jsonrpc2.Call)
	assert.True(t, ok)
	assert.Equal(t, "lsmux/sessions", req.Method())
}

func TestJSONRPCNotification(t *testing.T) {
	req := JSONRPCNotification("exit", nil)
	_, ok := req.(*jsonrpc2.Notification)
	assert.True(t, ok)
}

func TestFolder(t *testing.T) {
	f := Folder("a")
	assert.Equal(t, "file:///home/user/a", string(f.Key))
	assert.Equal(t, "a", f.Name)
}

func TestSession(t *testing.T) {
	s := Session(Folder("a"), nil)
	assert.Len(t, string(s.CommandPrefix), 8)
	assert.Equal(t, Folder("a").Key, s.Key())
}
