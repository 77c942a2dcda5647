package entity

import "encoding/json"

// Methods handled by lsmux in addition to the standard LSP lifecycle.
const (
	MethodEnable         = "lsmux/enable"
	MethodDisable        = "lsmux/disable"
	MethodRootModules    = "lsmux/rootModules"
	MethodRefreshStatus  = "lsmux/refreshStatus"
	MethodExecuteCommand = "lsmux/executeCommand"
	MethodSessions       = "lsmux/sessions"

	// MethodStatus is the notification sent to the editor whenever the status indicator changes.
	MethodStatus = "lsmux/status"
)

// RootModulesCommand is the server command that reports discovered root modules.
const RootModulesCommand = "rootmodules"

// DocumentParams identifies the document a request applies to.
type DocumentParams struct {
	URI string `json:"uri"`
}

// ExecuteCommandParams asks lsmux to run a server command on the session owning URI.
type ExecuteCommandParams struct {
	URI       string   `json:"uri"`
	Command   string   `json:"command"`
	Arguments []string `json:"arguments,omitempty"`
}

// ExecuteCommandResult wraps the raw server response.
type ExecuteCommandResult struct {
	CommandPrefix CommandPrefix   `json:"commandPrefix"`
	Result        json.RawMessage `json:"result,omitempty"`
}
