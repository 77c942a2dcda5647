// Package entity contains the domain types for the lsmux service.
package entity

//go:generate mockgen -destination=entitymock/connection_mock.go -package=entitymock . Connection

import (
	"context"
	"time"
)

// FolderKey is the normalized identity of a workspace folder (its root URI without a trailing slash).
type FolderKey string

// String implements fmt.Stringer.
func (k FolderKey) String() string {
	return string(k)
}

// CommandPrefix namespaces every server-bound command issued on a single Session.
type CommandPrefix string

// String implements fmt.Stringer.
func (p CommandPrefix) String() string {
	return string(p)
}

// Folder is a workspace folder as reported by the editor.
type Folder struct {
	Key  FolderKey `json:"key" zap:"key"`
	Name string    `json:"name" zap:"name"`
}

// Connection is a handle to a running language server bound to one folder.
type Connection interface {
	// Start spawns the server process and completes the initialize handshake.
	Start(ctx context.Context) error
	// Stop gracefully shuts the server down and waits for the process to exit.
	Stop(ctx context.Context) error
	// SendRequest executes command on the server with the given arguments and decodes the response into result.
	SendRequest(ctx context.Context, command string, args []string, result interface{}) error
}

// Session entity representing one live language-server connection scoped to one folder.
type Session struct {
	Folder        Folder        `json:"folder" zap:"folder"`
	CommandPrefix CommandPrefix `json:"commandPrefix" zap:"commandPrefix"`
	Conn          Connection    `json:"-" zap:"-"`
	StartedAt     time.Time     `json:"startedAt" zap:"startedAt"`
}

// Key returns the FolderKey that owns this session.
func (s *Session) Key() FolderKey {
	return s.Folder.Key
}

// LaunchSpec contains everything needed to build a connection for one folder.
type LaunchSpec struct {
	Folder         Folder
	CommandPrefix  CommandPrefix
	BinaryPath     string
	Args           []string
	FolderSettings FolderSettings
}

// InitializationOptions are sent to the language server as part of the initialize request.
type InitializationOptions struct {
	CommandPrefix      CommandPrefix `json:"commandPrefix"`
	RootModulePaths    []string      `json:"rootModulePaths,omitempty"`
	ExcludeModulePaths []string      `json:"excludeModulePaths,omitempty"`
}

// RootModule is a project sub-root discovered by the server.
type RootModule struct {
	URI string `json:"uri"`
}

// RootModulesResponse is the server's answer to a root modules request.
type RootModulesResponse struct {
	DoneLoading bool         `json:"doneLoading"`
	RootModules []RootModule `json:"rootModules"`
}

// RootModuleResult is the outcome of a completed root modules query.
type RootModuleResult struct {
	RootModules []RootModule `json:"rootModules"`
	// NeedsInit is true exactly when no root modules were returned.
	NeedsInit bool `json:"needsInit"`
}

// StatusUpdate is consumed by the editor's status indicator.
type StatusUpdate struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
	Color   string `json:"color"`
}

// Hidden reports whether the update clears the status indicator.
func (s StatusUpdate) Hidden() bool {
	return s.Text == ""
}

// SessionInfo describes a live session to the editor.
type SessionInfo struct {
	Folder        FolderKey     `json:"folder"`
	CommandPrefix CommandPrefix `json:"commandPrefix"`
	StartedAt     time.Time     `json:"startedAt"`
}
