package errors

import (
	stderr "errors"
	"fmt"
)

// ConfigurationError indicates that a folder has both rootModules and excludeRootModules set.
type ConfigurationError struct {
	Folder string
}

// Error is an implementation of the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("only one of rootModules and excludeRootModules can be set for folder %q, remove one of them and reload the folder", e.Folder)
}

// InstallationError indicates that the language server binary could not be fetched or placed.
type InstallationError struct {
	Dir string
	Err error
}

// Error is an implementation of the error interface.
func (e *InstallationError) Error() string {
	return fmt.Sprintf("installing language server into %q: %v", e.Dir, e.Err)
}

// Unwrap returns the underlying cause.
func (e *InstallationError) Unwrap() error {
	return e.Err
}

// ConnectionError indicates that starting or stopping a language server connection failed.
type ConnectionError struct {
	Folder string
	Op     string
	Err    error
}

// Error is an implementation of the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s language server for folder %q: %v", e.Op, e.Folder, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// RootModulesTimeoutError indicates that the server did not finish loading root modules within the retry budget.
type RootModulesTimeoutError struct {
	URI      string
	Attempts int
}

// Error is an implementation of the error interface.
func (e *RootModulesTimeoutError) Error() string {
	return fmt.Sprintf("unable to load root modules for %s", e.URI)
}

// FolderNotFoundError indicates that no session is registered for a folder.
type FolderNotFoundError struct {
	Folder string
}

// Error is an implementation of the error interface.
func (e *FolderNotFoundError) Error() string {
	return fmt.Sprintf("no session found for folder %q", e.Folder)
}

// NoSessionError indicates that a document is not owned by any tracked folder with a live session.
type NoSessionError struct {
	URI string
}

// Error is an implementation of the error interface.
func (e *NoSessionError) Error() string {
	return fmt.Sprintf("no session owns document %q", e.URI)
}

// IsConfiguration reports whether a ConfigurationError is part of the error chain.
func IsConfiguration(e error) bool {
	var ce *ConfigurationError
	return stderr.As(e, &ce)
}

// IsTimeout reports whether a RootModulesTimeoutError is part of the error chain.
func IsTimeout(e error) bool {
	var te *RootModulesTimeoutError
	return stderr.As(e, &te)
}

// IsNoSession reports whether a NoSessionError is part of the error chain.
func IsNoSession(e error) bool {
	var ns *NoSessionError
	return stderr.As(e, &ns)
}

// IsFolderNotFound reports whether a FolderNotFoundError is part of the error chain.
func IsFolderNotFound(e error) bool {
	var nf *FolderNotFoundError
	return stderr.As(e, &nf)
}
