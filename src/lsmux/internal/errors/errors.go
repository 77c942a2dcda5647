package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// NoURIOnWireError reports that the request is missing a document URI.
	NoURIOnWireError = New("document uri is required")
	// NoCommandOnWireError reports that the request is missing a command name.
	NoCommandOnWireError = New("command is required")
)

// IsBadRequest reports whether the error is a bad request from the caller.
func IsBadRequest(e error) bool {
	return stderr.Is(e, NoURIOnWireError) || stderr.Is(e, NoCommandOnWireError)
}
