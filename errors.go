package schedule

import "errors"

var (
	// ErrPayloadMissing indicates the payload file does not exist.
	ErrPayloadMissing = errors.New("payload file missing")
	// ErrPayloadSyntax indicates the payload file is not well-formed JSON.
	ErrPayloadSyntax = errors.New("payload is not valid JSON")
	// ErrPayloadRead indicates the payload file exists but could not be read.
	ErrPayloadRead = errors.New("payload file unreadable")
	// ErrUnreachable indicates no connection to the solver could be established.
	ErrUnreachable = errors.New("solver unreachable")
	// ErrSolveFailed indicates the solver answered with an error status.
	ErrSolveFailed = errors.New("solve request failed")
	// ErrResponseSyntax indicates the solver response body is not valid JSON.
	ErrResponseSyntax = errors.New("response is not valid JSON")
)
