package rc

import "errors"

var (
	// ErrTransport indicates a remote-control call failed at the HTTP
	// layer or the server returned a body that is not JSON.
	ErrTransport = errors.New("remote control transport failed")

	// ErrAborted indicates the caller aborted the call before it settled.
	// An aborted call never also surfaces a transport error.
	ErrAborted = errors.New("remote control call aborted")
)
