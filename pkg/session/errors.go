package session

import (
	"errors"
	"fmt"
)

// Session errors.
var (
	ErrNotConnected     = errors.New("not connected")
	ErrAlreadyConnected = errors.New("already connected")
	ErrNoHost           = errors.New("no host configured")
)

// ConnectionError reports a failure to open or close the transport.
type ConnectionError struct {
	// Op is "connect" or "close".
	Op string

	// Addr is the amplifier address (host:port).
	Addr string

	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
