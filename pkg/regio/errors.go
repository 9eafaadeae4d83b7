package regio

import (
	"errors"
	"fmt"

	"github.com/mdrive-go/mdrive-go/pkg/register"
)

// ErrShortRead is returned when the transport returns fewer values than
// requested.
var ErrShortRead = errors.New("short read")

// IOError reports a failed register operation.
type IOError struct {
	// Op is the typed operation: read-flag, read8, write8, read32,
	// write32 or write-trigger.
	Op string

	Address register.Address

	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Address, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
