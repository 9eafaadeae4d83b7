//go:build tools

package tools

// Pins the mock generator version. Run `go run github.com/vektra/mockery/v2`
// from the module root to regenerate pkg/transport/mocks (.mockery.yaml).
import (
	_ "github.com/vektra/mockery/v2"
)
