package transport

import (
	"context"
	"time"
)

// Default connection parameters.
const (
	DefaultPort   = 502
	DefaultUnitID = 1
)

// Config identifies one amplifier on the network.
type Config struct {
	// Host is the amplifier's IP address or host name.
	Host string

	// Port is the TCP port (default: 502).
	Port int

	// UnitID is the Modbus unit/slave id (default: 1).
	UnitID uint8

	// Timeout bounds each request. Zero leaves the implementation default.
	Timeout time.Duration
}

// WithDefaults returns a copy of c with zero fields replaced by defaults.
func (c Config) WithDefaults() Config {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.UnitID == 0 {
		c.UnitID = DefaultUnitID
	}
	return c
}

// Dialer opens connections to amplifiers.
type Dialer interface {
	// Dial opens a connection. On error no resources are left open.
	Dial(ctx context.Context, cfg Config) (Conn, error)
}

// Conn is an open connection to one amplifier.
// A Conn is not safe for concurrent use.
type Conn interface {
	// ReadCoils reads quantity coils starting at address.
	ReadCoils(ctx context.Context, address, quantity uint16) ([]byte, error)

	// ReadDiscreteInputs reads quantity discrete inputs starting at address.
	ReadDiscreteInputs(ctx context.Context, address, quantity uint16) ([]byte, error)

	// ReadHoldingRegisters reads quantity holding registers starting at address.
	ReadHoldingRegisters(ctx context.Context, address, quantity uint16) ([]uint16, error)

	// WriteCoils writes one coil per value byte; non-zero means on.
	WriteCoils(ctx context.Context, address uint16, values []byte) error

	// WriteRegisters writes consecutive holding registers.
	WriteRegisters(ctx context.Context, address uint16, values []uint16) error

	// WriteSingleRegister writes one holding register.
	WriteSingleRegister(ctx context.Context, address, value uint16) error

	// Close releases the connection.
	Close() error
}
