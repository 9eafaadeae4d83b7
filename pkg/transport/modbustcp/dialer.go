package modbustcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/grid-x/modbus"

	"github.com/mdrive-go/mdrive-go/pkg/transport"
)

const (
	coilOn  uint16 = 0xFF00
	coilOff uint16 = 0x0000
)

// ErrEmptyPayload is returned for writes with no values.
var ErrEmptyPayload = errors.New("modbustcp: no values to write")

// Dialer opens Modbus/TCP connections.
type Dialer struct{}

// NewDialer returns a Dialer.
func NewDialer() *Dialer {
	return &Dialer{}
}

// Dial connects to cfg.Host:cfg.Port. On failure the handler is closed
// before returning.
func (d *Dialer) Dial(ctx context.Context, cfg transport.Config) (transport.Conn, error) {
	cfg = cfg.WithDefaults()
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))

	handler := modbus.NewTCPClientHandler(addr)
	handler.SlaveID = cfg.UnitID
	if cfg.Timeout > 0 {
		handler.Timeout = cfg.Timeout
	}

	if err := handler.Connect(ctx); err != nil {
		_ = handler.Close()
		return nil, fmt.Errorf("connect %s: %w", addr, err)
	}

	return newConn(modbus.NewClient(handler), handler), nil
}

var _ transport.Dialer = (*Dialer)(nil)

// conn adapts a modbus.Client to transport.Conn.
type conn struct {
	client modbus.Client
	closer io.Closer
}

func newConn(client modbus.Client, closer io.Closer) *conn {
	return &conn{client: client, closer: closer}
}

func (c *conn) ReadCoils(ctx context.Context, address, quantity uint16) ([]byte, error) {
	b, err := c.client.ReadCoils(ctx, address, quantity)
	if err != nil {
		return nil, err
	}
	return unpackBits(b, quantity)
}

func (c *conn) ReadDiscreteInputs(ctx context.Context, address, quantity uint16) ([]byte, error) {
	b, err := c.client.ReadDiscreteInputs(ctx, address, quantity)
	if err != nil {
		return nil, err
	}
	return unpackBits(b, quantity)
}

func (c *conn) ReadHoldingRegisters(ctx context.Context, address, quantity uint16) ([]uint16, error) {
	b, err := c.client.ReadHoldingRegisters(ctx, address, quantity)
	if err != nil {
		return nil, err
	}
	return bytesToWords(b, quantity)
}

// WriteCoils uses WriteSingleCoil for one value and WriteMultipleCoils
// otherwise.
func (c *conn) WriteCoils(ctx context.Context, address uint16, values []byte) error {
	switch len(values) {
	case 0:
		return ErrEmptyPayload
	case 1:
		v := coilOff
		if values[0] != 0 {
			v = coilOn
		}
		_, err := c.client.WriteSingleCoil(ctx, address, v)
		return err
	default:
		_, err := c.client.WriteMultipleCoils(ctx, address, uint16(len(values)), packBits(values))
		return err
	}
}

func (c *conn) WriteRegisters(ctx context.Context, address uint16, values []uint16) error {
	if len(values) == 0 {
		return ErrEmptyPayload
	}
	_, err := c.client.WriteMultipleRegisters(ctx, address, uint16(len(values)), wordsToBytes(values))
	return err
}

func (c *conn) WriteSingleRegister(ctx context.Context, address, value uint16) error {
	_, err := c.client.WriteSingleRegister(ctx, address, value)
	return err
}

func (c *conn) Close() error {
	return c.closer.Close()
}

var _ transport.Conn = (*conn)(nil)
