package regio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mdrive-go/mdrive-go/pkg/log"
	"github.com/mdrive-go/mdrive-go/pkg/register"
	"github.com/mdrive-go/mdrive-go/pkg/session"
	"github.com/mdrive-go/mdrive-go/pkg/transport"
)

// Operation names used in IOError and log output.
const (
	OpReadFlag     = "read-flag"
	OpRead8        = "read8"
	OpWrite8       = "write8"
	OpRead32       = "read32"
	OpWrite32      = "write32"
	OpWriteTrigger = "write-trigger"
)

// Handle gives access to an open transport. *session.Session implements it.
type Handle interface {
	Conn() (transport.Conn, error)
	ID() string
}

var _ Handle = (*session.Session)(nil)

// Config configures an IO.
type Config struct {
	// Logger receives failure reports. Nil means slog.Default().
	Logger *slog.Logger

	// Trace receives one request and one response event per transport
	// call. Nil disables tracing.
	Trace log.Logger

	// Map, if set, names registers in trace events.
	Map *register.Map
}

// IO performs typed register operations over a Handle.
type IO struct {
	handle Handle
	logger *slog.Logger
	trace  log.Logger
	names  *register.Map
}

// New creates an IO bound to h.
func New(h Handle, cfg Config) *IO {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	trace := log.OrNoop(cfg.Trace)
	return &IO{handle: h, logger: logger, trace: trace, names: cfg.Map}
}

// ReadFlag reads one discrete input.
func (x *IO) ReadFlag(ctx context.Context, addr register.Address) (bool, error) {
	c, err := x.conn(OpReadFlag, addr)
	if err != nil {
		return false, err
	}
	start := x.request(log.OpReadDiscreteInputs, addr, 1, nil, nil)
	bits, err := c.ReadDiscreteInputs(ctx, uint16(addr), 1)
	x.response(log.OpReadDiscreteInputs, addr, 1, nil, bits, start, err)
	if err != nil {
		return false, x.fail(OpReadFlag, addr, err)
	}
	if len(bits) < 1 {
		return false, x.fail(OpReadFlag, addr, shortRead(len(bits), 1))
	}
	return register.FlagFromBit(bits[0]), nil
}

// Read8 reads register.SmallWidth consecutive coils, least significant bit
// at addr, as a signed 8-bit value.
func (x *IO) Read8(ctx context.Context, addr register.Address) (int8, error) {
	c, err := x.conn(OpRead8, addr)
	if err != nil {
		return 0, err
	}
	start := x.request(log.OpReadCoils, addr, register.SmallWidth, nil, nil)
	bits, err := c.ReadCoils(ctx, uint16(addr), register.SmallWidth)
	x.response(log.OpReadCoils, addr, register.SmallWidth, nil, bits, start, err)
	if err != nil {
		return 0, x.fail(OpRead8, addr, err)
	}
	if len(bits) < register.SmallWidth {
		return 0, x.fail(OpRead8, addr, shortRead(len(bits), register.SmallWidth))
	}
	return register.SmallFromBits(bits), nil
}

// Write8 writes v to register.SmallWidth consecutive coils starting at addr.
func (x *IO) Write8(ctx context.Context, addr register.Address, v int8) error {
	c, err := x.conn(OpWrite8, addr)
	if err != nil {
		return err
	}
	bits := register.SmallToBits(v)
	start := x.request(log.OpWriteCoils, addr, register.SmallWidth, nil, bits)
	err = c.WriteCoils(ctx, uint16(addr), bits)
	x.response(log.OpWriteCoils, addr, register.SmallWidth, nil, nil, start, err)
	if err != nil {
		return x.fail(OpWrite8, addr, err)
	}
	return nil
}

// Read32 reads two holding registers as a signed 32-bit value.
func (x *IO) Read32(ctx context.Context, addr register.Address) (int32, error) {
	c, err := x.conn(OpRead32, addr)
	if err != nil {
		return 0, err
	}
	start := x.request(log.OpReadHoldingRegisters, addr, 2, nil, nil)
	words, err := c.ReadHoldingRegisters(ctx, uint16(addr), 2)
	x.response(log.OpReadHoldingRegisters, addr, 2, words, nil, start, err)
	if err != nil {
		return 0, x.fail(OpRead32, addr, err)
	}
	if len(words) < 2 {
		return 0, x.fail(OpRead32, addr, shortRead(len(words), 2))
	}
	return register.JoinWide(words[0], words[1]), nil
}

// Write32 writes v to two holding registers, high word first.
func (x *IO) Write32(ctx context.Context, addr register.Address, v int32) error {
	c, err := x.conn(OpWrite32, addr)
	if err != nil {
		return err
	}
	w := register.SplitWide(v)
	words := w[:]
	start := x.request(log.OpWriteRegisters, addr, 2, words, nil)
	err = c.WriteRegisters(ctx, uint16(addr), words)
	x.response(log.OpWriteRegisters, addr, 2, nil, nil, start, err)
	if err != nil {
		return x.fail(OpWrite32, addr, err)
	}
	return nil
}

// WriteTrigger writes value to a single holding register.
func (x *IO) WriteTrigger(ctx context.Context, addr register.Address, value uint16) error {
	c, err := x.conn(OpWriteTrigger, addr)
	if err != nil {
		return err
	}
	start := x.request(log.OpWriteSingleRegister, addr, 1, []uint16{value}, nil)
	err = c.WriteSingleRegister(ctx, uint16(addr), value)
	x.response(log.OpWriteSingleRegister, addr, 1, nil, nil, start, err)
	if err != nil {
		return x.fail(OpWriteTrigger, addr, err)
	}
	return nil
}

func shortRead(got, want int) error {
	return fmt.Errorf("%w: got %d values, want %d", ErrShortRead, got, want)
}

// conn fetches the transport or reports the call as not connected.
func (x *IO) conn(op string, addr register.Address) (transport.Conn, error) {
	c, err := x.handle.Conn()
	if err == nil {
		return c, nil
	}
	if errors.Is(err, session.ErrNotConnected) {
		x.logger.Error("register "+op+" failed: not connected", "address", addr.String())
	} else {
		x.logger.Error("register "+op+" failed", "address", addr.String(), "error", err)
	}
	a := uint16(addr)
	x.trace.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: x.handle.ID(),
		Direction: log.DirectionOut,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Message: err.Error(),
			Context: op,
			Address: &a,
		},
	})
	return nil, &IOError{Op: op, Address: addr, Err: err}
}

func (x *IO) fail(op string, addr register.Address, err error) error {
	x.logger.Error("register "+op+" failed", "address", addr.String(), "error", err)
	return &IOError{Op: op, Address: addr, Err: err}
}

func (x *IO) symbol(addr register.Address) string {
	if sym, ok := x.names.Lookup(addr); ok {
		return sym.String()
	}
	return ""
}

func (x *IO) request(op log.Operation, addr register.Address, qty uint16, words []uint16, bits []byte) time.Time {
	now := time.Now()
	x.trace.Log(log.Event{
		Timestamp: now,
		SessionID: x.handle.ID(),
		Direction: log.DirectionOut,
		Category:  log.CategoryRegister,
		Register: &log.RegisterEvent{
			Op:       op,
			Address:  uint16(addr),
			Quantity: qty,
			Symbol:   x.symbol(addr),
			Words:    words,
			Bits:     bits,
		},
	})
	return now
}

func (x *IO) response(op log.Operation, addr register.Address, qty uint16, words []uint16, bits []byte, start time.Time, err error) {
	now := time.Now()
	d := now.Sub(start)
	ev := &log.RegisterEvent{
		Op:       op,
		Address:  uint16(addr),
		Quantity: qty,
		Symbol:   x.symbol(addr),
		Words:    words,
		Bits:     bits,
		Duration: &d,
	}
	if err != nil {
		ev.Err = err.Error()
	}
	x.trace.Log(log.Event{
		Timestamp: now,
		SessionID: x.handle.ID(),
		Direction: log.DirectionIn,
		Category:  log.CategoryRegister,
		Register:  ev,
	})
}
