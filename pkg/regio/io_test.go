package regio

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mdrive-go/mdrive-go/pkg/log"
	"github.com/mdrive-go/mdrive-go/pkg/register"
	"github.com/mdrive-go/mdrive-go/pkg/session"
	"github.com/mdrive-go/mdrive-go/pkg/transport"
	"github.com/mdrive-go/mdrive-go/pkg/transport/mocks"
)

// stubHandle is a connected or disconnected session stand-in.
type stubHandle struct {
	conn transport.Conn
}

func (h *stubHandle) Conn() (transport.Conn, error) {
	if h.conn == nil {
		return nil, session.ErrNotConnected
	}
	return h.conn, nil
}

func (h *stubHandle) ID() string { return "sess-test" }

type recordingTrace struct {
	events []log.Event
}

func (r *recordingTrace) Log(e log.Event) { r.events = append(r.events, e) }

func newConnected(t *testing.T) (*IO, *mocks.MockConn, *bytes.Buffer, *recordingTrace) {
	t.Helper()
	conn := mocks.NewMockConn(t)
	var buf bytes.Buffer
	trace := &recordingTrace{}
	x := New(&stubHandle{conn: conn}, Config{
		Logger: slog.New(slog.NewTextHandler(&buf, nil)),
		Trace:  trace,
		Map:    register.DefaultMap(),
	})
	return x, conn, &buf, trace
}

func TestRead32(t *testing.T) {
	x, conn, _, trace := newConnected(t)
	conn.EXPECT().ReadHoldingRegisters(mock.Anything, uint16(0x57), uint16(2)).
		Return([]uint16{0xFFFF, 0xFF9C}, nil).Once()

	v, err := x.Read32(context.Background(), 0x57)
	require.NoError(t, err)
	assert.Equal(t, int32(-100), v)

	require.Len(t, trace.events, 2)
	req, resp := trace.events[0], trace.events[1]
	assert.Equal(t, log.DirectionOut, req.Direction)
	assert.Equal(t, log.DirectionIn, resp.Direction)
	assert.Equal(t, "sess-test", resp.SessionID)
	assert.Equal(t, log.OpReadHoldingRegisters, resp.Register.Op)
	assert.Equal(t, "position", resp.Register.Symbol)
	assert.Equal(t, []uint16{0xFFFF, 0xFF9C}, resp.Register.Words)
	assert.NotNil(t, resp.Register.Duration)
	assert.Empty(t, resp.Register.Err)
}

func TestRead32ShortRead(t *testing.T) {
	x, conn, buf, _ := newConnected(t)
	conn.EXPECT().ReadHoldingRegisters(mock.Anything, uint16(0x57), uint16(2)).
		Return([]uint16{0x0001}, nil).Once()

	v, err := x.Read32(context.Background(), 0x57)
	assert.Zero(t, v)
	assert.ErrorIs(t, err, ErrShortRead)
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestWrite32(t *testing.T) {
	x, conn, _, trace := newConnected(t)
	conn.EXPECT().WriteRegisters(mock.Anything, uint16(0x8A), []uint16{0x0000, 0x04B0}).
		Return(nil).Once()

	require.NoError(t, x.Write32(context.Background(), 0x8A, 1200))
	require.Len(t, trace.events, 2)
	assert.Equal(t, []uint16{0x0000, 0x04B0}, trace.events[0].Register.Words)
	assert.Equal(t, "max-velocity", trace.events[0].Register.Symbol)
}

func TestWrite32Negative(t *testing.T) {
	x, conn, _, _ := newConnected(t)
	conn.EXPECT().WriteRegisters(mock.Anything, uint16(0x57), []uint16{0xFFFF, 0xFFFF}).
		Return(nil).Once()

	require.NoError(t, x.Write32(context.Background(), 0x57, -1))
}

func TestReadFlag(t *testing.T) {
	x, conn, _, _ := newConnected(t)
	conn.EXPECT().ReadDiscreteInputs(mock.Anything, uint16(0x4A), uint16(1)).Return([]byte{1}, nil).Once()
	conn.EXPECT().ReadDiscreteInputs(mock.Anything, uint16(0x4A), uint16(1)).Return([]byte{0}, nil).Once()

	on, err := x.ReadFlag(context.Background(), 0x4A)
	require.NoError(t, err)
	assert.True(t, on)

	on, err = x.ReadFlag(context.Background(), 0x4A)
	require.NoError(t, err)
	assert.False(t, on)
}

func TestRead8AndWrite8(t *testing.T) {
	x, conn, _, _ := newConnected(t)
	conn.EXPECT().ReadCoils(mock.Anything, uint16(0x48), uint16(8)).
		Return([]byte{1, 1, 1, 1, 1, 1, 1, 1}, nil).Once()
	conn.EXPECT().WriteCoils(mock.Anything, uint16(0x48), []byte{0, 0, 0, 0, 1, 0, 0, 0}).Return(nil).Once()

	v, err := x.Read8(context.Background(), 0x48)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), v)

	require.NoError(t, x.Write8(context.Background(), 0x48, 16))
}

func TestRead8ShortRead(t *testing.T) {
	x, conn, _, _ := newConnected(t)
	conn.EXPECT().ReadCoils(mock.Anything, uint16(0x48), uint16(8)).Return([]byte{1}, nil).Once()

	_, err := x.Read8(context.Background(), 0x48)
	assert.ErrorIs(t, err, ErrShortRead)
}

func TestWriteTrigger(t *testing.T) {
	x, conn, _, _ := newConnected(t)
	conn.EXPECT().WriteSingleRegister(mock.Anything, uint16(0x76), uint16(1)).Return(nil).Once()

	require.NoError(t, x.WriteTrigger(context.Background(), 0x76, 1))
}

func TestTransportErrorIsWrapped(t *testing.T) {
	x, conn, buf, trace := newConnected(t)
	timeout := errors.New("i/o timeout")
	conn.EXPECT().WriteRegisters(mock.Anything, uint16(0x89), mock.Anything).Return(timeout).Once()

	err := x.Write32(context.Background(), 0x89, 500)
	require.Error(t, err)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, OpWrite32, ioErr.Op)
	assert.Equal(t, register.Address(0x89), ioErr.Address)
	assert.ErrorIs(t, err, timeout)
	assert.Equal(t, "write32 0x0089: i/o timeout", err.Error())

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "i/o timeout")

	require.Len(t, trace.events, 2)
	assert.Equal(t, "i/o timeout", trace.events[1].Register.Err)
}

func TestDisconnectedMakesNoTransportCalls(t *testing.T) {
	var buf bytes.Buffer
	trace := &recordingTrace{}
	x := New(&stubHandle{}, Config{
		Logger: slog.New(slog.NewTextHandler(&buf, nil)),
		Trace:  trace,
	})
	ctx := context.Background()

	_, err := x.Read32(ctx, 0x57)
	assert.ErrorIs(t, err, session.ErrNotConnected)
	_, err = x.Read8(ctx, 0x48)
	assert.ErrorIs(t, err, session.ErrNotConnected)
	_, err = x.ReadFlag(ctx, 0x4A)
	assert.ErrorIs(t, err, session.ErrNotConnected)
	assert.ErrorIs(t, x.Write32(ctx, 0x8A, 1), session.ErrNotConnected)
	assert.ErrorIs(t, x.Write8(ctx, 0x48, 1), session.ErrNotConnected)
	assert.ErrorIs(t, x.WriteTrigger(ctx, 0x76, 1), session.ErrNotConnected)

	assert.Equal(t, 6, strings.Count(buf.String(), "not connected"))
	require.Len(t, trace.events, 6)
	for _, e := range trace.events {
		assert.Equal(t, log.CategoryError, e.Category)
		assert.Nil(t, e.Register)
	}
}

func TestNilConfigDefaults(t *testing.T) {
	conn := mocks.NewMockConn(t)
	conn.EXPECT().ReadHoldingRegisters(mock.Anything, uint16(0x85), uint16(2)).
		Return([]uint16{0, 42}, nil).Once()

	x := New(&stubHandle{conn: conn}, Config{})
	v, err := x.Read32(context.Background(), 0x85)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)
}
