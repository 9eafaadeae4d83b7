package session

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mdrive-go/mdrive-go/pkg/log"
	"github.com/mdrive-go/mdrive-go/pkg/transport"
)

// State represents the session state.
type State uint8

const (
	// StateDisconnected indicates no open transport.
	StateDisconnected State = iota

	// StateConnected indicates an open transport.
	StateConnected
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateConnected:
		return "CONNECTED"
	default:
		return "UNKNOWN"
	}
}

// Config configures a Session.
type Config struct {
	// Transport identifies the amplifier.
	Transport transport.Config

	// Dialer opens the transport.
	Dialer transport.Dialer

	// Logger receives operational messages. Nil means slog.Default().
	Logger *slog.Logger

	// Trace receives state change events. Nil disables tracing.
	Trace log.Logger
}

// Session holds at most one open transport.Conn.
type Session struct {
	id     string
	cfg    transport.Config
	dialer transport.Dialer
	logger *slog.Logger
	trace  log.Logger

	state State
	conn  transport.Conn
}

// New creates a disconnected session. Transport defaults are applied.
func New(cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	trace := log.OrNoop(cfg.Trace)
	id := uuid.NewString()
	return &Session{
		id:     id,
		cfg:    cfg.Transport.WithDefaults(),
		dialer: cfg.Dialer,
		logger: logger.With("session_id", id),
		trace:  trace,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Config returns the effective transport configuration.
func (s *Session) Config() transport.Config {
	return s.cfg
}

// RemoteAddr returns host:port of the amplifier.
func (s *Session) RemoteAddr() string {
	return net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Conn returns the open transport, or ErrNotConnected.
func (s *Session) Conn() (transport.Conn, error) {
	if s.state != StateConnected || s.conn == nil {
		return nil, ErrNotConnected
	}
	return s.conn, nil
}

// Connect opens the transport.
func (s *Session) Connect(ctx context.Context) error {
	if s.state == StateConnected {
		return ErrAlreadyConnected
	}
	if s.cfg.Host == "" {
		return &ConnectionError{Op: "connect", Addr: s.RemoteAddr(), Err: ErrNoHost}
	}

	s.logger.Debug("connecting", "remote", s.RemoteAddr(), "unit_id", s.cfg.UnitID)
	conn, err := s.dialer.Dial(ctx, s.cfg)
	if err != nil {
		s.logger.Error("connect failed", "remote", s.RemoteAddr(), "error", err)
		return &ConnectionError{Op: "connect", Addr: s.RemoteAddr(), Err: err}
	}

	s.conn = conn
	s.setState(StateConnected, "connect")
	s.logger.Info("connected", "remote", s.RemoteAddr(), "unit_id", s.cfg.UnitID)
	return nil
}

// Close releases the transport. Closing a disconnected session is a no-op.
// The session is disconnected afterwards even if the transport reports an
// error.
func (s *Session) Close() error {
	if s.state != StateConnected {
		return nil
	}

	conn := s.conn
	s.conn = nil
	s.setState(StateDisconnected, "close")

	if err := conn.Close(); err != nil {
		s.logger.Warn("close failed", "remote", s.RemoteAddr(), "error", err)
		return &ConnectionError{Op: "close", Addr: s.RemoteAddr(), Err: err}
	}
	s.logger.Info("disconnected", "remote", s.RemoteAddr())
	return nil
}

func (s *Session) setState(next State, reason string) {
	prev := s.state
	s.state = next
	s.trace.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  s.id,
		Direction:  log.DirectionOut,
		Category:   log.CategoryState,
		RemoteAddr: s.RemoteAddr(),
		UnitID:     s.cfg.UnitID,
		StateChange: &log.StateChangeEvent{
			OldState: prev.String(),
			NewState: next.String(),
			Reason:   reason,
		},
	})
}
