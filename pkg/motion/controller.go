package motion

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mdrive-go/mdrive-go/pkg/log"
	"github.com/mdrive-go/mdrive-go/pkg/profile"
	"github.com/mdrive-go/mdrive-go/pkg/register"
	"github.com/mdrive-go/mdrive-go/pkg/regio"
	"github.com/mdrive-go/mdrive-go/pkg/session"
	"github.com/mdrive-go/mdrive-go/pkg/transport"
	"github.com/mdrive-go/mdrive-go/pkg/transport/modbustcp"
)

// SaveTrigger is the value written to the save-settings register.
const SaveTrigger uint16 = 1

// DefaultPollInterval is used by WaitIdle when no interval is given.
const DefaultPollInterval = 100 * time.Millisecond

// Configuration errors.
var (
	ErrNoHost = errors.New("motion: host is required")
	ErrNoMap  = errors.New("motion: register map is required")
)

// Config configures a Controller.
type Config struct {
	// Host is the amplifier's address.
	Host string

	// Port defaults to transport.DefaultPort.
	Port int

	// UnitID defaults to transport.DefaultUnitID.
	UnitID uint8

	// Timeout bounds each transport request. Zero keeps the transport
	// default.
	Timeout time.Duration

	// Map binds register symbols. Required unless UseDefaults is set.
	Map *register.Map

	// UseDefaults selects register.DefaultMap when Map is nil.
	UseDefaults bool

	// Dialer opens the transport. Defaults to Modbus/TCP.
	Dialer transport.Dialer

	// Logger receives operational messages. Nil means slog.Default().
	Logger *slog.Logger

	// Trace receives register transaction events. Nil disables tracing.
	Trace log.Logger
}

// Controller drives one amplifier.
type Controller struct {
	regs    *register.Map
	session *session.Session
	io      *regio.IO
	logger  *slog.Logger
}

// New creates a disconnected Controller.
func New(cfg Config) (*Controller, error) {
	if cfg.Host == "" {
		return nil, ErrNoHost
	}
	regs := cfg.Map
	if regs == nil {
		if !cfg.UseDefaults {
			return nil, ErrNoMap
		}
		regs = register.DefaultMap()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	dialer := cfg.Dialer
	if dialer == nil {
		dialer = modbustcp.NewDialer()
	}

	sess := session.New(session.Config{
		Transport: transport.Config{
			Host:    cfg.Host,
			Port:    cfg.Port,
			UnitID:  cfg.UnitID,
			Timeout: cfg.Timeout,
		},
		Dialer: dialer,
		Logger: logger,
		Trace:  cfg.Trace,
	})

	return &Controller{
		regs:    regs,
		session: sess,
		io: regio.New(sess, regio.Config{
			Logger: logger,
			Trace:  cfg.Trace,
			Map:    regs,
		}),
		logger: logger.With("session_id", sess.ID()),
	}, nil
}

// NewFromProfile loads the profile at path and creates a Controller from
// it. The profile must bind every register; any profile error is returned
// and no Controller is built.
func NewFromProfile(path string, cfg Config) (*Controller, error) {
	loader := profile.Loader{Logger: cfg.Logger, Strict: true}
	regs, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.Map = regs
	return New(cfg)
}

// Connect opens the session.
func (c *Controller) Connect(ctx context.Context) error {
	return c.session.Connect(ctx)
}

// Close releases the session. It is safe to call more than once.
func (c *Controller) Close() error {
	return c.session.Close()
}

// State returns the session state.
func (c *Controller) State() session.State {
	return c.session.State()
}

// SessionID returns the session identifier used in logs and traces.
func (c *Controller) SessionID() string {
	return c.session.ID()
}

// RemoteAddr returns host:port of the amplifier.
func (c *Controller) RemoteAddr() string {
	return c.session.RemoteAddr()
}

// Map returns the register map in use.
func (c *Controller) Map() *register.Map {
	return c.regs
}

func (c *Controller) resolve(sym register.Symbol) (register.Address, error) {
	addr, err := c.regs.Resolve(sym)
	if err != nil {
		c.logger.Error("register not resolved", "symbol", sym.String(), "error", err)
	}
	return addr, err
}

func (c *Controller) read32(ctx context.Context, sym register.Symbol) (int32, error) {
	addr, err := c.resolve(sym)
	if err != nil {
		return 0, err
	}
	return c.io.Read32(ctx, addr)
}

func (c *Controller) write32(ctx context.Context, sym register.Symbol, v int32) error {
	addr, err := c.resolve(sym)
	if err != nil {
		return err
	}
	return c.io.Write32(ctx, addr, v)
}
