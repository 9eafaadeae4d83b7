// Package interactive provides the interactive command-line interface
// for mdrive-ctl.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/mdrive-go/mdrive-go/pkg/motion"
	"github.com/mdrive-go/mdrive-go/pkg/register"
	"github.com/mdrive-go/mdrive-go/pkg/session"
)

// Controller is the command surface the shell drives. *motion.Controller
// implements it.
type Controller interface {
	State() session.State
	RemoteAddr() string
	Map() *register.Map

	Snapshot(ctx context.Context) (motion.Snapshot, error)
	ReadPosition(ctx context.Context) (int32, error)
	ReadVelocity(ctx context.Context) (int32, error)
	ReadInitialVelocity(ctx context.Context) (int32, error)
	ReadMaxVelocity(ctx context.Context) (int32, error)
	ReadMicrostepResolution(ctx context.Context) (int8, error)
	ReadMoving(ctx context.Context) (bool, error)

	SetAbsolutePosition(ctx context.Context, target int32) error
	SetInitialVelocity(ctx context.Context, v int32) error
	SetMaxVelocity(ctx context.Context, v int32) error
	SetMicrostepResolution(ctx context.Context, v int8) error
	SaveSettings(ctx context.Context) error
	WaitIdle(ctx context.Context, interval time.Duration) error
}

var _ Controller = (*motion.Controller)(nil)

// Shell handles interactive mode.
type Shell struct {
	ctrl Controller
	rl   *readline.Instance
	out  io.Writer
}

// New creates a shell with a readline prompt.
func New(ctrl Controller) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "mdrive> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	sh := newShell(ctrl, rl.Stdout())
	sh.rl = rl
	return sh, nil
}

func newShell(ctrl Controller, out io.Writer) *Shell {
	return &Shell{ctrl: ctrl, out: out}
}

// Stdout returns a writer that coordinates with the prompt. Route log
// output through it.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Run reads commands until quit, EOF or ctx is done.
func (s *Shell) Run(ctx context.Context) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return
		}
		if s.Execute(ctx, line) {
			return
		}
	}
}

// Execute runs one command line and reports whether the shell should
// exit.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "status", "s":
		s.cmdStatus(ctx)
	case "move", "m":
		s.cmdMove(ctx, args)
	case "pos":
		s.show32(ctx, "Position", s.ctrl.ReadPosition)
	case "vel":
		s.show32(ctx, "Velocity", s.ctrl.ReadVelocity)
	case "ivel":
		s.getSet32(ctx, args, "Initial velocity", s.ctrl.ReadInitialVelocity, s.ctrl.SetInitialVelocity)
	case "maxvel":
		s.getSet32(ctx, args, "Max velocity", s.ctrl.ReadMaxVelocity, s.ctrl.SetMaxVelocity)
	case "microstep":
		s.cmdMicrostep(ctx, args)
	case "moving":
		moving, err := s.ctrl.ReadMoving(ctx)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return false
		}
		fmt.Fprintf(s.out, "Moving: %t\n", moving)
	case "save":
		if err := s.ctrl.SaveSettings(ctx); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return false
		}
		fmt.Fprintln(s.out, "Settings saved")
	case "map":
		s.cmdMap()
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return true
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprint(s.out, `Commands:
  status              Show all parameters
  move <pos> [wait]   Move to absolute position, optionally wait for idle
  pos                 Show current position
  vel                 Show current velocity
  ivel [v]            Show or set initial velocity
  maxvel [v]          Show or set max velocity
  microstep [v]       Show or set microstep resolution
  moving              Show moving flag
  save                Persist settings on the amplifier
  map                 Show register addresses
  help                Show this help
  quit                Exit
`)
}

func (s *Shell) cmdStatus(ctx context.Context) {
	fmt.Fprintf(s.out, "Amplifier: %s (%s)\n", s.ctrl.RemoteAddr(), s.ctrl.State())
	snap, err := s.ctrl.Snapshot(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "  Position:         %d\n", snap.Position)
	fmt.Fprintf(s.out, "  Velocity:         %d\n", snap.Velocity)
	fmt.Fprintf(s.out, "  Initial velocity: %d\n", snap.InitialVelocity)
	fmt.Fprintf(s.out, "  Max velocity:     %d\n", snap.MaxVelocity)
	fmt.Fprintf(s.out, "  Microstep:        %d\n", snap.MicrostepResolution)
	fmt.Fprintf(s.out, "  Moving:           %t\n", snap.Moving)
}

func (s *Shell) cmdMove(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: move <pos> [wait]")
		return
	}
	target, err := parseInt32(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid position: %v\n", err)
		return
	}
	if err := s.ctrl.SetAbsolutePosition(ctx, target); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Moving to %d\n", target)

	if len(args) > 1 && strings.EqualFold(args[1], "wait") {
		if err := s.ctrl.WaitIdle(ctx, motion.DefaultPollInterval); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		fmt.Fprintln(s.out, "Move complete")
	}
}

func (s *Shell) cmdMicrostep(ctx context.Context, args []string) {
	if len(args) == 0 {
		v, err := s.ctrl.ReadMicrostepResolution(ctx)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(s.out, "Microstep resolution: %d\n", v)
		return
	}
	n, err := strconv.ParseInt(args[0], 10, 8)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid value: %v\n", err)
		return
	}
	if err := s.ctrl.SetMicrostepResolution(ctx, int8(n)); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Microstep resolution set to %d\n", n)
}

func (s *Shell) cmdMap() {
	m := s.ctrl.Map()
	for _, sym := range register.Symbols() {
		addr, err := m.Resolve(sym)
		if err != nil {
			fmt.Fprintf(s.out, "  %-22s (unbound)\n", sym)
			continue
		}
		fmt.Fprintf(s.out, "  %-22s %s\n", sym, addr)
	}
}

func (s *Shell) show32(ctx context.Context, label string, read func(context.Context) (int32, error)) {
	v, err := read(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s: %d\n", label, v)
}

func (s *Shell) getSet32(ctx context.Context, args []string, label string,
	read func(context.Context) (int32, error), write func(context.Context, int32) error) {
	if len(args) == 0 {
		s.show32(ctx, label, read)
		return
	}
	v, err := parseInt32(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid value: %v\n", err)
		return
	}
	if err := write(ctx, v); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s set to %d\n", label, v)
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}
