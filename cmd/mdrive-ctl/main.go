// Command mdrive-ctl drives a motor amplifier over Modbus/TCP.
//
// Without -interactive it runs a short sequence: read a target position
// from stdin, move there, report the moving flag, then move back to 0.
//
// Usage:
//
//	mdrive-ctl [flags]
//
// Flags:
//
//	-config string      YAML configuration file
//	-host string        Amplifier host or IP address
//	-port int           Modbus/TCP port (default 502)
//	-unit uint          Modbus unit id (default 1)
//	-timeout duration   Per-request timeout (default 2s)
//	-profile string     Register profile (default: built-in addresses)
//	-log-level string   Log level: debug, info, warn, error (default "info")
//	-trace-log string   Write register trace to this file
//	-interactive        Enable interactive command mode
//	-discover           Browse for amplifiers and exit
//	-settle duration    Demo sequence wait after each move (default 5s)
//
// Examples:
//
//	# Interactive session with a profile
//	mdrive-ctl -host 192.168.33.1 -profile LMD_P42.profile -interactive
//
//	# Find amplifiers on the local network
//	mdrive-ctl -discover
//
//	# Record every register transaction for later analysis
//	mdrive-ctl -host 192.168.33.1 -trace-log axis1.mtrace -interactive
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mdrive-go/mdrive-go/cmd/mdrive-ctl/interactive"
	"github.com/mdrive-go/mdrive-go/pkg/discovery"
	"github.com/mdrive-go/mdrive-go/pkg/log"
	"github.com/mdrive-go/mdrive-go/pkg/motion"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config) error {
	level, _ := parseLogLevel(cfg.LogLevel)
	logWriter := &switchWriter{w: os.Stderr}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if cfg.Discover {
		return runDiscover(ctx, os.Stdout)
	}

	trace, closeTrace, err := setupTrace(cfg, logger)
	if err != nil {
		return err
	}
	defer closeTrace()

	mcfg := motion.Config{
		Host:        cfg.Host,
		Port:        cfg.Port,
		UnitID:      uint8(cfg.Unit),
		Timeout:     cfg.Timeout,
		UseDefaults: true,
		Logger:      logger,
		Trace:       trace,
	}

	var ctrl *motion.Controller
	if cfg.Profile != "" {
		ctrl, err = motion.NewFromProfile(cfg.Profile, mcfg)
	} else {
		ctrl, err = motion.New(mcfg)
	}
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if err := ctrl.Connect(ctx); err != nil {
		return fmt.Errorf("application exited due to failed connection: %w", err)
	}

	if !cfg.Interactive {
		return runDemo(ctx, ctrl, os.Stdin, os.Stdout, cfg.Settle)
	}

	sh, err := interactive.New(ctrl)
	if err != nil {
		return err
	}
	// Keep log lines from breaking the prompt.
	logWriter.w = sh.Stdout()
	sh.Run(ctx)
	return nil
}

// setupTrace builds the trace logger: a file when -trace-log is set, plus
// the slog adapter at debug level.
func setupTrace(cfg Config, logger *slog.Logger) (log.Logger, func(), error) {
	var loggers []log.Logger

	if level, err := parseLogLevel(cfg.LogLevel); err == nil && level <= slog.LevelDebug {
		loggers = append(loggers, log.NewSlogAdapter(logger))
	}
	if cfg.TraceLog != "" {
		fl, err := log.NewFileLogger(cfg.TraceLog)
		if err != nil {
			return nil, nil, fmt.Errorf("open trace log: %w", err)
		}
		loggers = append(loggers, fl)
	}

	trace := log.NewMultiLogger(loggers...)
	closeFn := func() {
		if err := trace.Close(); err != nil {
			logger.Warn("trace log incomplete", "error", err)
		}
	}
	if trace.Len() == 0 {
		return nil, closeFn, nil
	}
	return trace, closeFn, nil
}

func runDiscover(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "Browsing for amplifiers...")
	amps, err := discovery.NewBrowser(discovery.Config{}).Discover(ctx)
	if err != nil {
		return fmt.Errorf("discover: %w", err)
	}
	if len(amps) == 0 {
		fmt.Fprintln(out, "No amplifiers found")
		return nil
	}
	for _, a := range amps {
		fmt.Fprintf(out, "  %-24s %s", a.Instance, a.Endpoint())
		if a.Model != "" {
			fmt.Fprintf(out, "  model=%s", a.Model)
		}
		if a.UnitID != 0 {
			fmt.Fprintf(out, "  unit=%d", a.UnitID)
		}
		fmt.Fprintln(out)
	}
	return nil
}

// switchWriter lets log output be redirected after the logger is built.
type switchWriter struct {
	w io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	return s.w.Write(p)
}
