package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the mdrive-ctl configuration. Values come from the YAML
// file named by -config, then from flags set on the command line.
type Config struct {
	ConfigFile string `yaml:"-"`

	Host    string        `yaml:"host"`
	Port    int           `yaml:"port"`
	Unit    uint          `yaml:"unit"`
	Timeout time.Duration `yaml:"timeout"`
	Profile string        `yaml:"profile"`

	LogLevel string `yaml:"log_level"`
	TraceLog string `yaml:"trace_log"`

	Interactive bool `yaml:"interactive"`
	Discover    bool `yaml:"discover"`

	// Settle is how long the demo sequence waits after each move.
	Settle time.Duration `yaml:"settle"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Port:     502,
		Unit:     1,
		Timeout:  2 * time.Second,
		LogLevel: "info",
		Settle:   5 * time.Second,
	}
}

// registerFlags binds cfg's fields to fs.
func registerFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML configuration file")
	fs.StringVar(&cfg.Host, "host", cfg.Host, "Amplifier host or IP address")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "Modbus/TCP port")
	fs.UintVar(&cfg.Unit, "unit", cfg.Unit, "Modbus unit id")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Per-request timeout")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "Register profile (default: built-in addresses)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.TraceLog, "trace-log", cfg.TraceLog, "Write register trace to this file")
	fs.BoolVar(&cfg.Interactive, "interactive", cfg.Interactive, "Enable interactive command mode")
	fs.BoolVar(&cfg.Discover, "discover", cfg.Discover, "Browse for amplifiers and exit")
	fs.DurationVar(&cfg.Settle, "settle", cfg.Settle, "Demo sequence wait after each move")
}

// parseConfig parses args. When -config is given the file is loaded and
// any flag set explicitly on the command line overrides it.
func parseConfig(args []string) (Config, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("mdrive-ctl", flag.ContinueOnError)
	registerFlags(fs, &cfg)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.ConfigFile == "" {
		return cfg, cfg.validate()
	}

	fromFile, err := loadConfigFile(cfg.ConfigFile)
	if err != nil {
		return Config{}, err
	}
	fromFile.ConfigFile = cfg.ConfigFile

	// Re-apply explicit flags on top of the file values.
	overrides := flag.NewFlagSet("overrides", flag.ContinueOnError)
	registerFlags(overrides, &fromFile)
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			_ = overrides.Set(f.Name, f.Value.String())
		}
	})
	return fromFile, fromFile.validate()
}

// loadConfigFile reads a YAML config on top of the defaults.
func loadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !c.Discover && c.Host == "" {
		return fmt.Errorf("host is required (-host or config file)")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Unit > 255 {
		return fmt.Errorf("invalid unit id: %d", c.Unit)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s (use: debug, info, warn, error)", s)
	}
}
