package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mdrive.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseConfigFlagsOnly(t *testing.T) {
	cfg, err := parseConfig([]string{"-host", "10.0.0.5", "-unit", "3", "-interactive"})
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5", cfg.Host)
	assert.Equal(t, 502, cfg.Port)
	assert.Equal(t, uint(3), cfg.Unit)
	assert.True(t, cfg.Interactive)
	assert.Equal(t, 5*time.Second, cfg.Settle)
}

func TestParseConfigFile(t *testing.T) {
	path := writeConfig(t, `
host: amp.local
port: 1502
unit: 2
timeout: 500ms
profile: /etc/mdrive/axis1.profile
log_level: debug
trace_log: /tmp/axis1.mtrace
settle: 2s
`)
	cfg, err := parseConfig([]string{"-config", path})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, "amp.local", cfg.Host)
	assert.Equal(t, 1502, cfg.Port)
	assert.Equal(t, uint(2), cfg.Unit)
	assert.Equal(t, 500*time.Millisecond, cfg.Timeout)
	assert.Equal(t, "/etc/mdrive/axis1.profile", cfg.Profile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/axis1.mtrace", cfg.TraceLog)
	assert.Equal(t, 2*time.Second, cfg.Settle)
}

func TestParseConfigFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "host: amp.local\nport: 1502\nlog_level: debug\n")

	cfg, err := parseConfig([]string{"-config", path, "-host", "10.0.0.9", "-log-level", "warn"})
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.9", cfg.Host)
	assert.Equal(t, 1502, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseConfigFileDefaults(t *testing.T) {
	path := writeConfig(t, "host: amp.local\n")

	cfg, err := parseConfig([]string{"-config", path})
	require.NoError(t, err)
	assert.Equal(t, 502, cfg.Port)
	assert.Equal(t, uint(1), cfg.Unit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := parseConfig(nil)
	assert.ErrorContains(t, err, "host is required")

	_, err = parseConfig([]string{"-host", "x", "-port", "70000"})
	assert.ErrorContains(t, err, "invalid port")

	_, err = parseConfig([]string{"-host", "x", "-unit", "300"})
	assert.ErrorContains(t, err, "invalid unit id")

	_, err = parseConfig([]string{"-host", "x", "-log-level", "loud"})
	assert.ErrorContains(t, err, "unknown log level")

	_, err = parseConfig([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorContains(t, err, "read config")

	_, err = parseConfig([]string{"-config", writeConfig(t, "host: [unclosed\n")})
	assert.ErrorContains(t, err, "parse config")
}

func TestParseConfigDiscoverNeedsNoHost(t *testing.T) {
	cfg, err := parseConfig([]string{"-discover"})
	require.NoError(t, err)
	assert.True(t, cfg.Discover)
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := parseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
