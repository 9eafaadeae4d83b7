package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdrive-go/mdrive-go/pkg/log"
)

func TestSetupTraceDisabled(t *testing.T) {
	trace, closeFn, err := setupTrace(Config{LogLevel: "info"}, slog.Default())
	require.NoError(t, err)
	assert.Nil(t, trace)
	closeFn()
}

func TestSetupTraceMirrorsAtDebugAnyCase(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	trace, closeFn, err := setupTrace(Config{LogLevel: "DEBUG"}, logger)
	require.NoError(t, err)
	require.NotNil(t, trace)
	defer closeFn()

	trace.Log(log.Event{SessionID: "s2", Category: log.CategoryState, StateChange: &log.StateChangeEvent{NewState: "CONNECTED"}})
	assert.Contains(t, buf.String(), "session_id=s2")
}

func TestSetupTraceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axis.mtrace")
	trace, closeFn, err := setupTrace(Config{LogLevel: "debug", TraceLog: path}, slog.Default())
	require.NoError(t, err)
	require.NotNil(t, trace)

	trace.Log(log.Event{SessionID: "s1", Category: log.CategoryState, StateChange: &log.StateChangeEvent{NewState: "CONNECTED"}})
	closeFn()

	r, err := log.NewReader(path)
	require.NoError(t, err)
	defer r.Close()
	ev, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "s1", ev.SessionID)
}

func TestSetupTraceBadPath(t *testing.T) {
	_, _, err := setupTrace(Config{TraceLog: filepath.Join(t.TempDir(), "no", "such", "dir.mtrace")}, slog.Default())
	assert.ErrorContains(t, err, "open trace log")
}
