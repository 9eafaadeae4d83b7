package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mdrive-go/mdrive-go/pkg/log"
)

func TestRunViewFormatsEvents(t *testing.T) {
	path := createTestTraceFile(t, sampleTrace())

	var buf bytes.Buffer
	if err := RunView(path, log.Filter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"2026-01-28T10:15:32.123456Z",
		"[sess:abc12345]",
		"DISCONNECTED -> CONNECTED",
		"Remote: 10.0.0.5:502",
		"READ_HOLDING_REGISTERS",
		"Address: 0x0057 (position)",
		"Words: 0x0000 0xC800",
		"Duration: 1.500ms",
		"Error: i/o timeout",
		"Message: not connected",
		"Context: write-trigger",
		"Address: 0x0076",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestRunViewFiltersErrors(t *testing.T) {
	path := createTestTraceFile(t, sampleTrace())

	var buf bytes.Buffer
	if err := RunView(path, log.Filter{ErrorsOnly: true}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	if strings.Contains(output, "position") {
		t.Error("successful read shown with errors filter")
	}
	if strings.Count(output, "[sess:") != 2 {
		t.Errorf("expected 2 events, got:\n%s", output)
	}
}

func TestRunViewMissingFile(t *testing.T) {
	if err := RunView("/nonexistent/trace.mtrace", log.Filter{}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[string]string{
		formatDuration(500):           "0.500us",
		formatDuration(2_500_000):     "2.500ms",
		formatDuration(3_000_000_000): "3.000s",
	}
	for got, want := range tests {
		if got != want {
			t.Errorf("formatDuration: got %q, want %q", got, want)
		}
	}
}
