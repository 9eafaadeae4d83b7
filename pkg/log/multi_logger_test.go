package log

import (
	"errors"
	"testing"
)

type recordingLogger struct {
	events []Event
}

func (r *recordingLogger) Log(e Event) { r.events = append(r.events, e) }

func TestMultiLoggerFansOut(t *testing.T) {
	a, b := &recordingLogger{}, &recordingLogger{}
	m := NewMultiLogger(a, nil, b)

	m.Log(Event{SessionID: "one"})
	m.Log(Event{SessionID: "two"})

	for name, r := range map[string]*recordingLogger{"a": a, "b": b} {
		if len(r.events) != 2 {
			t.Errorf("%s: got %d events, want 2", name, len(r.events))
		}
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	if _, ok := OrNoop(nil).(NoopLogger); !ok {
		t.Error("OrNoop(nil) is not a NoopLogger")
	}
	NewMultiLogger().Log(Event{})
	NoopLogger{}.Log(Event{})
}

func TestMultiLoggerFlattensAndSkipsNoop(t *testing.T) {
	a, b := &recordingLogger{}, &recordingLogger{}
	m := NewMultiLogger(NoopLogger{}, NewMultiLogger(a, nil), b)

	if m.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", m.Len())
	}
	m.Log(Event{SessionID: "one"})
	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("got %d/%d events, want 1/1", len(a.events), len(b.events))
	}
}

type closingLogger struct {
	recordingLogger
	closed int
	err    error
}

func (c *closingLogger) Close() error { c.closed++; return c.err }

func TestMultiLoggerCloseJoinsErrors(t *testing.T) {
	boom := errors.New("disk full")
	ok, bad := &closingLogger{}, &closingLogger{err: boom}
	m := NewMultiLogger(ok, &recordingLogger{}, bad)

	err := m.Close()
	if !errors.Is(err, boom) {
		t.Errorf("Close: got %v, want %v", err, boom)
	}
	if ok.closed != 1 || bad.closed != 1 {
		t.Errorf("closed %d/%d times, want 1/1", ok.closed, bad.closed)
	}
}
