package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mdrive-go/mdrive-go/pkg/log"
)

func createTestTraceFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mtrace")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()
	return path
}

// sampleTrace is one connect, a successful read, a failed write and a
// disconnected call.
func sampleTrace() []log.Event {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	d := 1500 * time.Microsecond
	addr := uint16(0x76)
	return []log.Event{
		{
			Timestamp: ts, SessionID: "abc12345-6789", Direction: log.DirectionOut, Category: log.CategoryState,
			RemoteAddr:  "10.0.0.5:502",
			StateChange: &log.StateChangeEvent{OldState: "DISCONNECTED", NewState: "CONNECTED", Reason: "connect"},
		},
		{
			Timestamp: ts.Add(time.Millisecond), SessionID: "abc12345-6789", Direction: log.DirectionOut, Category: log.CategoryRegister,
			Register: &log.RegisterEvent{Op: log.OpReadHoldingRegisters, Address: 0x57, Quantity: 2, Symbol: "position"},
		},
		{
			Timestamp: ts.Add(2 * time.Millisecond), SessionID: "abc12345-6789", Direction: log.DirectionIn, Category: log.CategoryRegister,
			Register: &log.RegisterEvent{Op: log.OpReadHoldingRegisters, Address: 0x57, Quantity: 2, Symbol: "position",
				Words: []uint16{0x0000, 0xC800}, Duration: &d},
		},
		{
			Timestamp: ts.Add(3 * time.Millisecond), SessionID: "abc12345-6789", Direction: log.DirectionOut, Category: log.CategoryRegister,
			Register: &log.RegisterEvent{Op: log.OpWriteRegisters, Address: 0x8A, Quantity: 2, Words: []uint16{0, 1200}},
		},
		{
			Timestamp: ts.Add(4 * time.Millisecond), SessionID: "abc12345-6789", Direction: log.DirectionIn, Category: log.CategoryRegister,
			Register: &log.RegisterEvent{Op: log.OpWriteRegisters, Address: 0x8A, Quantity: 2, Duration: &d, Err: "i/o timeout"},
		},
		{
			Timestamp: ts.Add(5 * time.Millisecond), SessionID: "ffff0000-1111", Direction: log.DirectionOut, Category: log.CategoryError,
			Error: &log.ErrorEventData{Message: "not connected", Context: "write-trigger", Address: &addr},
		},
	}
}
