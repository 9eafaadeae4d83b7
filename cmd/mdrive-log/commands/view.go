package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mdrive-go/mdrive-go/pkg/log"
)

// RunView prints matching events from the trace file in readable form.
func RunView(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes one event: a header line then indented details.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")

	label := "Unknown"
	switch {
	case event.Register != nil:
		label = event.Register.Op.String()
	case event.StateChange != nil:
		label = "State"
	case event.Error != nil:
		label = "Error"
	}

	fmt.Fprintf(w, "%s [sess:%s] %-3s %s\n", ts, shortID(event.SessionID), event.Direction, label)

	switch {
	case event.Register != nil:
		formatRegisterDetails(w, event.Register)
	case event.StateChange != nil:
		sc := event.StateChange
		if sc.OldState != "" {
			fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
		} else {
			fmt.Fprintf(w, "  -> %s\n", sc.NewState)
		}
		if event.RemoteAddr != "" {
			fmt.Fprintf(w, "  Remote: %s\n", event.RemoteAddr)
		}
		if sc.Reason != "" {
			fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
		}
	case event.Error != nil:
		fmt.Fprintf(w, "  Message: %s\n", event.Error.Message)
		if event.Error.Context != "" {
			fmt.Fprintf(w, "  Context: %s\n", event.Error.Context)
		}
		if event.Error.Address != nil {
			fmt.Fprintf(w, "  Address: 0x%04X\n", *event.Error.Address)
		}
	}

	fmt.Fprintln(w)
}

func formatRegisterDetails(w io.Writer, r *log.RegisterEvent) {
	fmt.Fprintf(w, "  Address: 0x%04X", r.Address)
	if r.Symbol != "" {
		fmt.Fprintf(w, " (%s)", r.Symbol)
	}
	fmt.Fprintf(w, "  Quantity: %d\n", r.Quantity)

	if len(r.Words) > 0 {
		hex := make([]string, len(r.Words))
		for i, v := range r.Words {
			hex[i] = fmt.Sprintf("0x%04X", v)
		}
		fmt.Fprintf(w, "  Words: %s\n", strings.Join(hex, " "))
	}
	if len(r.Bits) > 0 {
		fmt.Fprintf(w, "  Bits: %v\n", r.Bits)
	}
	if r.Duration != nil {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(*r.Duration))
	}
	if r.Err != "" {
		fmt.Fprintf(w, "  Error: %s\n", r.Err)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}
