package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger at debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event as a single "register" record.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}
	if event.RemoteAddr != "" {
		attrs = append(attrs, slog.String("remote", event.RemoteAddr))
	}

	switch {
	case event.Register != nil:
		r := event.Register
		attrs = append(attrs,
			slog.String("op", r.Op.String()),
			slog.String("address", fmt.Sprintf("0x%04X", r.Address)),
			slog.Int("quantity", int(r.Quantity)),
		)
		if r.Symbol != "" {
			attrs = append(attrs, slog.String("symbol", r.Symbol))
		}
		if len(r.Words) > 0 {
			attrs = append(attrs, slog.Any("words", r.Words))
		}
		if len(r.Bits) > 0 {
			attrs = append(attrs, slog.Any("bits", r.Bits))
		}
		if r.Duration != nil {
			attrs = append(attrs, slog.Duration("duration", *r.Duration))
		}
		if r.Err != "" {
			attrs = append(attrs, slog.String("error", r.Err))
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
		if event.Error.Address != nil {
			attrs = append(attrs, slog.String("address", fmt.Sprintf("0x%04X", *event.Error.Address)))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "register", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
