package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/mdrive-go/mdrive-go/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	Requests         map[log.Operation]int
	Failures         map[log.Operation]int
	Sessions         map[string]*SessionStats
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for one session.
type SessionStats struct {
	RemoteAddr   string
	FirstSeen    time.Time
	LastSeen     time.Time
	Transactions int
	Writes       int
	TotalLatency time.Duration
	MaxLatency   time.Duration
}

// Collect reads the trace file and aggregates it.
func Collect(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		Requests:         make(map[log.Operation]int),
		Failures:         make(map[log.Operation]int),
		Sessions:         make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByCategory[event.Category]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	sess, ok := s.Sessions[event.SessionID]
	if !ok {
		sess = &SessionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Sessions[event.SessionID] = sess
	}
	if event.Timestamp.After(sess.LastSeen) {
		sess.LastSeen = event.Timestamp
	}
	if event.RemoteAddr != "" {
		sess.RemoteAddr = event.RemoteAddr
	}

	if log.IsFailure(event) {
		s.Errors++
	}

	r := event.Register
	if r == nil {
		return
	}
	switch event.Direction {
	case log.DirectionOut:
		s.Requests[r.Op]++
		sess.Transactions++
		if r.Op.IsWrite() {
			sess.Writes++
		}
	case log.DirectionIn:
		if r.Err != "" {
			s.Failures[r.Op]++
		}
		if r.Duration != nil {
			sess.TotalLatency += *r.Duration
			if *r.Duration > sess.MaxLatency {
				sess.MaxLatency = *r.Duration
			}
		}
	}
}

// RunStats prints statistics for the trace file.
func RunStats(path string, w io.Writer) error {
	stats, err := Collect(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Register Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryRegister, log.CategoryState, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Requests by Operation:")
	for op := log.OpReadCoils; op <= log.OpWriteSingleRegister; op++ {
		if count := stats.Requests[op]; count > 0 {
			fmt.Fprintf(w, "  %-24s %d", op.String()+":", count)
			if failed := stats.Failures[op]; failed > 0 {
				fmt.Fprintf(w, " (%d failed)", failed)
			}
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			fmt.Fprintf(w, "  [%s] %d transactions (%d writes)", shortID(s.id), s.stats.Transactions, s.stats.Writes)
			if s.stats.RemoteAddr != "" {
				fmt.Fprintf(w, " to %s", s.stats.RemoteAddr)
			}
			fmt.Fprintln(w)
			if s.stats.Transactions > 0 && s.stats.TotalLatency > 0 {
				avg := s.stats.TotalLatency / time.Duration(s.stats.Transactions)
				fmt.Fprintf(w, "           Latency: avg %s, max %s\n", formatDuration(avg), formatDuration(s.stats.MaxLatency))
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
