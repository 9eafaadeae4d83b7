package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mdrive-go/mdrive-go/pkg/log"
)

// RunExport writes matching events to w as jsonl or csv.
func RunExport(path, format string, filter log.Filter, w io.Writer) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	if format == "jsonl" {
		return exportJSONL(reader, w)
	}
	return exportCSV(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "direction", "category", "op", "address", "symbol", "values", "duration_us", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.SessionID,
			event.Direction.String(),
			event.Category.String(),
			"", "", "", "", "", "",
		}
		switch {
		case event.Register != nil:
			r := event.Register
			row[4] = r.Op.String()
			row[5] = fmt.Sprintf("0x%04X", r.Address)
			row[6] = r.Symbol
			row[7] = joinValues(r)
			if r.Duration != nil {
				row[8] = strconv.FormatInt(r.Duration.Microseconds(), 10)
			}
			row[9] = r.Err
		case event.StateChange != nil:
			row[7] = event.StateChange.NewState
		case event.Error != nil:
			row[9] = event.Error.Message
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
}

func joinValues(r *log.RegisterEvent) string {
	parts := make([]string, 0, len(r.Words)+len(r.Bits))
	for _, v := range r.Words {
		parts = append(parts, strconv.Itoa(int(v)))
	}
	for _, b := range r.Bits {
		parts = append(parts, strconv.Itoa(int(b)))
	}
	return strings.Join(parts, " ")
}
