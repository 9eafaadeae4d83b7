package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mdrive-go/mdrive-go/pkg/log"
)

// ErrSameFile is returned when the filter output would overwrite its input.
var ErrSameFile = errors.New("output is the input trace file")

// RunFilter copies matching events to a new trace file and returns how
// many were written.
func RunFilter(path, output string, filter log.Filter) (int, error) {
	if in, err := os.Stat(path); err == nil {
		if out, err := os.Stat(output); err == nil && os.SameFile(in, out) {
			return 0, fmt.Errorf("%s: %w", output, ErrSameFile)
		}
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	out, err := log.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("failed to read event: %w", err)
		}
		out.Log(event)
		count++
	}
}
