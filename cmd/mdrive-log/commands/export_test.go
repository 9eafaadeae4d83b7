package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdrive-go/mdrive-go/pkg/log"
)

func TestExportJSONL(t *testing.T) {
	path := createTestTraceFile(t, sampleTrace())

	var buf bytes.Buffer
	require.NoError(t, RunExport(path, "jsonl", log.Filter{}, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "abc12345-6789", first["SessionID"])
}

func TestExportCSV(t *testing.T) {
	path := createTestTraceFile(t, sampleTrace())

	var buf bytes.Buffer
	require.NoError(t, RunExport(path, "csv", log.Filter{}, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, "session_id", rows[0][1])

	read := rows[3]
	assert.Equal(t, "READ_HOLDING_REGISTERS", read[4])
	assert.Equal(t, "0x0057", read[5])
	assert.Equal(t, "position", read[6])
	assert.Equal(t, "0 51200", read[7])
	assert.Equal(t, "1500", read[8])

	assert.Equal(t, "i/o timeout", rows[5][9])
	assert.Equal(t, "not connected", rows[6][9])
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestTraceFile(t, sampleTrace())
	assert.Error(t, RunExport(path, "xml", log.Filter{}, &bytes.Buffer{}))
}

func TestRunFilter(t *testing.T) {
	path := createTestTraceFile(t, sampleTrace())
	out := filepath.Join(t.TempDir(), "errors.mtrace")

	n, err := RunFilter(path, out, log.Filter{ErrorsOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	stats, err := Collect(out)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalEvents)
}

func TestRunFilterRejectsSameFile(t *testing.T) {
	path := createTestTraceFile(t, sampleTrace())
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = RunFilter(path, path, log.Filter{})
	require.ErrorIs(t, err, ErrSameFile)

	link := filepath.Join(t.TempDir(), "alias.mtrace")
	require.NoError(t, os.Link(path, link))
	_, err = RunFilter(path, link, log.Filter{})
	require.ErrorIs(t, err, ErrSameFile)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
