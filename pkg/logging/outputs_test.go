package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(msg string) LogEntry {
	return LogEntry{
		Time:     time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC).UnixNano(),
		Severity: INFO,
		Message:  msg,
		File:     "genepool.go",
		Line:     42,
		Function: "evolution.Evolve",
	}
}

func TestConsoleOutputWrite(t *testing.T) {
	var buf bytes.Buffer
	out := NewConsoleOutput(false, WithColor(false))
	out.writer = &buf

	err := out.Write(testEntry("hello"))
	require.NoError(t, err)

	line := buf.String()
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "[genepool.go:42]")
	assert.Contains(t, line, "hello")
	assert.NotContains(t, line, "\033[")
}

func TestConsoleOutputColor(t *testing.T) {
	var buf bytes.Buffer
	out := NewConsoleOutput(false)
	out.writer = &buf

	e := testEntry("colored")
	e.Severity = ERROR
	require.NoError(t, out.Write(e))

	assert.Contains(t, buf.String(), "\033[31m")
	assert.Contains(t, buf.String(), "\033[0m")
}

func TestConsoleOutputRunMetadata(t *testing.T) {
	var buf bytes.Buffer
	out := NewConsoleOutput(false, WithColor(false))
	out.writer = &buf

	e := testEntry("tagged")
	e.RunID = "run-9"
	e.Problem = "introns"
	require.NoError(t, out.Write(e))

	assert.Contains(t, buf.String(), "[run=run-9]")
	assert.Contains(t, buf.String(), "[problem=introns]")
}

func TestConsoleOutputFields(t *testing.T) {
	var buf bytes.Buffer
	out := NewConsoleOutput(false, WithColor(false))
	out.writer = &buf

	e := testEntry("fields")
	e.Fields = map[string]interface{}{"generation": 5}
	require.NoError(t, out.Write(e))

	assert.Contains(t, buf.String(), "generation=5")
}

func TestFormatFieldsTruncatesLongSpecimens(t *testing.T) {
	long := strings.Repeat("x", 500)
	formatted := formatFields(map[string]interface{}{"decoded": long})

	assert.Less(t, len(formatted), 150)
	assert.Contains(t, formatted, "...")
}

func TestFormatFieldsEmpty(t *testing.T) {
	assert.Empty(t, formatFields(nil))
	assert.Empty(t, formatFields(map[string]interface{}{}))
}

func TestConsoleOutputSyncAndClose(t *testing.T) {
	var buf bytes.Buffer
	out := NewConsoleOutput(false, WithColor(false))
	out.writer = &buf

	assert.NoError(t, out.Sync())
	assert.NoError(t, out.Close())
}
