package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput records entries for inspection.
type captureOutput struct {
	entries []LogEntry
	failing bool
	synced  bool
	closed  bool
}

func (c *captureOutput) Write(e LogEntry) error {
	if c.failing {
		return errors.New("write failed")
	}
	c.entries = append(c.entries, e)
	return nil
}

func (c *captureOutput) Sync() error {
	c.synced = true
	return nil
}

func (c *captureOutput) Close() error {
	c.closed = true
	return nil
}

func TestLoggerSeverityFiltering(t *testing.T) {
	out := &captureOutput{}
	logger := NewLogger(Config{
		Severity: WARN,
		Outputs:  []Output{out},
	})

	ctx := context.Background()
	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	require.Len(t, out.entries, 2)
	assert.Equal(t, WARN, out.entries[0].Severity)
	assert.Equal(t, "warn message", out.entries[0].Message)
	assert.Equal(t, ERROR, out.entries[1].Severity)
	assert.Equal(t, "error message", out.entries[1].Message)
}

func TestLoggerFormatsArguments(t *testing.T) {
	out := &captureOutput{}
	logger := NewLogger(Config{
		Severity: DEBUG,
		Outputs:  []Output{out},
	})

	logger.Info(context.Background(), "generation %d best %.2f", 7, 42.5)

	require.Len(t, out.entries, 1)
	assert.Equal(t, "generation 7 best 42.50", out.entries[0].Message)
}

func TestLoggerCallerInfo(t *testing.T) {
	out := &captureOutput{}
	logger := NewLogger(Config{
		Severity: INFO,
		Outputs:  []Output{out},
	})

	logger.Info(context.Background(), "caller test")

	require.Len(t, out.entries, 1)
	assert.Equal(t, "logger_test.go", out.entries[0].File)
	assert.Greater(t, out.entries[0].Line, 0)
	assert.NotEmpty(t, out.entries[0].Function)
}

func TestLoggerContextMetadata(t *testing.T) {
	out := &captureOutput{}
	logger := NewLogger(Config{
		Severity: INFO,
		Outputs:  []Output{out},
	})

	ctx := WithRunID(context.Background(), "run-123")
	ctx = WithProblem(ctx, "onemax")
	logger.Info(ctx, "with metadata")

	require.Len(t, out.entries, 1)
	assert.Equal(t, "run-123", out.entries[0].RunID)
	assert.Equal(t, "onemax", out.entries[0].Problem)
}

func TestLoggerDefaultFields(t *testing.T) {
	out := &captureOutput{}
	logger := NewLogger(Config{
		Severity:      INFO,
		Outputs:       []Output{out},
		DefaultFields: map[string]interface{}{"service": "genepool"},
	})

	logger.Info(context.Background(), "with defaults")

	require.Len(t, out.entries, 1)
	assert.Equal(t, "genepool", out.entries[0].Fields["service"])
}

func TestLoggerGeneration(t *testing.T) {
	out := &captureOutput{}
	logger := NewLogger(Config{
		Severity: DEBUG,
		Outputs:  []Output{out},
	})

	logger.Generation(context.Background(), 3, 87.5, "helloworld")

	require.Len(t, out.entries, 1)
	assert.Contains(t, out.entries[0].Message, "generation 3")
	assert.Contains(t, out.entries[0].Message, "87.5000")
	assert.Contains(t, out.entries[0].Message, `"helloworld"`)
}

func TestLoggerGenerationSkippedAboveDebug(t *testing.T) {
	out := &captureOutput{}
	logger := NewLogger(Config{
		Severity: INFO,
		Outputs:  []Output{out},
	})

	logger.Generation(context.Background(), 3, 87.5, "helloworld")

	assert.Empty(t, out.entries)
}

func TestLoggerMultipleOutputs(t *testing.T) {
	first := &captureOutput{}
	second := &captureOutput{}
	logger := NewLogger(Config{
		Severity: INFO,
		Outputs:  []Output{first, second},
	})

	logger.Info(context.Background(), "fan out")

	assert.Len(t, first.entries, 1)
	assert.Len(t, second.entries, 1)
}

func TestLoggerSurvivesFailingOutput(t *testing.T) {
	bad := &captureOutput{failing: true}
	good := &captureOutput{}
	logger := NewLogger(Config{
		Severity: INFO,
		Outputs:  []Output{bad, good},
	})

	logger.Info(context.Background(), "still delivered")

	require.Len(t, good.entries, 1)
	assert.Equal(t, "still delivered", good.entries[0].Message)
}

func TestGlobalLogger(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	out := &captureOutput{}
	SetLogger(NewLogger(Config{
		Severity: DEBUG,
		Outputs:  []Output{out},
	}))

	GetLogger().Debug(context.Background(), "global")

	require.Len(t, out.entries, 1)
	assert.Equal(t, "global", out.entries[0].Message)
}

func TestGetLoggerDefault(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	SetLogger(nil)
	logger := GetLogger()
	require.NotNil(t, logger)
	assert.Equal(t, INFO, logger.severity)
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	_, ok := GetRunID(ctx)
	assert.False(t, ok)
	_, ok = GetProblem(ctx)
	assert.False(t, ok)

	ctx = WithRunID(ctx, "r1")
	ctx = WithProblem(ctx, "phrase")

	runID, ok := GetRunID(ctx)
	require.True(t, ok)
	assert.Equal(t, "r1", runID)

	problem, ok := GetProblem(ctx)
	require.True(t, ok)
	assert.Equal(t, "phrase", problem)
}
