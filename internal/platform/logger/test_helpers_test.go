package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestLogBuffer_GetLogEntries(t *testing.T) {
	t.Parallel()

	buf, l := NewTestLogger(t)
	l.Info("first", "n", 1)
	l.Debug("second")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, float64(1), entries[0]["n"])

	e, ok := buf.FindEntry("second")
	require.True(t, ok)
	assert.Equal(t, "DEBUG", e["level"])

	_, ok = buf.FindEntry("missing")
	assert.False(t, ok)
}

func TestNewLogCaptureContext(t *testing.T) {
	t.Parallel()

	ctx, buf := NewLogCaptureContext(t, context.Background())
	FromContext(ctx).Warn("captured", "recipient", "Alex")

	AssertLogContains(t, buf, `"msg":"captured"`)
	AssertLogContains(t, buf, `"recipient":"Alex"`)
	AssertLogNotContains(t, buf, "ERROR")
}
