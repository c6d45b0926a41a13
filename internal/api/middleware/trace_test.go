package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/presently/presently-api/internal/api/shared"
	"github.com/presently/presently-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	buf, base := logger.NewTestLogger(t)

	var traceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
	})

	rec := httptest.NewRecorder()
	NewTraceMiddleware(base)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Len(t, traceID, 32)
	assert.Equal(t, traceID, rec.Header().Get(TraceHeader))
	entry, ok := buf.FindEntry("inside handler")
	require.True(t, ok)
	assert.Equal(t, traceID, entry["trace_id"])
}
