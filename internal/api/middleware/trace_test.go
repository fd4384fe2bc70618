package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/fxconvert-api/internal/api/shared"
	"github.com/phrazzld/fxconvert-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var traceID string
	handler := TraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, traceID, shared.TraceIDLength)
	assert.Equal(t, traceID, rec.Header().Get(TraceHeader))
	assert.Contains(t, buf.String(), `"msg":"request started"`)
	assert.Contains(t, buf.String(), `"msg":"inside handler"`)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte(`"trace_id":"`+traceID+`"`)))
}

func TestTraceMiddleware_DistinctPerRequest(t *testing.T) {
	t.Parallel()

	var ids []string
	handler := TraceMiddleware(nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ids = append(ids, shared.GetTraceID(r.Context()))
	}))

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	require.Len(t, ids, 3)
	assert.NotEqual(t, ids[0], ids[1])
	assert.NotEqual(t, ids[1], ids[2])
}
