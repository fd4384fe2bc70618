package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/fxconvert-api/internal/api/shared"
	"github.com/phrazzld/fxconvert-api/internal/platform/logger"
)

// TraceHeader is the response header carrying the request's trace ID.
const TraceHeader = "X-Trace-ID"

// TraceMiddleware adds a trace ID to the request context, along with a logger
// derived from base that tags every record with it, and echoes the ID in the
// TraceHeader response header. Apply it early in the chain so later handlers
// log with the trace ID.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)
			w.Header().Set(TraceHeader, traceID)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
