package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/octosched/pkg/utils/logging"
)

// preProcess assigns a request ID, puts a logger carrying it into the context and writes an
// access log after the handler returns.
func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())

		logger := logging.Default().With(slog.String("request_id", string(reqID)))
		if delivery := r.Header.Get("X-GitHub-Delivery"); delivery != "" {
			logger = logger.With(slog.String("github_delivery", delivery))
		}
		ctx = logging.With(ctx, logger)

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}
		lw.Header().Set("X-Request-ID", string(reqID))

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.String("user_agent", r.UserAgent()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}
