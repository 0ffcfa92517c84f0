package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"dexinfo.com/internal/infrastructure/logger"
	"dexinfo.com/internal/infrastructure/metrics"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	loggerKey    contextKey = "logger"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RequestIDMiddleware adds a request ID to each request
func RequestIDMiddleware(next http.HandlerFunc, logger logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		ctx = context.WithValue(ctx, loggerKey, logger.WithRequestID(requestID))

		next(w, r.WithContext(ctx))
	}
}

// LoggingMiddleware logs request details and counts the response under route
func LoggingMiddleware(next http.HandlerFunc, route string, logger logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestLogger := loggerFromContext(r.Context(), logger)

		requestLogger.LogInfo(r.Context(), "Incoming request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		// Wrap response writer to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next(wrapped, r)

		m.ObserveHTTPRequest(route, wrapped.statusCode)
		requestLogger.LogInfo(r.Context(), "Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// loggerFromContext returns the request scoped logger, or fallback outside a request
func loggerFromContext(ctx context.Context, fallback logger.Logger) logger.Logger {
	if l, ok := ctx.Value(loggerKey).(logger.Logger); ok {
		return l
	}
	return fallback
}
