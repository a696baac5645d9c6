package httpapi

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jpoz/gitdash/internal/logging"
	"github.com/jpoz/gitdash/internal/metrics"
)

// LoggerMiddleware adds request fields to the context, logs the request and
// records its metrics under the route pattern.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := chimw.GetReqID(ctx); id != "" {
			ctx = logging.WithRequestID(ctx, id)
		} else {
			ctx = logging.WithNewRequestID(ctx)
		}
		ctx = logging.WithRequest(ctx, r.Method, r.URL.Path)

		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		r = r.WithContext(ctx)

		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		slog.InfoContext(logging.WithResponse(ctx, status, elapsed.String()), "request served")
		metrics.ObserveAPIRequest(r.Method, routePattern(r), status, elapsed)
	})
}

// PanicMiddleware turns a panic into a 500 JSON error.
func PanicMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				slog.ErrorContext(r.Context(), "panic recovered",
					"error", err,
					"stack_trace", string(debug.Stack()),
				)
				RespondJSON(w, http.StatusInternalServerError, APIError{
					Error: APIErrorBody{Code: "INTERNAL_ERROR", Message: "internal server error"},
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// routePattern returns the chi route pattern, e.g. "/api/v1/{platform}/users/{username}",
// so metrics are grouped by endpoint rather than by parameter values.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	if r.URL.Path != "" {
		return r.URL.Path
	}
	return "/"
}
