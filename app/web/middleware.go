package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Semior001/newsreader/pkg/logx"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// RequestID is a middleware that adds request id to context and
// to the response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(logx.ContextWithRequestID(r.Context(), id)))
	})
}

// Logger is a middleware that logs all requests
func Logger(lg *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			args := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			}

			if lg.Handler().Enabled(ctx, slog.LevelDebug) {
				lg.DebugCtx(ctx, "request processed", append(args, slog.String("query", r.URL.RawQuery))...)
				return
			}

			lg.InfoCtx(ctx, "request processed", args...)
		})
	}
}

// Recover is a middleware that recovers from panics and responds
// with the request id, so the user can report it.
func Recover(lg *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					lg.ErrorCtx(r.Context(), "panic recovered", slog.Any("panic", rec))

					reqID, _ := logx.RequestIDFromContext(r.Context())
					http.Error(w, fmt.Sprintf("Something went wrong.\n\nRequest ID: %s", reqID),
						http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// Timeout sets the deadline for the request context.
func Timeout(dur time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if dur <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), dur)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
