package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"mazadie/internal/response"
)

// Recoverer catches panics in downstream handlers, logs the stack trace,
// and returns the server-error envelope instead of crashing the server.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				response.ServerError(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
