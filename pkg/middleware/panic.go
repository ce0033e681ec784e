package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Panic keeps a handler crash from taking down the process. The client
// sees the legacy failure envelope with HTTP 200.
func Panic(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						"path", r.URL.Path,
						"panic", err,
						"stack", string(debug.Stack()),
					)
					w.Header().Set("Content-Type", "application/json")
					if _, err := w.Write([]byte(`{"code":-1,"message":"invalid request"}`)); err != nil {
						logger.Error("failed to write panic response", "error", err)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
