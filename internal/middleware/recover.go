package middleware

import (
	"net/http"
	"runtime/debug"

	"pet-adoptions/internal/platform/httpjson"
	"pet-adoptions/internal/platform/logger"
)

// Recover convierte un panic en 500 JSON y lo loguea con el stack.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered", map[string]any{
					"panic":      rec,
					"request_id": GetRequestID(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"stack":      string(debug.Stack()),
				})
				httpjson.Error(w, http.StatusInternalServerError, "something went wrong on the server")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
