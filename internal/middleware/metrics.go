package middleware

import (
	"net/http"
	"strconv"
	"time"

	"pet-adoptions/internal/platform/metrics"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Metrics registra in-flight, total y latencia por método/ruta/status.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		metrics.InFlightInc()
		defer metrics.InFlightDec()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.ObserveRequest(r.Method, routePattern(r), strconv.Itoa(status), time.Since(start).Seconds())
	})
}
