package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// adoptionOps cuenta adopciones/cancelaciones por resultado.
	adoptionOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adoption_operations_total",
			Help: "Adopt/cancel operations by outcome.",
		},
		[]string{"op", "outcome"},
	)

	registerOnce sync.Once
)

// Init registra las métricas en el registro default. Se puede llamar varias veces.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpInFlight, httpRequestsTotal, httpRequestDuration, adoptionOps)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func InFlightInc() { httpInFlight.Inc() }
func InFlightDec() { httpInFlight.Dec() }

func ObserveRequest(method, route, status string, seconds float64) {
	httpRequestDuration.WithLabelValues(method, route, status).Observe(seconds)
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
}

func ObserveAdoption(op, outcome string) {
	adoptionOps.WithLabelValues(op, outcome).Inc()
}
