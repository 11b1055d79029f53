// Package metrics expone métricas Prometheus del relay: requests HTTP y resultado de cada callback.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// methodOther agrupa métodos no estándar: el label no puede depender de input arbitrario.
const methodOther = "OTHER"

var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodConnect: true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

func methodLabel(m string) string {
	m = strings.ToUpper(m)
	if knownMethods[m] {
		return m
	}
	return methodOther
}

// routeUnmatched agrupa los 404 para no explotar la cardinalidad con paths arbitrarios.
const routeUnmatched = "unmatched"

// Metrics agrupa los collectors del relay. Es seguro para uso concurrente.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInflight        *prometheus.GaugeVec
	callbacksTotal      *prometheus.CounterVec
}

// New crea y registra los collectors en un registry propio (más Go runtime y process).
func New() (*Metrics, error) {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Número total de requests procesadas",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latencia de los requests HTTP",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		httpInflight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Requests en vuelo por método",
		}, []string{"method"}),
		callbacksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "relay_callbacks_total",
			Help: "Callbacks OAuth procesados por ruta y resultado",
		}, []string{"route", "outcome"}),
	}

	for _, c := range []prometheus.Collector{
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.httpInflight,
		m.callbacksTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler devuelve el handler para /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry expone el registry (tests y collectors extra).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordCallback cuenta el resultado de un callback.
func (m *Metrics) RecordCallback(route, outcome string) {
	m.callbacksTotal.WithLabelValues(route, outcome).Inc()
}

// Middleware instrumenta requests HTTP (contadores, latencia, inflight).
// Debe montarse con chi Router.Use para que el route pattern esté disponible al terminar.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := methodLabel(r.Method)
		inflight := m.httpInflight.WithLabelValues(method)
		inflight.Inc()
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			inflight.Dec()

			route := routeUnmatched
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			m.httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		}()

		next.ServeHTTP(ww, r)
	})
}
