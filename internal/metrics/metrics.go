// Package metrics holds the Prometheus collectors of the web service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth check results.
const (
	AuthAuthenticated = "authenticated"
	AuthAnonymous     = "anonymous"
	AuthError         = "error"
)

// Metrics groups the service collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authChecks      *prometheus.CounterVec
	logins          *prometheus.CounterVec
	logouts         prometheus.Counter
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gospors",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gospors",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gospors",
			Name:      "auth_checks_total",
			Help:      "Layout session checks by result.",
		}, []string{"result"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gospors",
			Name:      "logins_total",
			Help:      "Completed login callbacks by provider and outcome.",
		}, []string{"provider", "outcome"}),
		logouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gospors",
			Name:      "logouts_total",
			Help:      "Logouts.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.authChecks,
		m.logins,
		m.logouts,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// AuthCheck records the outcome of a layout session check.
func (m *Metrics) AuthCheck(result string) {
	if m == nil {
		return
	}
	m.authChecks.WithLabelValues(result).Inc()
}

// Login records a login callback outcome.
func (m *Metrics) Login(provider, outcome string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(provider, outcome).Inc()
}

// Logout records a logout.
func (m *Metrics) Logout() {
	if m == nil {
		return
	}
	m.logouts.Inc()
}
