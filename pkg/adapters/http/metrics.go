package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the HTTP adapter.
type Metrics struct {
	Requests    *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	Resolutions *prometheus.CounterVec
	Cache       *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates and registers the collectors on reg.
// Passing a *prometheus.Registry also makes it the /metrics source.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cmdform_http_requests_total",
				Help: "Total number of HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cmdform_http_request_duration_seconds",
				Help:    "Duration of HTTP requests by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cmdform_path_resolutions_total",
				Help: "Total number of command path resolutions by result",
			},
			[]string{"result"},
		),
		Cache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cmdform_page_cache_total",
				Help: "Page cache lookups by result",
			},
			[]string{"result"},
		),
		gatherer: prometheus.DefaultGatherer,
	}
	reg.MustRegister(m.Requests, m.Duration, m.Resolutions, m.Cache)

	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}
	return m
}

// Hooks returns engine lifecycle hooks that count resolutions.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnResolve: func(context.Context, *domain.ResolveEvent) {
			m.Resolutions.WithLabelValues("ok").Inc()
		},
		OnNotFound: func(context.Context, *domain.NotFoundEvent) {
			m.Resolutions.WithLabelValues("not_found").Inc()
		},
	}
}

// Handler exposes the registered collectors.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) observe(route string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.Duration.WithLabelValues(route).Observe(d.Seconds())
}

func (m *Metrics) cacheResult(result string) {
	if m == nil {
		return
	}
	m.Cache.WithLabelValues(result).Inc()
}
