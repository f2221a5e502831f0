// Package metrics exposes the service prometheus metrics on a private registry.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// unmatchedRoute labels requests answered by the catch-all
const unmatchedRoute = "unmatched"

// Metrics holds the http collectors and the registry they live in
type Metrics struct {
	namespace string
	registry  *prometheus.Registry
	factory   promauto.Factory

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the http collectors under namespace on a fresh registry
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		namespace: namespace,
		registry:  registry,
		factory:   factory,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		}, []string{"route", "method", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// Gauge registers a gauge whose value is read from fn at scrape time
func (m *Metrics) Gauge(name, help string, fn func() float64) {
	m.factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      name,
		Help:      help,
	}, fn)
}

// Middleware records count and latency of every request
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := ctx.Request.Method
		m.requests.WithLabelValues(route, method, strconv.Itoa(ctx.Writer.Status())).Inc()
		m.duration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
	return gin.WrapH(h)
}

// Gatherer exposes the registry, mostly for tests
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
