// Package telemetry exposes Prometheus metrics for the healthboard server:
// HTTP request counts and latencies, login outcomes, and entity mutation
// counts per collection.
package telemetry

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthboard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "healthboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// LoginAttempts counts session gate outcomes, labelled success/failure.
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthboard_login_attempts_total",
			Help: "Total number of login attempts by outcome",
		},
		[]string{"result", "role"},
	)

	// EntityMutations counts create/update/delete operations per collection.
	EntityMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthboard_entity_mutations_total",
			Help: "Total number of entity mutations by collection and operation",
		},
		[]string{"entity", "op"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		LoginAttempts,
		EntityMutations,
	)
}

// Middleware records request counts and latencies per route.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			httpRequestsTotal.WithLabelValues(
				c.Request().Method, path, strconv.Itoa(c.Response().Status)).Inc()
			httpRequestDuration.WithLabelValues(
				c.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler serves the Prometheus text exposition endpoint.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
