package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter counts all HTTP requests with labels
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDurationHistogram records request duration in seconds
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// LedgerEntriesCounter counts appended stock ledger entries by type
	LedgerEntriesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_ledger_entries_total",
			Help: "Total number of stock ledger entries appended",
		},
		[]string{"transaction_type"},
	)

	// ClampedRemovalsCounter counts removals that were clamped at zero stock
	ClampedRemovalsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stock_clamped_removals_total",
			Help: "Total number of stock removals clamped to available stock",
		},
	)
)

func init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDurationHistogram)
	prometheus.MustRegister(LedgerEntriesCounter)
	prometheus.MustRegister(ClampedRemovalsCounter)
}

// Middleware records request count and duration for every handled request.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := strconv.Itoa(c.Response().StatusCode())
		method := c.Method()
		path := c.Route().Path

		RequestCounter.WithLabelValues(method, path, status).Inc()
		RequestDurationHistogram.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler exposes the prometheus scrape endpoint as a Fiber handler.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
