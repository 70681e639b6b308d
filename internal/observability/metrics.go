package observability

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timesheet_service",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, by route, method and status.",
	}, []string{"route", "method", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "timesheet_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	httpErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timesheet_service",
		Subsystem: "http",
		Name:      "errors_total",
		Help:      "Error responses, by route, method and error code.",
	}, []string{"route", "method", "code"})

	entryMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timesheet_service",
		Subsystem: "entries",
		Name:      "mutations_total",
		Help:      "Timesheet entry writes, by operation.",
	}, []string{"op"})

	summaryCache = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timesheet_service",
		Subsystem: "summary_cache",
		Name:      "lookups_total",
		Help:      "Summary cache lookups, by result.",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, httpErrors, entryMutations, summaryCache)
}

// RecordError increments the error counter for a failed request.
func RecordError(route, method, code string) {
	httpErrors.WithLabelValues(route, method, code).Inc()
}

// RecordEntryMutation counts a successful entry write ("create", "update", "delete").
func RecordEntryMutation(op string) {
	entryMutations.WithLabelValues(op).Inc()
}

// RecordSummaryCache counts a summary cache lookup ("hit", "miss", "error").
func RecordSummaryCache(result string) {
	summaryCache.WithLabelValues(result).Inc()
}

// RequestLogger logs each request and records its latency.
func RequestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		route := c.Route().Path
		status := c.Response().StatusCode()
		httpRequests.WithLabelValues(route, c.Method(), strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(route, c.Method()).Observe(elapsed.Seconds())

		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", elapsed),
		)
		return err
	}
}
