package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/session"
)

// Metrics holds all Prometheus collectors for the desktop backend.
var Metrics = struct {
	SavesTotal       *prometheus.CounterVec
	SaveErrors       prometheus.Counter
	ImportsTotal     *prometheus.CounterVec
	ReviewsSubmitted *prometheus.CounterVec
	WindowsOpen      prometheus.GaugeFunc
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics(sessions *session.Manager) {
	Metrics.SavesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "winxp_document_saves_total",
			Help: "Total document persists, by trigger (manual, debounce, interval, import, toggle, reset, init).",
		},
		[]string{"trigger"},
	)

	Metrics.SaveErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "winxp_document_save_errors_total",
			Help: "Total failed document persists (the store keeps serving from memory).",
		},
	)

	Metrics.ImportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "winxp_snapshot_imports_total",
			Help: "Total snapshot imports, by result (accepted, rejected).",
		},
		[]string{"result"},
	)

	Metrics.ReviewsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "winxp_reviews_submitted_total",
			Help: "Total public review submissions, by outcome (accepted, rejected).",
		},
		[]string{"outcome"},
	)

	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "winxp_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "winxp_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	if sessions != nil {
		Metrics.WindowsOpen = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "winxp_windows_open",
				Help: "Open windows across all active desktop sessions.",
			},
			func() float64 {
				return float64(sessions.OpenWindows())
			},
		)
		prometheus.MustRegister(Metrics.WindowsOpen)
	}

	prometheus.MustRegister(
		Metrics.SavesTotal,
		Metrics.SaveErrors,
		Metrics.ImportsTotal,
		Metrics.ReviewsSubmitted,
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
	)
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers (especially fasthttpadaptor).
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))
		endpoint := sanitizeEndpoint(path)

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// sanitizeEndpoint normalizes paths to avoid cardinality explosion.
func sanitizeEndpoint(path string) string {
	for _, prefix := range []string{"/api/videos/", "/api/reviews/", "/api/recycle-bin/", "/api/windows/"} {
		if strings.HasPrefix(path, prefix) && path != prefix {
			rest := path[len(prefix):]
			if i := strings.IndexByte(rest, '/'); i >= 0 {
				return prefix + ":id" + rest[i:]
			}
			if rest == "all" || rest == "purge" {
				return path
			}
			return prefix + ":id"
		}
	}
	return path
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}
