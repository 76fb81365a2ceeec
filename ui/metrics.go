package ui

import (
	"net/http"
	"strconv"
	"time"

	"hrdash/domain/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hrdash",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of dashboard HTTP requests broken down by surface, route and result.",
	}, []string{"surface", "route", "result"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hrdash",
		Subsystem: "http",
		Name:      "latency_seconds",
		Help:      "Latency distribution for dashboard HTTP requests.",
		Buckets: []float64{
			0.001, 0.002, 0.005,
			0.01, 0.02, 0.05,
			0.1, 0.2, 0.5,
			1, 2, 5,
		},
	}, []string{"surface", "route", "result"})

	renders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hrdash",
		Subsystem: "dashboard",
		Name:      "renders_total",
		Help:      "Dashboard renders broken down by whether the heatmap was requested.",
	}, []string{"heatmap"})

	sectionWarnings = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hrdash",
		Subsystem: "dashboard",
		Name:      "section_warnings_total",
		Help:      "Sections skipped during a render because of missing columns or a failure.",
	}, []string{"section"})
)

// Surfaces label which router served a request
const (
	surfaceHTML = "server"
	surfaceAPI  = "api"
)

func resultLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	default:
		return "2xx"
	}
}

func observeRequest(surface, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	result := resultLabel(status)
	httpRequests.WithLabelValues(surface, route, result).Inc()
	httpLatency.WithLabelValues(surface, route, result).Observe(elapsed.Seconds())
}

// observeRender records one render and its skipped sections
func observeRender(d *dashboard.Dashboard) {
	renders.WithLabelValues(strconv.FormatBool(d.Selection.ShowHeatmap)).Inc()
	for _, w := range d.Warnings {
		sectionWarnings.WithLabelValues(w.Section).Inc()
	}
}

// Metrics is the gin middleware recording request counts and latency per route
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observeRequest(surfaceHTML, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

// statusRecorder captures the status written by a net/http handler
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusRecorder) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// MetricsHandler is the chi variant of Metrics. The route pattern is read
// after the handler runs, once chi has resolved it.
func MetricsHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		observeRequest(surfaceAPI, route, rec.status, time.Since(start))
	})
}

// metricsExporter serves the default registry in the Prometheus text format
func metricsExporter() http.Handler {
	return promhttp.Handler()
}
