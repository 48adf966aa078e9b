// Package metrics provides Prometheus metrics for dirsize.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Replay metrics
	commandsReplayed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dirsize_commands_replayed_total",
			Help: "Total transcript commands applied to a tree",
		},
		[]string{"kind"},
	)

	nodesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dirsize_nodes_created_total",
			Help: "Total tree nodes created during replay",
		},
		[]string{"kind"},
	)

	sizeConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dirsize_size_conflicts_total",
			Help: "Files re-listed with a size different from the first one recorded",
		},
	)

	sizeComputations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dirsize_size_computations_total",
			Help: "Directory sizes computed rather than served from cache",
		},
	)

	analysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dirsize_analysis_duration_seconds",
			Help:    "Time to replay, aggregate and query a transcript",
			Buckets: prometheus.DefBuckets,
		},
	)

	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dirsize_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordCommand records one replayed command of the given kind.
func RecordCommand(kind string) {
	commandsReplayed.WithLabelValues(kind).Inc()
}

// RecordNodes records the directories and files a replay created.
func RecordNodes(dirs, files int) {
	nodesCreated.WithLabelValues("dir").Add(float64(dirs))
	nodesCreated.WithLabelValues("file").Add(float64(files))
}

// RecordConflicts records conflicting file sizes seen during a replay.
func RecordConflicts(n int) {
	sizeConflicts.Add(float64(n))
}

// RecordSizeComputations records directory sizes computed by an aggregator.
func RecordSizeComputations(n int) {
	sizeComputations.Add(float64(n))
}

// RecordAnalysis records how long an analysis took.
func RecordAnalysis(duration time.Duration) {
	analysisDuration.Observe(duration.Seconds())
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, path string, status int) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware counts every request by method, path and status.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		RecordHTTPRequest(r.Method, r.URL.Path, rec.status)
	})
}
