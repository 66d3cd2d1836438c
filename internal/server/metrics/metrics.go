// Package metrics exposes Prometheus metrics of the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postkeeper_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "code"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postkeeper_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "code"},
	)

	// Posts
	postMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postkeeper_post_mutations_total",
			Help: "Total number of applied post mutations.",
		},
		[]string{"kind"}, // create, update, delete
	)

	// Cache
	cacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postkeeper_cache_requests_total",
			Help: "Posts list cache lookups by result.",
		},
		[]string{"result"}, // hit, miss, error
	)
)

var registerOnce sync.Once

// Register registers all collectors in the default registry. Safe to call many times.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,
			postMutations,
			cacheRequests,
		)
	})
}

// Handler returns the /metrics handler
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveHTTPRequest(method, route string, code int, d time.Duration) {
	c := strconv.Itoa(code)
	httpRequests.WithLabelValues(method, route, c).Inc()
	httpDuration.WithLabelValues(method, route, c).Observe(d.Seconds())
}

func IncPostMutation(kind string) { postMutations.WithLabelValues(kind).Inc() }

func IncCacheHit()   { cacheRequests.WithLabelValues("hit").Inc() }
func IncCacheMiss()  { cacheRequests.WithLabelValues("miss").Inc() }
func IncCacheError() { cacheRequests.WithLabelValues("error").Inc() }
