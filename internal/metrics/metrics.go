package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UpstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "humanitix_upstream_requests_total",
		Help: "Requests issued to the Humanitix API by endpoint and outcome",
	}, []string{"endpoint", "outcome"})
	UpstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "humanitix_upstream_request_duration_seconds",
		Help:    "Latency of Humanitix API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Inbound requests by route pattern and status",
	}, []string{"route", "status"})
)

func init() {
	prometheus.MustRegister(
		UpstreamRequests,
		UpstreamDuration,
		HTTPRequests,
	)
}

// ObserveUpstream records one outbound call. outcome is "ok", "transport",
// "status" or "decode".
func ObserveUpstream(endpoint, outcome string, elapsed time.Duration) {
	UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	UpstreamDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func ObserveHTTP(route string, status int) {
	HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
