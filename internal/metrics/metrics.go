// Package metrics holds the Prometheus collectors for upstream calls,
// aggregation failures and the JSON API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gitdash_upstream_requests_total",
			Help: "Requests sent to the hosting platform APIs.",
		},
		[]string{"platform", "status"},
	)

	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gitdash_upstream_request_duration_seconds",
			Help:    "Duration of requests to the hosting platform APIs.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"platform"},
	)

	aggregationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gitdash_aggregation_failures_total",
			Help: "Aggregation operations that returned a failure result.",
		},
		[]string{"operation", "kind"},
	)

	apiRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gitdash_http_requests_total",
			Help: "Requests served by the JSON API.",
		},
		[]string{"method", "endpoint", "status"},
	)

	apiDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gitdash_http_request_duration_seconds",
			Help:    "Duration of JSON API requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// ObserveUpstream records one upstream call. status is 0 when the request
// never got a response.
func ObserveUpstream(platform string, status int, elapsed time.Duration) {
	label := "error"
	if status != 0 {
		label = strconv.Itoa(status)
	}
	upstreamRequests.WithLabelValues(platform, label).Inc()
	upstreamDuration.WithLabelValues(platform).Observe(elapsed.Seconds())
}

// IncAggregationFailure counts a failure result of an aggregation operation.
func IncAggregationFailure(operation, kind string) {
	aggregationFailures.WithLabelValues(operation, kind).Inc()
}

// ObserveAPIRequest records one served API request.
func ObserveAPIRequest(method, endpoint string, status int, elapsed time.Duration) {
	apiRequests.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	apiDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// Transport counts upstream requests per platform.
type Transport struct {
	Platform string
	Next     http.RoundTripper
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.Next
	if next == nil {
		next = http.DefaultTransport
	}
	start := time.Now()
	resp, err := next.RoundTrip(req)
	if err != nil {
		ObserveUpstream(t.Platform, 0, time.Since(start))
		return nil, err
	}
	ObserveUpstream(t.Platform, resp.StatusCode, time.Since(start))
	return resp, nil
}
