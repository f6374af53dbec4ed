// Package metrics provides the centralized Prometheus registry for the GenAI
// list client. Metrics are defined in their respective packages (pager,
// client, cache, ratelimit) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Pager Metrics (pkg/pager):
//   - genai_pager_pages_fetched_total{collection} (Counter): Pages fetched per collection
//   - genai_pager_fetch_duration_seconds{collection} (Histogram): Page fetch latency
//   - genai_pager_fetch_errors_total{collection} (Counter): Failed page fetches
//   - genai_pager_exhausted_total{collection} (Counter): Advances attempted past the final page
//
// Request Metrics (pkg/client):
//   - genai_requests_total{endpoint, status} (Counter): Requests by endpoint and HTTP status
//   - genai_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - genai_errors_total{class} (Counter): Errors by class (client, server, rate_limit, network)
//
// Retry Metrics (pkg/client):
//   - genai_retries_total{error_class} (Counter): Retry attempts by error class
//   - genai_retry_backoff_seconds{error_class} (Histogram): Backoff duration by error class
//   - genai_retry_exhausted_total{error_class} (Counter): Requests that exhausted max retries
//
// Cache Metrics (pkg/cache):
//   - genai_cache_hits_total{layer="redis"} (Counter): Cache hits by layer
//   - genai_cache_misses_total (Counter): Cache misses
//   - genai_cache_size_bytes{layer="redis"} (Gauge): Current cache size in bytes
//   - genai_304_responses_total (Counter): 304 Not Modified responses
//   - genai_conditional_requests_total (Counter): Conditional requests sent with If-None-Match
//   - genai_cache_errors_total{operation} (Counter): Cache operation errors
//
// Quota Metrics (pkg/ratelimit):
//   - genai_quota_requests_remaining (Gauge): Requests remaining in the quota window
//   - genai_quota_blocks_total (Counter): Requests blocked at the critical threshold
//   - genai_quota_throttles_total (Counter): Requests throttled at the warning threshold
//
// Example Prometheus Queries:
//
//   # Pages fetched per second by collection
//   rate(genai_pager_pages_fetched_total[5m])
//
//   # Cache Hit Rate
//   sum(rate(genai_cache_hits_total[5m])) /
//   (sum(rate(genai_cache_hits_total[5m])) + sum(rate(genai_cache_misses_total[5m])))
//
//   # Request Error Rate
//   rate(genai_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(genai_request_duration_seconds_bucket[5m]))
