// Package metrics provides the centralized Prometheus registry reference for
// the MTG Commander backend. All metrics are defined in their respective
// packages (scryfall, cache, ratelimit) to maintain modularity and avoid
// circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the backend.
// All metrics are automatically registered via promauto in their respective
// packages and exposed by the server on /metrics.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/scryfall):
//   - scryfall_requests_total{endpoint, status} (Counter): Requests by endpoint and HTTP status
//   - scryfall_request_duration_seconds{endpoint} (Histogram): Request duration incl. gate wait
//   - scryfall_errors_total{class} (Counter): Errors by class (not_found, transport, validation)
//
// Cache Metrics (pkg/cache):
//   - scryfall_cache_hits_total{cache} (Counter): Cache hits by store ("cards", "rulings")
//   - scryfall_cache_misses_total{cache} (Counter): Cache misses by store
//   - scryfall_cache_entries{cache} (Gauge): Current entries by store (never shrinks)
//
// Gate Metrics (pkg/ratelimit):
//   - scryfall_gate_acquisitions_total (Counter): Successful pacing gate acquisitions
//   - scryfall_gate_wait_seconds (Histogram): Gate wait time incl. the pacing delay
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(scryfall_cache_hits_total[5m])) /
//   (sum(rate(scryfall_cache_hits_total[5m])) + sum(rate(scryfall_cache_misses_total[5m])))
//
//   # Not-Found Rate
//   rate(scryfall_errors_total{class="not_found"}[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(scryfall_request_duration_seconds_bucket[5m]))
//
//   # Gate Contention
//   histogram_quantile(0.95, rate(scryfall_gate_wait_seconds_bucket[5m]))
