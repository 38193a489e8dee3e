// Package metrics defines the custom Prometheus metrics for the atlas admin
// API. It is the single source of truth for metric names, labels, and help
// strings; all metrics register with the default registry at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "atlas"

// UpstreamRequestsTotal counts calls against the atlas-auth backend.
// Labels:
//   - method: HTTP verb of the call
//   - outcome: "success", "timeout", "connection", "http_status" or "transport"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the auth backend, by outcome.",
	},
	[]string{"method", "outcome"},
)

// UpstreamRequestDuration measures the wall time of one backend call,
// including connection setup and body read.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests to the auth backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// SessionsActive tracks the current number of entries in the session registry.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Current number of authenticated sessions held in the registry.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "inactive" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
