package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "covid19_tracker_upstream_requests_total",
	Help: "Requests made to the disease.sh API",
}, []string{"endpoint", "result"})

var UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "covid19_tracker_upstream_request_duration_seconds",
	Help:    "Latency of requests made to the disease.sh API",
	Buckets: prometheus.DefBuckets,
}, []string{"endpoint"})

var CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "covid19_tracker_cache_lookups_total",
	Help: "Upstream response cache lookups",
}, []string{"result"})

var ViewTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "covid19_tracker_view_transitions_total",
	Help: "Applied dashboard view state transitions",
}, []string{"event"})

var ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "covid19_tracker_active_sessions",
	Help: "Dashboard sessions currently held in memory",
})
