package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder is what the fetching and serving code reports to.
type Recorder interface {
	IncUpstreamRequests(status int)
	IncRateLimited()
	IncCacheHits()
	IncCacheMisses()
	IncFetchFailures()
	ObserveSummaryDuration(duration time.Duration)
}

// Prometheus backed recorder.
type Prometheus struct {
	upstreamRequests *prometheus.CounterVec
	rateLimited      prometheus.Counter
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	fetchFailures    prometheus.Counter
	summaryDuration  prometheus.Histogram
}

// NewPrometheus registers the collectors on the given registerer.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)

	return &Prometheus{
		upstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "leaguestats_upstream_requests_total",
			Help: "Requests sent to the Riot API by status class",
		}, []string{"status"}),

		rateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "leaguestats_upstream_rate_limited_total",
			Help: "Responses with status 429",
		}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "leaguestats_match_cache_hits_total",
			Help: "Match cache hits",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "leaguestats_match_cache_misses_total",
			Help: "Match cache misses",
		}),

		fetchFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "leaguestats_match_fetch_failures_total",
			Help: "Matches dropped from a batch because the fetch failed",
		}),

		summaryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "leaguestats_summary_duration_seconds",
			Help:    "Time to build a player summary",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
	}
}

func (m *Prometheus) IncUpstreamRequests(status int) {
	m.upstreamRequests.WithLabelValues(statusBucket(status)).Inc()
}

func (m *Prometheus) IncRateLimited() {
	m.rateLimited.Inc()
}

func (m *Prometheus) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *Prometheus) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *Prometheus) IncFetchFailures() {
	m.fetchFailures.Inc()
}

func (m *Prometheus) ObserveSummaryDuration(duration time.Duration) {
	m.summaryDuration.Observe(duration.Seconds())
}

func statusBucket(code int) string {
	switch {
	case code == 0:
		return "error"
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

// Noop drops everything.
type Noop struct{}

func (Noop) IncUpstreamRequests(_ int)              {}
func (Noop) IncRateLimited()                        {}
func (Noop) IncCacheHits()                          {}
func (Noop) IncCacheMisses()                        {}
func (Noop) IncFetchFailures()                      {}
func (Noop) ObserveSummaryDuration(_ time.Duration) {}
