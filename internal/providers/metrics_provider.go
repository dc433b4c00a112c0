package providers

import (
	"time"

	"focustimer/internal/structures"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes of a stop-and-save attempt, used as the "outcome" label.
const (
	OutcomeSaved    = "saved"
	OutcomeTooShort = "too_short"
	OutcomeFailed   = "failed"
)

var timerStates = []string{"idle", "running", "paused"}

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits(view string)
	IncCacheMisses(view string)
	ObservePersistenceDuration(duration time.Duration)
	SetSessionsTotal(count int)
	IncSessionsRecorded(outcome string)
	ObserveTimer(state string, elapsedSeconds int)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           *prometheus.CounterVec
	cacheMisses         *prometheus.CounterVec
	persistenceDuration prometheus.Histogram
	sessionsTotal       prometheus.Gauge
	sessionsRecorded    *prometheus.CounterVec
	timerElapsed        prometheus.Gauge
	timerState          *prometheus.GaugeVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits(view string) {
	m.cacheHits.WithLabelValues(view).Inc()
}

func (m *MetricsProvider) IncCacheMisses(view string) {
	m.cacheMisses.WithLabelValues(view).Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetSessionsTotal(count int) {
	m.sessionsTotal.Set(float64(count))
}

func (m *MetricsProvider) IncSessionsRecorded(outcome string) {
	m.sessionsRecorded.WithLabelValues(outcome).Inc()
}

// ObserveTimer publishes the elapsed seconds and flips the state gauge so
// exactly one state reads 1.
func (m *MetricsProvider) ObserveTimer(state string, elapsedSeconds int) {
	m.timerElapsed.Set(float64(elapsedSeconds))
	for _, s := range timerStates {
		v := 0.0
		if s == state {
			v = 1
		}
		m.timerState.WithLabelValues(s).Set(v)
	}
}

func httpStatusBucket(code int) string {
	switch {
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

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "focustimer_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "focustimer_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "focustimer_cache_hits_total",
			Help: "Stats response cache hits by view",
		}, []string{"view"}),

		cacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "focustimer_cache_misses_total",
			Help: "Stats response cache misses by view",
		}, []string{"view"}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "focustimer_persistence_duration_seconds",
			Help:    "Duration of snapshot writes in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		sessionsTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "focustimer_sessions_total",
			Help: "Number of stored sessions for the configured user",
		}),

		sessionsRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "focustimer_sessions_recorded_total",
			Help: "Stop-and-save attempts by outcome",
		}, []string{"outcome"}),

		timerElapsed: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "focustimer_timer_elapsed_seconds",
			Help: "Elapsed seconds of the current timer session",
		}),

		timerState: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "focustimer_timer_state",
			Help: "Current timer state (1 for the active state)",
		}, []string{"state"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits(_ string)                            {}
func (n *noopMetrics) IncCacheMisses(_ string)                          {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) SetSessionsTotal(_ int)                           {}
func (n *noopMetrics) IncSessionsRecorded(_ string)                     {}
func (n *noopMetrics) ObserveTimer(_ string, _ int)                     {}
