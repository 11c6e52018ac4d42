package xhr

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeLoad    = "load"
	OutcomeAbort   = "abort"
	OutcomeTimeout = "timeout"
	OutcomeError   = "error"
)

// Metrics counts finished requests by outcome. A nil *Metrics records
// nothing.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers on the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.DefaultRegisterer)
}

func NewMetricsWithRegistry(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		requestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "fossen_xhr_requests_total",
				Help: "Total number of finished xhr requests",
			},
			[]string{"outcome"},
		),
		requestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fossen_xhr_request_duration_seconds",
				Help:    "Duration of xhr requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
	}
}

func (m *Metrics) RecordRequest(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(outcome).Inc()
	m.requestDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func outcomeLabel(status *int, response any) string {
	if status != nil {
		return OutcomeLoad
	}
	switch response {
	case Abort:
		return OutcomeAbort
	case Timeout:
		return OutcomeTimeout
	}
	return OutcomeError
}
