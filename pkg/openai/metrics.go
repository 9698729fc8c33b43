package openai

import (
	"errors"
	"time"

	// Packages
	llm "github.com/mutablelogic/go-llm-sdk"
	prometheus "github.com/prometheus/client_golang/prometheus"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// metrics tracks requests by operation. A nil *metrics records nothing.
type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	tokensTotal     *prometheus.CounterVec
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	metricsNamespace = "llmsdk"
)

// Request status label values
const (
	StatusSuccess = "success"
	StatusRemote  = "remote_error"
	StatusError   = "error"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "requests_total",
				Help:      "Total number of API requests",
			},
			[]string{"operation", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "request_duration_seconds",
				Help:      "Duration of API requests in seconds",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"},
		),
		tokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "tokens_total",
				Help:      "Total number of tokens reported by the API",
			},
			[]string{"operation", "type"},
		),
	}
	// Register all collectors, or none
	collectors := []prometheus.Collector{m.requestsTotal, m.requestDuration, m.tokensTotal}
	for i, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			for _, registered := range collectors[:i] {
				registerer.Unregister(registered)
			}
			return nil, err
		}
	}
	return m, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (m *metrics) observe(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(operation, status(err)).Inc()
	m.requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *metrics) tokens(operation string, prompt, completion uint) {
	if m == nil {
		return
	}
	if prompt > 0 {
		m.tokensTotal.WithLabelValues(operation, "prompt").Add(float64(prompt))
	}
	if completion > 0 {
		m.tokensTotal.WithLabelValues(operation, "completion").Add(float64(completion))
	}
}

func status(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, llm.ErrRemote):
		return StatusRemote
	default:
		return StatusError
	}
}
