package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// KYC parse outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeMalformed   = "malformed"
	OutcomeLoaderError = "loader_error"
	OutcomeTooLarge    = "too_large"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	// KYC document parses by outcome
	KYCParses *prometheus.CounterVec

	// Time spent loading and extracting a KYC document
	KYCParseLatency prometheus.Histogram

	VotesCast prometheus.Counter

	// HTTP requests by method, route and status
	HTTPRequests *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		KYCParses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "voterkyc_kyc_parses_total",
			Help: "Offline KYC document parses by outcome",
		}, []string{"outcome"}),

		KYCParseLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "voterkyc_kyc_parse_duration_seconds",
			Help:    "Duration of offline KYC document loading and extraction",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),

		VotesCast: factory.NewCounter(prometheus.CounterOpts{
			Name: "voterkyc_votes_cast_total",
			Help: "Total number of votes accepted",
		}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "voterkyc_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
	}
}

// ObserveKYCParse records one parse attempt.
func (m *Metrics) ObserveKYCParse(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.KYCParses.WithLabelValues(outcome).Inc()
	m.KYCParseLatency.Observe(d.Seconds())
}

// IncrementVotesCast records an accepted vote.
func (m *Metrics) IncrementVotesCast() {
	if m != nil {
		m.VotesCast.Inc()
	}
}

// IncrementHTTPRequest records a served request.
func (m *Metrics) IncrementHTTPRequest(method, route, status string) {
	if m != nil {
		m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	}
}
