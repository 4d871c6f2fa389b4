package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveKYCParse(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveKYCParse(OutcomeSuccess, 2*time.Millisecond)
	m.ObserveKYCParse(OutcomeSuccess, time.Millisecond)
	m.ObserveKYCParse(OutcomeMalformed, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.KYCParses.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.KYCParses.WithLabelValues(OutcomeMalformed)))
}

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementVotesCast()
	m.IncrementHTTPRequest("POST", "/api/v1/votes", "201")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.VotesCast))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/api/v1/votes", "201")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveKYCParse(OutcomeSuccess, time.Millisecond)
		m.IncrementVotesCast()
		m.IncrementHTTPRequest("GET", "/", "200")
	})
}
