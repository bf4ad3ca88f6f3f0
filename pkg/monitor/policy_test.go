package monitor

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPolicyMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPolicyMetrics(reg)

	m.ObserveRequest("ok")
	m.ObserveRequest("ok")
	m.ObserveRequest("invalid_network")
	m.ObserveVerdict("internal")
	m.ObserveInternal(2)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("invalid_network")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.KeyVerdictsTotal.WithLabelValues("internal")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.InternalPlaceholders))
}

func TestNilPolicyMetrics(t *testing.T) {
	var m *PolicyMetrics

	assert.NotPanics(t, func() {
		m.ObserveRequest("ok")
		m.ObserveVerdict("internal")
		m.ObserveInternal(1)
	})
}
