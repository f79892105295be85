package metrics

import (
	"testing"
	"time"

	"github.com/MMN3003/tokenrates/src/rate/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.RatesRecomputed(domain.TriggerSwap, 3*time.Millisecond)
	m.RatesRecomputed(domain.TriggerSwap, time.Millisecond)
	m.RatesRecomputed(domain.TriggerSchedule, time.Millisecond)
	m.RatePublished(domain.TokenPair{FromToken: "STX", ToToken: "VIZ", Rate: decimal.RequireFromString("2.2508")})
	m.SwapRecorded("STX", "VIZ", decimal.NewFromInt(100))
	m.SwapRecorded("STX", "VIZ", decimal.NewFromInt(50))
	m.DemandUpdated("CREATIVE", domain.DemandApplied)
	m.DemandUpdated("POETRY", domain.DemandIgnored)
	m.RatesReset()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.recomputations.WithLabelValues("swap")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recomputations.WithLabelValues("schedule")))
	assert.Equal(t, 2.2508, testutil.ToFloat64(m.rates.WithLabelValues("STX", "VIZ")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.swaps.WithLabelValues("STX", "VIZ")))
	assert.Equal(t, 150.0, testutil.ToFloat64(m.swapVolume.WithLabelValues("STX", "VIZ")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.demandUpdates.WithLabelValues("applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.demandUpdates.WithLabelValues("ignored")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resets))
	assert.Equal(t, 1, testutil.CollectAndCount(m.recomputeTime))
}

func TestNewRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}
