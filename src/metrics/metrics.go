// Package metrics exposes rate engine activity as prometheus collectors.
package metrics

import (
	"time"

	"github.com/MMN3003/tokenrates/src/rate/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

var _ domain.Observer = (*RateMetrics)(nil)

// RateMetrics implements domain.Observer.
type RateMetrics struct {
	recomputations *prometheus.CounterVec
	recomputeTime  prometheus.Histogram
	rates          *prometheus.GaugeVec
	swaps          *prometheus.CounterVec
	swapVolume     *prometheus.CounterVec
	demandUpdates  *prometheus.CounterVec
	resets         prometheus.Counter
}

// New builds the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*RateMetrics, error) {
	m := &RateMetrics{
		recomputations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tokenrates",
			Subsystem: "engine",
			Name:      "recomputations_total",
			Help:      "Full rate recomputations segmented by trigger.",
		}, []string{"trigger"}),
		recomputeTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tokenrates",
			Subsystem: "engine",
			Name:      "recompute_duration_seconds",
			Help:      "Time spent recomputing every rate.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		rates: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "tokenrates",
			Subsystem: "engine",
			Name:      "rate",
			Help:      "Current exchange rate per directed pair.",
		}, []string{"from", "to"}),
		swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tokenrates",
			Subsystem: "engine",
			Name:      "swaps_recorded_total",
			Help:      "Swaps recorded per directed pair.",
		}, []string{"from", "to"}),
		swapVolume: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tokenrates",
			Subsystem: "engine",
			Name:      "swap_volume_total",
			Help:      "Cumulative input amount recorded per directed pair.",
		}, []string{"from", "to"}),
		demandUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tokenrates",
			Subsystem: "engine",
			Name:      "demand_updates_total",
			Help:      "Demand updates segmented by outcome.",
		}, []string{"outcome"}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tokenrates",
			Subsystem: "engine",
			Name:      "resets_total",
			Help:      "Number of times the rate table was reset to defaults.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.recomputations, m.recomputeTime, m.rates, m.swaps, m.swapVolume, m.demandUpdates, m.resets,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *RateMetrics) RatesRecomputed(trigger domain.Trigger, duration time.Duration) {
	m.recomputations.WithLabelValues(string(trigger)).Inc()
	m.recomputeTime.Observe(duration.Seconds())
}

func (m *RateMetrics) RatePublished(pair domain.TokenPair) {
	m.rates.WithLabelValues(pair.FromToken, pair.ToToken).Set(pair.Rate.InexactFloat64())
}

func (m *RateMetrics) SwapRecorded(from, to string, amount decimal.Decimal) {
	m.swaps.WithLabelValues(from, to).Inc()
	m.swapVolume.WithLabelValues(from, to).Add(amount.InexactFloat64())
}

// DemandUpdated counts by outcome only; category labels are caller supplied
// and unbounded.
func (m *RateMetrics) DemandUpdated(_ string, outcome domain.DemandOutcome) {
	m.demandUpdates.WithLabelValues(string(outcome)).Inc()
}

func (m *RateMetrics) RatesReset() {
	m.resets.Inc()
}
