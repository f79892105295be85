package usecase

import (
	"math"
	"time"

	"github.com/MMN3003/tokenrates/src/rate/domain"
	"github.com/shopspring/decimal"
)

// minRate is the smallest rate representable at RateScale.
var minRate = decimal.New(1, -domain.RateScale)

// recomputeLocked rebuilds every live rate from its baseline:
//
//	rate = base * (1 + (demand[to]/demand[from] - 1) * demandInfluence)
//	            * (1 + ln(volume+1)/10 * volumeInfluence)
//	            * jitter
//
// Callers must hold e.mu for writing.
func (e *Engine) recomputeLocked(trigger domain.Trigger) {
	start := time.Now()

	for i := range e.pairs {
		p := &e.pairs[i]
		p.Rate = e.computeRate(p.FromToken, p.ToToken)
		e.observer.RatePublished(*p)
	}

	took := time.Since(start)
	e.observer.RatesRecomputed(trigger, took)
	e.logger.Debugf("recomputed %d rates (trigger=%s, took=%s)", len(e.pairs), trigger, took)
}

// computeRate derives one pair's rate from its default. The 1.0 base for a
// pair without a default is unreachable through the public API: the live
// table only ever holds default pairs, and RecordSwap on any other pair
// tracks volume without adding a rate entry.
func (e *Engine) computeRate(from, to string) decimal.Decimal {
	key := domain.PairKey(from, to)

	volume := e.volume[key].InexactFloat64()
	volumeFactor := math.Log(volume+1) / 10

	demandFactor := e.demandLocked(to) / e.demandLocked(from)

	baseRate := 1.0
	if i, ok := e.defaultIndex[key]; ok {
		baseRate = e.defaults[i].Rate.InexactFloat64()
	}

	rate := baseRate *
		(1 + (demandFactor-1)*e.demandInfluence) *
		(1 + volumeFactor*e.volumeInfluence) *
		e.jitter()

	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		e.logger.Errorf("non-finite rate for %s, keeping baseline %v", key, baseRate)
		rate = baseRate
	}

	rounded := decimal.NewFromFloat(rate).Round(domain.RateScale)
	if rounded.LessThan(minRate) {
		e.logger.Warnf("rate for %s floored at %s (computed %v)", key, minRate, rate)
		return minRate
	}
	return rounded
}

// demandLocked returns the demand of token, treating a missing or
// non-positive entry as the floor so the demand ratio stays defined.
func (e *Engine) demandLocked(token string) float64 {
	d, ok := e.demand[token]
	if !ok {
		return 1.0
	}
	if d < domain.MinDemand {
		e.logger.Errorf("demand for %s is %v, below floor %v", token, d, domain.MinDemand)
		return domain.MinDemand
	}
	return d
}
