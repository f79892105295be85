package usecase

import (
	"math"
	"sync"
	"time"

	"github.com/MMN3003/tokenrates/src/logger"
	cron_adapter "github.com/MMN3003/tokenrates/src/rate/adapter/cron"
	"github.com/MMN3003/tokenrates/src/rate/domain"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

var _ domain.RateUseCase = (*Engine)(nil)

// Engine owns the live rate table together with the demand and volume tables
// it is derived from. A single lock guards all three.
type Engine struct {
	mu sync.RWMutex

	defaults     []domain.TokenPair
	defaultIndex map[string]int
	pairs        []domain.TokenPair
	pairIndex    map[string]int
	demand       map[string]float64
	volume       map[string]decimal.Decimal

	tokens          []string
	categories      map[string]string
	demandInfluence float64
	volumeInfluence float64
	interval        time.Duration

	jitter    domain.JitterFunc
	observer  domain.Observer
	cronGuard cron_adapter.RunGuard
	logger    *logger.Logger

	schedMu   sync.Mutex
	scheduler *cron.Cron
}

// Option functional options
type Option func(*Engine)

func WithJitter(j domain.JitterFunc) Option { return func(e *Engine) { e.jitter = j } }
func WithObserver(o domain.Observer) Option { return func(e *Engine) { e.observer = o } }

// WithCronGuard makes scheduled recomputations claim a run slot first so a
// slow run is never overlapped by the next tick.
func WithCronGuard(g cron_adapter.RunGuard) Option {
	return func(e *Engine) { e.cronGuard = g }
}

// NewEngine validates cfg and builds an engine whose live table is a copy of
// the default pairs.
func NewEngine(cfg Config, logg *logger.Logger, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		defaults:        append([]domain.TokenPair(nil), cfg.DefaultPairs...),
		defaultIndex:    make(map[string]int, len(cfg.DefaultPairs)),
		tokens:          append([]string(nil), cfg.Tokens...),
		categories:      make(map[string]string, len(cfg.Categories)),
		demandInfluence: cfg.DemandInfluence,
		volumeInfluence: cfg.VolumeInfluence,
		interval:        cfg.RecomputeInterval,
		jitter:          UniformJitter(DefaultJitterSpread),
		observer:        domain.NopObserver{},
		logger:          logg,
	}
	for i, p := range e.defaults {
		e.defaultIndex[p.Key()] = i
	}
	for category, token := range cfg.Categories {
		e.categories[category] = token
	}
	for _, opt := range opts {
		opt(e)
	}

	e.demand = make(map[string]float64, len(e.tokens))
	e.volume = make(map[string]decimal.Decimal, len(e.defaults))
	e.resetLocked()
	return e, nil
}

// ---------- QUERIES ----------

// GetRate returns the current rate of an active pair.
func (e *Engine) GetRate(from, to string) (decimal.Decimal, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	p, ok := e.activePairLocked(from, to)
	if !ok {
		return decimal.Zero, false
	}
	return p.Rate, true
}

// EstimateOutput quotes a swap of amount against the live table. The fee is
// charged on the input: output = (amount - amount*fee) * rate.
func (e *Engine) EstimateOutput(from, to string, amount decimal.Decimal) (domain.Estimate, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	p, ok := e.activePairLocked(from, to)
	if !ok || !p.InRange(amount) {
		return domain.Estimate{}, false
	}
	fee := amount.Mul(p.Fee)
	return domain.Estimate{
		OutputAmount: amount.Sub(fee).Mul(p.Rate),
		Fee:          fee,
	}, true
}

func (e *Engine) IsValidSwap(from, to string, amount decimal.Decimal) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	p, ok := e.activePairLocked(from, to)
	return ok && p.InRange(amount)
}

// GetAllTokenPairs returns the active pairs in table order.
func (e *Engine) GetAllTokenPairs() []domain.TokenPair {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]domain.TokenPair, 0, len(e.pairs))
	for _, p := range e.pairs {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

// GetTokenPairs returns the active pairs with token on either side.
func (e *Engine) GetTokenPairs(token string) []domain.TokenPair {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := []domain.TokenPair{}
	for _, p := range e.pairs {
		if p.IsActive && p.Involves(token) {
			out = append(out, p)
		}
	}
	return out
}

// Demand returns the demand weight of a token.
func (e *Engine) Demand(token string) (float64, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	d, ok := e.demand[token]
	return d, ok
}

// Volume returns the cumulative recorded volume of a directed pair.
func (e *Engine) Volume(from, to string) (decimal.Decimal, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	v, ok := e.volume[domain.PairKey(from, to)]
	return v, ok
}

// RecognisesCategory reports whether UpdateTokenDemand would act on category.
func (e *Engine) RecognisesCategory(category string) bool {
	_, ok := e.categories[category]
	return ok
}

func (e *Engine) activePairLocked(from, to string) (domain.TokenPair, bool) {
	i, ok := e.pairIndex[domain.PairKey(from, to)]
	if !ok || !e.pairs[i].IsActive {
		return domain.TokenPair{}, false
	}
	return e.pairs[i], true
}

// ---------- MUTATIONS ----------

// UpdateTokenDemand adds score/10 to the demand of the token mapped to
// category and recomputes every rate. Unrecognised categories are ignored;
// NaN and infinite scores are rejected. Demand never drops below MinDemand.
func (e *Engine) UpdateTokenDemand(category string, score float64) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		e.logger.Warnf("demand update rejected: category=%s score=%v", category, score)
		e.observer.DemandUpdated(category, domain.DemandRejected)
		return
	}

	token, ok := e.categories[category]
	if !ok {
		e.logger.Debugf("demand update ignored: unrecognised category %q", category)
		e.observer.DemandUpdated(category, domain.DemandIgnored)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.addDemandLocked(token, score/domain.ScoreScale)
	e.observer.DemandUpdated(category, domain.DemandApplied)
	e.recomputeLocked(domain.TriggerDemand)
}

// RecordSwap adds amount to the pair's volume and amount*0.01 to the demand
// of the token received, then recomputes every rate. The sending token's
// demand is left alone. Negative amounts are rejected.
func (e *Engine) RecordSwap(from, to string, amount decimal.Decimal) {
	if amount.IsNegative() {
		e.logger.Warnf("swap rejected: %s amount %s is negative", domain.PairKey(from, to), amount)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	key := domain.PairKey(from, to)
	e.volume[key] = e.volume[key].Add(amount)
	e.addDemandLocked(to, amount.Mul(decimal.NewFromFloat(domain.SwapDemandWeight)).InexactFloat64())
	e.observer.SwapRecorded(from, to, amount)
	e.recomputeLocked(domain.TriggerSwap)
}

// Recompute forces a full recomputation outside the schedule.
func (e *Engine) Recompute() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.recomputeLocked(domain.TriggerManual)
}

// ResetRates restores the default rate table, sets every demand weight back
// to 1.0 and zeroes every tracked volume.
func (e *Engine) ResetRates() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resetLocked()
	e.observer.RatesReset()
	e.logger.Infof("rates reset to defaults (%d pairs)", len(e.pairs))
}

func (e *Engine) resetLocked() {
	e.pairs = append(e.pairs[:0], e.defaults...)
	e.pairIndex = make(map[string]int, len(e.pairs))
	for i, p := range e.pairs {
		e.pairIndex[p.Key()] = i
	}

	for token := range e.demand {
		e.demand[token] = 1.0
	}
	for _, token := range e.tokens {
		e.demand[token] = 1.0
	}

	for key := range e.volume {
		e.volume[key] = decimal.Zero
	}
	for _, p := range e.defaults {
		e.volume[p.Key()] = decimal.Zero
	}
}

// addDemandLocked creates unknown tokens at 1.0 before applying delta.
func (e *Engine) addDemandLocked(token string, delta float64) {
	current, ok := e.demand[token]
	if !ok {
		current = 1.0
	}
	next := current + delta
	if next < domain.MinDemand {
		e.logger.Warnf("demand for %s floored at %v (would be %v)", token, domain.MinDemand, next)
		next = domain.MinDemand
	}
	e.demand[token] = next
}
