package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// RateUseCase is the in-process surface of the rate engine.
type RateUseCase interface {
	GetRate(from, to string) (decimal.Decimal, bool)
	EstimateOutput(from, to string, amount decimal.Decimal) (Estimate, bool)
	IsValidSwap(from, to string, amount decimal.Decimal) bool
	UpdateTokenDemand(category string, score float64)
	RecognisesCategory(category string) bool
	RecordSwap(from, to string, amount decimal.Decimal)
	GetAllTokenPairs() []TokenPair
	GetTokenPairs(token string) []TokenPair
	Demand(token string) (float64, bool)
	ResetRates()
}

// JitterFunc returns the multiplicative noise applied to one recomputed rate.
type JitterFunc func() float64

// Observer is notified about engine activity. Implementations must not call
// back into the engine: notifications are delivered while the state lock is held.
type Observer interface {
	RatesRecomputed(trigger Trigger, duration time.Duration)
	RatePublished(pair TokenPair)
	SwapRecorded(from, to string, amount decimal.Decimal)
	DemandUpdated(category string, outcome DemandOutcome)
	RatesReset()
}

// ErrEmptyContent is returned by analyzers given a contribution without text.
var ErrEmptyContent = errors.New("contribution has no content to analyze")

// ContentAnalyzer categorises and scores contributed content.
type ContentAnalyzer interface {
	Analyze(ctx context.Context, c Contribution) (Analysis, error)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) RatesRecomputed(Trigger, time.Duration) {}
func (NopObserver) RatePublished(TokenPair) {}
func (NopObserver) SwapRecorded(string, string, decimal.Decimal) {}
func (NopObserver) DemandUpdated(string, DemandOutcome) {}
func (NopObserver) RatesReset() {}
