package domain

import (
	"github.com/shopspring/decimal"
)

// TokenPair is a directed trading relationship. (A,B) and (B,A) are
// independent pairs with their own rate, fee and limits.
type TokenPair struct {
	FromToken string          `json:"from_token"`
	ToToken   string          `json:"to_token"`
	Rate      decimal.Decimal `json:"rate"`
	Fee       decimal.Decimal `json:"fee"`
	MinAmount decimal.Decimal `json:"min_amount"`
	MaxAmount decimal.Decimal `json:"max_amount"`
	IsActive  bool            `json:"is_active"`
}

// Key returns the volume table key for the pair.
func (p TokenPair) Key() string {
	return PairKey(p.FromToken, p.ToToken)
}

// Involves reports whether token is either side of the pair.
func (p TokenPair) Involves(token string) bool {
	return p.FromToken == token || p.ToToken == token
}

// InRange reports whether amount is inside [MinAmount, MaxAmount].
func (p TokenPair) InRange(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(p.MinAmount) && amount.LessThanOrEqual(p.MaxAmount)
}

// PairKey joins two tokens into the key used by the volume table ("STX-VIZ").
func PairKey(from, to string) string {
	return from + "-" + to
}

// Estimate is the result of quoting a swap against the live rate table.
type Estimate struct {
	OutputAmount decimal.Decimal `json:"output_amount"`
	Fee          decimal.Decimal `json:"fee"`
}

// Contribution is a piece of user content submitted for categorisation.
// When Category is set the analyzer is skipped and Score is used as-is.
type Contribution struct {
	Title       string
	Description string
	Category    string
	Score       *float64
}

// Analysis is the black-box verdict of the content analyzer.
type Analysis struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// Trigger identifies what caused a recomputation.
type Trigger string

const (
	TriggerSchedule Trigger = "schedule"
	TriggerSwap     Trigger = "swap"
	TriggerDemand   Trigger = "demand"
	TriggerManual   Trigger = "manual"
)

// DemandOutcome describes what happened to a demand update.
type DemandOutcome string

const (
	DemandApplied  DemandOutcome = "applied"
	DemandIgnored  DemandOutcome = "ignored"
	DemandRejected DemandOutcome = "rejected"
)

const (
	// MinDemand is the floor applied to every demand weight.
	MinDemand = 0.0001
	// RateScale is the number of decimal places stored for a rate.
	RateScale = 4
	// SwapDemandWeight is the demand added to the receiving token per unit swapped.
	SwapDemandWeight = 0.01
	// ScoreScale divides a contribution score before it is added to demand.
	ScoreScale = 10.0
)
