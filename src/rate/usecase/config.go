package usecase

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/MMN3003/tokenrates/src/rate/domain"
	"github.com/shopspring/decimal"
)

// MinRecomputeInterval is the finest schedule the cron runner can honour.
const MinRecomputeInterval = time.Second

var ErrInvalidConfig = errors.New("invalid rate engine config")

// Config is the fixed configuration the engine is built from.
type Config struct {
	// Tokens is the universe of known tokens; each starts with demand 1.0.
	Tokens []string
	// Categories maps a recognised contribution category to the token whose
	// demand it drives.
	Categories map[string]string
	// DefaultPairs is the baseline rate table, in iteration order.
	DefaultPairs      []domain.TokenPair
	DemandInfluence   float64
	VolumeInfluence   float64
	RecomputeInterval time.Duration
}

// Validate checks the invariants the engine relies on.
func (c Config) Validate() error {
	if len(c.Tokens) == 0 {
		return fmt.Errorf("%w: no tokens configured", ErrInvalidConfig)
	}
	known := make(map[string]struct{}, len(c.Tokens))
	for _, t := range c.Tokens {
		if t == "" {
			return fmt.Errorf("%w: empty token symbol", ErrInvalidConfig)
		}
		if _, dup := known[t]; dup {
			return fmt.Errorf("%w: duplicate token %q", ErrInvalidConfig, t)
		}
		known[t] = struct{}{}
	}

	for category, token := range c.Categories {
		if _, ok := known[token]; !ok {
			return fmt.Errorf("%w: category %q maps to unknown token %q", ErrInvalidConfig, category, token)
		}
	}

	if err := validateInfluence("demand influence", c.DemandInfluence); err != nil {
		return err
	}
	if err := validateInfluence("volume influence", c.VolumeInfluence); err != nil {
		return err
	}
	if c.RecomputeInterval < MinRecomputeInterval {
		return fmt.Errorf("%w: recompute interval %s is below %s", ErrInvalidConfig, c.RecomputeInterval, MinRecomputeInterval)
	}

	seen := make(map[string]struct{}, len(c.DefaultPairs))
	for _, p := range c.DefaultPairs {
		if err := validatePair(p, known); err != nil {
			return err
		}
		if _, dup := seen[p.Key()]; dup {
			return fmt.Errorf("%w: duplicate pair %s", ErrInvalidConfig, p.Key())
		}
		seen[p.Key()] = struct{}{}
	}
	return nil
}

func validateInfluence(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: %s %v outside [0,1]", ErrInvalidConfig, name, v)
	}
	return nil
}

func validatePair(p domain.TokenPair, known map[string]struct{}) error {
	key := p.Key()
	if _, ok := known[p.FromToken]; !ok {
		return fmt.Errorf("%w: pair %s uses unknown token %q", ErrInvalidConfig, key, p.FromToken)
	}
	if _, ok := known[p.ToToken]; !ok {
		return fmt.Errorf("%w: pair %s uses unknown token %q", ErrInvalidConfig, key, p.ToToken)
	}
	if p.FromToken == p.ToToken {
		return fmt.Errorf("%w: pair %s trades a token with itself", ErrInvalidConfig, key)
	}
	if !p.Rate.IsPositive() {
		return fmt.Errorf("%w: pair %s rate must be positive", ErrInvalidConfig, key)
	}
	if p.Fee.IsNegative() || p.Fee.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: pair %s fee %s outside [0,1)", ErrInvalidConfig, key, p.Fee)
	}
	if p.MinAmount.IsNegative() {
		return fmt.Errorf("%w: pair %s min amount is negative", ErrInvalidConfig, key)
	}
	if p.MaxAmount.LessThan(p.MinAmount) {
		return fmt.Errorf("%w: pair %s max amount %s below min amount %s", ErrInvalidConfig, key, p.MaxAmount, p.MinAmount)
	}
	return nil
}
