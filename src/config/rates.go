package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/MMN3003/tokenrates/src/rate/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDemandInfluence   = 0.1
	DefaultVolumeInfluence   = 0.05
	DefaultRecomputeInterval = time.Minute
)

type RatesConfig struct {
	Tokens            []string
	Categories        map[string]string
	// Keywords drive content analysis; every key is a category above.
	Keywords          map[string][]string
	// FallbackCategory is used for content matching no keyword.
	FallbackCategory  string
	Pairs             []domain.TokenPair
	DemandInfluence   float64
	VolumeInfluence   float64
	RecomputeInterval time.Duration
	// PairsFile is set when the table came from RATE_PAIRS_FILE.
	PairsFile string
}

// DefaultRates returns the built-in token universe and baseline pair table.
func DefaultRates() RatesConfig {
	return RatesConfig{
		Tokens: []string{"STX", "VIZ", "CREATIVE", "TECHNICAL", "EDUCATIONAL"},
		Categories: map[string]string{
			"CREATIVE":    "CREATIVE",
			"TECHNICAL":   "TECHNICAL",
			"EDUCATIONAL": "EDUCATIONAL",
		},
		Keywords: map[string][]string{
			"CREATIVE":    {"art", "music", "story", "poem", "design", "paint", "draw", "film"},
			"TECHNICAL":   {"code", "api", "algorithm", "database", "network", "protocol", "bug", "compiler"},
			"EDUCATIONAL": {"tutorial", "guide", "lesson", "course", "explain", "learn", "teach", "howto"},
		},
		FallbackCategory: "CREATIVE",
		Pairs: []domain.TokenPair{
			basePair("STX", "VIZ", "2.0", "0.01", "1", "1000", true),
			basePair("VIZ", "STX", "0.5", "0.01", "2", "2000", true),
			basePair("STX", "CREATIVE", "10", "0.02", "1", "500", true),
			basePair("CREATIVE", "STX", "0.1", "0.02", "10", "5000", true),
			basePair("STX", "TECHNICAL", "8", "0.02", "1", "500", true),
			basePair("TECHNICAL", "STX", "0.125", "0.02", "8", "4000", true),
			basePair("STX", "EDUCATIONAL", "12", "0.015", "1", "400", true),
			basePair("EDUCATIONAL", "STX", "0.0833", "0.015", "12", "4800", true),
			basePair("VIZ", "CREATIVE", "5", "0.02", "1", "1000", true),
			basePair("CREATIVE", "VIZ", "0.2", "0.02", "5", "5000", true),
			basePair("TECHNICAL", "EDUCATIONAL", "1.5", "0.03", "1", "1000", false),
			basePair("EDUCATIONAL", "TECHNICAL", "0.6667", "0.03", "1", "1500", false),
		},
		DemandInfluence:   DefaultDemandInfluence,
		VolumeInfluence:   DefaultVolumeInfluence,
		RecomputeInterval: DefaultRecomputeInterval,
	}
}

func basePair(from, to, rate, fee, min, max string, active bool) domain.TokenPair {
	return domain.TokenPair{
		FromToken: from,
		ToToken:   to,
		Rate:      decimal.RequireFromString(rate),
		Fee:       decimal.RequireFromString(fee),
		MinAmount: decimal.RequireFromString(min),
		MaxAmount: decimal.RequireFromString(max),
		IsActive:  active,
	}
}

// ---------- FILE ----------

type ratesFile struct {
	Tokens     []string          `yaml:"tokens"`
	Categories map[string]string   `yaml:"categories"`
	Keywords   map[string][]string `yaml:"keywords"`
	Fallback   string              `yaml:"fallback_category"`
	Pairs      []pairEntry         `yaml:"pairs"`
}

type pairEntry struct {
	From      string          `yaml:"from"`
	To        string          `yaml:"to"`
	Rate      decimal.Decimal `yaml:"rate"`
	Fee       decimal.Decimal `yaml:"fee"`
	MinAmount decimal.Decimal `yaml:"min_amount"`
	MaxAmount decimal.Decimal `yaml:"max_amount"`
	// Active defaults to true when omitted.
	Active *bool `yaml:"active"`
}

// LoadRatesFile reads a YAML pair table. Sections left out of the file keep
// their built-in values; influence weights and interval always come from env.
func LoadRatesFile(path string) (RatesConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RatesConfig{}, fmt.Errorf("read rates file: %w", err)
	}
	return ParseRates(raw)
}

func ParseRates(raw []byte) (RatesConfig, error) {
	var f ratesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return RatesConfig{}, fmt.Errorf("parse rates file: %w", err)
	}

	out := DefaultRates()
	if len(f.Tokens) > 0 {
		out.Tokens = f.Tokens
	}
	if f.Categories != nil {
		out.Categories = f.Categories
		out.Keywords = keywordsFor(f.Categories)
		out.FallbackCategory = firstCategory(f.Categories)
	}
	if f.Keywords != nil {
		out.Keywords = f.Keywords
	}
	if f.Fallback != "" {
		out.FallbackCategory = f.Fallback
	}
	if err := out.validateCategories(); err != nil {
		return RatesConfig{}, fmt.Errorf("parse rates file: %w", err)
	}
	if len(f.Pairs) > 0 {
		out.Pairs = make([]domain.TokenPair, 0, len(f.Pairs))
		for i, p := range f.Pairs {
			if p.From == "" || p.To == "" {
				return RatesConfig{}, fmt.Errorf("parse rates file: pair %d is missing from/to", i)
			}
			active := true
			if p.Active != nil {
				active = *p.Active
			}
			out.Pairs = append(out.Pairs, domain.TokenPair{
				FromToken: p.From,
				ToToken:   p.To,
				Rate:      p.Rate,
				Fee:       p.Fee,
				MinAmount: p.MinAmount,
				MaxAmount: p.MaxAmount,
				IsActive:  active,
			})
		}
	}
	return out, nil
}

// validateCategories checks that analysis can only produce categories the
// engine recognises.
func (r RatesConfig) validateCategories() error {
	if _, ok := r.Categories[r.FallbackCategory]; !ok {
		return fmt.Errorf("fallback category %q is not a configured category", r.FallbackCategory)
	}
	for category := range r.Keywords {
		if _, ok := r.Categories[category]; !ok {
			return fmt.Errorf("keywords given for unknown category %q", category)
		}
	}
	return nil
}

// keywordsFor matches each category on its own lowercased name.
func keywordsFor(categories map[string]string) map[string][]string {
	out := make(map[string][]string, len(categories))
	for category := range categories {
		out[category] = []string{strings.ToLower(category)}
	}
	return out
}

func firstCategory(categories map[string]string) string {
	names := make([]string, 0, len(categories))
	for category := range categories {
		names = append(names, category)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
