package config

import (
	"os"
	"testing"
	"time"

	"github.com/MMN3003/tokenrates/src/rate/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LISTEN_ADDR", "ENV", "DEMAND_INFLUENCE", "VOLUME_INFLUENCE", "RATE_RECOMPUTE_INTERVAL", "RATE_PAIRS_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, DefaultDemandInfluence, cfg.Rates.DemandInfluence)
	assert.Equal(t, DefaultVolumeInfluence, cfg.Rates.VolumeInfluence)
	assert.Equal(t, DefaultRecomputeInterval, cfg.Rates.RecomputeInterval)
	assert.Equal(t, DefaultRates().Pairs, cfg.Rates.Pairs)
	assert.Empty(t, cfg.Rates.PairsFile)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("ENV", "prod")
	t.Setenv("DEMAND_INFLUENCE", "0.25")
	t.Setenv("VOLUME_INFLUENCE", "0")
	t.Setenv("RATE_RECOMPUTE_INTERVAL", "30s")
	t.Setenv("RATE_PAIRS_FILE", "testdata/pairs.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, 0.25, cfg.Rates.DemandInfluence)
	assert.Equal(t, 0.0, cfg.Rates.VolumeInfluence)
	assert.Equal(t, 30*time.Second, cfg.Rates.RecomputeInterval)
	assert.Equal(t, "testdata/pairs.yaml", cfg.Rates.PairsFile)
	assert.Equal(t, []string{"STX", "VIZ", "MUSIC"}, cfg.Rates.Tokens)
	assert.Equal(t, map[string]string{"MUSIC": "MUSIC"}, cfg.Rates.Categories)
	require.Len(t, cfg.Rates.Pairs, 2)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string][2]string{
		"BadDemandInfluence": {"DEMAND_INFLUENCE", "lots"},
		"BadVolumeInfluence": {"VOLUME_INFLUENCE", "0.x"},
		"BadInterval":        {"RATE_RECOMPUTE_INTERVAL", "often"},
		"MissingPairsFile":   {"RATE_PAIRS_FILE", "testdata/missing.yaml"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseRates(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		rc, err := LoadRatesFile("testdata/pairs.yaml")
		require.NoError(t, err)

		first := rc.Pairs[0]
		assert.Equal(t, "STX", first.FromToken)
		assert.Equal(t, "VIZ", first.ToToken)
		assert.True(t, first.Rate.Equal(decimal.RequireFromString("2.5")))
		assert.True(t, first.IsActive, "active defaults to true")

		second := rc.Pairs[1]
		assert.True(t, second.Rate.Equal(decimal.RequireFromString("7.25")))
		assert.True(t, second.MinAmount.Equal(decimal.RequireFromString("0.5")))
		assert.False(t, second.IsActive)

		assert.Equal(t, map[string][]string{"MUSIC": {"music", "song", "album", "melody"}}, rc.Keywords)
		assert.Equal(t, "MUSIC", rc.FallbackCategory)
	})

	t.Run("PartialFileKeepsBuiltins", func(t *testing.T) {
		rc, err := ParseRates([]byte("categories:\n  CREATIVE: STX\n"))
		require.NoError(t, err)
		assert.Equal(t, DefaultRates().Tokens, rc.Tokens)
		assert.Equal(t, DefaultRates().Pairs, rc.Pairs)
		assert.Equal(t, map[string]string{"CREATIVE": "STX"}, rc.Categories)
	})

	t.Run("CategoriesWithoutKeywords", func(t *testing.T) {
		rc, err := ParseRates([]byte("categories:\n  PODCAST: VIZ\n  ART: STX\n"))
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{"PODCAST": {"podcast"}, "ART": {"art"}}, rc.Keywords)
		assert.Equal(t, "ART", rc.FallbackCategory)
	})

	t.Run("KeywordsOnlyKeepBuiltinCategories", func(t *testing.T) {
		rc, err := ParseRates([]byte("keywords:\n  TECHNICAL: [rust, golang]\nfallback_category: TECHNICAL\n"))
		require.NoError(t, err)
		assert.Equal(t, DefaultRates().Categories, rc.Categories)
		assert.Equal(t, map[string][]string{"TECHNICAL": {"rust", "golang"}}, rc.Keywords)
		assert.Equal(t, "TECHNICAL", rc.FallbackCategory)
	})

	t.Run("UnknownFallback", func(t *testing.T) {
		_, err := ParseRates([]byte("fallback_category: SPORTS\n"))
		assert.ErrorContains(t, err, "SPORTS")
	})

	t.Run("KeywordsForUnknownCategory", func(t *testing.T) {
		_, err := ParseRates([]byte("categories:\n  MUSIC: VIZ\nkeywords:\n  CREATIVE: [art]\n"))
		assert.ErrorContains(t, err, "CREATIVE")
	})

	t.Run("MissingSide", func(t *testing.T) {
		_, err := ParseRates([]byte("pairs:\n  - from: STX\n    rate: 1\n"))
		assert.Error(t, err)
	})

	t.Run("BadDecimal", func(t *testing.T) {
		_, err := ParseRates([]byte("pairs:\n  - from: STX\n    to: VIZ\n    rate: abc\n"))
		assert.Error(t, err)
	})
}

func TestBuiltinsAreValidEngineConfig(t *testing.T) {
	rc := DefaultRates()
	cfg := usecase.Config{
		Tokens:            rc.Tokens,
		Categories:        rc.Categories,
		DefaultPairs:      rc.Pairs,
		DemandInfluence:   rc.DemandInfluence,
		VolumeInfluence:   rc.VolumeInfluence,
		RecomputeInterval: rc.RecomputeInterval,
	}
	require.NoError(t, cfg.Validate())
	require.NoError(t, rc.validateCategories())

	found := false
	for _, p := range rc.Pairs {
		if p.Key() == "STX-VIZ" {
			found = true
			assert.True(t, p.Rate.Equal(decimal.NewFromInt(2)))
			assert.True(t, p.Fee.Equal(decimal.RequireFromString("0.01")))
			assert.True(t, p.MinAmount.Equal(decimal.NewFromInt(1)))
			assert.True(t, p.MaxAmount.Equal(decimal.NewFromInt(1000)))
		}
	}
	assert.True(t, found)
}
