package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTokenPair(t *testing.T) {
	p := TokenPair{
		FromToken: "STX",
		ToToken:   "VIZ",
		Rate:      decimal.NewFromInt(2),
		Fee:       decimal.RequireFromString("0.01"),
		MinAmount: decimal.NewFromInt(1),
		MaxAmount: decimal.NewFromInt(1000),
		IsActive:  true,
	}

	t.Run("Key", func(t *testing.T) {
		assert.Equal(t, "STX-VIZ", p.Key())
		assert.Equal(t, "VIZ-STX", PairKey("VIZ", "STX"))
	})

	t.Run("Involves", func(t *testing.T) {
		assert.True(t, p.Involves("STX"))
		assert.True(t, p.Involves("VIZ"))
		assert.False(t, p.Involves("CREATIVE"))
	})

	t.Run("InRange", func(t *testing.T) {
		assert.True(t, p.InRange(decimal.NewFromInt(1)))
		assert.True(t, p.InRange(decimal.NewFromInt(1000)))
		assert.True(t, p.InRange(decimal.NewFromInt(500)))
		assert.False(t, p.InRange(decimal.RequireFromString("0.9999")))
		assert.False(t, p.InRange(decimal.RequireFromString("1000.0001")))
	})
}
