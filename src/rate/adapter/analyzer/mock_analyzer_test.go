package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/MMN3003/tokenrates/src/logger"
	"github.com/MMN3003/tokenrates/src/rate/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKeywords = map[string][]string{
	"CREATIVE":    {"art", "music", "story", "paint"},
	"TECHNICAL":   {"code", "api", "bug", "compiler"},
	"EDUCATIONAL": {"tutorial", "guide", "lesson", "learn"},
}

func recognises(categories ...string) func(string) bool {
	return func(c string) bool {
		for _, known := range categories {
			if c == known {
				return true
			}
		}
		return false
	}
}

func newTestAnalyzer(t *testing.T) *MockAnalyzer {
	t.Helper()
	a, err := NewMockAnalyzer(testKeywords, "CREATIVE", recognises("CREATIVE", "TECHNICAL", "EDUCATIONAL"), logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNewMockAnalyzer(t *testing.T) {
	t.Run("UnrecognisedFallback", func(t *testing.T) {
		_, err := NewMockAnalyzer(testKeywords, "CREATIVE", recognises("TECHNICAL", "EDUCATIONAL"), logger.Nop())
		assert.Error(t, err)
	})

	t.Run("UnrecognisedKeywordCategory", func(t *testing.T) {
		_, err := NewMockAnalyzer(testKeywords, "CREATIVE", recognises("CREATIVE"), logger.Nop())
		assert.Error(t, err)
	})

	t.Run("KeywordsMatchCaseInsensitively", func(t *testing.T) {
		a, err := NewMockAnalyzer(map[string][]string{"MUSIC": {"Song"}, "ART": {"paint"}}, "ART", recognises("MUSIC", "ART"), logger.Nop())
		require.NoError(t, err)
		got, err := a.Analyze(context.Background(), domain.Contribution{Title: "SONG"})
		require.NoError(t, err)
		assert.Equal(t, "MUSIC", got.Category)
	})
}

func TestMockAnalyzer(t *testing.T) {
	ctx := context.Background()
	a := newTestAnalyzer(t)

	t.Run("ClassifiesByKeywords", func(t *testing.T) {
		got, err := a.Analyze(ctx, domain.Contribution{
			Title:       "Compiler internals",
			Description: "How the code generator walks the API and fixes a bug.",
		})
		require.NoError(t, err)
		assert.Equal(t, "TECHNICAL", got.Category)
	})

	t.Run("FallsBackWithoutKeywords", func(t *testing.T) {
		got, err := a.Analyze(ctx, domain.Contribution{Title: "hello world"})
		require.NoError(t, err)
		assert.Equal(t, "CREATIVE", got.Category)
	})

	t.Run("ScoreGrowsWithLengthAndCaps", func(t *testing.T) {
		short, err := a.Analyze(ctx, domain.Contribution{Title: "a guide"})
		require.NoError(t, err)
		assert.InDelta(t, 1.2, short.Score, 1e-9)

		long, err := a.Analyze(ctx, domain.Contribution{
			Title:       "lesson",
			Description: strings.Repeat("learn more ", 200),
		})
		require.NoError(t, err)
		assert.Equal(t, "EDUCATIONAL", long.Category)
		assert.Equal(t, 10.0, long.Score)
	})

	t.Run("Deterministic", func(t *testing.T) {
		c := domain.Contribution{Title: "art code", Description: "tutorial"}
		first, err := a.Analyze(ctx, c)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := a.Analyze(ctx, c)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("EmptyContent", func(t *testing.T) {
		_, err := a.Analyze(ctx, domain.Contribution{Title: "   "})
		assert.ErrorIs(t, err, domain.ErrEmptyContent)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := a.Analyze(cctx, domain.Contribution{Title: "art"})
		assert.ErrorIs(t, err, context.Canceled)
	})

	assert.Greater(t, a.Calls(), 0)
}
