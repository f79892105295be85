package analyzer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MMN3003/tokenrates/src/logger"
	"github.com/MMN3003/tokenrates/src/rate/domain"
)

var _ domain.ContentAnalyzer = (*MockAnalyzer)(nil)

// MockAnalyzer stands in for the external AI analysis service. It picks the
// category whose keywords occur most often and scores by content length.
type MockAnalyzer struct {
	mu       sync.Mutex
	keywords map[string][]string
	fallback string
	calls    int
	logger   *logger.Logger
}

// NewMockAnalyzer classifies into the keys of keywords. fallback is returned
// for content matching no keyword and must be one of the recognised categories.
func NewMockAnalyzer(keywords map[string][]string, fallback string, recognised func(string) bool, logger *logger.Logger) (*MockAnalyzer, error) {
	if !recognised(fallback) {
		return nil, fmt.Errorf("analyzer fallback %q is not a recognised category", fallback)
	}
	kws := make(map[string][]string, len(keywords))
	for category, words := range keywords {
		if !recognised(category) {
			return nil, fmt.Errorf("analyzer keywords for unrecognised category %q", category)
		}
		lowered := make([]string, len(words))
		for i, w := range words {
			lowered[i] = strings.ToLower(w)
		}
		kws[category] = lowered
	}
	return &MockAnalyzer{
		keywords: kws,
		fallback: fallback,
		logger:   logger,
	}, nil
}

func (m *MockAnalyzer) Analyze(ctx context.Context, c domain.Contribution) (domain.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return domain.Analysis{}, err
	}
	text := strings.ToLower(strings.TrimSpace(c.Title + " " + c.Description))
	if text == "" {
		return domain.Analysis{}, domain.ErrEmptyContent
	}

	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	words := strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})

	category := m.classify(words)
	score := scoreFor(words)
	m.logger.Debugf("[mock-analyzer] %q -> %s (%.1f)", c.Title, category, score)
	return domain.Analysis{Category: category, Score: score}, nil
}

// Calls returns how many contributions were analyzed.
func (m *MockAnalyzer) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockAnalyzer) classify(words []string) string {
	counts := make(map[string]int, len(m.keywords))
	for category, kws := range m.keywords {
		for _, w := range words {
			for _, kw := range kws {
				if w == kw {
					counts[category]++
				}
			}
		}
	}

	// sorted so ties resolve the same way every run
	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	best, bestCount := m.fallback, 0
	for _, category := range categories {
		if counts[category] > bestCount {
			best, bestCount = category, counts[category]
		}
	}
	return best
}

// scoreFor maps content length onto [1,10]: one point per ten words.
func scoreFor(words []string) float64 {
	score := 1 + float64(len(words))/10
	if score > 10 {
		score = 10
	}
	return score
}
