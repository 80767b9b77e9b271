package mock

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/SriramKintada/SuperNetworkAI/ai"
)

// Stop words ignored when the default ranker scores word overlap
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true, "who": true, "knows": true,
}

// MockRanker is a test double for ai.MatchRanker.
// It allows custom behavior injection via a function field.
type MockRanker struct {
	// RankMatchesFunc is called by RankMatches if set.
	// If nil, uses default deterministic word-overlap scoring.
	RankMatchesFunc func(ctx context.Context, query string, candidates []ai.RankCandidate) ([]ai.RankedMatch, error)

	callCount int
}

// NewMockRanker creates a mock ranker with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via GetMockRanker().
func NewMockRanker() *MockRanker {
	return &MockRanker{}
}

// RankMatches scores candidates by the fraction of query words found in the
// candidate's name, headline, intent and skills. Deterministic and offline.
func (m *MockRanker) RankMatches(ctx context.Context, query string, candidates []ai.RankCandidate) ([]ai.RankedMatch, error) {
	m.callCount++

	if m.RankMatchesFunc != nil {
		return m.RankMatchesFunc(ctx, query, candidates)
	}

	queryWords := tokenizeAndFilter(query)
	ranked := make([]ai.RankedMatch, 0, len(candidates))
	for i, c := range candidates {
		text := strings.Join([]string{c.Name, c.Headline, c.Intent, strings.Join(c.Skills, " ")}, " ")
		candidateWords := make(map[string]bool)
		for _, w := range tokenizeAndFilter(text) {
			candidateWords[w] = true
		}

		matched := make([]string, 0, len(queryWords))
		for _, w := range queryWords {
			if candidateWords[w] {
				matched = append(matched, w)
			}
		}

		var score float32
		if len(queryWords) > 0 {
			score = float32(len(matched)) / float32(len(queryWords))
		}
		ranked = append(ranked, ai.RankedMatch{
			Index:       i,
			Score:       score,
			Explanation: fmt.Sprintf("mentions %s", strings.Join(matched, ", ")),
		})
	}

	slices.SortStableFunc(ranked, func(a, b ai.RankedMatch) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return a.Index - b.Index
	})

	return ranked, nil
}

// CallCount returns the number of times RankMatches was called.
func (m *MockRanker) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockRanker) Reset() {
	m.callCount = 0
	m.RankMatchesFunc = nil
}

// tokenizeAndFilter splits text into words, lowercases, trims punctuation,
// and removes stop words
func tokenizeAndFilter(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}
