package mock

import (
	"context"

	"github.com/SriramKintada/SuperNetworkAI/ai"
	"github.com/SriramKintada/SuperNetworkAI/core"
)

// MockInsightGenerator is a test double for ai.InsightGenerator.
// It allows custom behavior injection via a function field.
type MockInsightGenerator struct {
	// MatchInsightFunc is called by MatchInsight if set.
	// If nil, returns a canned medium-confidence insight.
	MatchInsightFunc func(ctx context.Context, viewer, target *core.Profile) (*ai.MatchInsight, error)

	callCount int
}

// NewMockInsightGenerator creates a mock insight generator with default
// canned behavior.
// Note: Returns concrete type to allow test assertions via GetMockInsights().
func NewMockInsightGenerator() *MockInsightGenerator {
	return &MockInsightGenerator{}
}

// MatchInsight returns a deterministic canned insight built from the two
// profiles' names and skills.
func (m *MockInsightGenerator) MatchInsight(ctx context.Context, viewer, target *core.Profile) (*ai.MatchInsight, error) {
	m.callCount++

	if m.MatchInsightFunc != nil {
		return m.MatchInsightFunc(ctx, viewer, target)
	}

	return &ai.MatchInsight{
		Score:               50,
		Category:            "peer",
		Headline:            target.Name + " may be relevant to " + viewer.Name,
		KeyStrengths:        target.Skills,
		ComplementarySkills: target.ExpertiseAreas,
		SharedContext:       sharedStrings(viewer.Industries, target.Industries),
		ValueProposition:    "Mock insight for testing.",
		NextSteps:           []string{"Send an introduction message."},
		Confidence:          "medium",
	}, nil
}

// CallCount returns the number of times MatchInsight was called.
func (m *MockInsightGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockInsightGenerator) Reset() {
	m.callCount = 0
	m.MatchInsightFunc = nil
}

func sharedStrings(a, b []string) []string {
	set := make(map[string]bool, len(a))
	for _, s := range a {
		set[s] = true
	}
	var shared []string
	for _, s := range b {
		if set[s] {
			shared = append(shared, s)
		}
	}
	return shared
}
