package openai

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/SriramKintada/SuperNetworkAI/ai"
	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// InsightGenerator implements ai.InsightGenerator using OpenAI-compatible
// chat APIs.
type InsightGenerator struct {
	client llms.Model
	logger *slog.Logger
}

// insight mirrors the JSON shape requested from the LLM.
type insight struct {
	Score               int      `json:"score"`
	Category            string   `json:"category"`
	Headline            string   `json:"headline"`
	KeyStrengths        []string `json:"key_strengths"`
	ComplementarySkills []string `json:"complementary_skills"`
	SharedContext       []string `json:"shared_context"`
	ValueProposition    string   `json:"value_proposition"`
	NextSteps           []string `json:"next_steps"`
	Confidence          string   `json:"confidence"`
}

// newInsightGenerator is an internal constructor that returns the concrete
// type. Used by Provider to manage the instance.
func newInsightGenerator(config *ai.Config) (*InsightGenerator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.RankerHost),
		openai.WithToken("none"),
		openai.WithModel(config.RankerModel),
	)
	if err != nil {
		return nil, err
	}

	return &InsightGenerator{
		client: client,
		logger: slog.Default().With("component", "openai-insight"),
	}, nil
}

// NewInsightGenerator creates a new insight generator using the provided
// configuration.
//
// Returns ai.InsightGenerator interface to enforce abstraction.
func NewInsightGenerator(config *ai.Config) (ai.InsightGenerator, error) {
	return newInsightGenerator(config)
}

// MatchInsight generates a structured pairwise match analysis.
func (g *InsightGenerator) MatchInsight(ctx context.Context, viewer, target *core.Profile) (*ai.MatchInsight, error) {
	if viewer == nil || target == nil {
		return nil, errors.New("both profiles are required")
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildInsightSystemPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildInsightUserPrompt(viewer, target)),
			},
		},
	}

	var result insight
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(0.7), llms.WithJSONMode())
		if err != nil {
			g.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			return nil, errors.New("no choices returned from model")
		}

		responseText := stripCodeFences(response.Choices[0].Content)
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			g.logger.Warn("error parsing insight response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		g.logger.Error("failed to parse insight response after retries", "err", lastErr)
		return nil, lastErr
	}

	return &ai.MatchInsight{
		Score:               clampScore(result.Score),
		Category:            result.Category,
		Headline:            result.Headline,
		KeyStrengths:        result.KeyStrengths,
		ComplementarySkills: result.ComplementarySkills,
		SharedContext:       result.SharedContext,
		ValueProposition:    result.ValueProposition,
		NextSteps:           result.NextSteps,
		Confidence:          result.Confidence,
	}, nil
}
