// Copyright 2025 SuperNetworkAI Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	"github.com/SriramKintada/SuperNetworkAI/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// MatchRanker implements ai.MatchRanker using OpenAI-compatible chat APIs.
type MatchRanker struct {
	client        llms.Model
	maxCandidates int
	logger        *slog.Logger
}

// ranking is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type ranking struct {
	Index       int    `json:"index"`
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

// rankingResponse is the wrapper structure for the LLM's JSON response.
type rankingResponse struct {
	Rankings []ranking `json:"rankings"`
}

// newMatchRanker is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newMatchRanker(config *ai.Config) (*MatchRanker, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't
	// require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.RankerHost),
		openai.WithToken("none"),
		openai.WithModel(config.RankerModel),
	)
	if err != nil {
		return nil, err
	}

	return &MatchRanker{
		client:        client,
		maxCandidates: config.MaxRankCandidates,
		logger:        slog.Default().With("component", "openai-ranker"),
	}, nil
}

// NewMatchRanker creates a new match ranker using the provided configuration.
//
// Returns ai.MatchRanker interface to enforce abstraction.
func NewMatchRanker(config *ai.Config) (ai.MatchRanker, error) {
	return newMatchRanker(config)
}

// RankMatches scores candidates against the query using an LLM.
//
// Candidates are presented to the model by 1-based list position; identity is
// reconstructed strictly from that position. Indices outside the candidate
// range and duplicates are dropped, and candidates missing from the response
// are treated as unranked and omitted.
func (r *MatchRanker) RankMatches(ctx context.Context, query string, candidates []ai.RankCandidate) ([]ai.RankedMatch, error) {
	if len(candidates) == 0 {
		return []ai.RankedMatch{}, nil
	}
	if len(candidates) > r.maxCandidates {
		r.logger.Debug("truncating ranking candidates", "count", len(candidates), "max", r.maxCandidates)
		candidates = candidates[:r.maxCandidates]
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildRankingSystemPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildRankingUserPrompt(query, candidates)),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result rankingResponse
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := r.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			r.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			r.logger.Warn("no choices returned from model")
			return []ai.RankedMatch{}, nil
		}

		responseText := stripCodeFences(response.Choices[0].Content)
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			r.logger.Warn("error parsing ranking response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		r.logger.Error("failed to parse ranking response after retries", "err", lastErr)
		return nil, lastErr
	}

	// Keep only entries whose index maps to a supplied candidate, first
	// occurrence wins. The model's indices are 1-based.
	seen := make(map[int]bool, len(result.Rankings))
	ranked := make([]ai.RankedMatch, 0, len(result.Rankings))
	for _, entry := range result.Rankings {
		idx := entry.Index - 1
		if idx < 0 || idx >= len(candidates) {
			r.logger.Warn("dropping out-of-range candidate index", "index", entry.Index)
			continue
		}
		if seen[idx] {
			r.logger.Warn("dropping duplicate candidate index", "index", entry.Index)
			continue
		}
		seen[idx] = true

		ranked = append(ranked, ai.RankedMatch{
			Index:       idx,
			Score:       float32(clampScore(entry.Score)) / 100,
			Explanation: entry.Explanation,
		})
	}

	// Sort by score descending; equal scores keep similarity (input) order.
	slices.SortStableFunc(ranked, func(a, b ai.RankedMatch) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return a.Index - b.Index
	})

	r.logger.Debug("ranked candidates", "supplied", len(candidates), "ranked", len(ranked))
	return ranked, nil
}

// clampScore bounds a raw model score to [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
