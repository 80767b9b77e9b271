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

package match

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SriramKintada/SuperNetworkAI/ai"
	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/SriramKintada/SuperNetworkAI/storage"
	"github.com/panjf2000/ants/v2"
)

const (
	// DefaultSimilarityThreshold is the minimum cosine similarity a profile
	// must reach to be considered a candidate.
	DefaultSimilarityThreshold = 0.5

	// DefaultOverFetchFactor inflates the similarity-search limit so the
	// result set survives visibility filtering.
	DefaultOverFetchFactor = 3

	// DefaultLookupPoolSize bounds concurrent membership lookups.
	DefaultLookupPoolSize = 16
)

// Searcher runs the full matching pipeline: embed the query, find similar
// profiles, filter by visibility, re-rank with explanations.
//
// A Searcher is stateless between calls and safe for concurrent use.
type Searcher struct {
	profiles    storage.ProfileRepository
	embeddings  storage.EmbeddingRepository
	memberships storage.MembershipRepository
	provider    ai.AIProvider

	filter *visibilityFilter
	pool   *ants.Pool
	logger *slog.Logger

	similarityThreshold float32
	overFetchFactor     int
	lookupPoolSize      int
}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) SearcherOption {
	return func(s *Searcher) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSimilarityThreshold sets the minimum cosine similarity for candidates.
func WithSimilarityThreshold(threshold float32) SearcherOption {
	return func(s *Searcher) {
		s.similarityThreshold = threshold
	}
}

// WithOverFetchFactor sets the similarity-search limit multiplier.
func WithOverFetchFactor(factor int) SearcherOption {
	return func(s *Searcher) {
		if factor > 0 {
			s.overFetchFactor = factor
		}
	}
}

// WithLookupPoolSize sets the number of concurrent membership lookups.
func WithLookupPoolSize(size int) SearcherOption {
	return func(s *Searcher) {
		if size > 0 {
			s.lookupPoolSize = size
		}
	}
}

// NewSearcher creates a Searcher over the given repositories and AI provider.
// All collaborators are required.
func NewSearcher(
	profiles storage.ProfileRepository,
	embeddings storage.EmbeddingRepository,
	memberships storage.MembershipRepository,
	provider ai.AIProvider,
	opts ...SearcherOption,
) (*Searcher, error) {
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if embeddings == nil {
		return nil, ErrEmbeddingRepositoryRequired
	}
	if memberships == nil {
		return nil, ErrMembershipRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		profiles:            profiles,
		embeddings:          embeddings,
		memberships:         memberships,
		provider:            provider,
		logger:              slog.Default(),
		similarityThreshold: DefaultSimilarityThreshold,
		overFetchFactor:     DefaultOverFetchFactor,
		lookupPoolSize:      DefaultLookupPoolSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "searcher")

	pool, err := ants.NewPool(s.lookupPoolSize, ants.WithNonblocking(false))
	if err != nil {
		return nil, fmt.Errorf("creating lookup pool: %w", err)
	}
	s.pool = pool
	s.filter = newVisibilityFilter(memberships, pool, s.logger)

	return s, nil
}

// Release frees the searcher's worker pool. The searcher must not be used
// after Release.
func (s *Searcher) Release() {
	s.pool.Release()
}

// Search runs the pipeline for one request and returns results ordered by
// relevance descending, ties broken by similarity descending.
//
// An empty result set with a nil error means nothing matched; a non-nil
// error means the search itself could not run.
func (s *Searcher) Search(ctx context.Context, req core.SearchRequest) ([]*core.RankedResult, error) {
	return s.SearchWithMonitor(ctx, req, noopMonitor{})
}

// SearchWithMonitor is Search with pipeline stage notifications.
func (s *Searcher) SearchWithMonitor(ctx context.Context, req core.SearchRequest, monitor SearchMonitor) ([]*core.RankedResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrInvalidQuery
	}
	if req.Limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if req.RequesterId == "" {
		return nil, ErrInvalidRequester
	}

	start := time.Now()
	vector, err := s.provider.Embedder().EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}
	if core.IsZeroVector(vector) {
		return nil, fmt.Errorf("%w: empty query vector", ErrEmbeddingUnavailable)
	}
	vector = core.NormalizeVector(vector)
	monitor.QueryEmbedded(time.Since(start))

	matches, err := s.embeddings.FindSimilar(ctx, vector, s.similarityThreshold, req.Limit*s.overFetchFactor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}
	monitor.CandidatesFound(len(matches))
	if len(matches) == 0 {
		monitor.ResultsRanked(0, false)
		return nil, nil
	}

	similarity := make(map[core.ID]float32, len(matches))
	ids := make([]core.ID, 0, len(matches))
	for _, m := range matches {
		similarity[m.ProfileId] = m.Score
		ids = append(ids, m.ProfileId)
	}

	// GetProfiles preserves input order and skips profiles deleted since
	// their embedding was written.
	candidates, err := s.profiles.GetProfiles(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("%w: loading candidate profiles: %v", ErrSearchUnavailable, err)
	}

	visible := s.filter.Filter(ctx, req.RequesterId, req.CommunityId, candidates)
	monitor.CandidatesFiltered(len(candidates), len(visible))
	if len(visible) == 0 {
		monitor.ResultsRanked(0, false)
		return nil, nil
	}

	results, degraded := s.rank(ctx, query, visible, similarity)
	if len(results) > req.Limit {
		results = results[:req.Limit]
	}
	monitor.ResultsRanked(len(results), degraded)
	return results, nil
}

// rank re-orders visible profiles by model relevance. On ranking failure it
// falls back to similarity order with zero relevance and no explanations;
// degraded reports which path was taken.
func (s *Searcher) rank(ctx context.Context, query string, visible []*core.Profile, similarity map[core.ID]float32) (results []*core.RankedResult, degraded bool) {
	candidates := make([]ai.RankCandidate, len(visible))
	for i, p := range visible {
		candidates[i] = ai.RankCandidate{
			Name:     p.Name,
			Headline: p.Headline,
			Intent:   p.IntentText,
			Skills:   p.Skills,
		}
	}

	ranked, err := s.provider.MatchRanker().RankMatches(ctx, query, candidates)
	if err != nil {
		s.logger.Warn("ranking failed, degrading to similarity order",
			"candidates", len(visible), "error", fmt.Errorf("%w: %v", ErrRankingUnavailable, err))
		return s.similarityOrder(visible, similarity), true
	}

	relevance := make(map[int]*ai.RankedMatch, len(ranked))
	for i := range ranked {
		relevance[ranked[i].Index] = &ranked[i]
	}

	// Candidates the ranker left out are unranked and dropped; only the
	// whole-rank failure above falls back to the full similarity-ordered set.
	results = make([]*core.RankedResult, 0, len(ranked))
	for i, p := range visible {
		m, ok := relevance[i]
		if !ok {
			continue
		}
		results = append(results, &core.RankedResult{
			Profile:     p,
			Similarity:  similarity[p.Id],
			Relevance:   m.Score,
			Explanation: m.Explanation,
		})
	}
	sortResults(results)
	return results, false
}

// similarityOrder builds fallback results in descending similarity order.
func (s *Searcher) similarityOrder(visible []*core.Profile, similarity map[core.ID]float32) []*core.RankedResult {
	results := make([]*core.RankedResult, 0, len(visible))
	for _, p := range visible {
		results = append(results, &core.RankedResult{
			Profile:    p,
			Similarity: similarity[p.Id],
		})
	}
	sortResults(results)
	return results
}

// sortResults orders by relevance descending, ties by similarity descending.
func sortResults(results []*core.RankedResult) {
	slices.SortStableFunc(results, func(a, b *core.RankedResult) int {
		if a.Relevance != b.Relevance {
			if a.Relevance > b.Relevance {
				return -1
			}
			return 1
		}
		if a.Similarity != b.Similarity {
			if a.Similarity > b.Similarity {
				return -1
			}
			return 1
		}
		return 0
	})
}
