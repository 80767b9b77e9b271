package ai

import (
	"context"

	"github.com/SriramKintada/SuperNetworkAI/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// MatchRanker scores search candidates against a natural-language query
// using a language model and produces a short explanation per candidate.
// Implementations must be thread-safe for concurrent use.
type MatchRanker interface {
	// RankMatches assigns each candidate a relevance score in [0,1] and an
	// explanation, ordered by score descending. Candidates are addressed by
	// their position in the input slice; the returned Index values refer
	// back to it. Candidates the model fails to rank are omitted.
	// Returns an error if the model call fails or its output is unusable.
	RankMatches(ctx context.Context, query string, candidates []RankCandidate) ([]RankedMatch, error)
}

// InsightGenerator produces a pairwise match analysis between a viewer's
// profile and a target profile.
// Implementations must be thread-safe for concurrent use.
type InsightGenerator interface {
	// MatchInsight explains why the target profile could be valuable to the
	// viewer, based on the viewer's stated intent and both backgrounds.
	MatchInsight(ctx context.Context, viewer, target *core.Profile) (*MatchInsight, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder, MatchRanker
// and InsightGenerator instances, ensuring they share configuration and
// resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// MatchRanker returns the relevance re-ranking service.
	// The returned MatchRanker is safe for concurrent use.
	MatchRanker() MatchRanker

	// InsightGenerator returns the pairwise match insight service.
	// The returned InsightGenerator is safe for concurrent use.
	InsightGenerator() InsightGenerator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
