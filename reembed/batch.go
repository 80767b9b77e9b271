package reembed

import (
	"context"
	"fmt"
	"time"

	"github.com/SriramKintada/SuperNetworkAI/ai"
	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/SriramKintada/SuperNetworkAI/storage"
)

// BatchProcessor regenerates embeddings for batches of profiles.
type BatchProcessor struct {
	embeddings     storage.EmbeddingRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(embeddings storage.EmbeddingRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		embeddings:     embeddings,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process re-derives embedding text for a batch of profiles, generates fresh
// embeddings with retry, normalizes the vectors and replaces the stored
// records.
func (bp *BatchProcessor) Process(ctx context.Context, profiles []*core.Profile) error {
	if len(profiles) == 0 {
		return nil
	}

	texts := make([]string, len(profiles))
	for i, profile := range profiles {
		texts[i] = profile.DerivationText()
	}

	var vectors [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		vectors, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(vectors) != len(profiles) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(profiles), len(vectors))
	}

	for i, profile := range profiles {
		vectors[i] = core.NormalizeVector(vectors[i])
		embedding := &core.ProfileEmbedding{
			ProfileId:  profile.Id,
			Vector:     vectors[i],
			SourceText: texts[i],
			TextHash:   core.HashText(texts[i]),
		}
		if err := bp.embeddings.PutEmbedding(ctx, embedding); err != nil {
			return fmt.Errorf("failed to store embedding for %s: %w", profile.Id, err)
		}
	}

	return nil
}
