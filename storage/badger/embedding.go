package badger

import (
	"context"
	"time"

	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/SriramKintada/SuperNetworkAI/storage"
	"github.com/dgraph-io/badger/v4"
)

// EmbeddingRepository implements storage.EmbeddingRepository for BadgerDB.
type EmbeddingRepository struct {
	backend *Backend
}

var _ storage.EmbeddingRepository = (*EmbeddingRepository)(nil)

// NewEmbeddingRepository creates a new EmbeddingRepository.
func NewEmbeddingRepository(backend *Backend) *EmbeddingRepository {
	return &EmbeddingRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *EmbeddingRepository) Close() error {
	return nil
}

// PutEmbedding adds or replaces the embedding for its profile.
// The whole record lives under one key, so the vector, source text and hash
// are replaced in a single Set and no reader observes a partial update.
func (r *EmbeddingRepository) PutEmbedding(ctx context.Context, embedding *core.ProfileEmbedding) error {
	if embedding == nil || embedding.ProfileId == "" {
		return storage.ErrInvalidQuery
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		embedding.UpdatedAt = time.Now().UTC()
		key := makeEmbeddingKey(embedding.ProfileId)
		if err := tx.Set(key, storage.MarshalProfileEmbedding(embedding)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetEmbedding retrieves the embedding for a profile.
func (r *EmbeddingRepository) GetEmbedding(ctx context.Context, profileId core.ID) (*core.ProfileEmbedding, error) {
	var result *core.ProfileEmbedding
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEmbeddingKey(profileId))
		if err == badger.ErrKeyNotFound {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			result, err = storage.UnmarshalProfileEmbedding(val)
			return err
		})
	}, false)
	return result, err
}

// DeleteEmbedding removes the embedding for a profile.
// Deleting a missing embedding is not an error.
func (r *EmbeddingRepository) DeleteEmbedding(ctx context.Context, profileId core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeEmbeddingKey(profileId)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetAllEmbeddings retrieves every stored embedding.
func (r *EmbeddingRepository) GetAllEmbeddings(ctx context.Context) ([]*core.ProfileEmbedding, error) {
	var result []*core.ProfileEmbedding
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(embeddingPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			var embedding *core.ProfileEmbedding
			err := iter.Item().Value(func(val []byte) error {
				var err error
				embedding, err = storage.UnmarshalProfileEmbedding(val)
				return err
			})
			if err != nil {
				return err
			}
			result = append(result, embedding)
		}
		return nil
	}, false)
	return result, err
}

// FindSimilar delegates to the backend.
func (r *EmbeddingRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SimilarityMatch, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}
