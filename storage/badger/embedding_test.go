package badger

import (
	"context"
	"testing"

	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/SriramKintada/SuperNetworkAI/storage"
)

func putEmbedding(t *testing.T, repo storage.EmbeddingRepository, id core.ID, vector []float32) {
	t.Helper()
	e := &core.ProfileEmbedding{
		ProfileId:  id,
		Vector:     core.NormalizeVector(vector),
		SourceText: "text for " + string(id),
		TextHash:   core.HashText("text for " + string(id)),
	}
	if err := repo.PutEmbedding(context.Background(), e); err != nil {
		t.Fatalf("Failed to put embedding: %v", err)
	}
}

func TestEmbeddingPutGet(t *testing.T) {
	_, embeddingRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	putEmbedding(t, embeddingRepo, "p1", []float32{1, 0, 0})

	e, err := embeddingRepo.GetEmbedding(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Failed to get embedding: %v", err)
	}
	if e.ProfileId != "p1" {
		t.Fatalf("Expected p1, got %s", e.ProfileId)
	}
	if e.TextHash != core.HashText("text for p1") {
		t.Fatal("Expected stored hash to match source text")
	}
	if e.UpdatedAt.IsZero() {
		t.Fatal("Expected UpdatedAt to be set")
	}
}

func TestEmbeddingPutIdempotent(t *testing.T) {
	_, embeddingRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	// Same profile, written twice: exactly one record remains and the
	// second write wins.
	putEmbedding(t, embeddingRepo, "p1", []float32{1, 0, 0})
	putEmbedding(t, embeddingRepo, "p1", []float32{0, 1, 0})

	all, err := embeddingRepo.GetAllEmbeddings(ctx)
	if err != nil {
		t.Fatalf("Failed to get all embeddings: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 embedding, got %d", len(all))
	}

	e, err := embeddingRepo.GetEmbedding(ctx, "p1")
	if err != nil {
		t.Fatalf("Failed to get embedding: %v", err)
	}
	if e.Vector[0] != 0 || e.Vector[1] != 1 {
		t.Fatalf("Expected second write to win, got %v", e.Vector)
	}
}

func TestEmbeddingNotFoundAndDelete(t *testing.T) {
	_, embeddingRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	if _, err := embeddingRepo.GetEmbedding(ctx, "missing"); err != storage.ErrNotFound {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	// Deleting a missing embedding is not an error.
	if err := embeddingRepo.DeleteEmbedding(ctx, "missing"); err != nil {
		t.Fatalf("Expected nil deleting missing embedding, got %v", err)
	}

	putEmbedding(t, embeddingRepo, "p1", []float32{1, 0})
	if err := embeddingRepo.DeleteEmbedding(ctx, "p1"); err != nil {
		t.Fatalf("Failed to delete embedding: %v", err)
	}
	if _, err := embeddingRepo.GetEmbedding(ctx, "p1"); err != storage.ErrNotFound {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestFindSimilarOrderingAndThreshold(t *testing.T) {
	_, embeddingRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	// Vectors at decreasing similarity to the query (1,0).
	putEmbedding(t, embeddingRepo, "exact", []float32{1, 0})
	putEmbedding(t, embeddingRepo, "close", []float32{0.9, 0.1})
	putEmbedding(t, embeddingRepo, "far", []float32{0.4, 0.6})
	putEmbedding(t, embeddingRepo, "orthogonal", []float32{0, 1})

	query := core.NormalizeVector([]float32{1, 0})

	results, err := embeddingRepo.FindSimilar(ctx, query, 0.5, 10)
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 hits above threshold, got %d", len(results))
	}
	if results[0].ProfileId != "exact" || results[1].ProfileId != "close" || results[2].ProfileId != "far" {
		t.Fatalf("Expected [exact close far], got [%s %s %s]",
			results[0].ProfileId, results[1].ProfileId, results[2].ProfileId)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatal("Expected scores in descending order")
		}
	}

	// Tighter threshold drops the far match.
	results, err = embeddingRepo.FindSimilar(ctx, query, 0.95, 10)
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 hits above 0.95, got %d", len(results))
	}
}

func TestFindSimilarLimitAndTiebreak(t *testing.T) {
	_, embeddingRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	// Identical vectors: equal scores break ties by profile id ascending.
	putEmbedding(t, embeddingRepo, "b", []float32{1, 0})
	putEmbedding(t, embeddingRepo, "a", []float32{1, 0})
	putEmbedding(t, embeddingRepo, "c", []float32{1, 0})

	query := core.NormalizeVector([]float32{1, 0})

	results, err := embeddingRepo.FindSimilar(ctx, query, 0.5, 2)
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected limit of 2, got %d", len(results))
	}
	if results[0].ProfileId != "a" || results[1].ProfileId != "b" {
		t.Fatalf("Expected [a b], got [%s %s]", results[0].ProfileId, results[1].ProfileId)
	}
}

func TestFindSimilarEmptyStore(t *testing.T) {
	_, embeddingRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer backend.Close()

	results, err := embeddingRepo.FindSimilar(context.Background(), []float32{1, 0}, 0.5, 10)
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("Expected no hits, got %d", len(results))
	}
}
