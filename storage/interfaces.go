package storage

import (
	"context"

	"github.com/SriramKintada/SuperNetworkAI/core"
)

// ProfileRepository provides operations for managing profiles.
// Implementations must be thread-safe and support concurrent access.
type ProfileRepository interface {
	// UpsertProfiles adds or replaces one or more profiles keyed by Id.
	// Sets InsertedAt on first write and updates UpdatedAt on every write.
	// Returns the profiles with timestamps populated.
	UpsertProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error)

	// DeleteProfiles removes profiles by their IDs.
	// Returns ErrNotFound if any profile doesn't exist.
	DeleteProfiles(ctx context.Context, ids ...core.ID) error

	// GetProfile retrieves a single profile by ID.
	// Returns ErrNotFound if the profile doesn't exist.
	GetProfile(ctx context.Context, id core.ID) (*core.Profile, error)

	// GetProfiles retrieves multiple profiles by their IDs.
	// Returns only the profiles that exist (no error for missing profiles).
	GetProfiles(ctx context.Context, ids ...core.ID) ([]*core.Profile, error)

	// GetAllProfiles retrieves every stored profile.
	// Used by bulk re-embedding; not intended for request paths.
	GetAllProfiles(ctx context.Context) ([]*core.Profile, error)

	// Close closes the repository and releases resources.
	Close() error
}

// EmbeddingRepository persists one embedding per profile and serves
// vector similarity search over the stored embeddings.
// Implementations must be thread-safe and support concurrent access.
type EmbeddingRepository interface {
	// PutEmbedding adds or replaces the embedding for its profile.
	// The replace is atomic per profile: no reader observes a mix of old
	// vector and new source text or hash. Idempotent.
	PutEmbedding(ctx context.Context, embedding *core.ProfileEmbedding) error

	// GetEmbedding retrieves the embedding for a profile.
	// Returns ErrNotFound if no embedding is stored.
	GetEmbedding(ctx context.Context, profileId core.ID) (*core.ProfileEmbedding, error)

	// DeleteEmbedding removes the embedding for a profile.
	// Deleting a missing embedding is not an error.
	DeleteEmbedding(ctx context.Context, profileId core.ID) error

	// GetAllEmbeddings retrieves every stored embedding.
	GetAllEmbeddings(ctx context.Context) ([]*core.ProfileEmbedding, error)

	// FindSimilar finds profiles whose stored embeddings are closest to the
	// given vector under cosine similarity. Returns matches with
	// similarity >= minSimilarity, up to limit results, ordered by score
	// descending with ties broken by profile id for reproducibility.
	// Vectors must be normalized; the dot product is the similarity.
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SimilarityMatch, error)

	// Close closes the repository and releases resources.
	Close() error
}

// MembershipRepository provides operations for community memberships.
// Implementations must be thread-safe and support concurrent access.
type MembershipRepository interface {
	// UpsertMemberships adds or replaces memberships keyed by
	// (CommunityId, UserId). Sets InsertedAt on first write and updates
	// UpdatedAt on every write.
	UpsertMemberships(ctx context.Context, memberships ...*core.CommunityMembership) ([]*core.CommunityMembership, error)

	// DeleteMembership removes one membership.
	// Returns ErrNotFound if the membership doesn't exist.
	DeleteMembership(ctx context.Context, communityId, userId core.ID) error

	// GetMembership retrieves one membership.
	// Returns ErrNotFound if the membership doesn't exist.
	GetMembership(ctx context.Context, communityId, userId core.ID) (*core.CommunityMembership, error)

	// GetActiveMembershipsByUser retrieves all memberships for a user with
	// status active. Pending memberships are never returned.
	GetActiveMembershipsByUser(ctx context.Context, userId core.ID) ([]*core.CommunityMembership, error)

	// Close closes the repository and releases resources.
	Close() error
}
