package supernetwork

import (
	"context"
	"testing"

	aimock "github.com/SriramKintada/SuperNetworkAI/ai/mock"
	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/SriramKintada/SuperNetworkAI/match"
	"github.com/SriramKintada/SuperNetworkAI/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestNetwork(t *testing.T) *Network {
	t.Helper()
	network, err := Open("",
		WithInMemory(),
		WithAIProvider(aimock.NewMockProvider()),
		WithSyncRefresh(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { network.Close() })
	return network
}

func testProfile(name, headline string, skills ...string) *core.Profile {
	return &core.Profile{
		Id:           core.NewID(),
		UserId:       core.NewID(),
		Name:         name,
		Headline:     headline,
		Skills:       skills,
		Visibility:   core.VisibilityPublic,
		ShowInSearch: true,
	}
}

func TestSaveProfileCreatesEmbedding(t *testing.T) {
	network := openTestNetwork(t)
	ctx := context.Background()

	p := testProfile("Ada", "ML engineer", "machine learning")
	require.NoError(t, network.SaveProfile(ctx, p))

	e, err := network.EmbeddingRepository().GetEmbedding(ctx, p.Id)
	require.NoError(t, err)
	assert.Equal(t, p.DerivationText(), e.SourceText)
	assert.False(t, core.IsZeroVector(e.Vector))
}

func TestSaveProfileRejectsInvalid(t *testing.T) {
	network := openTestNetwork(t)

	p := testProfile("", "no name")
	assert.ErrorIs(t, network.SaveProfile(context.Background(), p), core.ErrInvalidProfile)
}

func TestSearchEndToEnd(t *testing.T) {
	network := openTestNetwork(t)
	ctx := context.Background()

	engineer := testProfile("ML Engineer", "Machine learning engineer", "machine learning", "Python")
	engineer.IntentText = "Looking to join a startup as technical cofounder."
	require.NoError(t, network.SaveProfile(ctx, engineer))

	// The mock embedder maps identical text to identical vectors, so query
	// the exact derivation text for a guaranteed similarity hit.
	results, err := network.Search(ctx, core.SearchRequest{
		Query:       engineer.DerivationText(),
		RequesterId: "searcher",
		Limit:       5,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, engineer.Id, results[0].Profile.Id)
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-4)
}

func TestSearchValidationSurfaced(t *testing.T) {
	network := openTestNetwork(t)

	_, err := network.Search(context.Background(), core.SearchRequest{
		Query: "", RequesterId: "u", Limit: 5,
	})
	assert.ErrorIs(t, err, match.ErrInvalidQuery)
}

func TestDeleteProfileRemovesEmbedding(t *testing.T) {
	network := openTestNetwork(t)
	ctx := context.Background()

	p := testProfile("Gone", "Soon deleted")
	require.NoError(t, network.SaveProfile(ctx, p))
	require.NoError(t, network.DeleteProfile(ctx, p.Id))

	_, err := network.ProfileRepository().GetProfile(ctx, p.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = network.EmbeddingRepository().GetEmbedding(ctx, p.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestJoinAndLeaveCommunity(t *testing.T) {
	network := openTestNetwork(t)
	ctx := context.Background()

	m := &core.CommunityMembership{
		CommunityId:        "c1",
		UserId:             "u1",
		Status:             core.MembershipActive,
		VisibleInCommunity: true,
	}
	require.NoError(t, network.JoinCommunity(ctx, m))

	stored, err := network.MembershipRepository().GetMembership(ctx, "c1", "u1")
	require.NoError(t, err)
	assert.True(t, stored.Active())

	require.NoError(t, network.LeaveCommunity(ctx, "c1", "u1"))
	_, err = network.MembershipRepository().GetMembership(ctx, "c1", "u1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, network.JoinCommunity(ctx, &core.CommunityMembership{UserId: "u1"}), core.ErrInvalidMembership)
}

func TestMatchInsight(t *testing.T) {
	network := openTestNetwork(t)
	ctx := context.Background()

	viewer := testProfile("Viewer", "Founder")
	viewer.Industries = []string{"fintech"}
	target := testProfile("Target", "Engineer", "Go")
	target.Industries = []string{"fintech"}
	require.NoError(t, network.SaveProfile(ctx, viewer))
	require.NoError(t, network.SaveProfile(ctx, target))

	insight, err := network.MatchInsight(ctx, viewer.Id, target.Id)
	require.NoError(t, err)
	assert.NotEmpty(t, insight.Headline)
	assert.Contains(t, insight.SharedContext, "fintech")

	_, err = network.MatchInsight(ctx, viewer.Id, "missing")
	assert.Error(t, err)
}

func TestRefreshEmbeddingsAll(t *testing.T) {
	network := openTestNetwork(t)
	ctx := context.Background()

	a := testProfile("A", "Engineer")
	b := testProfile("B", "Designer")
	// Store directly so no embeddings exist yet.
	_, err := network.ProfileRepository().UpsertProfiles(ctx, a, b)
	require.NoError(t, err)

	written, err := network.RefreshEmbeddings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	// A second pass finds nothing stale.
	written, err = network.RefreshEmbeddings(ctx)
	require.NoError(t, err)
	assert.Zero(t, written)
}
