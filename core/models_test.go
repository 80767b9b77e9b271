package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashTextDeterministic(t *testing.T) {
	a := HashText("technical cofounder with ML experience")
	b := HashText("technical cofounder with ML experience")
	assert.Equal(t, a, b)

	c := HashText("technical cofounder with ML experience.")
	assert.NotEqual(t, a, c, "different text must hash differently")

	// BLAKE2b-256 hex
	assert.Len(t, a, 64)
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestEmbeddingStale(t *testing.T) {
	p := fullProfile()
	e := &ProfileEmbedding{
		ProfileId:  p.Id,
		SourceText: p.DerivationText(),
		TextHash:   HashText(p.DerivationText()),
	}

	assert.False(t, e.Stale(p), "embedding of current text is fresh")

	p.IntentText = "Now looking for investors instead."
	assert.True(t, e.Stale(p), "text change makes the embedding stale")
}

func TestMembershipActive(t *testing.T) {
	m := &CommunityMembership{Status: MembershipActive}
	assert.True(t, m.Active())

	m.Status = MembershipPending
	assert.False(t, m.Active())
}

func TestSearchRequestScoped(t *testing.T) {
	req := &SearchRequest{Query: "x", RequesterId: "u1", Limit: 5}
	assert.False(t, req.Scoped())

	req.CommunityId = "c1"
	assert.True(t, req.Scoped())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "public", VisibilityPublic.String())
	assert.Equal(t, "community_only", VisibilityCommunityOnly.String())
	assert.Equal(t, "private", VisibilityPrivate.String())
	assert.Equal(t, "unknown", Visibility(0).String())

	assert.Equal(t, "active", MembershipActive.String())
	assert.Equal(t, "pending", MembershipPending.String())
	assert.Equal(t, "unknown", MembershipStatus(99).String())
}
