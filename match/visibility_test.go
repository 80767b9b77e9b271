package match

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/SriramKintada/SuperNetworkAI/storage"
	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingMembershipRepo simulates a degraded membership store.
type failingMembershipRepo struct{}

func (failingMembershipRepo) UpsertMemberships(ctx context.Context, memberships ...*core.CommunityMembership) ([]*core.CommunityMembership, error) {
	return nil, errors.New("store down")
}

func (failingMembershipRepo) DeleteMembership(ctx context.Context, communityId, userId core.ID) error {
	return errors.New("store down")
}

func (failingMembershipRepo) GetMembership(ctx context.Context, communityId, userId core.ID) (*core.CommunityMembership, error) {
	return nil, errors.New("store down")
}

func (failingMembershipRepo) GetActiveMembershipsByUser(ctx context.Context, userId core.ID) ([]*core.CommunityMembership, error) {
	return nil, errors.New("store down")
}

func (failingMembershipRepo) Close() error { return nil }

func newTestFilter(t *testing.T, memberships storage.MembershipRepository) *visibilityFilter {
	t.Helper()
	pool, err := ants.NewPool(4)
	require.NoError(t, err)
	t.Cleanup(pool.Release)
	return newVisibilityFilter(memberships, pool, slog.Default())
}

func TestFilterPreservesOrder(t *testing.T) {
	f := newFixture(t)
	filter := newTestFilter(t, f.memberships)

	candidates := make([]*core.Profile, 20)
	for i := range candidates {
		candidates[i] = publicProfile("p")
	}

	visible := filter.Filter(context.Background(), "requester", "", candidates)
	require.Len(t, visible, 20)
	for i := range candidates {
		assert.Equal(t, candidates[i].Id, visible[i].Id, "concurrent checks must not reorder results")
	}
}

func TestFilterFailsClosedScoped(t *testing.T) {
	filter := newTestFilter(t, failingMembershipRepo{})

	candidates := []*core.Profile{publicProfile("a"), publicProfile("b")}
	visible := filter.Filter(context.Background(), "requester", "c1", candidates)

	assert.Empty(t, visible, "membership lookup errors exclude candidates, never include them")
}

func TestFilterFailsClosedUnscoped(t *testing.T) {
	filter := newTestFilter(t, failingMembershipRepo{})

	communityOnly := publicProfile("community only")
	communityOnly.Visibility = core.VisibilityCommunityOnly
	public := publicProfile("public")

	visible := filter.Filter(context.Background(), "requester", "", []*core.Profile{communityOnly, public})

	// Public profiles need no membership data and stay visible; the
	// community_only one is dropped because its check cannot run.
	require.Len(t, visible, 1)
	assert.Equal(t, public.Id, visible[0].Id)
}

func TestFilterEmptyInput(t *testing.T) {
	f := newFixture(t)
	filter := newTestFilter(t, f.memberships)

	assert.Empty(t, filter.Filter(context.Background(), "requester", "", nil))
}
