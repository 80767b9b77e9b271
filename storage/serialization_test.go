package storage

import (
	"testing"
	"time"

	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := &core.Profile{
		Id:                "p1",
		UserId:            "u1",
		Name:              "Grace Hopper",
		Headline:          "Rear Admiral, computer scientist",
		Bio:               "Invented the first compiler.",
		ExperienceSummary: "Navy, Eckert-Mauchly, Univac.",
		IntentText:        "Looking for collaborators on compilers.",
		Skills:            []string{"COBOL", "compilers"},
		Industries:        []string{"defense", "computing"},
		ExpertiseAreas:    []string{"languages"},
		Location:          "Arlington, VA",
		AllRoles:          []string{"Rear Admiral"},
		AllCompanies:      []string{"US Navy"},
		EducationSummary:  "PhD Mathematics, Yale",
		KeyAchievements:   []string{"First compiler", "COBOL"},
		VectorizationText: "precomposed text",
		Visibility:        core.VisibilityCommunityOnly,
		ShowInSearch:      true,
		InsertedAt:        now.Add(-time.Hour),
		UpdatedAt:         now,
	}

	got, err := UnmarshalProfile(MarshalProfile(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestProfileRoundTripZeroValues(t *testing.T) {
	p := &core.Profile{Id: "p2", UserId: "u2", Name: "Empty"}

	got, err := UnmarshalProfile(MarshalProfile(p))
	require.NoError(t, err)
	assert.Equal(t, p.Id, got.Id)
	assert.Empty(t, got.Skills)
	assert.False(t, got.ShowInSearch)
	assert.True(t, got.InsertedAt.IsZero())
}

func TestProfileEmbeddingRoundTrip(t *testing.T) {
	e := &core.ProfileEmbedding{
		ProfileId:  "p1",
		Vector:     []float32{0.1, -0.5, 0.25, 1},
		SourceText: "Grace Hopper. Rear Admiral...",
		TextHash:   core.HashText("Grace Hopper. Rear Admiral..."),
		UpdatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	got, err := UnmarshalProfileEmbedding(MarshalProfileEmbedding(e))
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestMembershipRoundTrip(t *testing.T) {
	m := &core.CommunityMembership{
		CommunityId:        "c1",
		UserId:             "u1",
		Status:             core.MembershipPending,
		VisibleInCommunity: true,
		InsertedAt:         time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:          time.Now().UTC().Truncate(time.Microsecond),
	}

	got, err := UnmarshalMembership(MarshalMembership(m))
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestUnmarshalCorruptData(t *testing.T) {
	_, err := UnmarshalProfile([]byte{0xff, 0x01, 0x02})
	assert.Error(t, err)

	_, err = UnmarshalProfileEmbedding([]byte{})
	assert.Error(t, err)

	_, err = UnmarshalMembership([]byte{0x03})
	assert.Error(t, err)
}
