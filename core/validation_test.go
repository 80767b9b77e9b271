package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfile(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, ValidateProfile(fullProfile()))
	})

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, ValidateProfile(nil), ErrInvalidProfile)
	})

	t.Run("missing ids", func(t *testing.T) {
		p := fullProfile()
		p.Id = ""
		err := ValidateProfile(p)
		assert.ErrorIs(t, err, ErrInvalidProfile)
		assert.ErrorIs(t, err, ErrEmptyID)

		p = fullProfile()
		p.UserId = ""
		assert.ErrorIs(t, ValidateProfile(p), ErrEmptyID)
	})

	t.Run("missing name", func(t *testing.T) {
		p := fullProfile()
		p.Name = ""
		assert.ErrorIs(t, ValidateProfile(p), ErrEmptyName)
	})

	t.Run("bad visibility", func(t *testing.T) {
		p := fullProfile()
		p.Visibility = Visibility(42)
		assert.ErrorIs(t, ValidateProfile(p), ErrInvalidVisibility)
	})
}

func TestValidateMembership(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m := &CommunityMembership{
			CommunityId:        NewID(),
			UserId:             NewID(),
			Status:             MembershipActive,
			VisibleInCommunity: true,
		}
		require.NoError(t, ValidateMembership(m))
	})

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, ValidateMembership(nil), ErrInvalidMembership)
	})

	t.Run("missing ids", func(t *testing.T) {
		m := &CommunityMembership{UserId: NewID(), Status: MembershipActive}
		err := ValidateMembership(m)
		assert.ErrorIs(t, err, ErrInvalidMembership)
		assert.ErrorIs(t, err, ErrEmptyID)
	})

	t.Run("bad status", func(t *testing.T) {
		m := &CommunityMembership{CommunityId: NewID(), UserId: NewID()}
		assert.ErrorIs(t, ValidateMembership(m), ErrInvalidMembershipStatus)
	})
}
