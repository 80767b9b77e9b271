package badger

import (
	"fmt"

	"github.com/SriramKintada/SuperNetworkAI/core"
)

// Key prefixes for different data types
const (
	profilePrefix    = "profile"
	embeddingPrefix  = "emb"
	membershipPrefix = "member"
	memberUserPrefix = "memberu"
)

// makeProfileKey generates a key for a profile by ID.
func makeProfileKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s", profilePrefix, id))
}

// makeEmbeddingKey generates a key for a profile's embedding.
// One key per profile makes the replace-embedding write atomic.
func makeEmbeddingKey(profileId core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s", embeddingPrefix, profileId))
}

// makeMembershipKey generates the primary key for a membership.
// Format: prefix:communityId:userId
func makeMembershipKey(communityId, userId core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", membershipPrefix, communityId, userId))
}

// makeMemberUserKey generates the user-index key for a membership.
// Format: prefix:userId:communityId — prefix scans by user list all of a
// user's memberships.
func makeMemberUserKey(userId, communityId core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", memberUserPrefix, userId, communityId))
}

// makePartialMemberUserKey generates the scan prefix for one user's
// membership index entries.
func makePartialMemberUserKey(userId core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:", memberUserPrefix, userId))
}
