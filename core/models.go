package core

import (
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
	"github.com/google/uuid"
)

// ID is a unique identifier for domain entities (profiles, users, communities).
// Values are opaque strings; new IDs are UUIDs.
type ID string

// NewID generates a new random ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// HashText computes a deterministic content hash of text using BLAKE2b-256.
// Identical text always produces an identical hash, which is how stale
// embeddings are detected.
func HashText(text string) string {
	h, _ := blake2b.New(32, nil)
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// Visibility is a profile's declared discoverability tier.
type Visibility int

const (
	// VisibilityPublic makes the profile discoverable by anyone.
	VisibilityPublic Visibility = iota + 1
	// VisibilityCommunityOnly restricts discovery to users sharing a community.
	VisibilityCommunityOnly
	// VisibilityPrivate removes the profile from all search results.
	VisibilityPrivate
)

// String returns the wire name of the visibility tier.
func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityCommunityOnly:
		return "community_only"
	case VisibilityPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// MembershipStatus is the state of a community membership.
type MembershipStatus int

const (
	// MembershipActive is a confirmed membership.
	MembershipActive MembershipStatus = iota + 1
	// MembershipPending is a membership awaiting approval.
	// Pending memberships never qualify for visibility checks.
	MembershipPending
)

// String returns the wire name of the membership status.
func (s MembershipStatus) String() string {
	switch s {
	case MembershipActive:
		return "active"
	case MembershipPending:
		return "pending"
	default:
		return "unknown"
	}
}

// Profile is a person's discoverable record.
type Profile struct {
	Id     ID
	UserId ID // owning user

	Name              string
	Headline          string
	Bio               string
	ExperienceSummary string
	IntentText        string // structured "looking for" statement
	Skills            []string
	Industries        []string
	ExpertiseAreas    []string
	Location          string
	AllRoles          []string
	AllCompanies      []string
	EducationSummary  string
	KeyAchievements   []string

	// VectorizationText is a pre-composed comprehensive text produced by
	// enrichment. When present it takes precedence over field synthesis
	// for embedding derivation.
	VectorizationText string

	Visibility   Visibility
	ShowInSearch bool // explicit opt-out when false

	InsertedAt time.Time
	UpdatedAt  time.Time
}

// ProfileEmbedding is the cached embedding artifact derived from a profile.
// It is never user-edited; it is replaced whenever the profile's
// matching-relevant text changes.
type ProfileEmbedding struct {
	ProfileId  ID
	Vector     []float32
	SourceText string // the exact text the vector was generated from
	TextHash   string // HashText(SourceText)
	UpdatedAt  time.Time
}

// Stale reports whether the embedding no longer reflects the profile's
// current derivation text.
func (e *ProfileEmbedding) Stale(p *Profile) bool {
	return e.TextHash != HashText(p.DerivationText())
}

// CommunityMembership joins a user to a community.
type CommunityMembership struct {
	CommunityId ID
	UserId      ID
	Status      MembershipStatus
	// VisibleInCommunity governs discoverability inside community-scoped
	// searches, independent of the profile's general visibility tier.
	VisibleInCommunity bool
	InsertedAt         time.Time
	UpdatedAt          time.Time
}

// Active reports whether the membership qualifies for visibility checks.
func (m *CommunityMembership) Active() bool {
	return m.Status == MembershipActive
}

// SearchRequest describes one search invocation.
type SearchRequest struct {
	Query       string
	RequesterId ID
	// CommunityId scopes the search to one community when non-empty.
	CommunityId ID
	Limit       int
}

// Scoped reports whether the request is community-scoped.
func (r *SearchRequest) Scoped() bool {
	return r.CommunityId != ""
}

// SimilarityMatch is a raw vector-search hit.
type SimilarityMatch struct {
	ProfileId ID
	Score     float32 // cosine similarity in [0,1]
}

// RankedResult is one entry of the final search output.
type RankedResult struct {
	Profile     *Profile
	Similarity  float32 // cosine similarity in [0,1]
	Relevance   float32 // model relevance in [0,1]; 0 in similarity-only fallback
	Explanation string  // empty in similarity-only fallback
}
