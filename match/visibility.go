// Copyright 2025 SuperNetworkAI Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package match

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/SriramKintada/SuperNetworkAI/storage"
	"github.com/panjf2000/ants/v2"
)

// visibilityFilter decides which candidate profiles a requester may see.
// Per-candidate membership lookups run on a shared worker pool; the output
// preserves the input order.
//
// Any membership lookup failure excludes the affected candidate rather than
// surfacing it, so a degraded membership store can only ever hide profiles.
type visibilityFilter struct {
	memberships storage.MembershipRepository
	pool        *ants.Pool
	logger      *slog.Logger
}

func newVisibilityFilter(memberships storage.MembershipRepository, pool *ants.Pool, logger *slog.Logger) *visibilityFilter {
	return &visibilityFilter{
		memberships: memberships,
		pool:        pool,
		logger:      logger.With("component", "visibility"),
	}
}

// Filter returns the subset of candidates visible to the requester, in the
// original order. communityId scopes the check when non-empty.
func (f *visibilityFilter) Filter(ctx context.Context, requesterId, communityId core.ID, candidates []*core.Profile) []*core.Profile {
	if len(candidates) == 0 {
		return nil
	}

	// The requester's own communities only matter for unscoped checks of
	// community_only profiles. Fetch them once, up front.
	var requesterCommunities map[core.ID]bool
	if communityId == "" && needsSharedCommunityCheck(requesterId, candidates) {
		memberships, err := f.memberships.GetActiveMembershipsByUser(ctx, requesterId)
		if err != nil {
			f.logger.Warn("requester membership lookup failed, excluding community-scoped profiles",
				"requester", requesterId, "error", err)
		} else {
			requesterCommunities = make(map[core.ID]bool, len(memberships))
			for _, m := range memberships {
				requesterCommunities[m.CommunityId] = true
			}
		}
	}

	keep := make([]bool, len(candidates))
	var wg sync.WaitGroup
	for i, candidate := range candidates {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			keep[i] = f.visible(ctx, requesterId, communityId, requesterCommunities, candidate)
		}
		if err := f.pool.Submit(task); err != nil {
			// Pool exhausted or released; do the check inline.
			task()
		}
	}
	wg.Wait()

	visible := make([]*core.Profile, 0, len(candidates))
	for i, candidate := range candidates {
		if keep[i] {
			visible = append(visible, candidate)
		}
	}
	return visible
}

// visible applies the decision procedure for one candidate.
func (f *visibilityFilter) visible(ctx context.Context, requesterId, communityId core.ID, requesterCommunities map[core.ID]bool, p *core.Profile) bool {
	// Own profile never appears in one's own results.
	if p.UserId == requesterId {
		return false
	}
	// Private profiles are invisible in every search, scoped or not.
	if p.Visibility == core.VisibilityPrivate {
		return false
	}

	if communityId != "" {
		return f.visibleInCommunity(ctx, communityId, p)
	}

	if !p.ShowInSearch {
		return false
	}
	switch p.Visibility {
	case core.VisibilityPublic:
		return true
	case core.VisibilityCommunityOnly:
		return f.sharesCommunity(ctx, requesterCommunities, p)
	default:
		return false
	}
}

// visibleInCommunity reports whether the profile owner participates in the
// scoped community and opted into discovery there. The profile's general
// visibility tier and ShowInSearch flag do not apply inside a community.
func (f *visibilityFilter) visibleInCommunity(ctx context.Context, communityId core.ID, p *core.Profile) bool {
	m, err := f.memberships.GetMembership(ctx, communityId, p.UserId)
	if err != nil {
		if err != storage.ErrNotFound {
			f.logger.Warn("membership lookup failed, excluding profile",
				"profile", p.Id, "community", communityId, "error", err)
		}
		return false
	}
	return m.Active() && m.VisibleInCommunity
}

// sharesCommunity reports whether the candidate's owner has an active
// membership in any of the requester's active communities.
func (f *visibilityFilter) sharesCommunity(ctx context.Context, requesterCommunities map[core.ID]bool, p *core.Profile) bool {
	if len(requesterCommunities) == 0 {
		return false
	}
	memberships, err := f.memberships.GetActiveMembershipsByUser(ctx, p.UserId)
	if err != nil {
		f.logger.Warn("membership lookup failed, excluding profile",
			"profile", p.Id, "error", err)
		return false
	}
	for _, m := range memberships {
		if requesterCommunities[m.CommunityId] {
			return true
		}
	}
	return false
}

// needsSharedCommunityCheck reports whether any candidate would require the
// requester's community set to decide.
func needsSharedCommunityCheck(requesterId core.ID, candidates []*core.Profile) bool {
	for _, p := range candidates {
		if p.UserId != requesterId && p.Visibility == core.VisibilityCommunityOnly {
			return true
		}
	}
	return false
}
