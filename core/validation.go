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


package core

import "fmt"

// ValidateProfile validates a Profile according to domain rules.
//
// Validation rules:
//   - Id and UserId must not be empty
//   - Name must not be empty
//   - Visibility must be a known tier
//
// NOT validated (optional or populated elsewhere):
//   - Textual attributes other than Name (profiles fill in over time)
//   - VectorizationText (produced by enrichment)
func ValidateProfile(p *Profile) error {
	if p == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}
	if p.Id == "" || p.UserId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyID)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyName)
	}
	if err := ValidateVisibility(p.Visibility); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	return nil
}

// ValidateMembership validates a CommunityMembership according to domain rules.
func ValidateMembership(m *CommunityMembership) error {
	if m == nil {
		return fmt.Errorf("%w: membership is nil", ErrInvalidMembership)
	}
	if m.CommunityId == "" || m.UserId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMembership, ErrEmptyID)
	}
	if err := ValidateMembershipStatus(m.Status); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMembership, err)
	}
	return nil
}

// ValidateVisibility validates that a Visibility has a known value.
func ValidateVisibility(v Visibility) error {
	if v != VisibilityPublic && v != VisibilityCommunityOnly && v != VisibilityPrivate {
		return fmt.Errorf("%w: value %d", ErrInvalidVisibility, v)
	}
	return nil
}

// ValidateMembershipStatus validates that a MembershipStatus has a known value.
func ValidateMembershipStatus(s MembershipStatus) error {
	if s != MembershipActive && s != MembershipPending {
		return fmt.Errorf("%w: value %d", ErrInvalidMembershipStatus, s)
	}
	return nil
}
