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

import "errors"

// Domain validation errors
var (
	// ErrInvalidProfile indicates a Profile failed validation.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrInvalidMembership indicates a CommunityMembership failed validation.
	ErrInvalidMembership = errors.New("invalid community membership")

	// ErrEmptyID indicates a required identifier is empty.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrEmptyName indicates the profile Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrInvalidVisibility indicates an invalid Visibility value.
	ErrInvalidVisibility = errors.New("invalid visibility")

	// ErrInvalidMembershipStatus indicates an invalid MembershipStatus value.
	ErrInvalidMembershipStatus = errors.New("invalid membership status")
)
