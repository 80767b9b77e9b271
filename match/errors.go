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

import "errors"

// Request validation errors, rejected before any external call.
var (
	// ErrInvalidQuery is returned when the query is empty after trimming.
	ErrInvalidQuery = errors.New("query must not be empty")

	// ErrInvalidLimit is returned when the requested limit is not positive.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrInvalidRequester is returned when the requester id is empty.
	ErrInvalidRequester = errors.New("requester id required")
)

// Pipeline stage failures. A failed search is distinguishable from an empty
// result set: empty results come with a nil error.
var (
	// ErrEmbeddingUnavailable indicates the query could not be vectorized.
	// Without a query vector no similarity ranking is possible, so the
	// whole search fails.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrSearchUnavailable indicates the similarity search backend failed.
	ErrSearchUnavailable = errors.New("similarity search unavailable")

	// ErrRankingUnavailable indicates relevance re-ranking failed. The
	// searcher recovers by degrading to similarity-only ordering.
	ErrRankingUnavailable = errors.New("ranking service unavailable")
)

// Constructor errors.
var (
	// ErrProfileRepositoryRequired is returned when a profile repository is not provided.
	ErrProfileRepositoryRequired = errors.New("profile repository required")

	// ErrEmbeddingRepositoryRequired is returned when an embedding repository is not provided.
	ErrEmbeddingRepositoryRequired = errors.New("embedding repository required")

	// ErrMembershipRepositoryRequired is returned when a membership repository is not provided.
	ErrMembershipRepositoryRequired = errors.New("membership repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")
)
