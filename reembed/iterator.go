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

package reembed

import (
	"context"

	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/SriramKintada/SuperNetworkAI/storage"
)

const (
	// DefaultBatchSize is the default number of profiles to process per batch
	DefaultBatchSize = 100
)

// ProfileIterator iterates over all stored profiles in batches.
type ProfileIterator struct {
	repo      storage.ProfileRepository
	batchSize int
}

// NewProfileIterator creates a new profile iterator.
// batchSize: number of profiles in each batch (must be > 0)
func NewProfileIterator(repo storage.ProfileRepository, batchSize int) *ProfileIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &ProfileIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all profiles, calling fn for each batch.
// Iteration stops on the first error from fn or when all profiles have been
// processed. Context cancellation is checked between batches.
func (it *ProfileIterator) ForEach(ctx context.Context, fn func([]*core.Profile) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	profiles, err := it.repo.GetAllProfiles(ctx)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return nil
	}

	for i := 0; i < len(profiles); i += it.batchSize {
		end := i + it.batchSize
		if end > len(profiles) {
			end = len(profiles)
		}

		if err := fn(profiles[i:end]); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}
