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
	"fmt"
	"io"
	"time"

	"github.com/SriramKintada/SuperNetworkAI/ai"
	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/SriramKintada/SuperNetworkAI/storage"
)

// Config holds configuration for a reembedding run.
type Config struct {
	// BatchSize is the number of profiles to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of profiles)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reembedder orchestrates the reembedding of every stored profile.
type Reembedder struct {
	profiles  storage.ProfileRepository
	embedder  ai.Embedder
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
	iterator  *ProfileIterator
}

// NewReembedder creates a new reembedder.
// progress: where to write progress output (typically os.Stderr)
func NewReembedder(profiles storage.ProfileRepository, embeddings storage.EmbeddingRepository, embedder ai.Embedder, config *Config, progress io.Writer) *Reembedder {
	if config == nil {
		config = DefaultConfig()
	}

	return &Reembedder{
		profiles:  profiles,
		embedder:  embedder,
		config:    config,
		progress:  progress,
		processor: NewBatchProcessor(embeddings, embedder, config.MaxRetries, config.RetryDelay),
		iterator:  NewProfileIterator(profiles, config.BatchSize),
	}
}

// Run executes the reembedding operation. Every stored profile is
// re-embedded with the configured embedder, replacing its stored vector,
// source text and content hash. Progress is reported to the configured
// writer.
func (r *Reembedder) Run(ctx context.Context) error {
	allProfiles, err := r.profiles.GetAllProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to query profiles: %w", err)
	}

	total := len(allProfiles)
	if total == 0 {
		fmt.Fprintf(r.progress, "No profiles found in database (0 profiles)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reembedding of %d profiles (batch size: %d)\n",
		total, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	processed := 0
	err = r.iterator.ForEach(ctx, func(profiles []*core.Profile) error {
		if err := r.processor.Process(ctx, profiles); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		processed += len(profiles)
		tracker.Update(processed)
		return nil
	})
	if err != nil {
		return err
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reembedding complete. Processed %d profiles in %v (%.1f profiles/sec)\n",
		total, elapsed.Round(time.Second), float64(total)/elapsed.Seconds())

	return nil
}
