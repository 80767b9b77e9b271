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

// Package indexing keeps profile embeddings in sync with profile text.
// A refresh derives each profile's embedding text, skips profiles whose
// stored content hash still matches, and regenerates the rest in one batch.
package indexing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SriramKintada/SuperNetworkAI/ai"
	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/SriramKintada/SuperNetworkAI/storage"
	"github.com/panjf2000/ants/v2"
)

// DefaultWorkers is the default size of the async refresh pool.
const DefaultWorkers = 4

// Pipeline regenerates embeddings for changed profiles.
// Safe for concurrent use.
type Pipeline struct {
	profiles   storage.ProfileRepository
	embeddings storage.EmbeddingRepository
	embedder   ai.Embedder

	pool    *ants.Pool
	logger  *slog.Logger
	workers int
	timeout time.Duration
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithWorkers sets the async refresh pool size.
func WithWorkers(n int) PipelineOption {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithAsyncTimeout bounds how long a background refresh may run.
func WithAsyncTimeout(d time.Duration) PipelineOption {
	return func(p *Pipeline) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// NewPipeline creates a Pipeline over the given repositories and embedder.
func NewPipeline(profiles storage.ProfileRepository, embeddings storage.EmbeddingRepository, embedder ai.Embedder, opts ...PipelineOption) (*Pipeline, error) {
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if embeddings == nil {
		return nil, ErrEmbeddingRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	p := &Pipeline{
		profiles:   profiles,
		embeddings: embeddings,
		embedder:   embedder,
		logger:     slog.Default(),
		workers:    DefaultWorkers,
		timeout:    2 * time.Minute,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "indexing")

	pool, err := ants.NewPool(p.workers)
	if err != nil {
		return nil, fmt.Errorf("creating refresh pool: %w", err)
	}
	p.pool = pool

	return p, nil
}

// Release frees the async pool. Pending background refreshes are abandoned.
func (p *Pipeline) Release() {
	p.pool.Release()
}

// Refresh regenerates embeddings for the given profiles. Profiles whose
// stored embedding still matches their current text are skipped; the rest
// are embedded in one batch call. Returns the number of embeddings written.
func (p *Pipeline) Refresh(ctx context.Context, ids ...core.ID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	profiles, err := p.profiles.GetProfiles(ctx, ids...)
	if err != nil {
		return 0, fmt.Errorf("loading profiles: %w", err)
	}

	var stale []*core.Profile
	var texts []string
	for _, profile := range profiles {
		text := profile.DerivationText()
		existing, err := p.embeddings.GetEmbedding(ctx, profile.Id)
		if err == nil && existing.TextHash == core.HashText(text) {
			continue
		}
		if err != nil && err != storage.ErrNotFound {
			return 0, fmt.Errorf("checking embedding for %s: %w", profile.Id, err)
		}
		stale = append(stale, profile)
		texts = append(texts, text)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	vectors, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embedding %d profiles: %w", len(stale), err)
	}
	if len(vectors) != len(stale) {
		return 0, fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(stale))
	}

	written := 0
	for i, profile := range stale {
		vectors[i] = core.NormalizeVector(vectors[i])
		embedding := &core.ProfileEmbedding{
			ProfileId:  profile.Id,
			Vector:     vectors[i],
			SourceText: texts[i],
			TextHash:   core.HashText(texts[i]),
		}
		if err := p.embeddings.PutEmbedding(ctx, embedding); err != nil {
			return written, fmt.Errorf("storing embedding for %s: %w", profile.Id, err)
		}
		written++
	}

	p.logger.Debug("embeddings refreshed", "requested", len(ids), "written", written)
	return written, nil
}

// RefreshAsync schedules a background refresh and returns immediately.
// Failures are logged, not returned.
func (p *Pipeline) RefreshAsync(ids ...core.ID) error {
	return p.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()
		if _, err := p.Refresh(ctx, ids...); err != nil {
			p.logger.Error("background refresh failed", "profiles", len(ids), "error", err)
		}
	})
}
