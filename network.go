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

// Package supernetwork is a semantic matching engine for professional
// profiles. A natural-language query ("technical cofounder with ML
// experience in fintech") is embedded, matched against stored profile
// embeddings, filtered by visibility rules and re-ranked by a language
// model that explains each match.
package supernetwork

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/SriramKintada/SuperNetworkAI/ai"
	"github.com/SriramKintada/SuperNetworkAI/ai/openai"
	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/SriramKintada/SuperNetworkAI/indexing"
	"github.com/SriramKintada/SuperNetworkAI/match"
	"github.com/SriramKintada/SuperNetworkAI/reembed"
	"github.com/SriramKintada/SuperNetworkAI/storage"
	"github.com/SriramKintada/SuperNetworkAI/storage/badger"
)

// Network is the top-level handle: storage, AI services, the embedding
// pipeline and the searcher, wired together.
type Network struct {
	backend        *badger.Backend
	profileRepo    storage.ProfileRepository
	embeddingRepo  storage.EmbeddingRepository
	membershipRepo storage.MembershipRepository
	provider       ai.AIProvider
	pipeline       *indexing.Pipeline
	searcher       *match.Searcher
	logger         *slog.Logger
	syncRefresh    bool
}

// NetworkOption configures a Network.
type NetworkOption func(*networkOptions)

type networkOptions struct {
	aiConfig    *ai.Config
	provider    ai.AIProvider
	inMemory    bool
	syncRefresh bool
	logger      *slog.Logger
	searchOpts  []match.SearcherOption
}

// WithAIConfig sets the configuration for the default OpenAI-compatible
// provider. Ignored when WithAIProvider is given.
func WithAIConfig(config *ai.Config) NetworkOption {
	return func(o *networkOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider supplies a pre-built AI provider instead of the default
// OpenAI-compatible one. The network takes ownership and closes it.
func WithAIProvider(provider ai.AIProvider) NetworkOption {
	return func(o *networkOptions) {
		o.provider = provider
	}
}

// WithInMemory keeps all data in memory. Intended for tests and seeding.
func WithInMemory() NetworkOption {
	return func(o *networkOptions) {
		o.inMemory = true
	}
}

// WithSyncRefresh makes SaveProfile regenerate embeddings before returning
// instead of in the background.
func WithSyncRefresh() NetworkOption {
	return func(o *networkOptions) {
		o.syncRefresh = true
	}
}

// WithNetworkLogger sets the logger. Defaults to slog.Default().
func WithNetworkLogger(logger *slog.Logger) NetworkOption {
	return func(o *networkOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSearcherOptions passes options through to the underlying Searcher.
func WithSearcherOptions(opts ...match.SearcherOption) NetworkOption {
	return func(o *networkOptions) {
		o.searchOpts = append(o.searchOpts, opts...)
	}
}

// Open creates a Network over a BadgerDB database at filePath.
func Open(filePath string, opts ...NetworkOption) (*Network, error) {
	options := &networkOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	profileRepo := badger.NewProfileRepository(backend)
	embeddingRepo := badger.NewEmbeddingRepository(backend)
	membershipRepo := badger.NewMembershipRepository(backend)

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	pipeline, err := indexing.NewPipeline(profileRepo, embeddingRepo, provider.Embedder(),
		indexing.WithLogger(options.logger))
	if err != nil {
		provider.Close()
		backend.Close()
		return nil, err
	}

	searchOpts := append([]match.SearcherOption{match.WithLogger(options.logger)}, options.searchOpts...)
	searcher, err := match.NewSearcher(profileRepo, embeddingRepo, membershipRepo, provider, searchOpts...)
	if err != nil {
		pipeline.Release()
		provider.Close()
		backend.Close()
		return nil, err
	}

	return &Network{
		backend:        backend,
		profileRepo:    profileRepo,
		embeddingRepo:  embeddingRepo,
		membershipRepo: membershipRepo,
		provider:       provider,
		pipeline:       pipeline,
		searcher:       searcher,
		logger:         options.logger,
		syncRefresh:    options.syncRefresh,
	}, nil
}

// Close releases the AI provider, worker pools and storage.
func (n *Network) Close() error {
	n.searcher.Release()
	n.pipeline.Release()

	if err := n.provider.Close(); err != nil {
		n.logger.Error("error closing AI provider", "err", err)
	}
	if err := n.backend.Close(); err != nil {
		n.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// SaveProfile validates and stores a profile, then refreshes its embedding.
// By default the refresh runs in the background; with WithSyncRefresh it
// completes before SaveProfile returns. Unchanged text skips regeneration.
func (n *Network) SaveProfile(ctx context.Context, profile *core.Profile) error {
	if err := core.ValidateProfile(profile); err != nil {
		return err
	}
	if _, err := n.profileRepo.UpsertProfiles(ctx, profile); err != nil {
		return fmt.Errorf("storing profile: %w", err)
	}

	if n.syncRefresh {
		_, err := n.pipeline.Refresh(ctx, profile.Id)
		return err
	}
	return n.pipeline.RefreshAsync(profile.Id)
}

// DeleteProfile removes a profile and its embedding.
func (n *Network) DeleteProfile(ctx context.Context, id core.ID) error {
	if err := n.profileRepo.DeleteProfiles(ctx, id); err != nil {
		return err
	}
	return n.embeddingRepo.DeleteEmbedding(ctx, id)
}

// JoinCommunity validates and stores a community membership.
func (n *Network) JoinCommunity(ctx context.Context, membership *core.CommunityMembership) error {
	if err := core.ValidateMembership(membership); err != nil {
		return err
	}
	_, err := n.membershipRepo.UpsertMemberships(ctx, membership)
	return err
}

// LeaveCommunity removes a membership.
func (n *Network) LeaveCommunity(ctx context.Context, communityId, userId core.ID) error {
	return n.membershipRepo.DeleteMembership(ctx, communityId, userId)
}

// Search runs the matching pipeline for one request.
func (n *Network) Search(ctx context.Context, req core.SearchRequest) ([]*core.RankedResult, error) {
	return n.searcher.Search(ctx, req)
}

// MatchInsight produces a pairwise analysis of why the target profile could
// be valuable to the viewer.
func (n *Network) MatchInsight(ctx context.Context, viewerId, targetId core.ID) (*ai.MatchInsight, error) {
	viewer, err := n.profileRepo.GetProfile(ctx, viewerId)
	if err != nil {
		return nil, fmt.Errorf("loading viewer profile: %w", err)
	}
	target, err := n.profileRepo.GetProfile(ctx, targetId)
	if err != nil {
		return nil, fmt.Errorf("loading target profile: %w", err)
	}
	return n.provider.InsightGenerator().MatchInsight(ctx, viewer, target)
}

// RefreshEmbeddings synchronously regenerates embeddings for the given
// profiles, or for every profile when no ids are given. Returns the number
// of embeddings written.
func (n *Network) RefreshEmbeddings(ctx context.Context, ids ...core.ID) (int, error) {
	if len(ids) == 0 {
		profiles, err := n.profileRepo.GetAllProfiles(ctx)
		if err != nil {
			return 0, err
		}
		for _, p := range profiles {
			ids = append(ids, p.Id)
		}
	}
	return n.pipeline.Refresh(ctx, ids...)
}

// NewReembedder creates a full-corpus reembedder over this network's storage.
func (n *Network) NewReembedder(config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(n.profileRepo, n.embeddingRepo, n.provider.Embedder(), config, progress)
}

// ProfileRepository exposes the underlying profile repository.
func (n *Network) ProfileRepository() storage.ProfileRepository {
	return n.profileRepo
}

// EmbeddingRepository exposes the underlying embedding repository.
func (n *Network) EmbeddingRepository() storage.EmbeddingRepository {
	return n.embeddingRepo
}

// MembershipRepository exposes the underlying membership repository.
func (n *Network) MembershipRepository() storage.MembershipRepository {
	return n.membershipRepo
}
