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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	EmbeddingHost string

	// RankerHost is the base URL for the ranking/insight chat API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	RankerHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "text-embedding-3-small", "embeddinggemma"
	EmbeddingModel string

	// RankerModel is the model identifier to use for relevance ranking
	// and match insights. Example: "gpt-4o-mini", "qwen2.5:3b"
	RankerModel string

	// MaxRankCandidates caps how many candidates are sent to the ranking
	// model in one prompt. Default: 30
	MaxRankCandidates int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithRankerHost sets the ranker service host URL.
func WithRankerHost(host string) ConfigOption {
	return func(c *Config) {
		c.RankerHost = host
	}
}

// WithHost sets both embedding and ranker hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.RankerHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithRankerModel sets the ranker model identifier.
func WithRankerModel(model string) ConfigOption {
	return func(c *Config) {
		c.RankerModel = model
	}
}

// WithMaxRankCandidates sets the per-prompt candidate cap for ranking.
func WithMaxRankCandidates(max int) ConfigOption {
	return func(c *Config) {
		c.MaxRankCandidates = max
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services. By default, embedding and ranking use the
// same host.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		EmbeddingHost:     defaultHost,
		RankerHost:        defaultHost,
		EmbeddingModel:    "text-embedding-3-small",
		RankerModel:       "gpt-4o-mini",
		MaxRankCandidates: 30,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options. This is the recommended way to create a Config with
// custom settings.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434/v1"),
//	    ai.WithEmbeddingModel("embeddinggemma"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is required
// by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.EmbeddingHost != "" && !strings.HasSuffix(c.EmbeddingHost, "/v1") {
		c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/") + "/v1"
	}
	if c.RankerHost != "" && !strings.HasSuffix(c.RankerHost, "/v1") {
		c.RankerHost = strings.TrimSuffix(c.RankerHost, "/") + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("ai config: EmbeddingHost is required")
	}
	if c.RankerHost == "" {
		return errors.New("ai config: RankerHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.RankerModel == "" {
		return errors.New("ai config: RankerModel is required")
	}
	if c.MaxRankCandidates < 1 {
		return errors.New("ai config: MaxRankCandidates must be positive")
	}
	return nil
}
