package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.RankerHost)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Equal(t, "gpt-4o-mini", cfg.RankerModel)
	assert.Equal(t, 30, cfg.MaxRankCandidates)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		// Should have default values
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.RankerHost)
		assert.Equal(t, 30, cfg.MaxRankCandidates)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.RankerHost)
	})

	t.Run("with separate hosts", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingHost("http://embed:8080/v1"),
			WithRankerHost("http://rank:9090/v1"),
		)

		assert.Equal(t, "http://embed:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://rank:9090/v1", cfg.RankerHost)
	})

	t.Run("with custom models", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingModel("embeddinggemma"),
			WithRankerModel("qwen2.5:3b"),
		)

		assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
		assert.Equal(t, "qwen2.5:3b", cfg.RankerModel)
	})

	t.Run("with custom candidate cap", func(t *testing.T) {
		cfg := NewConfig(WithMaxRankCandidates(50))

		assert.Equal(t, 50, cfg.MaxRankCandidates)
	})
}

func TestConfigNormalize(t *testing.T) {
	cfg := NewConfig(
		WithEmbeddingHost("http://embed:8080"),
		WithRankerHost("http://rank:9090/"),
	)
	cfg.Normalize()

	assert.Equal(t, "http://embed:8080/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://rank:9090/v1", cfg.RankerHost)

	// Already-normalized hosts are untouched.
	cfg.Normalize()
	assert.Equal(t, "http://embed:8080/v1", cfg.EmbeddingHost)
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})

	t.Run("missing fields", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.EmbeddingModel = ""
		assert.Error(t, cfg.Validate())

		cfg = DefaultConfig()
		cfg.RankerModel = ""
		assert.Error(t, cfg.Validate())

		cfg = DefaultConfig()
		cfg.EmbeddingHost = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad candidate cap", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxRankCandidates = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("validate normalizes", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://host:1234"))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://host:1234/v1", cfg.EmbeddingHost)
	})
}
