// Package config handles application configuration management.
package config

import (
	"os"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Base directory for all foodrec data (~/.foodrec)
	BaseDir string

	// CorpusPath is the cleaned recipe CSV (default: <BaseDir>/recipe_data.csv)
	CorpusPath string

	// Embedding settings for the semantic retriever
	Embedding EmbeddingConfig

	// Classifier settings for the image path
	Classifier ClassifierConfig
}

// EmbeddingConfig holds embedding provider and cache configuration.
type EmbeddingConfig struct {
	// OpenAI API key for embeddings (OPENAI_API_KEY env var)
	APIKey string
	// Model for embeddings (default: text-embedding-3-small)
	Model string
	// CachePath is where the embedding matrix artifact is persisted
	// (default: <BaseDir>/recipe_embeddings.json)
	CachePath string
	// Timeout for a single embedding API call
	Timeout time.Duration
	// RequestsPerSecond caps calls to the embedding backend
	RequestsPerSecond float64
}

// ClassifierConfig holds image classifier configuration.
type ClassifierConfig struct {
	// API keys for the supported vision backends
	OpenAIAPIKey    string
	AnthropicAPIKey string

	// Provider: "anthropic" or "openai" (auto-detected if empty)
	Provider string
	// Model (provider-specific default if empty)
	Model string
	// Timeout for a single classification call
	Timeout time.Duration
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: DefaultBaseDir(),
		Embedding: EmbeddingConfig{
			Model:             "text-embedding-3-small",
			Timeout:           60 * time.Second,
			RequestsPerSecond: 2,
		},
		Classifier: ClassifierConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if dir := os.Getenv("FOODREC_BASE_DIR"); dir != "" {
		cfg.BaseDir = dir
	}

	if path := os.Getenv("FOODREC_CORPUS"); path != "" {
		cfg.CorpusPath = path
	}

	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg.Embedding.APIKey = apiKey
		cfg.Classifier.OpenAIAPIKey = apiKey
	}

	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		cfg.Classifier.AnthropicAPIKey = apiKey
	}

	if model := os.Getenv("FOODREC_EMBEDDING_MODEL"); model != "" {
		cfg.Embedding.Model = model
	}

	if provider := os.Getenv("FOODREC_CLASSIFIER"); provider != "" {
		cfg.Classifier.Provider = provider
	}

	paths := GetPaths(cfg)
	if cfg.CorpusPath == "" {
		cfg.CorpusPath = paths.Corpus
	}
	if cfg.Embedding.CachePath == "" {
		cfg.Embedding.CachePath = paths.Embeddings
	}

	if err := os.MkdirAll(cfg.BaseDir, 0755); err != nil {
		return nil, err
	}

	return cfg, nil
}
