// Package embedding provides text embedding generation and the
// persisted per-corpus embedding cache.
package embedding

import "context"

// Provider defines the interface for generating text embeddings.
type Provider interface {
	// Embed generates an embedding for a single text string.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple text strings in one
	// backend call, preserving input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Model returns the model identifier. The cache records it so a
	// mismatch between the artifact's origin model and the runtime
	// model is detectable.
	Model() string
}
