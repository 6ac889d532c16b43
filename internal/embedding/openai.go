package embedding

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/config"
)

// DefaultModel is used when no embedding model is configured.
const DefaultModel = string(openai.SmallEmbedding3)

// OpenAIProvider implements Provider using the OpenAI embeddings API.
type OpenAIProvider struct {
	client  *openai.Client
	model   openai.EmbeddingModel
	limiter *rate.Limiter
	timeout time.Duration
}

// NewOpenAI creates an OpenAI embedding provider from config.
func NewOpenAI(cfg config.EmbeddingConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &OpenAIProvider{
		client:  openai.NewClient(cfg.APIKey),
		model:   openai.EmbeddingModel(model),
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		timeout: timeout,
	}, nil
}

// Model returns the embedding model identifier.
func (p *OpenAIProvider) Model() string {
	return string(p.model)
}

// Embed generates an embedding for a single text string.
func (p *OpenAIProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := p.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch generates embeddings for multiple text strings in one API
// call. The call is rate limited and bounded by the configured timeout
// so a stuck backend surfaces as an error instead of hanging the caller.
func (p *OpenAIProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: p.model,
	})
	if err != nil {
		return nil, fmt.Errorf("create embeddings: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(resp.Data), len(texts))
	}

	result := make([][]float32, len(texts))
	for i, data := range resp.Data {
		result[i] = data.Embedding
	}

	return result, nil
}
