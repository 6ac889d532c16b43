package classifier

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/config"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/models"
)

// DefaultAnthropicModel is the default Anthropic vision model.
const DefaultAnthropicModel = "claude-3-5-haiku-20241022"

// AnthropicClientInterface abstracts the Anthropic client for testing.
type AnthropicClientInterface interface {
	CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error)
}

// anthropicClientWrapper wraps the real client to implement
// AnthropicClientInterface.
type anthropicClientWrapper struct {
	client anthropic.Client
}

func (w *anthropicClientWrapper) CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	return w.client.Messages.New(ctx, params)
}

// AnthropicClassifier classifies food images with a Claude vision model.
type AnthropicClassifier struct {
	client  AnthropicClientInterface
	model   string
	timeout time.Duration
}

// NewAnthropic creates an Anthropic-backed classifier from config.
func NewAnthropic(cfg config.ClassifierConfig) (*AnthropicClassifier, error) {
	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultAnthropicModel
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))

	return &AnthropicClassifier{
		client:  &anthropicClientWrapper{client: client},
		model:   model,
		timeout: cfg.Timeout,
	}, nil
}

// NewAnthropicWithClient creates a classifier with a custom client
// interface (for testing).
func NewAnthropicWithClient(client AnthropicClientInterface, model string) *AnthropicClassifier {
	if model == "" {
		model = DefaultAnthropicModel
	}
	return &AnthropicClassifier{client: client, model: model}
}

// Model returns the vision model identifier.
func (c *AnthropicClassifier) Model() string {
	return c.model
}

// Predict sends the image to the vision model and parses the ranked
// label predictions from its reply.
func (c *AnthropicClassifier) Predict(ctx context.Context, image []byte) ([]models.LabelPrediction, error) {
	if len(image) == 0 {
		return nil, ErrNoImage
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	encoded := base64.StdEncoding.EncodeToString(image)

	msg, err := c.client.CreateMessage(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 256,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(detectMediaType(image), encoded),
				anthropic.NewTextBlock(labelPrompt),
			),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// Check the Type field directly so mock responses without raw JSON
	// also work.
	var content string
	for _, block := range msg.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}

	return parsePredictions(content)
}
