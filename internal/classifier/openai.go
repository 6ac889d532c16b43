package classifier

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/config"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/models"
)

// DefaultOpenAIModel is the default OpenAI vision model.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIClientInterface abstracts the OpenAI client for testing.
type OpenAIClientInterface interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClassifier classifies food images with an OpenAI vision model.
type OpenAIClassifier struct {
	client  OpenAIClientInterface
	model   string
	timeout time.Duration
}

// NewOpenAI creates an OpenAI-backed classifier from config.
func NewOpenAI(cfg config.ClassifierConfig) (*OpenAIClassifier, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAIClassifier{
		client:  openai.NewClient(cfg.OpenAIAPIKey),
		model:   model,
		timeout: cfg.Timeout,
	}, nil
}

// NewOpenAIWithClient creates a classifier with a custom client
// interface (for testing).
func NewOpenAIWithClient(client OpenAIClientInterface, model string) *OpenAIClassifier {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIClassifier{client: client, model: model}
}

// Model returns the vision model identifier.
func (c *OpenAIClassifier) Model() string {
	return c.model
}

// Predict sends the image to the vision model and parses the ranked
// label predictions from its reply.
func (c *OpenAIClassifier) Predict(ctx context.Context, image []byte) ([]models.LabelPrediction, error) {
	if len(image) == 0 {
		return nil, ErrNoImage
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s",
		detectMediaType(image), base64.StdEncoding.EncodeToString(image))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: 256,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: labelPrompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
					},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	return parsePredictions(resp.Choices[0].Message.Content)
}
