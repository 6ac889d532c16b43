// Package classifier adapts external vision models into the food label
// classifier the image recommendation path consumes. The engine only
// depends on the contract: at most three label/confidence pairs,
// descending by confidence, deterministic for a fixed image and model.
package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/config"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/models"
)

var (
	// ErrUnavailable is returned when the vision backend cannot be
	// reached or returns an unusable response. Image search only;
	// callers may retry.
	ErrUnavailable = errors.New("image classifier unavailable")

	// ErrNoImage is returned for an empty image payload.
	ErrNoImage = errors.New("no image provided")
)

// MaxLabels caps the number of predictions returned.
const MaxLabels = 3

// Classifier maps an image to a ranked list of food labels.
type Classifier interface {
	// Predict returns at most MaxLabels predictions, ordered by
	// descending confidence (each in [0,1]).
	Predict(ctx context.Context, image []byte) ([]models.LabelPrediction, error)

	// Model returns the underlying model identifier.
	Model() string
}

// labelPrompt asks the vision model for machine-readable output only.
const labelPrompt = `Identify the food shown in this image. Respond with ONLY a JSON array of at most 3 objects, most likely first, each shaped like {"label": "fried rice", "confidence": 0.92}. Labels must be lowercase common food names. Confidences must be between 0 and 1. No other text.`

// NewFromConfig creates a classifier based on configuration,
// auto-detecting the provider from available API keys if it is not set.
// Priority: Anthropic > OpenAI.
func NewFromConfig(cfg config.ClassifierConfig) (Classifier, error) {
	provider := cfg.Provider
	if provider == "" {
		switch {
		case cfg.AnthropicAPIKey != "":
			provider = "anthropic"
		case cfg.OpenAIAPIKey != "":
			provider = "openai"
		}
	}

	switch provider {
	case "anthropic":
		return NewAnthropic(cfg)
	case "openai":
		return NewOpenAI(cfg)
	case "":
		return nil, fmt.Errorf("no classifier configured: set ANTHROPIC_API_KEY or OPENAI_API_KEY")
	default:
		return nil, fmt.Errorf("unknown classifier provider: %s (supported: anthropic, openai)", provider)
	}
}

// parsePredictions decodes the model's JSON reply into normalized
// predictions: lowercased labels with underscores replaced by spaces,
// confidences clamped to [0,1], descending order, at most MaxLabels.
func parsePredictions(raw string) ([]models.LabelPrediction, error) {
	raw = stripCodeFence(raw)

	var decoded []models.LabelPrediction
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: unparseable reply: %v", ErrUnavailable, err)
	}

	preds := decoded[:0]
	for _, p := range decoded {
		p.Label = normalizeLabel(p.Label)
		if p.Label == "" {
			continue
		}
		if p.Confidence < 0 {
			p.Confidence = 0
		}
		if p.Confidence > 1 {
			p.Confidence = 1
		}
		preds = append(preds, p)
	}
	if len(preds) == 0 {
		return nil, fmt.Errorf("%w: reply contained no labels", ErrUnavailable)
	}

	sort.SliceStable(preds, func(i, j int) bool {
		return preds[i].Confidence > preds[j].Confidence
	})
	if len(preds) > MaxLabels {
		preds = preds[:MaxLabels]
	}
	return preds, nil
}

// normalizeLabel lowercases a label and replaces underscores with
// spaces, matching how corpus text is written.
func normalizeLabel(label string) string {
	label = strings.ReplaceAll(label, "_", " ")
	return models.CleanText(label)
}

// stripCodeFence removes a surrounding markdown code fence if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// detectMediaType sniffs the image payload's content type.
func detectMediaType(image []byte) string {
	return http.DetectContentType(image)
}
