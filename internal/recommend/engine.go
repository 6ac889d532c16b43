package recommend

import (
	"context"
	"fmt"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/classifier"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/log"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/models"
)

// Engine is the recommendation façade: it dispatches to a retriever by
// input modality, applies the shared category filter, and returns a
// normalized result set.
type Engine struct {
	semantic   Retriever
	lexical    Retriever
	classifier classifier.Classifier
}

// NewEngine wires the two retrieval strategies and the image
// classifier. The classifier may be nil if image search is disabled.
func NewEngine(semantic, lexical Retriever, cls classifier.Classifier) *Engine {
	return &Engine{semantic: semantic, lexical: lexical, classifier: cls}
}

// RecommendText answers a free-text query with semantically ranked
// recipes, filtered by category.
func (e *Engine) RecommendText(ctx context.Context, query, category string, k int) ([]models.RankedRecipe, error) {
	results, err := e.semantic.Search(ctx, query, k)
	if err != nil {
		return nil, err
	}
	return FilterByCategory(results, category), nil
}

// RecommendImage classifies the image, then bridges the top label to
// recipes through the lexical retriever, filtered by category. An image
// whose label matches no recipe yields an empty set.
func (e *Engine) RecommendImage(ctx context.Context, image []byte, category string, k int) ([]models.RankedRecipe, error) {
	if e.classifier == nil {
		return nil, fmt.Errorf("image search disabled: %w", classifier.ErrUnavailable)
	}

	preds, err := e.classifier.Predict(ctx, image)
	if err != nil {
		return nil, err
	}
	if len(preds) == 0 {
		return nil, fmt.Errorf("classifier returned no labels: %w", classifier.ErrUnavailable)
	}

	top := preds[0].Label
	log.Printf("classified image as %q (confidence %.2f)\n", top, preds[0].Confidence)

	results, err := e.lexical.Search(ctx, top, k)
	if err != nil {
		return nil, err
	}
	return FilterByCategory(results, category), nil
}
