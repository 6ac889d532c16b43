package recommend

import (
	"context"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/corpus"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/models"
)

// LexicalRetriever bridges classifier labels to recipes by substring
// containment against the title, ingredients and description fields.
// Substring matching yields no ranking signal, so results keep corpus
// order; scores are 0. A label matching nothing is an expected
// outcome, not an error.
type LexicalRetriever struct {
	snap *corpus.Snapshot
}

// NewLexical creates a lexical bridge retriever over the snapshot.
func NewLexical(snap *corpus.Snapshot) *LexicalRetriever {
	return &LexicalRetriever{snap: snap}
}

// Search returns up to k recipes containing the label (case
// insensitive) in any text field, in corpus order. An empty label
// matches nothing.
func (r *LexicalRetriever) Search(_ context.Context, label string, k int) ([]models.RankedRecipe, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	results := []models.RankedRecipe{}
	for i := 0; i < r.snap.Len() && len(results) < k; i++ {
		recipe := r.snap.Recipe(i)
		if recipe.MatchesLabel(label) {
			results = append(results, models.RankedRecipe{Index: i, Recipe: recipe})
		}
	}
	return results, nil
}
