package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/corpus"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/embedding"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/models"
)

// SemanticRetriever ranks recipes by cosine similarity between the
// query embedding and the cached per-recipe embedding matrix. The
// query must be embedded with the same model that built the matrix;
// the embedding cache enforces that by fingerprinting its artifact.
type SemanticRetriever struct {
	snap     *corpus.Snapshot
	provider embedding.Provider
	matrix   [][]float32
}

// NewSemantic creates a semantic retriever over the snapshot and its
// embedding matrix. The matrix must have exactly snap.Len() rows.
func NewSemantic(snap *corpus.Snapshot, provider embedding.Provider, matrix [][]float32) (*SemanticRetriever, error) {
	if len(matrix) != snap.Len() {
		return nil, fmt.Errorf("embedding matrix has %d rows, corpus has %d", len(matrix), snap.Len())
	}
	return &SemanticRetriever{snap: snap, provider: provider, matrix: matrix}, nil
}

// Search embeds the query and returns the k most similar recipes in
// descending-similarity order. Ties break toward the lower corpus row
// index so results are deterministic.
func (r *SemanticRetriever) Search(ctx context.Context, query string, k int) ([]models.RankedRecipe, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if k <= 0 {
		k = DefaultTopK
	}

	vec, err := r.provider.Embed(ctx, models.CleanText(query))
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored := make([]models.RankedRecipe, r.snap.Len())
	for i := range scored {
		scored[i] = models.RankedRecipe{
			Index:  i,
			Recipe: r.snap.Recipe(i),
			Score:  Cosine(vec, r.matrix[i]),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Index < scored[j].Index
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}

// Cosine computes cosine similarity between two vectors. By convention
// it returns 0 when either norm is zero (guards empty-text rows) or
// when the lengths differ.
func Cosine(a, b []float32) float32 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
