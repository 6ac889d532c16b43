// Package recommend implements the recipe recommendation engine: two
// retrieval strategies behind one contract, a shared category filter,
// and the façade that dispatches by input modality.
package recommend

import (
	"context"
	"errors"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/models"
)

// ErrEmptyQuery is returned for an empty or whitespace-only query.
// It is a caller error, reported as an empty result with a message,
// never a crash.
var ErrEmptyQuery = errors.New("query is empty")

// DefaultTopK is the result count used when the caller passes k <= 0.
const DefaultTopK = 5

// Retriever ranks corpus rows for a query string. The semantic
// retriever treats the query as free text; the lexical bridge treats
// it as a classifier label. Both return at most k results.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]models.RankedRecipe, error)
}
