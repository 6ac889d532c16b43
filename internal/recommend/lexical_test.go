package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/corpus"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/models"
)

func TestLexical_Search(t *testing.T) {
	r := NewLexical(testSnapshot())

	results, err := r.Search(context.Background(), "cake", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Chocolate Cake", results[0].Recipe.Title)
	assert.Equal(t, float32(0), results[0].Score)
}

func TestLexical_CaseInsensitive(t *testing.T) {
	r := NewLexical(testSnapshot())

	results, err := r.Search(context.Background(), "FRIED RICE", 5)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestLexical_MatchesAnyField(t *testing.T) {
	snap := corpus.NewSnapshot([]models.Recipe{
		{Title: "Margherita", Ingredients: "pizza dough, tomato"},
		{Title: "Calzone", Description: "folded pizza"},
		{Title: "Risotto", Ingredients: "rice, stock"},
	})
	r := NewLexical(snap)

	results, err := r.Search(context.Background(), "pizza", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Corpus order preserved
	assert.Equal(t, 0, results[0].Index)
	assert.Equal(t, 1, results[1].Index)
}

func TestLexical_NoMatchIsEmptyNotError(t *testing.T) {
	r := NewLexical(testSnapshot())

	results, err := r.Search(context.Background(), "sushi", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestLexical_TruncatesToK(t *testing.T) {
	snap := corpus.NewSnapshot([]models.Recipe{
		{Title: "Rice A"}, {Title: "Rice B"}, {Title: "Rice C"},
	})
	r := NewLexical(snap)

	results, err := r.Search(context.Background(), "rice", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Rice A", results[0].Recipe.Title)
	assert.Equal(t, "Rice B", results[1].Recipe.Title)
}

func TestLexical_EmptyLabel(t *testing.T) {
	r := NewLexical(testSnapshot())

	results, err := r.Search(context.Background(), "", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}
