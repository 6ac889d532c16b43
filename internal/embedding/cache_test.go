package embedding

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/corpus"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/models"
)

// fakeProvider produces deterministic vectors and counts batch calls.
type fakeProvider struct {
	model      string
	batchCalls int
	fail       bool
}

func (p *fakeProvider) Model() string { return p.model }

func (p *fakeProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := p.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (p *fakeProvider) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	p.batchCalls++
	if p.fail {
		return nil, fmt.Errorf("backend unavailable")
	}
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = []float32{float32(len(text)), float32(strings.Count(text, " ")), 1}
	}
	return vectors, nil
}

func testSnapshot() *corpus.Snapshot {
	return corpus.NewSnapshot([]models.Recipe{
		{Title: "Spicy Fried Rice", Ingredients: "rice, egg, chili", FoodTypes: "asian"},
		{Title: "Chocolate Cake", Ingredients: "flour, cocoa", FoodTypes: "dessert"},
		{Title: "Veg Fried Rice", Ingredients: "rice, peas", FoodTypes: "asian"},
	})
}

func TestCache_BuildAndReuse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe_embeddings.json")
	provider := &fakeProvider{model: "test-model"}
	cache := NewCache(path, provider)
	snap := testSnapshot()

	vectors, err := cache.GetOrBuild(context.Background(), snap)
	require.NoError(t, err)
	require.Len(t, vectors, snap.Len())
	assert.Equal(t, 1, provider.batchCalls)

	// Artifact on disk
	_, err = os.Stat(path)
	require.NoError(t, err)

	// Unchanged corpus: reused, not rebuilt
	again, err := cache.GetOrBuild(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, vectors, again)
	assert.Equal(t, 1, provider.batchCalls)
}

func TestCache_StaleOnCorpusChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe_embeddings.json")
	provider := &fakeProvider{model: "test-model"}
	cache := NewCache(path, provider)

	_, err := cache.GetOrBuild(context.Background(), testSnapshot())
	require.NoError(t, err)
	require.Equal(t, 1, provider.batchCalls)

	// Same row count, different content: fingerprint check must catch it.
	changed := corpus.NewSnapshot([]models.Recipe{
		{Title: "Spicy Fried Rice", Ingredients: "rice, egg, chili", FoodTypes: "asian"},
		{Title: "Carrot Cake", Ingredients: "flour, carrot", FoodTypes: "dessert"},
		{Title: "Veg Fried Rice", Ingredients: "rice, peas", FoodTypes: "asian"},
	})
	vectors, err := cache.GetOrBuild(context.Background(), changed)
	require.NoError(t, err)
	assert.Len(t, vectors, changed.Len())
	assert.Equal(t, 2, provider.batchCalls)
}

func TestCache_ModelMismatchForcesRebuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe_embeddings.json")
	snap := testSnapshot()

	first := &fakeProvider{model: "model-a"}
	_, err := NewCache(path, first).GetOrBuild(context.Background(), snap)
	require.NoError(t, err)

	second := &fakeProvider{model: "model-b"}
	_, err = NewCache(path, second).GetOrBuild(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, 1, second.batchCalls)

	// Artifact now carries the new model
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var art artifact
	require.NoError(t, json.Unmarshal(data, &art))
	assert.Equal(t, "model-b", art.Model)
}

func TestCache_CorruptArtifactRebuilds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe_embeddings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	provider := &fakeProvider{model: "test-model"}
	vectors, err := NewCache(path, provider).GetOrBuild(context.Background(), testSnapshot())
	require.NoError(t, err)
	assert.Len(t, vectors, 3)
	assert.Equal(t, 1, provider.batchCalls)
}

func TestCache_BackendUnavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe_embeddings.json")
	provider := &fakeProvider{model: "test-model", fail: true}

	_, err := NewCache(path, provider).GetOrBuild(context.Background(), testSnapshot())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGenerationFailed)

	// No partial artifact left behind
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCache_ValidCacheSurvivesBackendOutage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe_embeddings.json")
	snap := testSnapshot()

	healthy := &fakeProvider{model: "test-model"}
	_, err := NewCache(path, healthy).GetOrBuild(context.Background(), snap)
	require.NoError(t, err)

	// Backend down but artifact valid: served from disk.
	down := &fakeProvider{model: "test-model", fail: true}
	vectors, err := NewCache(path, down).GetOrBuild(context.Background(), snap)
	require.NoError(t, err)
	assert.Len(t, vectors, snap.Len())
	assert.Equal(t, 0, down.batchCalls)
}

func TestCache_EmptyCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe_embeddings.json")
	provider := &fakeProvider{model: "test-model"}

	vectors, err := NewCache(path, provider).GetOrBuild(context.Background(), corpus.NewSnapshot(nil))
	require.NoError(t, err)
	assert.Empty(t, vectors)
	assert.Equal(t, 0, provider.batchCalls)
}
