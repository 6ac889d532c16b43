package embedding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/corpus"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/log"
)

var (
	// ErrGenerationFailed is returned when the embedding backend is
	// unavailable and no valid cached artifact exists.
	ErrGenerationFailed = errors.New("embedding generation failed")

	// ErrStale is returned internally when the artifact does not match
	// the current corpus snapshot. It triggers a rebuild.
	ErrStale = errors.New("embedding cache stale")

	// ErrModelMismatch is returned internally when the artifact was
	// built with a different embedding model. It triggers a rebuild.
	ErrModelMismatch = errors.New("embedding cache model mismatch")
)

// artifactVersion is bumped whenever the on-disk format changes.
const artifactVersion = 1

// artifact is the on-disk embedding cache: a versioned record keyed to
// the corpus fingerprint and the model that produced the vectors, never
// an implicit file whose validity is assumed.
type artifact struct {
	Version     int         `json:"version"`
	Model       string      `json:"model"`
	Fingerprint string      `json:"fingerprint"`
	Rows        int         `json:"rows"`
	Dim         int         `json:"dim"`
	Vectors     [][]float32 `json:"vectors"`
}

// Cache owns the mapping from a corpus snapshot to per-row embedding
// vectors. It generates on first use, persists, and reloads thereafter.
type Cache struct {
	path     string
	provider Provider

	// Serializes first-time builds so concurrent callers share one
	// backend call instead of racing redundant rebuilds.
	mu sync.Mutex
}

// NewCache creates a cache persisting to path, generating with provider.
func NewCache(path string, provider Provider) *Cache {
	return &Cache{path: path, provider: provider}
}

// GetOrBuild returns the embedding matrix for the snapshot, loading the
// persisted artifact when it is valid and rebuilding it otherwise. The
// returned matrix has exactly snap.Len() rows; vector i corresponds to
// recipe i.
func (c *Cache) GetOrBuild(ctx context.Context, snap *corpus.Snapshot) ([][]float32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	vectors, err := c.load(snap)
	if err == nil {
		return vectors, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		log.Printf("rebuilding embeddings: %v\n", err)
	}

	return c.build(ctx, snap)
}

// load reads and validates the persisted artifact against the snapshot.
func (c *Cache) load(snap *corpus.Snapshot) ([][]float32, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, err
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("%w: corrupt artifact: %v", ErrStale, err)
	}

	if art.Version != artifactVersion {
		return nil, fmt.Errorf("%w: artifact version %d, want %d", ErrStale, art.Version, artifactVersion)
	}
	if art.Model != c.provider.Model() {
		return nil, fmt.Errorf("%w: artifact model %q, runtime model %q", ErrModelMismatch, art.Model, c.provider.Model())
	}
	if art.Rows != snap.Len() || len(art.Vectors) != snap.Len() {
		return nil, fmt.Errorf("%w: artifact has %d rows, corpus has %d", ErrStale, len(art.Vectors), snap.Len())
	}
	if art.Fingerprint != snap.Fingerprint() {
		return nil, fmt.Errorf("%w: artifact fingerprint %s, corpus %s", ErrStale, art.Fingerprint, snap.Fingerprint())
	}

	return art.Vectors, nil
}

// build embeds every feature string in one batch call and persists the
// resulting matrix atomically.
func (c *Cache) build(ctx context.Context, snap *corpus.Snapshot) ([][]float32, error) {
	vectors := [][]float32{}
	if snap.Len() > 0 {
		var err error
		vectors, err = c.provider.EmbedBatch(ctx, snap.Features())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		}
		if len(vectors) != snap.Len() {
			return nil, fmt.Errorf("%w: got %d vectors for %d recipes", ErrGenerationFailed, len(vectors), snap.Len())
		}
	}

	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}

	art := artifact{
		Version:     artifactVersion,
		Model:       c.provider.Model(),
		Fingerprint: snap.Fingerprint(),
		Rows:        snap.Len(),
		Dim:         dim,
		Vectors:     vectors,
	}
	if err := c.persist(&art); err != nil {
		return nil, fmt.Errorf("persist embeddings: %w", err)
	}

	return vectors, nil
}

// persist writes the artifact atomically (temp file + rename) so a
// reader never observes a partial file.
func (c *Cache) persist(art *artifact) error {
	data, err := json.Marshal(art)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpPath, c.path)
}
