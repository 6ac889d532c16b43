// Package corpus loads the static recipe table and exposes it as an
// immutable, ordered snapshot. Row order is stable for the process
// lifetime: embedding vector i always corresponds to recipe i.
package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/hash"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/models"
)

var (
	// ErrMissingColumn is returned when the corpus file lacks a required column.
	ErrMissingColumn = errors.New("corpus missing required column")

	// ErrMalformedRow is returned when a row cannot be parsed.
	ErrMalformedRow = errors.New("corpus row malformed")
)

// RequiredColumns lists the columns the corpus file must carry.
var RequiredColumns = []string{
	"title", "ingredients", "instructions", "food_types",
	"description", "average_rating", "minutes",
}

// Snapshot is an ordered, read-only sequence of recipes loaded once at
// startup. No component may mutate it after load.
type Snapshot struct {
	recipes     []models.Recipe
	features    []string
	fingerprint string
}

// Load reads the recipe corpus CSV. It fails fast on a missing file,
// malformed CSV, or a missing required column; it never silently drops
// rows. Missing text cells become empty strings so downstream string
// operations are total.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read corpus header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range RequiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var recipes []models.Recipe
	for row := 2; ; row++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read corpus row %d: %w", row, err)
		}

		cell := func(name string) string {
			i := cols[name]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		minutes, err := parseMinutes(cell("minutes"))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRow, row, err)
		}
		rating, err := parseRating(cell("average_rating"))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRow, row, err)
		}

		recipes = append(recipes, models.Recipe{
			Title:         cell("title"),
			Ingredients:   cell("ingredients"),
			Instructions:  cell("instructions"),
			Description:   cell("description"),
			FoodTypes:     cell("food_types"),
			Minutes:       minutes,
			AverageRating: rating,
		})
	}

	return NewSnapshot(recipes), nil
}

// NewSnapshot builds a snapshot from already-loaded recipes. Feature
// strings and the fingerprint are computed once here so every consumer
// sees the same values.
func NewSnapshot(recipes []models.Recipe) *Snapshot {
	features := make([]string, len(recipes))
	for i := range recipes {
		features[i] = recipes[i].FeatureText()
	}
	return &Snapshot{
		recipes:     recipes,
		features:    features,
		fingerprint: hash.Fingerprint(features),
	}
}

// Len returns the number of recipes in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.recipes)
}

// Recipe returns the recipe at row index i.
func (s *Snapshot) Recipe(i int) models.Recipe {
	return s.recipes[i]
}

// Features returns the ordered feature strings, one per recipe. The
// returned slice is shared; callers must not modify it.
func (s *Snapshot) Features() []string {
	return s.features
}

// Fingerprint identifies the snapshot content. Two snapshots with the
// same recipes in the same order have the same fingerprint; the
// embedding cache uses this to detect staleness.
func (s *Snapshot) Fingerprint() string {
	return s.fingerprint
}

// FoodTypes returns the sorted distinct category labels across the
// corpus (food_types cells are comma-joined label sets).
func (s *Snapshot) FoodTypes() []string {
	seen := make(map[string]bool)
	for i := range s.recipes {
		for _, label := range strings.Split(s.recipes[i].FoodTypes, ",") {
			label = models.CleanText(label)
			if label != "" {
				seen[label] = true
			}
		}
	}
	types := make([]string, 0, len(seen))
	for label := range seen {
		types = append(types, label)
	}
	sort.Strings(types)
	return types
}

// FindByTitle locates a recipe by title: exact case-insensitive match
// first, then substring match. Returns the row index of the first hit.
func (s *Snapshot) FindByTitle(title string) (int, bool) {
	needle := models.CleanText(title)
	if needle == "" {
		return 0, false
	}
	for i := range s.recipes {
		if models.CleanText(s.recipes[i].Title) == needle {
			return i, true
		}
	}
	for i := range s.recipes {
		if strings.Contains(strings.ToLower(s.recipes[i].Title), needle) {
			return i, true
		}
	}
	return 0, false
}

func parseMinutes(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("minutes %q: %w", cell, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("minutes %q: negative", cell)
	}
	return v, nil
}

func parseRating(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, nil // unset
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("average_rating %q: %w", cell, err)
	}
	return v, nil
}
