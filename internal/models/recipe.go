// Package models defines the core data structures for the recommender.
package models

import "strings"

// Recipe is one row of the recipe corpus. Recipes are immutable after
// load; identity is the row index into the corpus snapshot.
type Recipe struct {
	Title         string  `json:"title"`
	Ingredients   string  `json:"ingredients"`
	Instructions  string  `json:"instructions"`
	Description   string  `json:"description"`
	FoodTypes     string  `json:"food_types"` // comma-joined category labels
	Minutes       float64 `json:"minutes"`
	AverageRating float64 `json:"average_rating"` // 0 when unset
}

// FeatureText returns the normalized text used for embedding: title,
// ingredients, description and instructions, lowercased, trimmed and
// joined by single spaces. The field order is fixed because the
// embedding cache fingerprints this exact string.
func (r *Recipe) FeatureText() string {
	return CleanText(r.Title) + " " +
		CleanText(r.Ingredients) + " " +
		CleanText(r.Description) + " " +
		CleanText(r.Instructions)
}

// MatchesLabel reports whether the label appears as a case-insensitive
// substring of the title, ingredients or description. Substring
// containment is intentionally loose ("rice" matches both "fried rice"
// and "rice pudding"); the lexical path trades precision for recall.
func (r *Recipe) MatchesLabel(label string) bool {
	needle := strings.ToLower(label)
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(r.Title), needle) ||
		strings.Contains(strings.ToLower(r.Ingredients), needle) ||
		strings.Contains(strings.ToLower(r.Description), needle)
}

// InCategory reports whether the recipe's food types contain the given
// category as a case-insensitive substring. An empty or "any" category
// matches every recipe.
func (r *Recipe) InCategory(category string) bool {
	category = strings.TrimSpace(strings.ToLower(category))
	if category == "" || category == "any" {
		return true
	}
	return strings.Contains(strings.ToLower(r.FoodTypes), category)
}

// CleanText lowercases and strips surrounding whitespace.
func CleanText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RankedRecipe is a retrieval result: a corpus row plus its relevance
// signal. Semantic results carry a cosine similarity score; lexical
// results carry 0 (corpus order is the only signal available there).
type RankedRecipe struct {
	Index  int     `json:"index"` // row index into the corpus snapshot
	Recipe Recipe  `json:"recipe"`
	Score  float32 `json:"score"`
}
