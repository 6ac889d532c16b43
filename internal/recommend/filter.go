package recommend

import "github.com/chaitrab370/AI-Food-Recommendation-System/internal/models"

// FilterByCategory keeps only results whose food types contain the
// category as a case-insensitive substring, preserving input order.
// An empty or "any" category is the identity. A category matching zero
// rows yields an empty set, not an error.
//
// The filter runs after top-k truncation, so a narrow category can
// leave fewer than k results; the engine does not backfill.
func FilterByCategory(results []models.RankedRecipe, category string) []models.RankedRecipe {
	filtered := make([]models.RankedRecipe, 0, len(results))
	for _, r := range results {
		if r.Recipe.InCategory(category) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
