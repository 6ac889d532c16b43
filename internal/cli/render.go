package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/models"
)

// formatRecipes renders recipes as markdown.
func formatRecipes(recipes []models.Recipe) string {
	if len(recipes) == 0 {
		return "No matching recipes found."
	}

	var b strings.Builder
	for _, r := range recipes {
		fmt.Fprintf(&b, "## %s\n\n", r.Title)
		if r.Ingredients != "" {
			fmt.Fprintf(&b, "- **Ingredients:** %s\n", r.Ingredients)
		}
		if r.Instructions != "" {
			fmt.Fprintf(&b, "- **Instructions:** %s\n", r.Instructions)
		}
		if r.FoodTypes != "" {
			fmt.Fprintf(&b, "- **Food type:** %s\n", r.FoodTypes)
		}
		if r.Minutes > 0 {
			fmt.Fprintf(&b, "- **Time:** %g minutes\n", r.Minutes)
		}
		if r.AverageRating > 0 {
			fmt.Fprintf(&b, "- **Rating:** %.1f\n", r.AverageRating)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatResults renders ranked results as markdown, including the
// similarity score when the retriever produced one.
func formatResults(results []models.RankedRecipe) string {
	if len(results) == 0 {
		return "No matching recipes found."
	}

	var b strings.Builder
	for _, res := range results {
		fmt.Fprintf(&b, "## %s\n\n", res.Recipe.Title)
		if res.Score > 0 {
			fmt.Fprintf(&b, "- **Similarity:** %.3f\n", res.Score)
		}
		if res.Recipe.Ingredients != "" {
			fmt.Fprintf(&b, "- **Ingredients:** %s\n", res.Recipe.Ingredients)
		}
		if res.Recipe.Instructions != "" {
			fmt.Fprintf(&b, "- **Instructions:** %s\n", res.Recipe.Instructions)
		}
		if res.Recipe.FoodTypes != "" {
			fmt.Fprintf(&b, "- **Food type:** %s\n", res.Recipe.FoodTypes)
		}
		if res.Recipe.Minutes > 0 {
			fmt.Fprintf(&b, "- **Time:** %g minutes\n", res.Recipe.Minutes)
		}
		if res.Recipe.AverageRating > 0 {
			fmt.Fprintf(&b, "- **Rating:** %.1f\n", res.Recipe.AverageRating)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderMarkdown renders markdown for the terminal via glamour,
// falling back to the raw text if rendering fails.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
