package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/recommend"
)

var (
	recommendCategory string
	recommendTop      int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <query>",
	Short: "Recommend recipes for a free-text query",
	Long: `Recommend recipes for a free-text query.

The query is embedded and compared against every recipe in the corpus
by cosine similarity. The first run builds the embedding cache, which
takes one batch call to the embedding API; later runs reuse it.

Examples:
  foodrec recommend "fried rice"
  foodrec recommend "something with chocolate" --category dessert --top 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendCategory, "category", "c", "any", "food type filter (\"any\" disables filtering)")
	recommendCmd.Flags().IntVarP(&recommendTop, "top", "t", recommend.DefaultTopK, "maximum number of results")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	cfg, snap, err := setup()
	if err != nil {
		return err
	}

	engine, err := textEngine(cmd.Context(), cfg, snap)
	if err != nil {
		return err
	}

	results, err := engine.RecommendText(cmd.Context(), query, recommendCategory, recommendTop)
	if errors.Is(err, recommend.ErrEmptyQuery) {
		// Caller error: explain, don't fail.
		fmt.Println("Please enter a recipe name or some ingredients.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	fmt.Print(renderMarkdown(formatResults(results)))
	return nil
}
