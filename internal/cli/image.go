package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/classifier"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/recommend"
)

var (
	imageCategory string
	imageTop      int
)

var imageCmd = &cobra.Command{
	Use:   "image <path>",
	Short: "Recommend recipes for a food photo",
	Long: `Recommend recipes for a food photo.

The photo is classified into food labels by a vision model; recipes
mentioning the top label in their title, ingredients or description are
returned in corpus order. A photo whose label matches no recipe yields
an empty result, which is expected for foods outside the corpus.`,
	Args: cobra.ExactArgs(1),
	RunE: runImage,
}

func init() {
	imageCmd.Flags().StringVarP(&imageCategory, "category", "c", "any", "food type filter (\"any\" disables filtering)")
	imageCmd.Flags().IntVarP(&imageTop, "top", "t", recommend.DefaultTopK, "maximum number of results")
}

func runImage(cmd *cobra.Command, args []string) error {
	image, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	cfg, snap, err := setup()
	if err != nil {
		return err
	}

	engine, err := imageEngine(cfg, snap)
	if err != nil {
		return err
	}

	results, err := engine.RecommendImage(cmd.Context(), image, imageCategory, imageTop)
	if errors.Is(err, classifier.ErrUnavailable) {
		return fmt.Errorf("image classifier unavailable, try again: %w", err)
	}
	if err != nil {
		return fmt.Errorf("recommend from image: %w", err)
	}

	fmt.Print(renderMarkdown(formatResults(results)))
	return nil
}
