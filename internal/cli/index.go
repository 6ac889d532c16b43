package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/embedding"
)

var indexForce bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build or refresh the embedding cache",
	Long: `Build or refresh the embedding cache.

Embeds every recipe in the corpus in one batch call and persists the
matrix keyed to the corpus fingerprint and model identifier. Search
commands do this on demand; run it explicitly to pay the cost up front
or to force a rebuild with --force.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().BoolVarP(&indexForce, "force", "f", false, "discard the existing cache and rebuild")
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg, snap, err := setup()
	if err != nil {
		return err
	}

	if indexForce {
		if err := os.Remove(cfg.Embedding.CachePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove cache: %w", err)
		}
	}

	provider, err := embedding.NewOpenAI(cfg.Embedding)
	if err != nil {
		return err
	}

	cache := embedding.NewCache(cfg.Embedding.CachePath, provider)
	matrix, err := cache.GetOrBuild(cmd.Context(), snap)
	if err != nil {
		return err
	}

	dim := 0
	if len(matrix) > 0 {
		dim = len(matrix[0])
	}
	fmt.Printf("Embeddings ready: %d recipes, %d dimensions, model %s\n", len(matrix), dim, provider.Model())
	return nil
}
