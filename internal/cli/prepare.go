package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/config"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/etl"
)

var (
	prepareOutput string
	prepareLimit  int
)

var prepareCmd = &cobra.Command{
	Use:   "prepare <raw-csv>",
	Short: "Clean a raw recipe dataset into the corpus file",
	Long: `Clean a raw recipe dataset into the corpus file.

Reads the upstream dataset export (with python-style list cells for
ingredients and steps), drops incomplete rows, flattens list cells to
plain text, and writes the corpus CSV the search commands load. This is
a one-time step per dataset; the cleaned corpus is then treated as a
static snapshot.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrepare,
}

func init() {
	prepareCmd.Flags().StringVarP(&prepareOutput, "output", "o", "", "output path (default: the configured corpus path)")
	prepareCmd.Flags().IntVarP(&prepareLimit, "limit", "n", etl.DefaultLimit, "maximum rows to keep")
}

func runPrepare(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	output := prepareOutput
	if output == "" {
		output = cfg.CorpusPath
	}

	written, err := etl.Clean(args[0], output, prepareLimit)
	if err != nil {
		return fmt.Errorf("prepare corpus: %w", err)
	}

	fmt.Printf("Cleaned dataset saved to %s (%d recipes)\n", output, written)
	return nil
}
