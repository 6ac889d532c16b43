// Package cli provides the command-line interface for the food
// recommender.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/classifier"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/config"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/corpus"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/embedding"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/log"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/recommend"
	"github.com/chaitrab370/AI-Food-Recommendation-System/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "foodrec",
	Short: "AI food recipe recommendations",
	Long: `AI food recipe recommendations

Recommends recipes from a fixed corpus, by free-text query (semantic
embedding search) or by food photo (vision classifier plus keyword
matching). Embeddings are cached on disk and rebuilt automatically
whenever the corpus or the embedding model changes.

Set OPENAI_API_KEY for text search; set OPENAI_API_KEY or
ANTHROPIC_API_KEY for image search.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(prepareCmd)
	rootCmd.AddCommand(typesCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
}

// setup loads config, initializes logging and loads the corpus. Every
// command needs these three; a corpus failure is fatal here, before any
// request is served.
func setup() (*config.Config, *corpus.Snapshot, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	paths := config.GetPaths(cfg)
	if err := log.Init(paths.Logs); err != nil {
		return nil, nil, fmt.Errorf("init logging: %w", err)
	}

	snap, err := corpus.Load(cfg.CorpusPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load corpus from %s: %w (run 'foodrec prepare' first)", cfg.CorpusPath, err)
	}

	return cfg, snap, nil
}

// semanticRetriever builds the embedding-backed retriever, building or
// reloading the persisted embedding cache as needed.
func semanticRetriever(ctx context.Context, cfg *config.Config, snap *corpus.Snapshot) (*recommend.SemanticRetriever, error) {
	provider, err := embedding.NewOpenAI(cfg.Embedding)
	if err != nil {
		return nil, err
	}

	cache := embedding.NewCache(cfg.Embedding.CachePath, provider)
	matrix, err := cache.GetOrBuild(ctx, snap)
	if err != nil {
		return nil, err
	}

	return recommend.NewSemantic(snap, provider, matrix)
}

// textEngine wires the engine for text queries (no classifier needed).
func textEngine(ctx context.Context, cfg *config.Config, snap *corpus.Snapshot) (*recommend.Engine, error) {
	semantic, err := semanticRetriever(ctx, cfg, snap)
	if err != nil {
		return nil, err
	}
	return recommend.NewEngine(semantic, recommend.NewLexical(snap), nil), nil
}

// imageEngine wires the engine for image queries (no embeddings needed).
func imageEngine(cfg *config.Config, snap *corpus.Snapshot) (*recommend.Engine, error) {
	cls, err := classifier.NewFromConfig(cfg.Classifier)
	if err != nil {
		return nil, err
	}
	return recommend.NewEngine(nil, recommend.NewLexical(snap), cls), nil
}
