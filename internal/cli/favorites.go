package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/config"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/favorites"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage favorite recipes",
	Long: `Manage your favorite recipes.

Favorites persist in ~/.foodrec/favorites.db across embedding cache
rebuilds and corpus refreshes.

Subcommands:
  add <title>     Save a recipe (partial titles work)
  remove <title>  Remove a saved recipe
  list            Show all saved recipes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Save a recipe to favorites",
	Long:  `Save a recipe to favorites by its title (case-insensitive, partial titles match).`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFavoritesAdd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <title>",
	Short: "Remove a recipe from favorites",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFavoritesRemove,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all favorite recipes",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesList,
}

func init() {
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesListCmd)
}

// openFavorites loads the corpus and opens the favorites store.
func openFavorites() (*favorites.Store, func(), error) {
	cfg, snap, err := setup()
	if err != nil {
		return nil, nil, err
	}

	paths := config.GetPaths(cfg)
	store, err := favorites.NewStore(paths.Favorites, snap)
	if err != nil {
		return nil, nil, fmt.Errorf("open favorites: %w", err)
	}
	return store, func() { _ = store.Close() }, nil
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openFavorites()
	if err != nil {
		return err
	}
	defer closeStore()

	title := joinArgs(args)
	fav, err := store.Add(title)
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}

	fmt.Printf("Saved: %s\n", fav.Title)
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openFavorites()
	if err != nil {
		return err
	}
	defer closeStore()

	title := joinArgs(args)
	if err := store.Remove(title); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	fmt.Printf("Removed: %s\n", title)
	return nil
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openFavorites()
	if err != nil {
		return err
	}
	defer closeStore()

	recipes, err := store.Recipes()
	if err != nil {
		return fmt.Errorf("list favorites: %w", err)
	}

	if len(recipes) == 0 {
		fmt.Println("No favorites yet.")
		return nil
	}

	fmt.Print(renderMarkdown(formatRecipes(recipes)))
	return nil
}
