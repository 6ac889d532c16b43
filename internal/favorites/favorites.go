// Package favorites provides persistent storage for the user's saved
// recipes. Favorites live in a small SQLite database so they survive
// embedding cache rebuilds and corpus refreshes.
package favorites

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/corpus"
	"github.com/chaitrab370/AI-Food-Recommendation-System/internal/models"
)

// ErrNotFound is returned when no corpus recipe matches the given title.
var ErrNotFound = errors.New("recipe not found")

// Store manages favorites persistence against the loaded corpus.
type Store struct {
	db   *gorm.DB
	snap *corpus.Snapshot
}

// NewStore opens (or creates) the favorites database at path.
func NewStore(path string, snap *corpus.Snapshot) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(DELETE)&_pragma=busy_timeout(5000)", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open favorites database: %w", err)
	}

	if err := db.AutoMigrate(&models.Favorite{}); err != nil {
		return nil, fmt.Errorf("migrate favorites: %w", err)
	}

	return &Store{db: db, snap: snap}, nil
}

// Add saves the recipe whose title matches the input (exact
// case-insensitive match first, then substring). Adding an already
// saved recipe is idempotent. Returns the stored favorite.
func (s *Store) Add(title string) (*models.Favorite, error) {
	idx, ok := s.snap.FindByTitle(title)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, title)
	}

	canonical := s.snap.Recipe(idx).Title

	// Look up by title only; Attrs values apply on insert, so a
	// duplicate add returns the existing row instead of tripping the
	// unique index.
	var fav models.Favorite
	err := s.db.Where(&models.Favorite{Title: canonical}).
		Attrs(&models.Favorite{
			ID:          uuid.NewString(),
			RecipeIndex: idx,
			AddedAt:     time.Now(),
		}).
		FirstOrCreate(&fav).Error
	if err != nil {
		return nil, fmt.Errorf("save favorite: %w", err)
	}
	return &fav, nil
}

// Remove deletes a favorite by its stored title. Removing a recipe
// that is not saved is idempotent.
func (s *Store) Remove(title string) error {
	canonical := title
	if idx, ok := s.snap.FindByTitle(title); ok {
		canonical = s.snap.Recipe(idx).Title
	}
	return s.db.Delete(&models.Favorite{}, "title = ?", canonical).Error
}

// List returns all favorites in the order they were added.
func (s *Store) List() ([]models.Favorite, error) {
	var favs []models.Favorite
	err := s.db.Order("added_at").Find(&favs).Error
	return favs, err
}

// Recipes resolves the saved favorites back to full corpus recipes.
func (s *Store) Recipes() ([]models.Recipe, error) {
	favs, err := s.List()
	if err != nil {
		return nil, err
	}
	recipes := make([]models.Recipe, 0, len(favs))
	for _, fav := range favs {
		if fav.RecipeIndex >= 0 && fav.RecipeIndex < s.snap.Len() {
			recipes = append(recipes, s.snap.Recipe(fav.RecipeIndex))
		}
	}
	return recipes, nil
}

// Count returns the number of saved favorites.
func (s *Store) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Favorite{}).Count(&count).Error
	return count, err
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
