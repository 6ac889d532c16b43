package config

import (
	"os"
	"path/filepath"
)

// Paths contains commonly used file paths.
type Paths struct {
	Corpus     string // Cleaned recipe corpus CSV
	Embeddings string // Embedding matrix artifact
	Favorites  string // Favorites SQLite database
	Logs       string // Log directory
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	return Paths{
		Corpus:     filepath.Join(cfg.BaseDir, "recipe_data.csv"),
		Embeddings: filepath.Join(cfg.BaseDir, "recipe_embeddings.json"),
		Favorites:  filepath.Join(cfg.BaseDir, "favorites.db"),
		Logs:       filepath.Join(cfg.BaseDir, "logs"),
	}
}

// DefaultBaseDir returns the default base directory (~/.foodrec).
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".foodrec"
	}
	return filepath.Join(home, ".foodrec")
}
