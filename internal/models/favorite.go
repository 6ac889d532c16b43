package models

import "time"

// Favorite is a saved recipe reference. The corpus is static for the
// process lifetime, so the row index stays valid; the title is stored
// alongside it so the list is readable even against a rebuilt corpus.
type Favorite struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	RecipeIndex int       `gorm:"index" json:"recipe_index"`
	Title       string    `gorm:"size:255;uniqueIndex" json:"title"`
	AddedAt     time.Time `gorm:"autoCreateTime" json:"added_at"`
}

// TableName specifies the table name for GORM.
func (Favorite) TableName() string {
	return "favorites"
}
