package models

import (
	"time"

	"gorm.io/gorm"
)

// Like links a user to a listing they liked. The composite unique index is
// what guarantees at most one row per (user, listing) pair; two concurrent
// toggles both inserting will have one of them rejected by the store.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_listing" json:"user_id"`
	ListingID uint      `gorm:"not null;uniqueIndex:idx_likes_user_listing" json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MigrateLikes migrates the table
func MigrateLikes(db *gorm.DB) error {
	return db.AutoMigrate(&Like{})
}
