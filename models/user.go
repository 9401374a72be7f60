package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. Identity originates at the external
// auth provider; UID is the provider's id for the user.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UID            string    `gorm:"uniqueIndex;not null" json:"uid"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Username       string    `json:"username"`
	ProfilePicture string    `gorm:"column:profilepicture;type:text" json:"profilepicture"`
	IsAdmin        bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MigrateUsers migrates the table
func MigrateUsers(db *gorm.DB) error {
	return db.AutoMigrate(&User{})
}
