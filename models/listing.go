package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// StringList stores a list of URLs as a JSON text column so the same model
// works on both postgres and sqlite.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// Listing is a property listing owned by exactly one user.
// Column names follow the original schema (no underscores on the price,
// image and phone columns) so the search sort allow-list matches real columns.
type Listing struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"index;not null" json:"user_id"`
	Name            string     `json:"name"`
	Description     string     `gorm:"type:text" json:"description"`
	Address         string     `json:"address"`
	RegularPrice    int64      `gorm:"column:regularprice" json:"regularprice"`
	DiscountedPrice int64      `gorm:"column:discountedprice" json:"discountedprice"`
	Bathrooms       int        `json:"bathrooms"`
	Bedrooms        int        `json:"bedrooms"`
	Furnished       bool       `json:"furnished"`
	Parking         bool       `json:"parking"`
	Type            string     `json:"type"` // sale, rent
	Offer           bool       `json:"offer"`
	ImageURLs       StringList `gorm:"column:imageurls;type:text" json:"imageurls"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	PhoneNumber     string     `gorm:"column:phonenumber" json:"phonenumber"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// MigrateListings migrates the table
func MigrateListings(db *gorm.DB) error {
	return db.AutoMigrate(&Listing{})
}
