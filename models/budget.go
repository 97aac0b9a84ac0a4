package models

import "time"

// Budget is a per-category spending limit belonging to a user. Categories are
// an enumerated label set; the schema does not force them unique per user.
type Budget struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    uint    `gorm:"index;not null"`
	Category  string  `gorm:"size:64;not null"`
	Amount    float64 `gorm:"not null"`
	Color     string  `gorm:"size:32;not null"`
}
