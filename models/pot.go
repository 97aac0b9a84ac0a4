package models

import "time"

// Pot is a savings goal belonging to a user.
type Pot struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    uint    `gorm:"index;not null"`
	Name      string  `gorm:"size:255;not null"`
	Amount    float64 `gorm:"not null"`
	Target    float64 `gorm:"not null"`
	Color     string  `gorm:"size:32;not null"`
}
