package models

import (
	"time"
)

// User model. PasswordHash is a bcrypt digest and is never serialized.
type User struct {
	ID           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string  `gorm:"size:255;not null"`
	Email        string  `gorm:"size:255;not null;unique"`
	PasswordHash []byte  `gorm:"not null" json:"-"`
	Balance      float64 `gorm:"not null"`
	Income       float64 `gorm:"not null"`
	Expenses     float64 `gorm:"not null"`

	Pots         []Pot         `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Budgets      []Budget      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Bills        []Bill        `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Transactions []Transaction `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
