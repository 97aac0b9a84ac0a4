package models

import "time"

type BillStatus string

const (
	BillPaid     BillStatus = "PAID"
	BillDue      BillStatus = "DUE"
	BillUpcoming BillStatus = "UPCOMING"
)

type BillType string

const (
	BillMonthly BillType = "MONTHLY"
	BillOneTime BillType = "ONETIME"
)

// Bill is a recurring or one-time obligation. MONTHLY bills carry DueDay
// (1-28), ONETIME bills carry DueExactDate; the other field stays nil. This
// is enforced where bills are constructed, not by the schema.
type Bill struct {
	ID           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UserID       uint       `gorm:"index;not null"`
	Status       BillStatus `gorm:"size:16;not null"`
	Type         BillType   `gorm:"size:16;not null"`
	Amount       float64    `gorm:"not null"`
	Payee        string     `gorm:"size:255;not null"`
	DueDay       *int
	DueExactDate *time.Time
}

// Valid reports whether exactly the date field matching the bill type is set.
func (b Bill) Valid() bool {
	switch b.Type {
	case BillMonthly:
		return b.DueDay != nil && b.DueExactDate == nil && *b.DueDay >= 1 && *b.DueDay <= 28
	case BillOneTime:
		return b.DueDay == nil && b.DueExactDate != nil
	}
	return false
}
