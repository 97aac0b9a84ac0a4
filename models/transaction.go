package models

import "time"

type TransactionType string

const (
	TransactionOutgoing TransactionType = "OUTGOING"
	TransactionIncoming TransactionType = "INCOMING"
)

// Transaction is a financial movement between a user and a counterparty.
// Amount is signed: negative for OUTGOING, positive for INCOMING, and the
// Type field always agrees with the sign. CounterpartyID references another
// existing user, never the owner itself.
type Transaction struct {
	ID             uint `gorm:"primaryKey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	UserID         uint            `gorm:"index;not null"`
	CounterpartyID uint            `gorm:"index;not null"`
	Counterparty   User            `gorm:"foreignKey:CounterpartyID;references:ID"`
	Amount         int             `gorm:"not null"`
	Date           time.Time       `gorm:"not null"`
	Description    string          `gorm:"size:512"`
	Type           TransactionType `gorm:"size:16;not null"`
	Category       string          `gorm:"size:64;not null"`
}
