package Models

import (
	"time"
)

// CreditTransaction is one entry in the store-credit ledger. Once Paid
// flips to true the row is settled and never mutated again.
type CreditTransaction struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	CustomerID      uint       `json:"customer_id" gorm:"not null;index"`
	ItemName        string     `json:"item_name"`
	Quantity        int        `json:"quantity" gorm:"default:1"`
	Amount          float64    `json:"amount"`
	TransactionDate time.Time  `json:"transaction_date"`
	DueDate         *time.Time `json:"due_date"`
	Paid            bool       `json:"paid" gorm:"default:false"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
}
