package Models

import (
	"time"
)

// Customer carries the running credit balance for a shop customer.
// TotalCredit is only ever touched by the credit controllers, which
// adjust it in the same transaction as the ledger row it reflects.
type Customer struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	TotalCredit  float64   `json:"total_credit" gorm:"default:0"`
	CustomerType string    `json:"customer_type" gorm:"default:regular"`
	CreatedAt    time.Time `json:"created_at"`
}
