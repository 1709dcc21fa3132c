package Models

import (
	"time"
)

// Bottle tracks a returnable container handed out to a customer.
type Bottle struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	CustomerID    uint       `json:"customer_id" gorm:"not null;index"`
	BottleType    string     `json:"bottle_type"`
	Quantity      int        `json:"quantity" gorm:"default:1"`
	TakenDate     time.Time  `json:"taken_date"`
	Returned      bool       `json:"returned" gorm:"default:false"`
	ReturnedDate  *time.Time `json:"returned_date"`
	DepositAmount float64    `json:"deposit_amount" gorm:"default:0"`
	Notes         string     `json:"notes"`
}
