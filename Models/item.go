package Models

import (
	"time"
)

// Item is a stocked product with its buying and selling price.
type Item struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	BuyingPrice  float64   `json:"buying_price"`
	SellingPrice float64   `json:"selling_price"`
	Stock        int       `json:"stock" gorm:"default:0"`
	Barcode      string    `json:"barcode"`
	Category     string    `json:"category"`
	LastUpdated  time.Time `json:"last_updated" gorm:"autoUpdateTime"`
	CreatedAt    time.Time `json:"created_at"`
}
