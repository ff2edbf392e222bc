package models

import "gorm.io/gorm"

// Client represents a buyer. TotalSpent and TotalOrders are running
// totals maintained by the ledger whenever a sale is recorded.
type Client struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	TotalSpent  float64 `gorm:"default:0" json:"total_spent"`
	TotalOrders int     `gorm:"default:0" json:"total_orders"`
}
