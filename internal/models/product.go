package models

import "gorm.io/gorm"

// Product represents a catalog item. Weight is in kilograms and feeds the
// delivery cost calculation; DefaultDeliveryPrice is used when a sale does
// not specify its own delivery price.
type Product struct {
	gorm.Model
	Name                 string  `gorm:"not null" json:"name"`
	PurchasePrice        float64 `gorm:"not null" json:"purchase_price"`
	Weight               float64 `json:"weight"`
	DefaultDeliveryPrice float64 `gorm:"default:0" json:"default_delivery_price"`
	SellingPrice         float64 `json:"selling_price"`
	StockQty             int     `gorm:"default:0" json:"stock_qty"`
}
