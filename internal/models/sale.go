package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment methods accepted on a sale.
const (
	PaymentCash      = "Cash"
	PaymentBaridiMob = "BaridiMob"
	PaymentCCP       = "CCP"
	PaymentBank      = "Bank"
)

// Sale statuses.
const (
	StatusPending   = "Pending"
	StatusDelivered = "Delivered"
	StatusReturned  = "Returned"
)

// Sale represents one recorded sale. Price, weight and profit columns are
// snapshots taken from the product at recording time, so later product
// edits never rewrite history.
type Sale struct {
	gorm.Model
	InvoiceNo     string    `gorm:"uniqueIndex" json:"invoice_no"`
	Reference     string    `json:"reference"`
	ClientID      uint      `json:"client_id"`
	ProductID     uint      `json:"product_id"`
	Quantity      int       `gorm:"default:1" json:"quantity"`
	PurchasePrice float64   `json:"purchase_price"`
	SellingPrice  float64   `json:"selling_price"`
	Weight        float64   `json:"weight"`
	DeliveryPrice float64   `json:"delivery_price"`
	DeliveryTotal float64   `json:"delivery_total"`
	GrossProfit   float64   `json:"gross_profit"`
	NetProfit     float64   `json:"net_profit"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	Paid          bool      `gorm:"default:false" json:"paid"`
	Date          time.Time `gorm:"index" json:"date"`
}
