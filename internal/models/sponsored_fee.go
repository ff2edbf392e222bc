package models

import (
	"time"

	"gorm.io/gorm"
)

// SponsoredFee records money spent on an ad campaign.
type SponsoredFee struct {
	gorm.Model
	CampaignName string    `gorm:"not null" json:"campaign_name"`
	Platform     string    `json:"platform"`
	AmountSpent  float64   `gorm:"not null" json:"amount_spent"`
	Date         time.Time `json:"date"`
}
