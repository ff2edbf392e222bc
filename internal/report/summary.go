// Package report builds the dashboard aggregates and the export documents
// (profit chart, Excel workbooks, PDF invoices).
package report

import (
	"fmt"
	"sort"
	"time"

	"dzair/internal/ledger"
	"dzair/internal/models"
	"gorm.io/gorm"
)

// Summary holds the dashboard headline numbers.
type Summary struct {
	SalesCount       int64   `json:"sales_count"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalGrossProfit float64 `json:"total_gross_profit"`
	TotalNetProfit   float64 `json:"total_net_profit"`
	TotalDelivery    float64 `json:"total_delivery"`
	TotalAdSpend     float64 `json:"total_ad_spend"`
	NetAfterAdSpend  float64 `json:"net_after_ad_spend"`
}

// BuildSummary aggregates all sales and sponsored fees. The row counts
// involved are tiny (single-user bookkeeping), so aggregation happens in Go
// over the fetched rows rather than in SQL.
func BuildSummary(db *gorm.DB) (*Summary, error) {
	var sales []models.Sale
	if err := db.Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	var fees []models.SponsoredFee
	if err := db.Find(&fees).Error; err != nil {
		return nil, fmt.Errorf("failed to load fees: %w", err)
	}

	s := &Summary{}
	for _, sale := range sales {
		s.SalesCount++
		s.TotalRevenue += sale.SellingPrice * float64(sale.Quantity)
		s.TotalGrossProfit += sale.GrossProfit
		s.TotalNetProfit += sale.NetProfit
		s.TotalDelivery += sale.DeliveryTotal
	}
	for _, fee := range fees {
		s.TotalAdSpend += fee.AmountSpent
	}
	s.NetAfterAdSpend = s.TotalGrossProfit - s.TotalAdSpend

	return s, nil
}

// DailyProfit is one day of the dashboard's trailing profit series.
type DailyProfit struct {
	Day         time.Time `json:"day"`
	GrossProfit float64   `json:"gross_profit"`
	Sales       int       `json:"sales"`
}

// DailyProfits returns per-day gross profit for the trailing window ending
// at now (inclusive). Days without sales are absent from the result.
func DailyProfits(db *gorm.DB, now time.Time, days int) ([]DailyProfit, error) {
	if days <= 0 {
		days = 14
	}
	cutoff := ledger.Day(now).AddDate(0, 0, -(days - 1))

	var sales []models.Sale
	if err := db.Where("date >= ?", cutoff).Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to load sales for daily series: %w", err)
	}

	byDay := make(map[time.Time]*DailyProfit)
	for _, sale := range sales {
		day := ledger.Day(sale.Date)
		entry, ok := byDay[day]
		if !ok {
			entry = &DailyProfit{Day: day}
			byDay[day] = entry
		}
		entry.GrossProfit += sale.GrossProfit
		entry.Sales++
	}

	series := make([]DailyProfit, 0, len(byDay))
	for _, entry := range byDay {
		series = append(series, *entry)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Day.Before(series[j].Day)
	})

	return series, nil
}
