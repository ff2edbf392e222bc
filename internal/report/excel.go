package report

import (
	"fmt"

	"dzair/internal/ledger"
	"dzair/internal/models"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const dayFormat = "2006-01-02"

// ExportWorkbook writes every table to one .xlsx workbook, a sheet per
// table, for backup and offline analysis.
func ExportWorkbook(db *gorm.DB, path string) error {
	var clients []models.Client
	if err := db.Order("id").Find(&clients).Error; err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}
	var products []models.Product
	if err := db.Order("id").Find(&products).Error; err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	var sales []models.Sale
	if err := db.Order("id").Find(&sales).Error; err != nil {
		return fmt.Errorf("failed to load sales: %w", err)
	}
	var fees []models.SponsoredFee
	if err := db.Order("id").Find(&fees).Error; err != nil {
		return fmt.Errorf("failed to load fees: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the first table's sheet.
	if err := f.SetSheetName("Sheet1", "Clients"); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeRows(f, "Clients",
		[]interface{}{"ID", "Name", "Phone", "Address", "City", "TotalSpent", "TotalOrders"},
		len(clients), func(i int) []interface{} {
			c := clients[i]
			return []interface{}{c.ID, c.Name, c.Phone, c.Address, c.City, c.TotalSpent, c.TotalOrders}
		}); err != nil {
		return err
	}

	if err := addSheet(f, "Products",
		[]interface{}{"ID", "Name", "PurchasePrice", "Weight", "DefaultDeliveryPrice", "SellingPrice", "StockQty"},
		len(products), func(i int) []interface{} {
			p := products[i]
			return []interface{}{p.ID, p.Name, p.PurchasePrice, p.Weight, p.DefaultDeliveryPrice, p.SellingPrice, p.StockQty}
		}); err != nil {
		return err
	}

	if err := addSheet(f, "Sales",
		[]interface{}{"ID", "InvoiceNo", "Reference", "Date", "ClientID", "ProductID", "Quantity",
			"PurchasePrice", "SellingPrice", "Weight", "DeliveryPrice", "DeliveryTotal",
			"GrossProfit", "NetProfit", "PaymentMethod", "Status", "Paid"},
		len(sales), func(i int) []interface{} {
			s := sales[i]
			return []interface{}{s.ID, s.InvoiceNo, s.Reference, s.Date.Format(dayFormat), s.ClientID, s.ProductID,
				s.Quantity, s.PurchasePrice, s.SellingPrice, s.Weight, s.DeliveryPrice, s.DeliveryTotal,
				s.GrossProfit, s.NetProfit, s.PaymentMethod, s.Status, s.Paid}
		}); err != nil {
		return err
	}

	if err := addSheet(f, "SponsoredFees",
		[]interface{}{"ID", "CampaignName", "Platform", "AmountSpent", "Date"},
		len(fees), func(i int) []interface{} {
			fee := fees[i]
			return []interface{}{fee.ID, fee.CampaignName, fee.Platform, fee.AmountSpent, fee.Date.Format(dayFormat)}
		}); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// ExportFilteredSales writes an already-filtered sale listing to a
// single-sheet workbook, mirroring what the sale view shows.
func ExportFilteredSales(rows []ledger.SaleRow, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Sales"); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeRows(f, "Sales",
		[]interface{}{"SaleID", "InvoiceNo", "Date", "Client", "Product", "Qty",
			"SellingPrice", "DeliveryTotal", "GrossProfit", "NetProfit", "Status"},
		len(rows), func(i int) []interface{} {
			r := rows[i]
			return []interface{}{r.SaleID, r.InvoiceNo, r.Date.Format(dayFormat), r.ClientName, r.ProductName,
				r.Quantity, r.SellingPrice, r.DeliveryTotal, r.GrossProfit, r.NetProfit, r.Status}
		}); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func addSheet(f *excelize.File, name string, header []interface{}, n int, row func(int) []interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", name, err)
	}
	return writeRows(f, name, header, n, row)
}

func writeRows(f *excelize.File, sheet string, header []interface{}, n int, row func(int) []interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header on %s: %w", sheet, err)
	}
	for i := 0; i < n; i++ {
		values := row(i)
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d on %s: %w", i+2, sheet, err)
		}
	}
	return nil
}
