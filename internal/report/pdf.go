package report

import (
	"fmt"
	"io"
	"os"

	"dzair/internal/ledger"
	"github.com/go-pdf/fpdf"
)

// WriteInvoicePDF renders an A4 invoice document for one sale.
func WriteInvoicePDF(w io.Writer, d *ledger.SaleDetail) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "DZAIR - Invoice")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(45, 7, label)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 7, value)
		pdf.Ln(7)
	}
	amount := func(v float64) string { return fmt.Sprintf("%.2f DZD", v) }

	line("Invoice", d.InvoiceNo)
	line("Date", d.Date.Format("2006-01-02"))
	line("Reference", d.Reference)
	pdf.Ln(4)

	line("Client", d.ClientName)
	line("Phone", d.ClientPhone)
	line("Address", d.ClientAddress)
	line("City", d.ClientCity)
	pdf.Ln(4)

	line("Product", fmt.Sprintf("%s x %d", d.ProductName, d.Quantity))
	line("Selling price", amount(d.SellingPrice))
	line("Delivery", amount(d.DeliveryPrice))
	line("Delivery total", amount(d.DeliveryTotal))
	line("Gross profit", amount(d.GrossProfit))
	line("Net profit", amount(d.NetProfit))
	pdf.Ln(4)

	paid := "No"
	if d.Paid {
		paid = "Yes"
	}
	line("Payment", d.PaymentMethod)
	line("Status", d.Status)
	line("Paid", paid)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return nil
}

// SaveInvoicePDF writes the invoice document to a file.
func SaveInvoicePDF(path string, d *ledger.SaleDetail) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create invoice file: %w", err)
	}
	defer f.Close()
	return WriteInvoicePDF(f, d)
}
