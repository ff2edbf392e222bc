package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"dzair/internal/ledger"
	"dzair/internal/report"
	"github.com/spf13/cobra"
)

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Record and browse sales",
}

var saleAddFlags struct {
	clientID  uint
	productID uint
	qty       int
	delivery  float64
	payment   string
	status    string
	date      string
}

var saleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new sale",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := ledger.SaleInput{
			ClientID:      saleAddFlags.clientID,
			ProductID:     saleAddFlags.productID,
			Quantity:      saleAddFlags.qty,
			PaymentMethod: saleAddFlags.payment,
			Status:        saleAddFlags.status,
		}
		// Only an explicitly passed delivery price overrides the product default.
		if cmd.Flags().Changed("delivery") {
			d := saleAddFlags.delivery
			input.DeliveryPrice = &d
		}
		if saleAddFlags.date != "" {
			day, err := ledger.ParseDay(saleAddFlags.date)
			if err != nil {
				return err
			}
			input.Date = day
		}

		sale, err := a.store.RecordSale(input)
		if err != nil {
			return err
		}
		fmt.Printf("Sale recorded. Invoice: %s (net profit %.2f DZD)\n", sale.InvoiceNo, sale.NetProfit)
		return nil
	},
}

var saleListFlags struct {
	search string
	from   string
	to     string
}

var saleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sales, with optional search and date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := buildFilter(saleListFlags.search, saleListFlags.from, saleListFlags.to)
		if err != nil {
			return err
		}

		rows, err := a.store.ListSales(filter)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tINVOICE\tDATE\tCLIENT\tPRODUCT\tQTY\tSELLING\tDELIVERY\tGROSS\tNET\tSTATUS")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
				r.SaleID, r.InvoiceNo, r.Date.Format("2006-01-02"), r.ClientName, r.ProductName,
				r.Quantity, r.SellingPrice, r.DeliveryTotal, r.GrossProfit, r.NetProfit, r.Status)
		}
		return w.Flush()
	},
}

var saleInvoiceFlags struct {
	saleID    uint
	invoiceNo string
	out       string
}

var saleInvoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Export one sale as a PDF invoice",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			detail *ledger.SaleDetail
			err    error
		)
		switch {
		case saleInvoiceFlags.invoiceNo != "":
			detail, err = a.store.GetSaleDetailByInvoice(saleInvoiceFlags.invoiceNo)
		case saleInvoiceFlags.saleID != 0:
			detail, err = a.store.GetSaleDetail(saleInvoiceFlags.saleID)
		default:
			return fmt.Errorf("pass --id or --invoice to pick a sale")
		}
		if err != nil {
			return err
		}

		out := saleInvoiceFlags.out
		if out == "" {
			out = detail.InvoiceNo + ".pdf"
		}
		if err := report.SaveInvoicePDF(out, detail); err != nil {
			return err
		}
		fmt.Printf("Invoice saved to %s\n", out)
		return nil
	},
}

// buildFilter turns the shared search/from/to flags into a ledger filter.
func buildFilter(search, from, to string) (ledger.Filter, error) {
	filter := ledger.Filter{Search: search}
	if from != "" {
		day, err := ledger.ParseDay(from)
		if err != nil {
			return ledger.Filter{}, err
		}
		filter.From = day
	}
	if to != "" {
		day, err := ledger.ParseDay(to)
		if err != nil {
			return ledger.Filter{}, err
		}
		filter.To = day
	}
	return filter, nil
}

func init() {
	saleAddCmd.Flags().UintVar(&saleAddFlags.clientID, "client", 0, "client ID (required)")
	saleAddCmd.Flags().UintVar(&saleAddFlags.productID, "product", 0, "product ID (required)")
	saleAddCmd.Flags().IntVar(&saleAddFlags.qty, "qty", 1, "quantity")
	saleAddCmd.Flags().Float64Var(&saleAddFlags.delivery, "delivery", 0, "delivery price (defaults to the product's)")
	saleAddCmd.Flags().StringVar(&saleAddFlags.payment, "payment", "", "payment method: Cash, BaridiMob, CCP or Bank")
	saleAddCmd.Flags().StringVar(&saleAddFlags.status, "status", "", "status: Pending, Delivered or Returned")
	saleAddCmd.Flags().StringVar(&saleAddFlags.date, "date", "", "sale date as YYYY-MM-DD (defaults to today)")
	saleAddCmd.MarkFlagRequired("client")
	saleAddCmd.MarkFlagRequired("product")

	saleListCmd.Flags().StringVar(&saleListFlags.search, "search", "", "match client, product, invoice or status")
	saleListCmd.Flags().StringVar(&saleListFlags.from, "from", "", "start date YYYY-MM-DD")
	saleListCmd.Flags().StringVar(&saleListFlags.to, "to", "", "end date YYYY-MM-DD")

	saleInvoiceCmd.Flags().UintVar(&saleInvoiceFlags.saleID, "id", 0, "sale ID")
	saleInvoiceCmd.Flags().StringVar(&saleInvoiceFlags.invoiceNo, "invoice", "", "invoice number")
	saleInvoiceCmd.Flags().StringVar(&saleInvoiceFlags.out, "out", "", "output file (defaults to <invoice>.pdf)")

	saleCmd.AddCommand(saleAddCmd)
	saleCmd.AddCommand(saleListCmd)
	saleCmd.AddCommand(saleInvoiceCmd)
}
