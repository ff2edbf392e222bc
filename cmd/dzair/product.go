package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"dzair/internal/models"
	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the product catalog",
}

var productAddFlags struct {
	name     string
	purchase float64
	selling  float64
	weight   float64
	delivery float64
	stock    int
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new product",
	RunE: func(cmd *cobra.Command, args []string) error {
		product := &models.Product{
			Name:                 productAddFlags.name,
			PurchasePrice:        productAddFlags.purchase,
			SellingPrice:         productAddFlags.selling,
			Weight:               productAddFlags.weight,
			DefaultDeliveryPrice: productAddFlags.delivery,
			StockQty:             productAddFlags.stock,
		}
		if err := a.store.CreateProduct(product); err != nil {
			return err
		}
		fmt.Printf("Product added: #%d %s\n", product.ID, product.Name)
		return nil
	},
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		products, err := a.store.ListProducts()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPURCHASE\tSELLING\tWEIGHT\tDELIVERY\tSTOCK")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%d\n",
				p.ID, p.Name, p.PurchasePrice, p.SellingPrice, p.Weight, p.DefaultDeliveryPrice, p.StockQty)
		}
		return w.Flush()
	},
}

func init() {
	productAddCmd.Flags().StringVar(&productAddFlags.name, "name", "", "product name (required)")
	productAddCmd.Flags().Float64Var(&productAddFlags.purchase, "purchase", 0, "purchase price (required)")
	productAddCmd.Flags().Float64Var(&productAddFlags.selling, "selling", 0, "selling price (required)")
	productAddCmd.Flags().Float64Var(&productAddFlags.weight, "weight", 0, "weight in kg")
	productAddCmd.Flags().Float64Var(&productAddFlags.delivery, "delivery", 0, "default delivery price")
	productAddCmd.Flags().IntVar(&productAddFlags.stock, "stock", 0, "stock quantity")
	productAddCmd.MarkFlagRequired("name")
	productAddCmd.MarkFlagRequired("purchase")
	productAddCmd.MarkFlagRequired("selling")

	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productListCmd)
}
