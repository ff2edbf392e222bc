package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"dzair/internal/models"
	"github.com/spf13/cobra"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
}

var clientAddFlags struct {
	name    string
	phone   string
	address string
	city    string
}

var clientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new client",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := &models.Client{
			Name:    clientAddFlags.name,
			Phone:   clientAddFlags.phone,
			Address: clientAddFlags.address,
			City:    clientAddFlags.city,
		}
		if err := a.store.CreateClient(client); err != nil {
			return err
		}
		fmt.Printf("Client added: #%d %s\n", client.ID, client.Name)
		return nil
	},
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		clients, err := a.store.ListClients()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPHONE\tCITY\tTOTAL SPENT\tORDERS")
		for _, c := range clients {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%d\n",
				c.ID, c.Name, c.Phone, c.City, c.TotalSpent, c.TotalOrders)
		}
		return w.Flush()
	},
}

func init() {
	clientAddCmd.Flags().StringVar(&clientAddFlags.name, "name", "", "client name (required)")
	clientAddCmd.Flags().StringVar(&clientAddFlags.phone, "phone", "", "phone number")
	clientAddCmd.Flags().StringVar(&clientAddFlags.address, "address", "", "street address")
	clientAddCmd.Flags().StringVar(&clientAddFlags.city, "city", "", "city")
	clientAddCmd.MarkFlagRequired("name")

	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(clientListCmd)
}
