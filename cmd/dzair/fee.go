package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"dzair/internal/ledger"
	"dzair/internal/models"
	"github.com/spf13/cobra"
)

var feeCmd = &cobra.Command{
	Use:   "fee",
	Short: "Track sponsored ad campaign spending",
}

var feeAddFlags struct {
	campaign string
	platform string
	amount   float64
	date     string
}

var feeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an ad campaign fee",
	RunE: func(cmd *cobra.Command, args []string) error {
		fee := &models.SponsoredFee{
			CampaignName: feeAddFlags.campaign,
			Platform:     feeAddFlags.platform,
			AmountSpent:  feeAddFlags.amount,
		}
		if feeAddFlags.date != "" {
			day, err := ledger.ParseDay(feeAddFlags.date)
			if err != nil {
				return err
			}
			fee.Date = day
		}
		if err := a.store.CreateFee(fee); err != nil {
			return err
		}
		fmt.Printf("Fee recorded: #%d %s (%.2f DZD)\n", fee.ID, fee.CampaignName, fee.AmountSpent)
		return nil
	},
}

var feeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded fees",
	RunE: func(cmd *cobra.Command, args []string) error {
		fees, err := a.store.ListFees()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCAMPAIGN\tPLATFORM\tAMOUNT\tDATE")
		for _, f := range fees {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\n",
				f.ID, f.CampaignName, f.Platform, f.AmountSpent, f.Date.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

func init() {
	feeAddCmd.Flags().StringVar(&feeAddFlags.campaign, "campaign", "", "campaign name (required)")
	feeAddCmd.Flags().StringVar(&feeAddFlags.platform, "platform", "", "ad platform")
	feeAddCmd.Flags().Float64Var(&feeAddFlags.amount, "amount", 0, "amount spent (required)")
	feeAddCmd.Flags().StringVar(&feeAddFlags.date, "date", "", "fee date as YYYY-MM-DD (defaults to today)")
	feeAddCmd.MarkFlagRequired("campaign")
	feeAddCmd.MarkFlagRequired("amount")

	feeCmd.AddCommand(feeAddCmd)
	feeCmd.AddCommand(feeListCmd)
}
