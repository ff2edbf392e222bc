package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dzair/internal/report"
	"github.com/spf13/cobra"
)

var dashboardFlags struct {
	chartOut string
	days     int
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show totals and the trailing daily profit",
	RunE: func(cmd *cobra.Command, args []string) error {
		db := a.store.DB()

		summary, err := report.BuildSummary(db)
		if err != nil {
			return err
		}

		fmt.Printf("Sales:             %d\n", summary.SalesCount)
		fmt.Printf("Revenue:           %.2f DZD\n", summary.TotalRevenue)
		fmt.Printf("Gross profit:      %.2f DZD\n", summary.TotalGrossProfit)
		fmt.Printf("Net profit:        %.2f DZD\n", summary.TotalNetProfit)
		fmt.Printf("Delivery:          %.2f DZD\n", summary.TotalDelivery)
		fmt.Printf("Ad spend:          %.2f DZD\n", summary.TotalAdSpend)
		fmt.Printf("Net after ads:     %.2f DZD\n", summary.NetAfterAdSpend)

		series, err := report.DailyProfits(db, time.Now(), dashboardFlags.days)
		if err != nil {
			return err
		}

		fmt.Printf("\nLast %d days:\n", dashboardFlags.days)
		if len(series) == 0 {
			fmt.Println("  (no sales in window)")
		}
		for _, p := range series {
			fmt.Printf("  %s  %8.2f DZD  (%d sales)\n", p.Day.Format("2006-01-02"), p.GrossProfit, p.Sales)
		}

		if dashboardFlags.chartOut != "" {
			f, err := os.Create(dashboardFlags.chartOut)
			if err != nil {
				return fmt.Errorf("failed to create chart file: %w", err)
			}
			defer f.Close()

			if err := report.RenderProfitChart(f, series); err != nil {
				if errors.Is(err, report.ErrNoData) {
					fmt.Println("\nNo data to chart - skipped chart file.")
					return nil
				}
				return err
			}
			fmt.Printf("\nChart written to %s\n", dashboardFlags.chartOut)
		}
		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardFlags.chartOut, "chart", "", "also write a PNG profit chart to this path")
	dashboardCmd.Flags().IntVar(&dashboardFlags.days, "days", 14, "size of the trailing window")
}
