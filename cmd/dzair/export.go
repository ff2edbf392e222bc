package main

import (
	"fmt"

	"dzair/internal/report"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export data for offline analysis",
}

var exportExcelFlags struct {
	out      string
	filtered bool
	search   string
	from     string
	to       string
}

var exportExcelCmd = &cobra.Command{
	Use:   "excel",
	Short: "Export tables to an .xlsx workbook",
	Long: `Export all four tables to one workbook, or with --filtered only the
sale listing matching the usual search and date-range flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportExcelFlags.filtered {
			filter, err := buildFilter(exportExcelFlags.search, exportExcelFlags.from, exportExcelFlags.to)
			if err != nil {
				return err
			}
			rows, err := a.store.ListSales(filter)
			if err != nil {
				return err
			}
			if err := report.ExportFilteredSales(rows, exportExcelFlags.out); err != nil {
				return err
			}
			fmt.Printf("Filtered sales (%d rows) saved to %s\n", len(rows), exportExcelFlags.out)
			return nil
		}

		if err := report.ExportWorkbook(a.store.DB(), exportExcelFlags.out); err != nil {
			return err
		}
		fmt.Printf("All tables saved to %s\n", exportExcelFlags.out)
		return nil
	},
}

func init() {
	exportExcelCmd.Flags().StringVar(&exportExcelFlags.out, "out", "dzair-export.xlsx", "output workbook path")
	exportExcelCmd.Flags().BoolVar(&exportExcelFlags.filtered, "filtered", false, "export only the filtered sale listing")
	exportExcelCmd.Flags().StringVar(&exportExcelFlags.search, "search", "", "match client, product, invoice or status")
	exportExcelCmd.Flags().StringVar(&exportExcelFlags.from, "from", "", "start date YYYY-MM-DD")
	exportExcelCmd.Flags().StringVar(&exportExcelFlags.to, "to", "", "end date YYYY-MM-DD")

	exportCmd.AddCommand(exportExcelCmd)
}
