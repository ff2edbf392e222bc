package main

import (
	"fmt"
	"time"

	"dzair/internal/backup"
	"github.com/spf13/cobra"
)

var backupOut string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy the database file to a backup location",
	RunE: func(cmd *cobra.Command, args []string) error {
		dst := backupOut
		if dst == "" {
			dst = backup.DefaultName(time.Now())
		}
		if err := backup.CopyDatabase(a.cfg.Database.DSN, dst); err != nil {
			return err
		}
		fmt.Printf("Database copied to %s\n", dst)
		return nil
	},
}

func init() {
	backupCmd.Flags().StringVar(&backupOut, "out", "", "backup file path (defaults to a timestamped name)")
}
