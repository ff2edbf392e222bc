// Package backup copies the live database file for safekeeping.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// DefaultName returns the backup filename for a given moment, e.g.
// dzair-backup-20260829-150405.db.
func DefaultName(t time.Time) string {
	return fmt.Sprintf("dzair-backup-%s.db", t.Format("20060102-150405"))
}

// CopyDatabase copies the database file at src to dst, creating the
// destination directory if needed. The copy is a plain byte copy; the
// database is only ever open from one process, so no locking is required.
func CopyDatabase(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open database file: %w", err)
	}
	defer in.Close()

	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create backup directory: %w", err)
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy database: %w", err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("failed to flush backup file: %w", err)
	}
	return nil
}
