// Package backup writes the JSON snapshot of both collections
package backup

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fajarubianto5/app-penjualan/cmd/root"
	"github.com/fajarubianto5/app-penjualan/internal/export"
)

var output string

// Cmd represents the backup command
var Cmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a JSON backup of transactions and products",
	Long:  `Write a single JSON document holding the transaction list and the product catalog. There is no restore command; the backup is export-only.`,
	Run:   backupFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default backup-<timestamp>.json)")
}

func backupFunc(cmd *cobra.Command, args []string) {
	path := output
	if path == "" {
		path = export.BackupFileName(time.Now())
	}

	if err := export.WriteBackupFile(path, root.Ledger.Transactions(), root.Ledger.Products()); err != nil {
		root.Log.Fatalf("Error writing backup: %v", err)
	}

	fmt.Printf("Backup dibuat: %s\n", path)
}
