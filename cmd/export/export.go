// Package export writes the CSV recap of all transactions
package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fajarubianto5/app-penjualan/cmd/root"
	"github.com/fajarubianto5/app-penjualan/internal/export"
)

var output string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export all transactions to CSV",
	Long:  `Export all transactions to CSV with the fixed column order id,date,product,qty,price,total. An empty ledger produces a notice, never an empty file.`,
	Run:   exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default rekap-<date>.csv)")
}

func exportFunc(cmd *cobra.Command, args []string) {
	path := output
	if path == "" {
		path = export.CSVFileName(time.Now())
	}

	err := export.WriteCSVFile(path, root.Ledger.Transactions(), root.CSVOptions())
	if errors.Is(err, export.ErrNoData) {
		fmt.Println("Tidak ada data untuk diexport")
		return
	}
	if err != nil {
		root.Log.Fatalf("Error exporting CSV: %v", err)
	}

	fmt.Printf("CSV siap: %s\n", path)
}
