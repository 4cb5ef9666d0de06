// Package remove deletes a transaction by id
package remove

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fajarubianto5/app-penjualan/cmd/common"
	"github.com/fajarubianto5/app-penjualan/cmd/root"
	"github.com/fajarubianto5/app-penjualan/internal/apperror"
)

// Cmd represents the remove command
var Cmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a transaction by id",
	Long:  `Delete a transaction by id. Asks for confirmation unless --yes is given; an unknown id is a no-op.`,
	Args:  cobra.ExactArgs(1),
	Run:   removeFunc,
}

func removeFunc(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		root.Log.Fatalf("Invalid transaction id: %s", args[0])
	}

	deleted, err := root.Ledger.DeleteTransaction(id, common.Confirm("Hapus data ini?", root.Yes))
	if err != nil {
		var notFound *apperror.NotFoundError
		if errors.As(err, &notFound) {
			fmt.Printf("Transaksi #%d tidak ditemukan\n", id)
			return
		}
		root.Log.Fatalf("Error deleting transaction: %v", err)
	}

	if deleted {
		fmt.Println("Data dihapus")
	}
}
