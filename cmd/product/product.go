// Package product manages the product catalog
package product

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fajarubianto5/app-penjualan/cmd/common"
	"github.com/fajarubianto5/app-penjualan/cmd/root"
	"github.com/fajarubianto5/app-penjualan/internal/apperror"
)

// Cmd represents the product command
var Cmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the product catalog",
	Long:  `Manage the product catalog. Deleting a product never touches historical transactions that reference it.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a product",
	Args:  cobra.ExactArgs(1),
	Run:   addFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a product",
	Args:  cobra.ExactArgs(1),
	Run:   removeFunc,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	products := root.Ledger.Products()
	if len(products) == 0 {
		fmt.Println("Belum ada produk")
		return
	}
	for _, p := range products {
		fmt.Println(p)
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	if err := root.Ledger.AddProduct(args[0]); err != nil {
		var dup *apperror.DuplicateError
		if errors.As(err, &dup) {
			root.Log.Fatalf("Produk sudah ada: %s", args[0])
		}
		var invalid *apperror.ValidationError
		if errors.As(err, &invalid) {
			root.Log.Fatalf("Masukkan nama produk")
		}
		root.Log.Fatalf("Error adding product: %v", err)
	}
	fmt.Println("Produk ditambahkan")
}

func removeFunc(cmd *cobra.Command, args []string) {
	removed, err := root.Ledger.RemoveProduct(args[0], common.Confirm("Hapus produk?", root.Yes))
	if err != nil {
		var notFound *apperror.NotFoundError
		if errors.As(err, &notFound) {
			fmt.Printf("Produk tidak ditemukan: %s\n", args[0])
			return
		}
		root.Log.Fatalf("Error removing product: %v", err)
	}
	if removed {
		fmt.Println("Produk dihapus")
	}
}
