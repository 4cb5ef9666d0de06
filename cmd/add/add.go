// Package add records a new sale into the ledger
package add

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fajarubianto5/app-penjualan/cmd/root"
	"github.com/fajarubianto5/app-penjualan/internal/apperror"
	"github.com/fajarubianto5/app-penjualan/internal/dateutils"
)

var (
	product string
	qty     string
	price   string
	date    string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record a sales transaction",
	Long:  `Record a sales transaction. The total is computed as qty * price and the product joins the catalog when it is new.`,
	Run:   addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&product, "product", "p", "", "Product name")
	Cmd.Flags().StringVarP(&qty, "qty", "q", "", "Quantity sold")
	Cmd.Flags().StringVarP(&price, "price", "P", "", "Unit price")
	Cmd.Flags().StringVarP(&date, "date", "d", "", "Transaction date (YYYY-MM-DD, default today)")
}

func addFunc(cmd *cobra.Command, args []string) {
	qtyDec, err := decimal.NewFromString(qty)
	if err != nil {
		qtyDec = decimal.Zero
	}
	priceDec, err := decimal.NewFromString(price)
	if err != nil {
		priceDec = decimal.Zero
	}

	if date != "" {
		normalized, err := dateutils.NormalizeISO(date)
		if err == nil {
			date = normalized
		}
	}

	t, err := root.Ledger.AddTransaction(date, product, qtyDec, priceDec)
	if err != nil {
		var invalid *apperror.ValidationError
		if errors.As(err, &invalid) {
			root.Log.Fatalf("Lengkapi data dengan benar: %v", err)
		}
		root.Log.Fatalf("Error recording transaction: %v", err)
	}

	fmt.Printf("Transaksi disimpan: #%d %s x%s @ Rp %s = Rp %s\n",
		t.ID, t.Product, t.Qty.String(), t.Price.StringFixed(0), t.Total.StringFixed(0))
}
