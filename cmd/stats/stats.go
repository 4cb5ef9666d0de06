// Package stats shows the overview: aggregates and text charts
package stats

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fajarubianto5/app-penjualan/cmd/root"
	"github.com/fajarubianto5/app-penjualan/internal/charts"
)

var topN int

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Show summary statistics and charts",
	Long:  `Show total revenue, transaction count, average ticket, the best-selling product, and the monthly revenue and top-product charts.`,
	Run:   statsFunc,
}

func init() {
	Cmd.Flags().IntVar(&topN, "top", charts.DefaultTopN, "Number of products in the top-products chart")
}

func statsFunc(cmd *cobra.Command, args []string) {
	summary := root.Ledger.Summary()
	top := summary.TopProduct
	if top == "" {
		top = "-"
	}

	fmt.Printf("Total pendapatan : Rp %s\n", summary.TotalRevenue.StringFixed(0))
	fmt.Printf("Jumlah transaksi : %d\n", summary.Count)
	fmt.Printf("Rata-rata        : Rp %s\n", summary.AverageTicket.StringFixed(0))
	fmt.Printf("Produk terlaris  : %s\n", top)

	transactions := root.Ledger.Transactions()

	fmt.Println("\nPendapatan per bulan")
	fmt.Print(charts.RenderMonthly(charts.MonthlyRevenue(transactions)))

	fmt.Println("\nProduk terlaris")
	fmt.Print(charts.RenderTop(charts.TopProducts(transactions, topN)))
}
