// Package list renders the transaction history table
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fajarubianto5/app-penjualan/cmd/root"
	"github.com/fajarubianto5/app-penjualan/internal/dateutils"
	"github.com/fajarubianto5/app-penjualan/internal/tableview"
)

var (
	product string
	month   string
	search  string
	sortKey string
	sortDir string
	page    int
	rows    int
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "Show the transaction history",
	Long:  `Show the transaction history as a table. Filters, sorting and pagination compose in that order.`,
	Run:   listFunc,
}

func init() {
	Cmd.Flags().StringVarP(&product, "product", "p", "", "Filter by exact product name")
	Cmd.Flags().StringVarP(&month, "month", "m", "", "Filter by month (YYYY-MM)")
	Cmd.Flags().StringVarP(&search, "search", "s", "", "Free-text search (product or date substring)")
	Cmd.Flags().StringVar(&sortKey, "sort", "date", "Sort key: date, product, qty or total")
	Cmd.Flags().StringVar(&sortDir, "dir", "desc", "Sort direction: asc or desc")
	Cmd.Flags().IntVar(&page, "page", 1, "Page number")
	Cmd.Flags().IntVarP(&rows, "rows", "r", 0, "Rows per page (default from config)")
}

func listFunc(cmd *cobra.Command, args []string) {
	if month != "" && !dateutils.IsMonthKey(month) {
		root.Log.Fatalf("Invalid month filter: %s (must be YYYY-MM)", month)
	}

	key, err := parseSortKey(sortKey)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	dir := tableview.Desc
	if sortDir == "asc" {
		dir = tableview.Asc
	}

	state := tableview.NewState()
	state.Page = page
	state.Sort = tableview.Sort{Key: key, Dir: dir}
	state.Filter = tableview.Filter{Product: product, Month: month, Search: search}
	if rows > 0 {
		state.RowsPerPage = rows
	} else if root.Cfg != nil && root.Cfg.UI.RowsPerPage > 0 {
		state.RowsPerPage = root.Cfg.UI.RowsPerPage
	}

	result := tableview.Apply(root.Ledger.Transactions(), &state)
	fmt.Print(tableview.RenderText(result))
}

func parseSortKey(s string) (tableview.SortKey, error) {
	switch tableview.SortKey(s) {
	case tableview.SortByDate, tableview.SortByProduct, tableview.SortByQty, tableview.SortByTotal:
		return tableview.SortKey(s), nil
	default:
		return "", fmt.Errorf("invalid sort key: %s (must be date, product, qty or total)", s)
	}
}
