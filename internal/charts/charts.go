// Package charts derives the chart series from the transaction list. Both
// series are recomputed from the full list on every render; there is no
// incremental update.
package charts

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fajarubianto5/app-penjualan/internal/dateutils"
	"github.com/fajarubianto5/app-penjualan/internal/models"
)

// DefaultTopN is the number of products shown in the top-products chart
const DefaultTopN = 6

// MonthPoint is one month of the revenue series
type MonthPoint struct {
	Month   string
	Revenue decimal.Decimal
}

// ProductQty is one bar of the top-products series
type ProductQty struct {
	Product string
	Qty     decimal.Decimal
}

// MonthlyRevenue groups transactions by their YYYY-MM prefix and sums totals,
// returning the series sorted by month ascending.
func MonthlyRevenue(transactions []models.Transaction) []MonthPoint {
	byMonth := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		key := dateutils.MonthKey(t.Date)
		byMonth[key] = byMonth[key].Add(t.Total)
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	series := make([]MonthPoint, 0, len(months))
	for _, m := range months {
		series = append(series, MonthPoint{Month: m, Revenue: byMonth[m]})
	}
	return series
}

// TopProducts sums quantities per product and returns the n largest, sorted
// descending. Ties keep first-encountered order, so the ranking is
// deterministic for equal quantities.
func TopProducts(transactions []models.Transaction, n int) []ProductQty {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, t := range transactions {
		if _, seen := totals[t.Product]; !seen {
			order = append(order, t.Product)
		}
		totals[t.Product] = totals[t.Product].Add(t.Qty)
	}

	series := make([]ProductQty, 0, len(order))
	for _, p := range order {
		series = append(series, ProductQty{Product: p, Qty: totals[p]})
	}
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Qty.GreaterThan(series[j].Qty)
	})

	if n > 0 && len(series) > n {
		series = series[:n]
	}
	return series
}
