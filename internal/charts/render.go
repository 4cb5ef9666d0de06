package charts

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// barWidth is the width of the widest bar in text charts
const barWidth = 32

// RenderMonthly renders the monthly revenue series as a text bar chart. An
// empty series renders a single placeholder line.
func RenderMonthly(series []MonthPoint) string {
	if len(series) == 0 {
		return "Tidak ada data\n"
	}

	max := decimal.Zero
	for _, p := range series {
		if p.Revenue.GreaterThan(max) {
			max = p.Revenue
		}
	}

	var b strings.Builder
	for _, p := range series {
		fmt.Fprintf(&b, "%-8s %-*s Rp %s\n", p.Month, barWidth, bar(p.Revenue, max), p.Revenue.StringFixed(0))
	}
	return b.String()
}

// RenderTop renders the top-products series as a text bar chart
func RenderTop(series []ProductQty) string {
	if len(series) == 0 {
		return "Tidak ada data\n"
	}

	max := decimal.Zero
	width := 0
	for _, p := range series {
		if p.Qty.GreaterThan(max) {
			max = p.Qty
		}
		if len(p.Product) > width {
			width = len(p.Product)
		}
	}

	var b strings.Builder
	for _, p := range series {
		fmt.Fprintf(&b, "%-*s %-*s %s\n", width, p.Product, barWidth, bar(p.Qty, max), p.Qty.String())
	}
	return b.String()
}

func bar(value, max decimal.Decimal) string {
	if !max.IsPositive() {
		return ""
	}
	n := value.Mul(decimal.NewFromInt(barWidth)).Div(max).IntPart()
	if n < 1 && value.IsPositive() {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", int(n))
}
