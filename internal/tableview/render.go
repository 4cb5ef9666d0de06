package tableview

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// RenderText renders a page as a plain text table for the list command. An
// empty page renders the placeholder row instead of a bare header.
func RenderText(page Page) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTANGGAL\tPRODUK\tQTY\tHARGA\tTOTAL")
	if page.Empty() {
		fmt.Fprintln(w, "-\t-\tTidak ada data\t-\t-\t-")
	}
	for _, r := range page.Rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\tRp %s\tRp %s\n",
			r.ID, r.Date, r.Product, r.Qty.String(), r.Price.StringFixed(0), r.Total.StringFixed(0))
	}
	w.Flush()

	fmt.Fprintf(&b, "\nHalaman %d / %d (%d transaksi)\n", page.Number, page.TotalPages, page.TotalRows)
	return b.String()
}
