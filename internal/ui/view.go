package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/fajarubianto5/app-penjualan/internal/charts"
	"github.com/fajarubianto5/app-penjualan/internal/tableview"
)

// View renders the whole screen for the active view plus toasts and, when
// pending, the confirmation modal.
func (m Model) View() string {
	var sections []string
	sections = append(sections, m.renderHeader())

	switch m.view {
	case viewOverview:
		sections = append(sections, m.renderOverview())
	case viewHistory:
		sections = append(sections, m.renderHistory())
	case viewInput:
		sections = append(sections, m.renderInput())
	case viewProducts:
		sections = append(sections, m.renderProducts())
	}

	if m.mode == modeConfirm && m.confirm != nil {
		sections = append(sections, m.theme.Modal.Render(m.confirm.question+"  (y/n)"))
	}
	if m.mode == modeProductAdd {
		sections = append(sections, m.theme.FieldActive.Render("Produk baru: "+m.searchInput+"▌"))
	}
	if m.mode == modeSearch {
		sections = append(sections, m.theme.FieldActive.Render("Cari: "+m.searchInput+"▌"))
	}
	if m.mode == modeMonth {
		sections = append(sections, m.theme.FieldActive.Render("Bulan (YYYY-MM): "+m.monthInput+"▌"))
	}

	for _, t := range m.toasts {
		style := m.theme.ToastInfo
		switch t.kind {
		case "success":
			style = m.theme.ToastSuccess
		case "error":
			style = m.theme.ToastError
		}
		sections = append(sections, style.Render("• "+t.text))
	}

	sections = append(sections, m.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) renderHeader() string {
	tabs := make([]string, 0, len(viewNames))
	for i, name := range viewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if view(i) == m.view {
			tabs = append(tabs, m.theme.NavActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.NavInactive.Render(label))
		}
	}
	title := m.theme.Title.Render("App Penjualan")
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", strings.Join(tabs, " "))
}

func (m Model) renderOverview() string {
	summary := m.ledger.Summary()
	top := summary.TopProduct
	if top == "" {
		top = "-"
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard("Total Pendapatan", formatRp(summary.TotalRevenue)),
		m.statCard("Transaksi", fmt.Sprintf("%d", summary.Count)),
		m.statCard("Rata-rata", formatRp(summary.AverageTicket)),
		m.statCard("Produk Terlaris", top),
	)

	transactions := m.ledger.Transactions()
	monthly := m.theme.TableHeader.Render("Pendapatan per Bulan") + "\n" +
		charts.RenderMonthly(charts.MonthlyRevenue(transactions))
	topChart := m.theme.TableHeader.Render("Produk Terlaris") + "\n" +
		charts.RenderTop(charts.TopProducts(transactions, charts.DefaultTopN))

	return lipgloss.JoinVertical(lipgloss.Left, cards, "", monthly, topChart)
}

func (m Model) statCard(label, value string) string {
	return m.theme.StatCard.Render(
		m.theme.StatLabel.Render(label) + "\n" + m.theme.StatValue.Render(value),
	)
}

func (m Model) renderHistory() string {
	page := tableview.Apply(m.ledger.Transactions(), &m.state)

	var b strings.Builder
	b.WriteString(m.renderFilterLine())
	b.WriteString("\n")

	header := fmt.Sprintf("%-12s %-20s %8s %12s %14s",
		m.sortLabel("TANGGAL", tableview.SortByDate),
		m.sortLabel("PRODUK", tableview.SortByProduct),
		m.sortLabel("QTY", tableview.SortByQty),
		"HARGA",
		m.sortLabel("TOTAL", tableview.SortByTotal),
	)
	b.WriteString(m.theme.TableHeader.Render(header))
	b.WriteString("\n")

	if page.Empty() {
		b.WriteString(m.theme.Placeholder.Render("Tidak ada data"))
		b.WriteString("\n")
	}
	for i, r := range page.Rows {
		line := fmt.Sprintf("%-12s %-20s %8s %12s %14s",
			r.Date, truncate(r.Product, 20), r.Qty.String(), formatRp(r.Price), formatRp(r.Total))
		if i == m.cursor {
			b.WriteString(m.theme.RowSelected.Render(line))
		} else {
			b.WriteString(m.theme.Row.Render(line))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%s", m.theme.Help.Render(
		fmt.Sprintf("Halaman %d / %d • %d transaksi • %d baris/halaman",
			page.Number, page.TotalPages, page.TotalRows, m.state.RowsPerPage)))
	return b.String()
}

func (m Model) renderFilterLine() string {
	var parts []string
	if m.state.Filter.Product != "" {
		parts = append(parts, "produk="+m.state.Filter.Product)
	}
	if m.state.Filter.Month != "" {
		parts = append(parts, "bulan="+m.state.Filter.Month)
	}
	if m.state.Filter.Search != "" {
		parts = append(parts, "cari="+m.state.Filter.Search)
	}
	if len(parts) == 0 {
		return m.theme.Help.Render("Filter: semua")
	}
	return m.theme.Help.Render("Filter: " + strings.Join(parts, " • "))
}

func (m Model) sortLabel(label string, key tableview.SortKey) string {
	if m.state.Sort.Key != key {
		return label
	}
	if m.state.Sort.Dir == tableview.Asc {
		return label + "↑"
	}
	return label + "↓"
}

func (m Model) renderInput() string {
	var b strings.Builder
	b.WriteString(m.theme.TableHeader.Render("Input Transaksi"))
	b.WriteString("\n\n")
	for i, label := range fieldLabels {
		value := m.form.fields[i]
		if i == m.form.focused {
			b.WriteString(m.theme.FieldActive.Render(fmt.Sprintf("> %-22s %s▌", label+":", value)))
		} else {
			b.WriteString(m.theme.FieldLabel.Render(fmt.Sprintf("  %-22s %s", label+":", value)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("tab: pindah kolom • enter: simpan • esc: bersihkan"))
	return b.String()
}

func (m Model) renderProducts() string {
	products := m.ledger.Products()

	var b strings.Builder
	b.WriteString(m.theme.TableHeader.Render(fmt.Sprintf("Produk (%d)", len(products))))
	b.WriteString("\n")
	if len(products) == 0 {
		b.WriteString(m.theme.Placeholder.Render("Belum ada produk"))
		b.WriteString("\n")
	}
	for i, p := range products {
		if i == m.productCursor {
			b.WriteString(m.theme.RowSelected.Render("> " + p))
		} else {
			b.WriteString(m.theme.Row.Render("  " + p))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderHelp() string {
	switch m.view {
	case viewHistory:
		return m.theme.Help.Render("h/l: halaman • j/k: pilih • d/p/y/t: urutkan • f: filter produk • m: bulan • /: cari • r: baris • c: reset • x: hapus • T: tema • e: csv • b: backup • q: keluar")
	case viewProducts:
		return m.theme.Help.Render("j/k: pilih • a: tambah • x: hapus • T: tema • q: keluar")
	case viewInput:
		return m.theme.Help.Render("enter: simpan • esc: bersihkan")
	default:
		return m.theme.Help.Render("1-4: navigasi • i: input cepat • T: tema • e: csv • b: backup • q: keluar")
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

// formatRp renders an amount the way the upstream UI does: Rp prefix and
// thousand separators.
func formatRp(v decimal.Decimal) string {
	s := v.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := "Rp " + strings.Join(parts, ".")
	if neg {
		out = "Rp -" + strings.Join(parts, ".")
	}
	return out
}
