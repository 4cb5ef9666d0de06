package ui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fajarubianto5/app-penjualan/internal/apperror"
	"github.com/fajarubianto5/app-penjualan/internal/dateutils"
	"github.com/fajarubianto5/app-penjualan/internal/export"
	"github.com/fajarubianto5/app-penjualan/internal/tableview"
)

// rowsPerPageSteps are the choices the rows-per-page key cycles through
var rowsPerPageSteps = []int{5, 10, 20, 50}

// Update routes messages. Text-entry modes capture all keys; the confirm
// modal captures y/n; everything else is normal-mode key handling.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.pruneToasts(time.Time(msg))
		return m, tick()

	case tea.KeyMsg:
		switch m.mode {
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeSearch:
			m.editText(msg, &m.searchInput, func() {
				m.state.Filter.Search = m.searchInput
				m.state.Page = 1
			})
			return m, nil
		case modeMonth:
			m.editText(msg, &m.monthInput, func() {
				if m.monthInput == "" || dateutils.IsMonthKey(m.monthInput) {
					m.state.Filter.Month = m.monthInput
					m.state.Page = 1
				}
			})
			return m, nil
		case modeProductAdd:
			m.editProductAdd(msg)
			return m, nil
		}
		if m.view == viewInput {
			return m.updateForm(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		text, err := m.confirm.run()
		if err != nil {
			var notFound *apperror.NotFoundError
			if errors.As(err, &notFound) {
				m.notify("Data tidak ditemukan", "info")
			} else {
				m.notify(err.Error(), "error")
			}
		} else {
			m.notify(text, "success")
		}
		m.confirm = nil
		m.mode = modeNormal
	case "n", "N", "esc":
		m.confirm = nil
		m.mode = modeNormal
	}
	return m, nil
}

// editText is the shared editing loop for one-line inputs. apply runs on
// every change so filtering is live, like the upstream search box.
func (m *Model) editText(msg tea.KeyMsg, value *string, apply func()) {
	switch msg.Type {
	case tea.KeyEsc:
		*value = ""
		apply()
		m.mode = modeNormal
	case tea.KeyEnter:
		m.mode = modeNormal
	case tea.KeyBackspace:
		if *value != "" {
			*value = (*value)[:len(*value)-1]
		}
		apply()
	case tea.KeyRunes, tea.KeySpace:
		*value += string(msg.Runes)
		apply()
	}
}

func (m *Model) editProductAdd(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchInput = ""
		m.mode = modeNormal
	case tea.KeyEnter:
		if err := m.ledger.AddProduct(m.searchInput); err != nil {
			var dup *apperror.DuplicateError
			if errors.As(err, &dup) {
				m.notify("Produk sudah ada", "error")
			} else {
				m.notify("Masukkan nama produk", "error")
			}
		} else {
			m.notify("Produk ditambahkan", "success")
			m.searchInput = ""
			m.mode = modeNormal
		}
	case tea.KeyBackspace:
		if m.searchInput != "" {
			m.searchInput = m.searchInput[:len(m.searchInput)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		m.searchInput += string(msg.Runes)
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.form.reset()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.form.next()
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.form.prev()
		return m, nil
	case tea.KeyBackspace:
		m.form.backspace()
		return m, nil
	case tea.KeyEnter:
		if _, err := m.form.submit(m.ledger); err != nil {
			var invalid *apperror.ValidationError
			if errors.As(err, &invalid) {
				// Form keeps its values for correction.
				m.notify("Lengkapi data dengan benar", "error")
			} else {
				m.notify(err.Error(), "error")
			}
			return m, nil
		}
		m.form.reset()
		m.notify("Transaksi disimpan", "success")
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		for _, r := range msg.Runes {
			m.form.typeRune(r)
		}
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1":
		m.view = viewOverview
	case "2":
		m.view = viewHistory
	case "3":
		m.view = viewInput
	case "4":
		m.view = viewProducts
	case "i":
		// quick add
		m.view = viewInput

	case "T":
		return m.toggleTheme()

	case "e":
		return m.exportCSV()
	case "b":
		return m.backup()

	case "/":
		m.mode = modeSearch
	}

	switch m.view {
	case viewHistory:
		return m.updateHistory(msg)
	case viewProducts:
		return m.updateProducts(msg)
	}
	return m, nil
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := tableview.Apply(m.ledger.Transactions(), &m.state)

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(page.Rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "h", "left":
		if m.state.Page > 1 {
			m.state.Page--
		}
		m.cursor = 0
	case "l", "right":
		// clamped on next render
		m.state.Page++
		m.cursor = 0

	case "d":
		m.state.Sort.Toggle(tableview.SortByDate)
	case "p":
		m.state.Sort.Toggle(tableview.SortByProduct)
	case "y":
		m.state.Sort.Toggle(tableview.SortByQty)
	case "t":
		m.state.Sort.Toggle(tableview.SortByTotal)

	case "f":
		m.cycleProductFilter()
	case "m":
		m.mode = modeMonth
	case "r":
		m.cycleRowsPerPage()
	case "c":
		m.state.Filter = tableview.Filter{}
		m.searchInput = ""
		m.monthInput = ""
		m.state.Page = 1

	case "x", "delete":
		if m.cursor < len(page.Rows) {
			row := page.Rows[m.cursor]
			m.mode = modeConfirm
			m.confirm = &confirmPrompt{
				question: "Hapus data ini?",
				run: func() (string, error) {
					_, err := m.ledger.DeleteTransaction(row.ID, nil)
					return "Data dihapus", err
				},
			}
		}
	}
	return m, nil
}

func (m Model) updateProducts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	products := m.ledger.Products()

	switch msg.String() {
	case "j", "down":
		if m.productCursor < len(products)-1 {
			m.productCursor++
		}
	case "k", "up":
		if m.productCursor > 0 {
			m.productCursor--
		}
	case "a":
		m.searchInput = ""
		m.mode = modeProductAdd
	case "x", "delete":
		if m.productCursor < len(products) {
			name := products[m.productCursor]
			m.mode = modeConfirm
			m.confirm = &confirmPrompt{
				question: "Hapus produk?",
				run: func() (string, error) {
					_, err := m.ledger.RemoveProduct(name, nil)
					return "Produk dihapus", err
				},
			}
			if m.productCursor > 0 {
				m.productCursor--
			}
		}
	}
	return m, nil
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.theme.Name == "dark" {
		m.theme = LightTheme()
	} else {
		m.theme = DarkTheme()
	}
	if err := m.store.SaveTheme(m.theme.Name); err != nil {
		m.notify(err.Error(), "error")
	}
	return m, nil
}

func (m Model) exportCSV() (tea.Model, tea.Cmd) {
	opts := export.DefaultOptions()
	if m.cfg != nil && len(m.cfg.CSV.Delimiter) > 0 {
		opts.Delimiter = []rune(m.cfg.CSV.Delimiter)[0]
		opts.QuoteAll = m.cfg.CSV.QuoteAll
	}
	name := export.CSVFileName(time.Now())
	err := export.WriteCSVFile(name, m.ledger.Transactions(), opts)
	if errors.Is(err, export.ErrNoData) {
		m.notify("Tidak ada data untuk diexport", "error")
	} else if err != nil {
		m.notify(err.Error(), "error")
	} else {
		m.notify(fmt.Sprintf("CSV disimpan: %s", name), "success")
	}
	return m, nil
}

func (m Model) backup() (tea.Model, tea.Cmd) {
	name := export.BackupFileName(time.Now())
	if err := export.WriteBackupFile(name, m.ledger.Transactions(), m.ledger.Products()); err != nil {
		m.notify(err.Error(), "error")
	} else {
		m.notify(fmt.Sprintf("Backup dibuat: %s", name), "success")
	}
	return m, nil
}

func (m *Model) cycleProductFilter() {
	products := m.ledger.Products()
	if len(products) == 0 {
		return
	}

	current := -1
	for i, p := range products {
		if p == m.state.Filter.Product {
			current = i
			break
		}
	}

	// empty -> first product -> ... -> last product -> empty
	if current == len(products)-1 {
		m.state.Filter.Product = ""
	} else {
		m.state.Filter.Product = products[current+1]
	}
	m.state.Page = 1
}

func (m *Model) cycleRowsPerPage() {
	for i, n := range rowsPerPageSteps {
		if n == m.state.RowsPerPage {
			m.state.RowsPerPage = rowsPerPageSteps[(i+1)%len(rowsPerPageSteps)]
			m.state.Page = 1
			return
		}
	}
	m.state.RowsPerPage = rowsPerPageSteps[0]
	m.state.Page = 1
}
