// Package ui implements the interactive terminal front end: the overview,
// history, input and products views over a single ledger, with transient
// toasts and a dark/light theme persisted between sessions.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fajarubianto5/app-penjualan/internal/config"
	"github.com/fajarubianto5/app-penjualan/internal/ledger"
	"github.com/fajarubianto5/app-penjualan/internal/store"
	"github.com/fajarubianto5/app-penjualan/internal/tableview"
)

type view int

const (
	viewOverview view = iota
	viewHistory
	viewInput
	viewProducts
)

var viewNames = []string{"Ringkasan", "Riwayat", "Input", "Produk"}

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeMonth
	modeProductAdd
	modeConfirm
)

// toast is one transient notification. Each toast expires independently;
// a new toast never cancels an existing one.
type toast struct {
	text    string
	kind    string // info, success, error
	expires time.Time
}

const toastLifetime = 3 * time.Second

// confirmPrompt is the pending yes/no gate shown as a modal. The ledger
// receives the answer through its confirmation callback.
type confirmPrompt struct {
	question string
	run      func() (string, error)
}

// Model is the bubbletea model. All ledger mutations happen inside Update,
// so state stays confined to the program's single update loop.
type Model struct {
	ledger *ledger.Ledger
	store  *store.Store
	cfg    *config.Config

	view  view
	mode  mode
	state tableview.State
	theme Theme

	cursor        int // selected row on the current history page
	productCursor int // selected product in the catalog view

	searchInput string
	monthInput  string
	form        form

	confirm *confirmPrompt
	toasts  []toast

	width  int
	height int
}

// New builds the UI model over an opened ledger
func New(l *ledger.Ledger, s *store.Store, cfg *config.Config) Model {
	state := tableview.NewState()
	if cfg != nil && cfg.UI.RowsPerPage > 0 {
		state.RowsPerPage = cfg.UI.RowsPerPage
	}

	fallback := "dark"
	if cfg != nil && cfg.UI.Theme != "" {
		fallback = cfg.UI.Theme
	}

	return Model{
		ledger: l,
		store:  s,
		cfg:    cfg,
		view:   viewOverview,
		state:  state,
		theme:  ThemeByName(s.LoadTheme(fallback)),
		form:   newForm(),
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the toast expiry ticker
func (m Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) notify(text, kind string) {
	m.toasts = append(m.toasts, toast{text: text, kind: kind, expires: time.Now().Add(toastLifetime)})
}

func (m *Model) pruneToasts(now time.Time) {
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if t.expires.After(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}
