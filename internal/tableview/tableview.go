// Package tableview implements the history table pipeline: one filter
// predicate, a keyed sort and page clamping, applied in that fixed order on
// every render.
package tableview

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fajarubianto5/app-penjualan/internal/models"
)

// SortKey selects the column the table is ordered by
type SortKey string

const (
	SortByDate    SortKey = "date"
	SortByProduct SortKey = "product"
	SortByQty     SortKey = "qty"
	SortByTotal   SortKey = "total"
)

// SortDir is the sort direction
type SortDir string

const (
	Asc  SortDir = "asc"
	Desc SortDir = "desc"
)

// Sort combines a key with a direction
type Sort struct {
	Key SortKey
	Dir SortDir
}

// Toggle flips the direction when key is already active, otherwise switches
// to the new key descending. Mirrors clicking a column header.
func (s *Sort) Toggle(key SortKey) {
	if s.Key == key {
		if s.Dir == Asc {
			s.Dir = Desc
		} else {
			s.Dir = Asc
		}
		return
	}
	s.Key = key
	s.Dir = Desc
}

// Filter is the single predicate the pipeline applies. Product and Month are
// the structured filters; Search is the free-text filter matching a product
// substring (case-insensitive) or a date substring. All set fields must
// match.
type Filter struct {
	Product string
	Month   string
	Search  string
}

// Match reports whether a transaction passes the filter
func (f Filter) Match(t models.Transaction) bool {
	if f.Product != "" && t.Product != f.Product {
		return false
	}
	if f.Month != "" && !strings.HasPrefix(t.Date, f.Month) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(strings.TrimSpace(f.Search))
		if !strings.Contains(strings.ToLower(t.Product), q) && !strings.Contains(t.Date, q) {
			return false
		}
	}
	return true
}

// IsZero reports whether no filter field is set
func (f Filter) IsZero() bool {
	return f.Product == "" && f.Month == "" && f.Search == ""
}

// State is the ephemeral view state of the history table. It is owned by the
// rendering layer and mutated only by user events; nothing here is persisted.
type State struct {
	Page        int
	RowsPerPage int
	Sort        Sort
	Filter      Filter
}

// NewState returns the default view state: first page, ten rows, newest first
func NewState() State {
	return State{
		Page:        1,
		RowsPerPage: 10,
		Sort:        Sort{Key: SortByDate, Dir: Desc},
	}
}

// Page is one rendered slice of the filtered, sorted transaction list
type Page struct {
	Rows       []models.Transaction
	Number     int
	TotalPages int
	TotalRows  int
}

// Empty reports whether the page has no rows to show
func (p Page) Empty() bool {
	return len(p.Rows) == 0
}

// product names collate locale-aware, like the upstream localeCompare
var collator = collate.New(language.Und)

// Apply runs the pipeline: filter, then a stable sort (equal keys keep their
// most-recent-first insertion order), then pagination with the page clamped
// into [1, totalPages]. The clamp writes back into state so the view stays
// consistent after deletes and filter changes.
func Apply(transactions []models.Transaction, state *State) Page {
	rows := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if state.Filter.Match(t) {
			rows = append(rows, t)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return compare(rows[i], rows[j], state.Sort.Key)*direction(state.Sort.Dir) < 0
	})

	rowsPerPage := state.RowsPerPage
	if rowsPerPage < 1 {
		rowsPerPage = 10
	}
	totalPages := int(math.Max(1, math.Ceil(float64(len(rows))/float64(rowsPerPage))))
	if state.Page > totalPages {
		state.Page = totalPages
	}
	if state.Page < 1 {
		state.Page = 1
	}

	start := (state.Page - 1) * rowsPerPage
	end := start + rowsPerPage
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	return Page{
		Rows:       rows[start:end],
		Number:     state.Page,
		TotalPages: totalPages,
		TotalRows:  len(rows),
	}
}

func compare(a, b models.Transaction, key SortKey) int {
	switch key {
	case SortByProduct:
		return collator.CompareString(a.Product, b.Product)
	case SortByQty:
		return a.Qty.Cmp(b.Qty)
	case SortByTotal:
		return a.Total.Cmp(b.Total)
	default:
		// ISO dates compare correctly as plain strings
		return strings.Compare(a.Date, b.Date)
	}
}

func direction(dir SortDir) int {
	if dir == Asc {
		return 1
	}
	return -1
}
