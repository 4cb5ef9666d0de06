package ui

import (
	"github.com/shopspring/decimal"

	"github.com/fajarubianto5/app-penjualan/internal/ledger"
	"github.com/fajarubianto5/app-penjualan/internal/models"
)

// form is the transaction entry form: product, qty, price, date. Values stay
// in place after a rejected submit so the user can correct them.
type form struct {
	fields  [4]string
	focused int
}

const (
	fieldProduct = iota
	fieldQty
	fieldPrice
	fieldDate
)

var fieldLabels = [4]string{"Produk", "Qty", "Harga", "Tanggal (YYYY-MM-DD)"}

func newForm() form {
	return form{}
}

func (f *form) next() {
	f.focused = (f.focused + 1) % len(f.fields)
}

func (f *form) prev() {
	f.focused = (f.focused + len(f.fields) - 1) % len(f.fields)
}

func (f *form) typeRune(r rune) {
	f.fields[f.focused] += string(r)
}

func (f *form) backspace() {
	v := f.fields[f.focused]
	if v != "" {
		f.fields[f.focused] = v[:len(v)-1]
	}
}

func (f *form) reset() {
	*f = newForm()
}

// submit validates through the ledger and records the transaction. Numeric
// parse failures map to the same validation notice the ledger produces.
func (f *form) submit(l *ledger.Ledger) (models.Transaction, error) {
	qty, err := decimal.NewFromString(f.fields[fieldQty])
	if err != nil {
		qty = decimal.Zero
	}
	price, err := decimal.NewFromString(f.fields[fieldPrice])
	if err != nil {
		price = decimal.Zero
	}
	return l.AddTransaction(f.fields[fieldDate], f.fields[fieldProduct], qty, price)
}
