// Package ledger owns the application state: the transaction list and the
// product catalog. All mutations go through the Ledger so the two collections
// and their persisted form never drift apart. The Ledger is confined to a
// single goroutine (the CLI main goroutine or the UI update loop).
package ledger

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fajarubianto5/app-penjualan/internal/apperror"
	"github.com/fajarubianto5/app-penjualan/internal/charts"
	"github.com/fajarubianto5/app-penjualan/internal/config"
	"github.com/fajarubianto5/app-penjualan/internal/dateutils"
	"github.com/fajarubianto5/app-penjualan/internal/models"
	"github.com/fajarubianto5/app-penjualan/internal/store"
)

var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Ledger holds the in-memory collections and their durability boundary
type Ledger struct {
	store        *store.Store
	transactions []models.Transaction
	products     []string
	nextID       int64
}

// Open loads both collections from the store, merges product names referenced
// by transactions into the catalog, and seeds the id counter past the highest
// persisted id.
func Open(s *store.Store) *Ledger {
	l := &Ledger{
		store:        s,
		transactions: s.LoadTransactions(),
		products:     s.LoadProducts(),
		nextID:       1,
	}

	for _, t := range l.transactions {
		if t.ID >= l.nextID {
			l.nextID = t.ID + 1
		}
	}

	if l.syncCatalog() {
		if err := s.SaveProducts(l.products); err != nil {
			log.WithError(err).Warn("Failed to persist synced product catalog")
		}
	}

	log.WithFields(logrus.Fields{
		"transactions": len(l.transactions),
		"products":     len(l.products),
	}).Debug("Ledger opened")
	return l
}

// syncCatalog appends product names referenced by transactions but missing
// from the catalog. Returns true when the catalog changed.
func (l *Ledger) syncCatalog() bool {
	known := make(map[string]bool, len(l.products))
	for _, p := range l.products {
		known[p] = true
	}

	changed := false
	for _, t := range l.transactions {
		if !known[t.Product] {
			known[t.Product] = true
			l.products = append(l.products, t.Product)
			changed = true
		}
	}
	return changed
}

// Transactions returns a copy of the transaction list, most recent first
func (l *Ledger) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Products returns a copy of the product catalog in insertion order
func (l *Ledger) Products() []string {
	out := make([]string, len(l.products))
	copy(out, l.products)
	return out
}

// AddTransaction validates the input, assigns a fresh id, computes the total
// and inserts the transaction at the head of the list (most recent first).
// A product name not yet in the catalog joins it implicitly.
func (l *Ledger) AddTransaction(date, product string, qty, price decimal.Decimal) (models.Transaction, error) {
	if date == "" {
		date = dateutils.Today()
	}
	if err := models.ValidateTransactionInput(date, product, qty, price); err != nil {
		return models.Transaction{}, err
	}

	t := models.NewTransaction(l.nextID, date, product, qty, price)
	l.nextID++

	l.transactions = append([]models.Transaction{t}, l.transactions...)
	if err := l.store.SaveTransactions(l.transactions); err != nil {
		return models.Transaction{}, err
	}

	if !l.hasProduct(product) {
		l.products = append(l.products, product)
		if err := l.store.SaveProducts(l.products); err != nil {
			return models.Transaction{}, err
		}
	}

	log.WithFields(logrus.Fields{"id": t.ID, "product": t.Product, "total": t.Total}).Info("Transaction recorded")
	return t, nil
}

// DeleteTransaction removes the transaction with the given id after the
// confirmation gate approves. It reports whether a row was removed; a missing
// id is a no-op reported as NotFoundError so callers can decide whether to
// surface it.
func (l *Ledger) DeleteTransaction(id int64, confirm func() bool) (bool, error) {
	if confirm != nil && !confirm() {
		log.WithField("id", id).Debug("Delete cancelled")
		return false, nil
	}

	for i, t := range l.transactions {
		if t.ID == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			if err := l.store.SaveTransactions(l.transactions); err != nil {
				return false, err
			}
			log.WithField("id", id).Info("Transaction deleted")
			return true, nil
		}
	}

	log.WithField("id", id).Debug("Delete of unknown transaction id")
	return false, &apperror.NotFoundError{Kind: "transaction", Key: strconv.FormatInt(id, 10)}
}

// AddProduct appends a product name to the catalog. Duplicate names are
// rejected with a case-sensitive exact match.
func (l *Ledger) AddProduct(name string) error {
	if err := models.ValidateProductName(name); err != nil {
		return err
	}
	if l.hasProduct(name) {
		return &apperror.DuplicateError{Name: name}
	}

	l.products = append(l.products, name)
	if err := l.store.SaveProducts(l.products); err != nil {
		return err
	}

	log.WithField("product", name).Info("Product added")
	return nil
}

// RemoveProduct removes a product from the catalog after confirmation.
// Historical transactions referencing the name are left untouched.
func (l *Ledger) RemoveProduct(name string, confirm func() bool) (bool, error) {
	if confirm != nil && !confirm() {
		log.WithField("product", name).Debug("Product delete cancelled")
		return false, nil
	}

	for i, p := range l.products {
		if p == name {
			l.products = append(l.products[:i], l.products[i+1:]...)
			if err := l.store.SaveProducts(l.products); err != nil {
				return false, err
			}
			log.WithField("product", name).Info("Product removed")
			return true, nil
		}
	}

	log.WithField("product", name).Debug("Delete of unknown product")
	return false, &apperror.NotFoundError{Kind: "product", Key: name}
}

// Summary recomputes the aggregate snapshot from the full transaction list
func (l *Ledger) Summary() models.Summary {
	s := models.Summary{Count: len(l.transactions)}
	for _, t := range l.transactions {
		s.TotalRevenue = s.TotalRevenue.Add(t.Total)
	}
	if s.Count > 0 {
		s.AverageTicket = s.TotalRevenue.Div(decimal.NewFromInt(int64(s.Count))).Round(0)
	}
	if top := charts.TopProducts(l.transactions, 1); len(top) > 0 {
		s.TopProduct = top[0].Product
	}
	return s
}

// SeedDemo inserts the sample rows shipped with the upstream app. It only
// runs against an empty ledger; seeding is opt-in, never automatic.
func (l *Ledger) SeedDemo() error {
	if len(l.transactions) > 0 {
		return nil
	}

	seed := []struct {
		daysAgo int
		product string
		qty     int64
		price   int64
	}{
		{10, "Kopi Hitam", 3, 15000},
		{9, "Teh Manis", 2, 10000},
		{8, "Roti Bakar", 4, 12000},
		{3, "Kopi Hitam", 1, 15000},
		{1, "Es Jeruk", 5, 8000},
	}

	// Insert oldest first so the head of the list ends up the most recent row.
	for _, row := range seed {
		_, err := l.AddTransaction(
			dateutils.DaysAgo(row.daysAgo),
			row.product,
			decimal.NewFromInt(row.qty),
			decimal.NewFromInt(row.price),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *Ledger) hasProduct(name string) bool {
	for _, p := range l.products {
		if p == name {
			return true
		}
	}
	return false
}
