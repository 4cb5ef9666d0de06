// Package store persists the ledger collections as JSON documents, one file
// per key, under the application data directory.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/fajarubianto5/app-penjualan/internal/apperror"
	"github.com/fajarubianto5/app-penjualan/internal/config"
	"github.com/fajarubianto5/app-penjualan/internal/models"
)

// Persistence keys. Each collection lives in its own file so a decode
// failure in one never touches the others.
const (
	TransactionsKey = "transactions.json"
	ProductsKey     = "products.json"
	ThemeKey        = "theme.json"
)

var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Store reads and writes the ledger collections. Missing or malformed data
// loads as an empty collection; a load never fails towards the caller.
type Store struct {
	dir string
}

// New creates a store rooted at dir
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory backing this store
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

// load decodes the JSON document under key into v. It reports false when the
// file is absent or malformed, leaving v untouched; malformed data is logged
// and treated as absent.
func (s *Store) load(key string, v interface{}) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warnf("Failed to read %s, starting empty", key)
		}
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		decodeErr := &apperror.StorageDecodeError{Key: key, Err: err}
		log.WithError(decodeErr).Warnf("Malformed data in %s, starting empty", key)
		return false
	}
	return true
}

// save encodes v as JSON under key, creating the data directory on demand
func (s *Store) save(key string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", key, err)
	}

	if err := os.WriteFile(s.path(key), data, 0600); err != nil {
		return fmt.Errorf("error writing %s: %w", key, err)
	}

	log.WithFields(logrus.Fields{"key": key, "file": s.path(key)}).Debug("Saved collection")
	return nil
}

// LoadTransactions returns the persisted transaction list, empty when the
// file is absent or malformed.
func (s *Store) LoadTransactions() []models.Transaction {
	var transactions []models.Transaction
	if s.load(TransactionsKey, &transactions) {
		log.WithField("count", len(transactions)).Debug("Loaded transactions")
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions
}

// SaveTransactions persists the transaction list
func (s *Store) SaveTransactions(transactions []models.Transaction) error {
	return s.save(TransactionsKey, transactions)
}

// LoadProducts returns the persisted product catalog, empty when the file is
// absent or malformed.
func (s *Store) LoadProducts() []string {
	var products []string
	if s.load(ProductsKey, &products) {
		log.WithField("count", len(products)).Debug("Loaded products")
	}
	if products == nil {
		products = []string{}
	}
	return products
}

// SaveProducts persists the product catalog
func (s *Store) SaveProducts(products []string) error {
	return s.save(ProductsKey, products)
}

// LoadTheme returns the persisted theme preference, or fallback when unset
func (s *Store) LoadTheme(fallback string) string {
	var theme string
	if !s.load(ThemeKey, &theme) || theme == "" {
		return fallback
	}
	return theme
}

// SaveTheme persists the theme preference
func (s *Store) SaveTheme(theme string) error {
	return s.save(ThemeKey, theme)
}
