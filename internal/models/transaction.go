// Package models defines the domain types of the sales ledger.
package models

import (
	"github.com/shopspring/decimal"

	"github.com/fajarubianto5/app-penjualan/internal/apperror"
	"github.com/fajarubianto5/app-penjualan/internal/dateutils"
)

// Transaction represents one recorded sale. Total is computed once at
// creation time as Qty * Price and never recomputed; transactions are only
// created and deleted, never edited.
type Transaction struct {
	ID      int64           `json:"id" csv:"id" yaml:"id"`
	Date    string          `json:"date" csv:"date" yaml:"date"`
	Product string          `json:"product" csv:"product" yaml:"product"`
	Qty     decimal.Decimal `json:"qty" csv:"qty" yaml:"qty"`
	Price   decimal.Decimal `json:"price" csv:"price" yaml:"price"`
	Total   decimal.Decimal `json:"total" csv:"total" yaml:"total"`
}

// NewTransaction builds a transaction with its derived total. Inputs must
// already be validated.
func NewTransaction(id int64, date, product string, qty, price decimal.Decimal) Transaction {
	return Transaction{
		ID:      id,
		Date:    date,
		Product: product,
		Qty:     qty,
		Price:   price,
		Total:   qty.Mul(price),
	}
}

// ValidateTransactionInput checks the user-entered fields of a new
// transaction: non-empty product, positive quantity and price, and a valid
// ISO date.
func ValidateTransactionInput(date, product string, qty, price decimal.Decimal) error {
	if product == "" {
		return &apperror.ValidationError{Field: "product", Value: product, Reason: "product name must not be empty"}
	}
	if !qty.IsPositive() {
		return &apperror.ValidationError{Field: "qty", Value: qty.String(), Reason: "quantity must be positive"}
	}
	if !price.IsPositive() {
		return &apperror.ValidationError{Field: "price", Value: price.String(), Reason: "price must be positive"}
	}
	if !dateutils.IsISODate(date) {
		return &apperror.ValidationError{Field: "date", Value: date, Reason: "date must be YYYY-MM-DD"}
	}
	return nil
}

// ValidateProductName checks a product name before it joins the catalog.
func ValidateProductName(name string) error {
	if name == "" {
		return &apperror.ValidationError{Field: "product", Value: name, Reason: "product name must not be empty"}
	}
	return nil
}
