package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fajarubianto5/app-penjualan/internal/apperror"
)

func TestNewTransactionComputesTotal(t *testing.T) {
	tr := NewTransaction(1, "2024-05-17", "Kopi Hitam", decimal.NewFromInt(3), decimal.NewFromInt(15000))

	assert.Equal(t, int64(1), tr.ID)
	assert.True(t, tr.Total.Equal(decimal.NewFromInt(45000)), "total should be qty*price, got %s", tr.Total)
}

func TestValidateTransactionInput(t *testing.T) {
	valid := func(date, product string, qty, price int64) error {
		return ValidateTransactionInput(date, product, decimal.NewFromInt(qty), decimal.NewFromInt(price))
	}

	assert.NoError(t, valid("2024-05-17", "Kopi Hitam", 3, 15000))

	tests := []struct {
		name string
		err  error
	}{
		{"empty product", valid("2024-05-17", "", 3, 15000)},
		{"zero qty", valid("2024-05-17", "Kopi Hitam", 0, 15000)},
		{"negative qty", valid("2024-05-17", "Kopi Hitam", -1, 15000)},
		{"zero price", valid("2024-05-17", "Kopi Hitam", 3, 0)},
		{"negative price", valid("2024-05-17", "Kopi Hitam", 3, -5)},
		{"bad date", valid("17.05.2024", "Kopi Hitam", 3, 15000)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var invalid *apperror.ValidationError
			assert.True(t, errors.As(tc.err, &invalid), "expected ValidationError, got %v", tc.err)
		})
	}
}

func TestValidateProductName(t *testing.T) {
	assert.NoError(t, ValidateProductName("Teh Manis"))

	err := ValidateProductName("")
	var invalid *apperror.ValidationError
	assert.True(t, errors.As(err, &invalid))
}
