package ui

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRp(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{15000, "Rp 15.000"},
		{1234567, "Rp 1.234.567"},
		{-15000, "Rp -15.000"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, formatRp(decimal.NewFromInt(tc.in)))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Kopi", truncate("Kopi", 20))
	assert.Equal(t, "Kopi Hita…", truncate("Kopi Hitam Spesial", 10))
	assert.Equal(t, "K", truncate("Kopi", 1))
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "light", ThemeByName("light").Name)
	assert.Equal(t, "dark", ThemeByName("dark").Name)
	assert.Equal(t, "dark", ThemeByName("solarized").Name, "unknown names fall back to dark")
}
