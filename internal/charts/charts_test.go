package charts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fajarubianto5/app-penjualan/internal/models"
)

func tx(id int64, date, product string, qty, price int64) models.Transaction {
	return models.NewTransaction(id, date, product, decimal.NewFromInt(qty), decimal.NewFromInt(price))
}

func TestMonthlyRevenue(t *testing.T) {
	transactions := []models.Transaction{
		tx(3, "2024-06-01", "Es Jeruk", 5, 8000),
		tx(2, "2024-05-18", "Teh Manis", 2, 10000),
		tx(1, "2024-05-17", "Kopi Hitam", 3, 15000),
	}

	series := MonthlyRevenue(transactions)
	require.Len(t, series, 2)

	assert.Equal(t, "2024-05", series[0].Month)
	assert.True(t, series[0].Revenue.Equal(decimal.NewFromInt(65000)), "got %s", series[0].Revenue)
	assert.Equal(t, "2024-06", series[1].Month)
	assert.True(t, series[1].Revenue.Equal(decimal.NewFromInt(40000)))
}

func TestMonthlyRevenueEmpty(t *testing.T) {
	assert.Empty(t, MonthlyRevenue(nil))
}

func TestTopProducts(t *testing.T) {
	transactions := []models.Transaction{
		tx(4, "2024-05-20", "Kopi Hitam", 1, 15000),
		tx(3, "2024-05-18", "Es Jeruk", 5, 8000),
		tx(2, "2024-05-17", "Teh Manis", 2, 10000),
		tx(1, "2024-05-10", "Kopi Hitam", 3, 15000),
	}

	series := TopProducts(transactions, DefaultTopN)
	require.Len(t, series, 3)

	assert.Equal(t, "Es Jeruk", series[0].Product)
	assert.True(t, series[0].Qty.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "Kopi Hitam", series[1].Product, "quantities sum across rows")
	assert.True(t, series[1].Qty.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, "Teh Manis", series[2].Product)
}

func TestTopProductsTruncatesToN(t *testing.T) {
	transactions := []models.Transaction{
		tx(3, "2024-05-19", "Roti Bakar", 4, 12000),
		tx(2, "2024-05-18", "Teh Manis", 2, 10000),
		tx(1, "2024-05-17", "Kopi Hitam", 3, 15000),
	}

	series := TopProducts(transactions, 2)
	require.Len(t, series, 2)
	assert.Equal(t, "Roti Bakar", series[0].Product)
	assert.Equal(t, "Kopi Hitam", series[1].Product)
}

func TestTopProductsTiesKeepFirstSeenOrder(t *testing.T) {
	transactions := []models.Transaction{
		tx(2, "2024-05-18", "Teh Manis", 3, 10000),
		tx(1, "2024-05-17", "Kopi Hitam", 3, 15000),
	}

	series := TopProducts(transactions, DefaultTopN)
	require.Len(t, series, 2)
	assert.Equal(t, "Teh Manis", series[0].Product, "equal quantities rank in first-seen order")
	assert.Equal(t, "Kopi Hitam", series[1].Product)
}
