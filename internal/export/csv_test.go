package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fajarubianto5/app-penjualan/internal/models"
)

func tx(id int64, date, product string, qty, price int64) models.Transaction {
	return models.NewTransaction(id, date, product, decimal.NewFromInt(qty), decimal.NewFromInt(price))
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, nil, DefaultOptions())

	assert.ErrorIs(t, err, ErrNoData)
	assert.Zero(t, buf.Len(), "no output on an empty export")
}

func TestWriteCSVQuoteAll(t *testing.T) {
	var buf bytes.Buffer
	transactions := []models.Transaction{
		tx(2, "2024-05-18", "Teh Manis", 2, 10000),
		tx(1, "2024-05-17", "Kopi Hitam", 3, 15000),
	}

	require.NoError(t, WriteCSV(&buf, transactions, DefaultOptions()))

	want := `"id","date","product","qty","price","total"` + "\n" +
		`"2","2024-05-18","Teh Manis","2","10000","20000"` + "\n" +
		`"1","2024-05-17","Kopi Hitam","3","15000","45000"`
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVQuoteAllEscapesQuotes(t *testing.T) {
	var buf bytes.Buffer
	transactions := []models.Transaction{
		tx(1, "2024-05-17", `Kopi "Susu"`, 1, 15000),
	}

	require.NoError(t, WriteCSV(&buf, transactions, DefaultOptions()))
	assert.Contains(t, buf.String(), `"Kopi ""Susu"""`)
}

func TestWriteCSVRFC4180(t *testing.T) {
	var buf bytes.Buffer
	transactions := []models.Transaction{
		tx(1, "2024-05-17", "Kopi Hitam", 3, 15000),
	}

	require.NoError(t, WriteCSV(&buf, transactions, Options{Delimiter: ';', QuoteAll: false}))

	out := buf.String()
	assert.Contains(t, out, "id;date;product;qty;price;total")
	assert.Contains(t, out, "1;2024-05-17;Kopi Hitam;3;15000;45000")
}

func TestWriteCSVFileEmptyWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rekap.csv")
	err := WriteCSVFile(path, nil, DefaultOptions())

	assert.ErrorIs(t, err, ErrNoData)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "empty export must not create a file")
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "rekap.csv")
	transactions := []models.Transaction{tx(1, "2024-05-17", "Kopi Hitam", 3, 15000)}

	require.NoError(t, WriteCSVFile(path, transactions, DefaultOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Kopi Hitam"`)
}

func TestCSVFileName(t *testing.T) {
	now := time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "rekap-2024-05-17.csv", CSVFileName(now))
}
