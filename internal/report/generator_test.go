package report

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fajarubianto5/app-penjualan/internal/models"
)

func sampleSummary() models.Summary {
	return models.Summary{
		TotalRevenue:  decimal.NewFromInt(65000),
		Count:         2,
		AverageTicket: decimal.NewFromInt(32500),
		TopProduct:    "Kopi Hitam",
	}
}

func TestGenerateText(t *testing.T) {
	g := NewGenerator(nil)

	data, err := g.Generate(sampleSummary(), "text")
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "Laporan Penjualan")
	assert.Contains(t, out, "Total pendapatan : Rp 65000")
	assert.Contains(t, out, "Jumlah transaksi : 2")
	assert.Contains(t, out, "Rata-rata        : Rp 32500")
	assert.Contains(t, out, "Produk terlaris  : Kopi Hitam")
}

func TestGenerateTextEmptySummary(t *testing.T) {
	g := NewGenerator(nil)

	data, err := g.Generate(models.Summary{}, "text")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Produk terlaris  : -")
}

func TestGenerateJSON(t *testing.T) {
	g := NewGenerator(nil)

	data, err := g.Generate(sampleSummary(), "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "65000", decoded["total"])
	assert.Equal(t, float64(2), decoded["count"])
	assert.Equal(t, "Kopi Hitam", decoded["top"])
}

func TestGenerateYAML(t *testing.T) {
	g := NewGenerator(nil)

	data, err := g.Generate(sampleSummary(), "yaml")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "Kopi Hitam", decoded["top"])
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	g := NewGenerator(nil)

	_, err := g.Generate(sampleSummary(), "xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestGenerateFormatCaseInsensitive(t *testing.T) {
	g := NewGenerator(nil)

	_, err := g.Generate(sampleSummary(), "TEXT")
	assert.NoError(t, err)
}
