// Package report renders the aggregate snapshot in the supported output
// formats.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/fajarubianto5/app-penjualan/internal/config"
	"github.com/fajarubianto5/app-penjualan/internal/models"
)

// Generator produces sales reports from a Summary
type Generator struct {
	logger *logrus.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = config.Logger
	}
	return &Generator{logger: logger}
}

// Generate renders the summary in the given format (text, json or yaml) and
// returns the report as a byte slice.
func (g *Generator) Generate(summary models.Summary, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "text":
		return g.generateText(summary), nil
	case "json":
		return g.generateJSON(summary)
	case "yaml":
		return g.generateYAML(summary)
	default:
		return nil, fmt.Errorf("unsupported report format: %s (must be 'text', 'json' or 'yaml')", format)
	}
}

func (g *Generator) generateText(summary models.Summary) []byte {
	var b strings.Builder
	b.WriteString("Laporan Penjualan\n")
	b.WriteString("=================\n")
	fmt.Fprintf(&b, "Total pendapatan : Rp %s\n", summary.TotalRevenue.StringFixed(0))
	fmt.Fprintf(&b, "Jumlah transaksi : %d\n", summary.Count)
	fmt.Fprintf(&b, "Rata-rata        : Rp %s\n", summary.AverageTicket.StringFixed(0))
	top := summary.TopProduct
	if top == "" {
		top = "-"
	}
	fmt.Fprintf(&b, "Produk terlaris  : %s\n", top)
	return []byte(b.String())
}

func (g *Generator) generateJSON(summary models.Summary) ([]byte, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		g.logger.Errorf("Failed to marshal JSON report: %v", err)
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *Generator) generateYAML(summary models.Summary) ([]byte, error) {
	data, err := yaml.Marshal(summary)
	if err != nil {
		g.logger.Errorf("Failed to marshal YAML report: %v", err)
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return data, nil
}
