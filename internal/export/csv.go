// Package export writes the outbound files: the CSV recap and the JSON
// backup. Export only; no import or restore path exists.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"github.com/fajarubianto5/app-penjualan/internal/config"
	"github.com/fajarubianto5/app-penjualan/internal/dateutils"
	"github.com/fajarubianto5/app-penjualan/internal/models"
)

var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ErrNoData is returned when there is nothing to export. Callers surface it
// as a notice instead of producing an empty file.
var ErrNoData = errors.New("no transactions to export")

// Header is the fixed CSV column order
var Header = []string{"id", "date", "product", "qty", "price", "total"}

// Options controls the CSV writer
type Options struct {
	Delimiter rune
	// QuoteAll double-quotes every field (embedded quotes doubled), matching
	// the upstream export byte for byte. When false the writer emits RFC4180
	// minimal quoting via gocsv.
	QuoteAll bool
}

// DefaultOptions mirrors the upstream export format
func DefaultOptions() Options {
	return Options{Delimiter: ',', QuoteAll: true}
}

// WriteCSV writes the transaction list as CSV. An empty list yields ErrNoData
// and no output.
func WriteCSV(w io.Writer, transactions []models.Transaction, opts Options) error {
	if len(transactions) == 0 {
		return ErrNoData
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	if opts.QuoteAll {
		return writeQuoteAll(w, transactions, opts.Delimiter)
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = opts.Delimiter
	if err := gocsv.MarshalCSV(&transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// writeQuoteAll emits every field double-quoted with embedded quotes doubled
func writeQuoteAll(w io.Writer, transactions []models.Transaction, delimiter rune) error {
	lines := make([]string, 0, len(transactions)+1)
	lines = append(lines, joinQuoted(Header, delimiter))
	for _, t := range transactions {
		lines = append(lines, joinQuoted([]string{
			fmt.Sprintf("%d", t.ID),
			t.Date,
			t.Product,
			t.Qty.String(),
			t.Price.String(),
			t.Total.String(),
		}, delimiter))
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

func joinQuoted(fields []string, delimiter rune) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, string(delimiter))
}

// WriteCSVFile writes the CSV export to path, creating parent directories
func WriteCSVFile(path string, transactions []models.Transaction, opts Options) error {
	if len(transactions) == 0 {
		return ErrNoData
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteCSV(file, transactions, opts); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"file": path, "count": len(transactions)}).Info("Wrote CSV export")
	return nil
}

// CSVFileName returns the export filename for a given day, e.g.
// rekap-2024-05-17.csv
func CSVFileName(now time.Time) string {
	return fmt.Sprintf("rekap-%s.csv", dateutils.ToISODate(now))
}
