package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fajarubianto5/app-penjualan/internal/models"
)

// Backup is the single-document snapshot of both collections
type Backup struct {
	Transactions []models.Transaction `json:"transactions"`
	Products     []string             `json:"products"`
}

// WriteBackup serializes both collections as one JSON document. Unlike the
// CSV export, a backup of an empty ledger is allowed.
func WriteBackup(w io.Writer, transactions []models.Transaction, products []string) error {
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	if products == nil {
		products = []string{}
	}

	data, err := json.MarshalIndent(Backup{Transactions: transactions, Products: products}, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling backup: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("error writing backup: %w", err)
	}
	return nil
}

// WriteBackupFile writes the backup document to path
func WriteBackupFile(path string, transactions []models.Transaction, products []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating backup file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteBackup(file, transactions, products); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"file": path, "count": len(transactions)}).Info("Wrote backup")
	return nil
}

// BackupFileName returns the backup filename with an embedded timestamp, e.g.
// backup-1716000000000.json
func BackupFileName(now time.Time) string {
	return fmt.Sprintf("backup-%d.json", now.UnixMilli())
}
