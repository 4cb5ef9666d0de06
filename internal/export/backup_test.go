package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fajarubianto5/app-penjualan/internal/models"
)

func TestWriteBackup(t *testing.T) {
	var buf bytes.Buffer
	transactions := []models.Transaction{tx(1, "2024-05-17", "Kopi Hitam", 3, 15000)}
	products := []string{"Kopi Hitam", "Teh Manis"}

	require.NoError(t, WriteBackup(&buf, transactions, products))

	var doc Backup
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Transactions, 1)
	assert.Equal(t, "Kopi Hitam", doc.Transactions[0].Product)
	assert.Equal(t, products, doc.Products)
}

func TestWriteBackupEmptyLedger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBackup(&buf, nil, nil))

	// Empty collections serialize as [] rather than null.
	assert.Contains(t, buf.String(), `"transactions": []`)
	assert.Contains(t, buf.String(), `"products": []`)
}

func TestWriteBackupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, WriteBackupFile(path, nil, []string{"Es Jeruk"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Backup
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, []string{"Es Jeruk"}, doc.Products)
}

func TestBackupFileName(t *testing.T) {
	now := time.UnixMilli(1716000000000)
	assert.Equal(t, "backup-1716000000000.json", BackupFileName(now))
}
