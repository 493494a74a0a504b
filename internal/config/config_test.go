package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Display.CurrencySymbol = "€"

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Ledger.DataFile, got.Ledger.DataFile)
	assert.Equal(t, cfg.Ledger.BackupFile, got.Ledger.BackupFile)
	assert.Equal(t, cfg.Ledger.ExportFile, got.Ledger.ExportFile)
	assert.Equal(t, "€", got.Display.CurrencySymbol)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "expenses.json", cfg.Ledger.DataFile)
	assert.Equal(t, "expenses_backup.json", cfg.Ledger.BackupFile)
	assert.Equal(t, "expenses_export.csv", cfg.Ledger.ExportFile)
	assert.Equal(t, "$", cfg.Display.CurrencySymbol)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDir_FallsBackToDefault(t *testing.T) {
	cfg, err := LoadDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDir_ReadsExisting(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Ledger.DataFile = "ledger.json"
	require.NoError(t, Save(filepath.Join(dir, FileName), cfg))

	got, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "ledger.json", got.Ledger.DataFile)
}

func TestPathsIn(t *testing.T) {
	paths := Default().PathsIn("/tmp/ledger")

	assert.Equal(t, filepath.Join("/tmp/ledger", "expenses.json"), paths.Data)
	assert.Equal(t, filepath.Join("/tmp/ledger", "expenses_backup.json"), paths.Backup)
	assert.Equal(t, filepath.Join("/tmp/ledger", "expenses_export.csv"), paths.Export)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, Default())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "data_file: expenses.json")
	assert.Contains(t, contents, "backup_file: expenses_backup.json")
	assert.Contains(t, contents, "export_file: expenses_export.csv")
	assert.Contains(t, contents, "currency_symbol: $")
}
