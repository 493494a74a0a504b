package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside a ledger directory.
const FileName = "tally.yaml"

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Display DisplayConfig `yaml:"display"`
}

// LedgerConfig names the storage files inside the ledger directory.
type LedgerConfig struct {
	DataFile   string `yaml:"data_file"`
	BackupFile string `yaml:"backup_file"`
	ExportFile string `yaml:"export_file"`
}

// DisplayConfig controls report rendering.
type DisplayConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
}

// Paths holds the resolved absolute locations the Store works with.
type Paths struct {
	Data   string
	Backup string
	Export string
}

// Default returns a Config with the standard file names.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			DataFile:   "expenses.json",
			BackupFile: "expenses_backup.json",
			ExportFile: "expenses_export.csv",
		},
		Display: DisplayConfig{
			CurrencySymbol: "$",
		},
	}
}

// Load reads a tally.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// LoadDir reads the config from a ledger directory, falling back to Default
// when no config file exists yet.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// PathsIn resolves the config's file names against a ledger directory.
func (c *Config) PathsIn(dir string) Paths {
	return Paths{
		Data:   filepath.Join(dir, c.Ledger.DataFile),
		Backup: filepath.Join(dir, c.Ledger.BackupFile),
		Export: filepath.Join(dir, c.Ledger.ExportFile),
	}
}
