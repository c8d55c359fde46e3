// Package config loads the inv settings: defaults, then an optional TOML file,
// then INV_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/etnz/invest"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	DataDir  string        `toml:"data_dir"` // where the database lives
	Currency string        `toml:"currency"` // ISO 4217 code used to display amounts
	Logging  LoggingConfig `toml:"logging"`
	Export   ExportConfig  `toml:"export"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error or disabled
	Pretty bool   `toml:"pretty"` // console output instead of JSON lines
}

type ExportConfig struct {
	CSVDelimiter string `toml:"csv_delimiter"` // a single character
}

// DefaultPath is the config file read when none is given: config.toml in the
// default data directory.
func DefaultPath() string {
	return filepath.Join(defaultDataDir(), "config.toml")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".invest"
	}
	return filepath.Join(home, ".invest")
}

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		DataDir:  defaultDataDir(),
		Currency: invest.DefaultCurrency,
		Logging: LoggingConfig{
			Level:  "warn",
			Pretty: true,
		},
		Export: ExportConfig{
			CSVDelimiter: ",",
		},
	}
}

// Load returns the configuration from the TOML file at path, overridden by
// environment variables.
//
// A missing file is not an error, defaults are used instead. An empty path
// skips the file.
func Load(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if dir := os.Getenv("INV_DATA_DIR"); dir != "" {
		config.DataDir = dir
	}
	if currency := os.Getenv("INV_CURRENCY"); currency != "" {
		config.Currency = currency
	}
	if level := os.Getenv("INV_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if pretty := os.Getenv("INV_LOG_PRETTY"); pretty != "" {
		if p, err := strconv.ParseBool(pretty); err == nil {
			config.Logging.Pretty = p
		}
	}
	if delimiter := os.Getenv("INV_CSV_DELIMITER"); delimiter != "" {
		config.Export.CSVDelimiter = delimiter
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir cannot be empty")
	}
	if !invest.IsCurrency(c.Currency) {
		return fmt.Errorf("unknown currency %q", c.Currency)
	}
	if _, err := c.Delimiter(); err != nil {
		return err
	}
	return nil
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() (rune, error) {
	d := c.Export.CSVDelimiter
	r, size := utf8.DecodeRuneInString(d)
	if size == 0 || size != len(d) || r == utf8.RuneError {
		return 0, fmt.Errorf("csv_delimiter must be a single character, got %q", d)
	}
	switch r {
	case '"', '\r', '\n':
		return 0, fmt.Errorf("csv_delimiter cannot be %q", r)
	}
	return r, nil
}

// DBPath returns the directory of the database.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "db")
}
