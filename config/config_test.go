package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv makes sure the host environment does not leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"INV_DATA_DIR", "INV_CURRENCY", "INV_LOG_LEVEL", "INV_LOG_PRETTY", "INV_CSV_DELIMITER"} {
		t.Setenv(k, "")
	}
}

func TestLoad_defaults(t *testing.T) {
	clearEnv(t)
	c, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "BRL", c.Currency)
	assert.Equal(t, "warn", c.Logging.Level)
	assert.True(t, c.Logging.Pretty)
	assert.Equal(t, ",", c.Export.CSVDelimiter)
	assert.Equal(t, ".invest", filepath.Base(c.DataDir))
	assert.Equal(t, filepath.Join(c.DataDir, "db"), c.DBPath())
}

func TestLoad_file(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
data_dir = "/tmp/inv"
currency = "USD"

[logging]
level = "debug"
pretty = false

[export]
csv_delimiter = ";"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/inv", c.DataDir)
	assert.Equal(t, "USD", c.Currency)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.False(t, c.Logging.Pretty)

	d, err := c.Delimiter()
	require.NoError(t, err)
	assert.Equal(t, ';', d)
}

func TestLoad_env(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`currency = "USD"`), 0644))

	t.Setenv("INV_DATA_DIR", "/data")
	t.Setenv("INV_CURRENCY", "EUR")
	t.Setenv("INV_LOG_LEVEL", "error")
	t.Setenv("INV_LOG_PRETTY", "false")
	t.Setenv("INV_CSV_DELIMITER", "\t")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data", c.DataDir)
	assert.Equal(t, "EUR", c.Currency)
	assert.Equal(t, "error", c.Logging.Level)
	assert.False(t, c.Logging.Pretty)
	assert.Equal(t, "\t", c.Export.CSVDelimiter)
}

func TestLoad_invalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`currency = `), 0644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "failed to parse config file")

	t.Setenv("INV_CURRENCY", "XYZ")
	_, err = Load("")
	assert.ErrorContains(t, err, "unknown currency")
}

func TestConfig_Delimiter(t *testing.T) {
	for _, d := range []string{"", ";;", `"`, "\n"} {
		c := NewDefaultConfig()
		c.Export.CSVDelimiter = d
		assert.Error(t, c.Validate(), "%q", d)
	}
}
