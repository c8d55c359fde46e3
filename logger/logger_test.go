package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"":        zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"verbose": zerolog.WarnLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_json(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Out: &buf})

	log.Debug().Msg("hidden")
	log.Info().Str("key", "assets").Msg("saved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "assets", entry["key"])
	assert.Equal(t, "saved", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_pretty(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Pretty: true, Out: &buf})

	log.Info().Msg("hidden")
	log.Warn().Str("key", "contribution").Msg("invalid value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "invalid value")
	assert.Contains(t, out, "key=contribution")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "log"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
