package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup points the commands to a fresh data directory and plain output.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("INV_DATA_DIR", dir)
	t.Setenv("INV_LOG_LEVEL", "disabled")
	t.Setenv("INV_CURRENCY", "")
	t.Setenv("INV_CSV_DELIMITER", "")
	t.Setenv("INV_LOG_PRETTY", "")

	*configFile, *dataDir, *currency, *logLevel = "", "", "", ""
	*plain = true
	return dir
}

// run executes c with args and returns what it printed.
func run(t *testing.T, c subcommands.Command, args ...string) (out, errOut string, status subcommands.ExitStatus) {
	t.Helper()
	var o, e bytes.Buffer
	stdout, stderr = &o, &e
	t.Cleanup(func() { stdout, stderr = os.Stdout, os.Stderr })

	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	status = c.Execute(context.Background(), f)
	return o.String(), e.String(), status
}

// addHolding adds a holding and returns its id.
func addHolding(t *testing.T, args ...string) string {
	t.Helper()
	out, errOut, status := run(t, &addCmd{}, args...)
	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	_, id, ok := strings.Cut(strings.TrimSpace(out), ", id ")
	require.True(t, ok, out)
	return id
}

func TestLoadConfig_flags(t *testing.T) {
	setup(t)
	*currency = "usd"
	*dataDir = "/tmp/elsewhere"

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "/tmp/elsewhere", cfg.DataDir)

	*currency = "XXX1"
	_, err = loadConfig()
	assert.Error(t, err)
}

func TestInvalidConfiguration(t *testing.T) {
	setup(t)
	t.Setenv("INV_CSV_DELIMITER", "ab")

	_, errOut, status := run(t, &summaryCmd{})
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, "invalid configuration")
}

func TestCurrency(t *testing.T) {
	setup(t)
	*currency = "USD"

	out, _, status := run(t, &addCmd{}, "-t", "AAPL", "-c", "International", "-q", "10", "-p", "123.45")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Added AAPL ($1,234.50)")
}

func TestMatchClass(t *testing.T) {
	c, ok := matchClass("  fixed INCOME ")
	assert.True(t, ok)
	assert.Equal(t, "Fixed Income", c)

	_, ok = matchClass("Bonds")
	assert.False(t, ok)
}

func TestRegister(t *testing.T) {
	c := subcommands.NewCommander(flag.NewFlagSet("inv", flag.ContinueOnError), "inv")
	Register(c)

	seen := map[string]bool{}
	for _, g := range groups {
		for _, cmd := range g.commands {
			assert.False(t, seen[cmd.Name()], "duplicate command %q", cmd.Name())
			seen[cmd.Name()] = true
		}
	}
	for _, name := range []string{"add", "edit", "rm", "holdings", "target", "contribution", "summary", "allocation",
		"rebalance", "insights", "report", "export", "sample", "import", "query", "classes", "topic", "reset"} {
		assert.True(t, seen[name], "missing command %q", name)
	}
}

func TestCompletion(t *testing.T) {
	root := Completion()

	assert.Contains(t, root.Flags, "data-dir")
	assert.Contains(t, root.Flags, "plain")
	for _, name := range []string{"add", "export", "topic", "help"} {
		assert.Contains(t, root.Sub, name)
	}

	add := root.Sub["add"]
	require.Contains(t, add.Flags, "c")
	assert.Contains(t, add.Flags["c"].Predict(""), "Real Estate Funds")
	assert.Contains(t, root.Sub["export"].Flags["format"].Predict(""), "pdf")
	assert.Contains(t, root.Sub["topic"].Args.Predict(""), "rebalancing")
	assert.Contains(t, root.Sub["target"].Args.Predict(""), "Stocks=")
	assert.Contains(t, root.Sub["help"].Args.Predict(""), "rebalance")
}
