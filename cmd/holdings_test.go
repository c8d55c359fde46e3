package cmd

import (
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	setup(t)

	out, _, status := run(t, &addCmd{}, "-t", " petr-4 ", "-c", "stocks", "-q", "100", "-p", "32,50")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Added PETR4 (R$3.250,00), id ")

	out, _, status = run(t, &holdingsCmd{})
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "| PETR4 | Stocks | 100 | R$32,50 | R$3.250,00 | 100.00% |")
}

func TestAdd_invalid(t *testing.T) {
	setup(t)

	_, errOut, status := run(t, &addCmd{}, "-c", "Stocks", "-q", "0", "-p", "abc")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, "Error: price: price must be a number greater than zero\n")
	assert.Contains(t, errOut, "Error: quantity: quantity must be a number greater than zero\n")
	assert.Contains(t, errOut, "Error: ticker: ticker is required\n")

	_, errOut, status = run(t, &addCmd{}, "-t", "X", "-c", "Bonds", "-q", "1", "-p", "1")
	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, errOut, `unknown asset class "Bonds"`)

	out, _, _ := run(t, &holdingsCmd{})
	assert.Contains(t, out, "No holdings yet.")
}

func TestEdit(t *testing.T) {
	setup(t)
	id := addHolding(t, "-t", "PETR4", "-c", "Stocks", "-q", "100", "-p", "32.50")

	out, errOut, status := run(t, &editCmd{}, "-q", "200", id)
	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	assert.Equal(t, "Updated PETR4\n", out)

	out, _, _ = run(t, &holdingsCmd{}, "-ids")
	assert.Contains(t, out, "| "+id+" | PETR4 | Stocks | 200 | R$32,50 | R$6.500,00 | 100.00% |")

	_, errOut, status = run(t, &editCmd{}, "-p", "0", id)
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, "price must be a number greater than zero")
	out, _, _ = run(t, &holdingsCmd{})
	assert.Contains(t, out, "| R$32,50 |", "invalid changes are not saved")

	_, errOut, status = run(t, &editCmd{}, "-q", "1", "missing")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, `holding "missing": not found`)

	_, _, status = run(t, &editCmd{})
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestRm(t *testing.T) {
	setup(t)
	a := addHolding(t, "-t", "A", "-c", "Stocks", "-q", "1", "-p", "10")
	b := addHolding(t, "-t", "B", "-c", "Crypto", "-q", "1", "-p", "10")

	out, errOut, status := run(t, &rmCmd{}, a, "missing")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Equal(t, "Removed "+a+"\n", out)
	assert.Contains(t, errOut, `holding "missing": not found`)

	out, _, _ = run(t, &holdingsCmd{}, "-ids")
	assert.NotContains(t, out, a)
	assert.Contains(t, out, "| "+b+" | B | Crypto |")

	_, _, status = run(t, &rmCmd{})
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestClasses(t *testing.T) {
	setup(t)
	out, _, status := run(t, &classesCmd{})
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "* Stocks\n")
	assert.Contains(t, out, "* Real Estate Funds\n")
	assert.Contains(t, out, "* Other\n")
}
