package cmd

import (
	"testing"

	"github.com/etnz/invest"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTarget(t *testing.T) {
	setup(t)

	out, _, status := run(t, &targetCmd{})
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Nothing to compare yet")

	out, errOut, status := run(t, &targetCmd{}, "Stocks=60", "fixed income=40%")
	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	assert.Contains(t, out, "| Stocks | 60.00% | 0.00% | -60.00% |")
	assert.Contains(t, out, "| Fixed Income | 40.00% | 0.00% | -40.00% |")

	_, errOut, status = run(t, &targetCmd{}, "Stocks=50")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, "Error: total: allocation must sum to exactly 100%, got 50.00%")

	// the previous target is kept
	out, _, _ = run(t, &allocationCmd{})
	assert.Contains(t, out, "| **Total** | **100.00%** | | |")
}

func TestParseAllocation(t *testing.T) {
	a, err := parseAllocation([]string{"stocks=12,5", "Crypto= 87.5% "})
	require.NoError(t, err)
	assert.Equal(t, invest.Allocation{"Stocks": 12.5, "Crypto": 87.5}, a)

	for _, args := range [][]string{
		{"Stocks"},
		{"Bonds=100"},
		{"Stocks=abc"},
		{"Stocks=50", "STOCKS=50"},
	} {
		_, err := parseAllocation(args)
		assert.Error(t, err, "%q", args)
	}
}

func TestTarget_usage(t *testing.T) {
	setup(t)
	_, errOut, status := run(t, &targetCmd{}, "Stocks:100")
	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, errOut, `"Stocks:100" is not a <class>=<percent> pair`)
}

func TestContribution(t *testing.T) {
	setup(t)

	out, _, status := run(t, &contributionCmd{})
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "Planned contribution: R$0,00\n", out)

	out, _, status = run(t, &contributionCmd{}, "R$ 1500,50")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "Planned contribution: R$1.500,50\n", out)

	out, _, _ = run(t, &contributionCmd{})
	assert.Equal(t, "Planned contribution: R$1.500,50\n", out)

	out, _, _ = run(t, &contributionCmd{}, "99999999")
	assert.Equal(t, "Planned contribution: R$10.000.000,00\n", out)

	out, _, _ = run(t, &contributionCmd{}, "abc")
	assert.Equal(t, "Planned contribution: R$0,00\n", out)

	_, _, status = run(t, &contributionCmd{}, "1", "2")
	assert.Equal(t, subcommands.ExitUsageError, status)
}
