package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/invest"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the portfolio analysis with JSONPath" }
func (*queryCmd) Usage() string {
	return `inv query [<jsonpath>]

  Prints the part of the portfolio analysis selected by a JSONPath expression,
  as JSON. Without an expression, the whole analysis is printed.

    inv query '$.totalValue'
    inv query '$.rebalancing.Stocks'
    inv query '$.insights[*].class'

  The analysis holds the "holdings" along with every computed value:
  totalValue, contribution, totalWithContribution, target, currentAllocation,
  deviation, rebalancing, maxDeviation, maxDeviationClass,
  diversificationScore and insights.
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(stderr, "Error: query expects at most one JSONPath expression.")
		return subcommands.ExitUsageError
	}
	path := "$"
	if f.NArg() == 1 {
		path = f.Arg(0)
	}

	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		res, err := query(path, s.state.Portfolio(), s.state.Analysis())
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(out))
		return subcommands.ExitSuccess
	})
}

// query evaluates path over the JSON form of the analysis of p.
func query(path string, p invest.Portfolio, a invest.Analysis) (any, error) {
	doc, err := json.Marshal(struct {
		Holdings invest.Portfolio `json:"holdings"`
		invest.Analysis
	}{p, a})
	if err != nil {
		return nil, err
	}
	// jsonpath works on generic values
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, err
	}
	res, err := jsonpath.Get(path, v)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	return res, nil
}
