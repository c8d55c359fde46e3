package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/invest"
	"github.com/google/subcommands"
)

type contributionCmd struct{}

func (*contributionCmd) Name() string     { return "contribution" }
func (*contributionCmd) Synopsis() string { return "show or set the planned contribution" }
func (*contributionCmd) Usage() string {
	return `inv contribution [<amount>]

  Without arguments, shows the planned contribution.

  With an amount, plans to invest it in the next rebalancing. A comma may be
  used as the decimal separator, invalid amounts are read as 0 and amounts
  are capped to 10,000,000.

    inv contribution 1500,50
`
}

func (*contributionCmd) SetFlags(f *flag.FlagSet) {}

func (*contributionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(stderr, "Error: contribution expects at most one amount.")
		return subcommands.ExitUsageError
	}

	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		if f.NArg() == 1 {
			if err := s.state.SetContribution(ctx, invest.ParseAmount(f.Arg(0))); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
		}
		fmt.Fprintf(stdout, "Planned contribution: %s\n", invest.FormatMoney(s.state.Contribution(), s.cfg.Currency))
		return subcommands.ExitSuccess
	})
}
