package cmd

import (
	"context"
	"flag"

	"github.com/etnz/invest"
	"github.com/etnz/invest/renderer"
	"github.com/google/subcommands"
)

type rebalanceCmd struct {
	contribution string
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "show the rebalancing plan" }
func (*rebalanceCmd) Usage() string {
	return `inv rebalance [-with <amount>]

  Shows, per class of the target allocation, the amount to buy or sell so that
  the portfolio, including the planned contribution, matches the target.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.contribution, "with", "", "Plan with this contribution instead of the saved one. Nothing is saved.")
}

func (c *rebalanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		d := s.dashboard()
		if c.contribution != "" {
			p := s.state.Portfolio()
			a := invest.Analyze(p, s.state.Target(), invest.ParseAmount(c.contribution))
			d = renderer.NewDashboard(p, a, s.cfg.Currency)
		}
		printMarkdown(renderer.RenderRebalancing(d))
		return subcommands.ExitSuccess
	})
}
