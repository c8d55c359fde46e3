package cmd

import (
	"context"
	"flag"

	"github.com/etnz/invest/renderer"
	"github.com/google/subcommands"
)

type holdingsCmd struct {
	ids bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "list the holdings" }
func (*holdingsCmd) Usage() string {
	return `inv holdings [-ids]

  Lists the holdings with their value and share of the portfolio.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.ids, "ids", false, "Show the holding ids, as used by 'inv edit' and 'inv rm'.")
}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		d := s.dashboard()
		d.ShowIDs = c.ids
		printMarkdown(renderer.RenderHoldings(d))
		return subcommands.ExitSuccess
	})
}
