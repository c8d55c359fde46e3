package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/invest"
	"github.com/google/subcommands"
)

type sampleCmd struct {
	force bool
}

func (*sampleCmd) Name() string     { return "sample" }
func (*sampleCmd) Synopsis() string { return "load a sample portfolio" }
func (*sampleCmd) Usage() string {
	return `inv sample [-f]

  Replaces the holdings, target allocation and planned contribution with a
  sample portfolio of Brazilian assets, to try the reports out.
`
}

func (c *sampleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Replace the current portfolio even if it has holdings.")
}

func (c *sampleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		if len(s.state.Portfolio()) > 0 && !c.force {
			fmt.Fprintln(stderr, "Error: the portfolio has holdings, use -f to replace them with the sample.")
			return subcommands.ExitFailure
		}
		p, target, contribution := invest.SampleData()
		if err := s.state.Replace(ctx, p, target, contribution); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Loaded the sample portfolio: %d holdings worth %s\n", len(p), invest.FormatMoney(invest.TotalValue(p), s.cfg.Currency))
		return subcommands.ExitSuccess
	})
}
