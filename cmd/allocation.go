package cmd

import (
	"context"
	"flag"

	"github.com/etnz/invest/renderer"
	"github.com/google/subcommands"
)

type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "compare the current allocation to the target" }
func (*allocationCmd) Usage() string {
	return `inv allocation

  Shows, per asset class, the target and current share of the portfolio and the deviation.
`
}

func (*allocationCmd) SetFlags(f *flag.FlagSet) {}

func (*allocationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		printMarkdown(renderer.RenderAllocation(s.dashboard()))
		return subcommands.ExitSuccess
	})
}
