package cmd

import (
	"context"
	"flag"

	"github.com/etnz/invest/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio indicators" }
func (*summaryCmd) Usage() string {
	return `inv summary

  Displays the total value, the planned contribution, the largest deviation from
  the target and the diversification score.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (*summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		printMarkdown(renderer.RenderSummary(s.dashboard()))
		return subcommands.ExitSuccess
	})
}
