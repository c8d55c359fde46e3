package cmd

import (
	"context"
	"flag"

	"github.com/etnz/invest/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "show every view in a single document" }
func (*reportCmd) Usage() string {
	return `inv report

  Shows the summary, holdings, allocation, rebalancing plan and insights.
`
}

func (*reportCmd) SetFlags(f *flag.FlagSet) {}

func (*reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		printMarkdown(renderer.RenderReport(s.dashboard()))
		return subcommands.ExitSuccess
	})
}
