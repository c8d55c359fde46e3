package cmd

import (
	"context"
	"flag"

	"github.com/etnz/invest/renderer"
	"github.com/google/subcommands"
)

type insightsCmd struct{}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "show deviations, diversification and recommended actions" }
func (*insightsCmd) Usage() string {
	return `inv insights

  Shows the classes furthest from their target, the diversification score and the
  largest trades to make.
`
}

func (*insightsCmd) SetFlags(f *flag.FlagSet) {}

func (*insightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		printMarkdown(renderer.RenderInsights(s.dashboard()))
		return subcommands.ExitSuccess
	})
}
