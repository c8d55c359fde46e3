package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove holdings" }
func (*rmCmd) Usage() string {
	return `inv rm <id>...

  Removes the holdings with the given ids.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (*rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: rm expects at least one holding id.")
		return subcommands.ExitUsageError
	}

	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		status := subcommands.ExitSuccess
		for _, id := range f.Args() {
			if err := s.state.DeleteHolding(ctx, id); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				status = subcommands.ExitFailure
				continue
			}
			fmt.Fprintf(stdout, "Removed %s\n", id)
		}
		return status
	})
}
