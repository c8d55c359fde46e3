package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type editCmd struct {
	holdingFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change a holding" }
func (*editCmd) Usage() string {
	return `inv edit [-t <ticker>] [-c <class>] [-q <quantity>] [-p <price>] <id>

  Changes the given fields of a holding, the others are kept.
  Holding ids are listed by 'inv holdings -ids'.
`
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: edit expects exactly one holding id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		h, err := s.state.Holding(id)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := c.apply(&h); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if _, err := s.state.UpdateHolding(ctx, id, h); err != nil {
			printValidationErrors(err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Updated %s\n", h.Ticker)
		return subcommands.ExitSuccess
	})
}
