package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete every stored value" }
func (*resetCmd) Usage() string {
	return `inv reset -f

  Deletes the holdings, the target allocation and the planned contribution.
  Use 'inv export -format json' first to keep a copy.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Confirm the deletion.")
}

func (c *resetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(stderr, "Error: reset deletes everything, use -f to confirm.")
		return subcommands.ExitUsageError
	}
	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		if err := s.state.Reset(ctx); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, "Portfolio reset")
		return subcommands.ExitSuccess
	})
}
