package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/invest"
	"github.com/etnz/invest/renderer"
	"github.com/google/subcommands"
)

type targetCmd struct{}

func (*targetCmd) Name() string     { return "target" }
func (*targetCmd) Synopsis() string { return "show or set the target allocation" }
func (*targetCmd) Usage() string {
	return `inv target [<class>=<percent>...]

  Without arguments, shows the target allocation next to the current one.

  With arguments, replaces the target allocation. Percentages must sum to 100:

    inv target Stocks=40 "Fixed Income=35" International=25
`
}

func (*targetCmd) SetFlags(f *flag.FlagSet) {}

func (*targetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var target invest.Allocation
	if f.NArg() > 0 {
		var err error
		target, err = parseAllocation(f.Args())
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		if target != nil {
			if err := s.state.SetTarget(ctx, target); err != nil {
				printValidationErrors(err)
				return subcommands.ExitFailure
			}
		}
		printMarkdown(renderer.RenderAllocation(s.dashboard()))
		return subcommands.ExitSuccess
	})
}

// parseAllocation reads "class=percent" pairs. Classes are matched ignoring
// case and may appear only once.
func parseAllocation(args []string) (invest.Allocation, error) {
	a := make(invest.Allocation, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%q is not a <class>=<percent> pair", arg)
		}
		class, ok := matchClass(name)
		if !ok {
			return nil, fmt.Errorf("unknown asset class %q, use one of: %s", name, strings.Join(invest.AssetClasses(), ", "))
		}
		if _, dup := a[class]; dup {
			return nil, fmt.Errorf("asset class %q is given twice", class)
		}
		value = strings.TrimSuffix(strings.TrimSpace(value), "%")
		v, err := strconv.ParseFloat(strings.Replace(value, ",", ".", 1), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid percentage for %s: %q", class, value)
		}
		a[class] = invest.Percent(v)
	}
	return a, nil
}
