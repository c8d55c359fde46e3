package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/invest"
	"github.com/google/subcommands"
)

type classesCmd struct{}

func (*classesCmd) Name() string     { return "classes" }
func (*classesCmd) Synopsis() string { return "list the asset classes" }
func (*classesCmd) Usage() string {
	return `inv classes

  Lists the asset classes a holding or a target can use.
`
}

func (*classesCmd) SetFlags(f *flag.FlagSet) {}

func (*classesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var b strings.Builder
	b.WriteString("## Asset Classes\n\n")
	for _, c := range invest.AssetClasses() {
		fmt.Fprintf(&b, "* %s\n", c)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
