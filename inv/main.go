// Command inv tracks an investment portfolio and plans its rebalancing toward
// a target allocation.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/invest/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// exits when the shell is asking for completions
	cmd.Completion().Complete(name)

	flag.Parse()
	if sub := flag.Arg(0); sub != "" && !cmd.IsCommand(sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
