package cmd

import (
	"flag"

	"github.com/etnz/invest"
	"github.com/etnz/invest/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion for the subcommands in Register, and
// the builtin help, flags and commands.
//
// Install it in the shell with COMP_INSTALL=1 inv.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	names := []string{"help", "flags", "commands"}
	for _, g := range groups {
		for _, c := range g.commands {
			f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(f)
			root.Sub[c.Name()] = &complete.Command{
				Flags: flagPredictors(f),
				Args:  argsPredictor(c.Name()),
			}
			names = append(names, c.Name())
		}
	}
	root.Sub["help"] = &complete.Command{Args: predict.Set(names)}
	root.Sub["flags"] = &complete.Command{Args: predict.Set(names)}
	root.Sub["commands"] = &complete.Command{}
	return root
}

// flagPredictors predicts the values of the flags of f.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		m[fl.Name] = flagPredictor(fl)
	})
	return m
}

func flagPredictor(fl *flag.Flag) complete.Predictor {
	if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch fl.Name {
	case "c":
		return predict.Set(invest.AssetClasses())
	case "format":
		return predict.Set{"csv", "pdf", "json"}
	case "log-level":
		return predict.Set{"debug", "info", "warn", "error", "disabled"}
	case "currency":
		return predict.Set{"BRL", "USD", "EUR", "GBP"}
	case "o", "config":
		return predict.Files("*")
	case "data-dir":
		return predict.Dirs("*")
	}
	return predict.Something
}

// argsPredictor predicts the positional arguments of the command name.
func argsPredictor(name string) complete.Predictor {
	switch name {
	case "topic":
		topics, err := docs.GetAllTopics()
		if err != nil {
			return predict.Nothing
		}
		return predict.Set(append(topics, "*"))
	case "import":
		return predict.Files("*.json")
	case "target":
		var pairs []string
		for _, c := range invest.AssetClasses() {
			pairs = append(pairs, c+"=")
		}
		return predict.Set(pairs)
	}
	return predict.Nothing
}
