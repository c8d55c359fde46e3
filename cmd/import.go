package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/etnz/invest"
	"github.com/etnz/invest/store"
	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a saved portfolio" }
func (*importCmd) Usage() string {
	return `inv import <file>|-

  Imports a JSON object holding the "assets", "idealAllocation" and
  "contribution" keys, as written by 'inv export -format json' or dumped from
  the browser local storage of the web tracker. Values may be JSON documents
  or strings holding them.

  Keys missing from the file are kept, values of the wrong kind are skipped.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (*importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: import expects exactly one file, or - for the standard input.")
		return subcommands.ExitUsageError
	}
	data, err := readInput(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error reading %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	docs, err := decodeDump(data)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		valid := make(map[string]json.RawMessage)
		for _, key := range store.Keys() {
			doc, ok := docs[key]
			if !ok {
				continue
			}
			if err := store.Validate(key, doc); err != nil {
				fmt.Fprintf(stderr, "Skipping %q: not a valid value\n", key)
				continue
			}
			valid[key] = doc
		}
		if err := s.kv.SetAll(ctx, valid); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		for key := range docs {
			if !slices.Contains(store.Keys(), key) {
				s.log.Warn().Str("key", key).Msg("ignoring unknown key")
			}
		}

		if err := s.state.Load(ctx); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if p, ok := uniqueIDs(s.state.Portfolio()); !ok {
			// Replace assigns the missing ids
			if err := s.state.Replace(ctx, p, s.state.Target(), s.state.Contribution()); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
		}
		fmt.Fprintf(stdout, "Imported %d values, %d holdings\n", len(valid), len(s.state.Portfolio()))
		return subcommands.ExitSuccess
	})
}

// readInput reads the file at path, or the standard input for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// decodeDump decodes a key/value dump. String values are unquoted, as a
// localStorage dump holds every value as a string.
func decodeDump(data []byte) (map[string]json.RawMessage, error) {
	var docs map[string]json.RawMessage
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("invalid dump: %w", err)
	}
	for key, doc := range docs {
		doc = bytes.TrimSpace(doc)
		if len(doc) == 0 || doc[0] != '"' {
			continue
		}
		var s string
		if err := json.Unmarshal(doc, &s); err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", key, err)
		}
		docs[key] = json.RawMessage(s)
	}
	return docs, nil
}

// uniqueIDs clears the ids p holds more than once. It reports whether every
// holding of the result has an id.
func uniqueIDs(p invest.Portfolio) (invest.Portfolio, bool) {
	ok := true
	seen := make(map[string]bool, len(p))
	for i, h := range p {
		if seen[h.ID] {
			p[i].ID = ""
		}
		if p[i].ID == "" {
			ok = false
			continue
		}
		seen[h.ID] = true
	}
	return p, ok
}
