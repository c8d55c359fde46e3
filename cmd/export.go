package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/invest/export"
	"github.com/etnz/invest/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the holdings or the rebalancing plan" }
func (*exportCmd) Usage() string {
	return `inv export [-format csv|pdf|json] [-o <file>]

  Exports data from the portfolio:

    csv   the holdings, one per line, with their total value
    pdf   the summary and rebalancing plan, printable
    json  every stored value, in the format read by 'inv import'

  CSV and JSON are written to the standard output unless -o is given. PDF
  defaults to rebalancing.pdf.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "Export format: csv, pdf or json.")
	f.StringVar(&c.output, "o", "", "Output file.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var write func(*session, io.Writer) error
	switch c.format {
	case "csv":
		write = writeCSV
	case "pdf":
		write = writePDF
		if c.output == "" {
			c.output = "rebalancing.pdf"
		}
	case "json":
		write = func(s *session, w io.Writer) error { return writeJSON(ctx, s, w) }
	default:
		fmt.Fprintf(stderr, "Error: unknown format %q, use csv, pdf or json.\n", c.format)
		return subcommands.ExitUsageError
	}

	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		if c.output == "" {
			if err := write(s, stdout); err != nil {
				fmt.Fprintf(stderr, "Error exporting %s: %v\n", c.format, err)
				return subcommands.ExitFailure
			}
			return subcommands.ExitSuccess
		}
		if err := writeFile(c.output, func(w io.Writer) error { return write(s, w) }); err != nil {
			fmt.Fprintf(stderr, "Error exporting %s: %v\n", c.format, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Exported to %s\n", c.output)
		return subcommands.ExitSuccess
	})
}

// writeFile creates name and writes it with write. The file is closed before
// returning, a failed close is an error.
func writeFile(name string, write func(io.Writer) error) (err error) {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("cannot close %q: %w", name, cerr)
		}
	}()
	return write(file)
}

func writeCSV(s *session, w io.Writer) error {
	comma, err := s.cfg.Delimiter()
	if err != nil {
		return err
	}
	return export.WriteCSV(w, s.state.Portfolio(), export.CSVOptions{Comma: comma})
}

func writePDF(s *session, w io.Writer) error {
	d := s.dashboard()
	md := renderer.RenderSummary(d) + "\n" + renderer.RenderRebalancing(d)
	return export.RebalancingPDF(w, md, "Rebalancing Plan")
}

func writeJSON(ctx context.Context, s *session, w io.Writer) error {
	docs, err := s.kv.Dump(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}
