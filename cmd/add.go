package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/invest"
	"github.com/google/subcommands"
)

// holdingFlags are the fields of a holding as typed on the command line.
type holdingFlags struct {
	ticker   string
	class    string
	quantity string
	price    string
}

func (h *holdingFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&h.ticker, "t", "", "Ticker of the asset, e.g. PETR4. Only letters and digits are kept.")
	f.StringVar(&h.class, "c", "", "Asset class, see 'inv classes'.")
	f.StringVar(&h.quantity, "q", "", "Quantity held.")
	f.StringVar(&h.price, "p", "", "Unit price. A comma may be used as the decimal separator.")
}

// apply copies the flags that were given into dst.
func (h *holdingFlags) apply(dst *invest.Holding) error {
	if h.ticker != "" {
		dst.Ticker = invest.SanitizeTicker(h.ticker)
	}
	if h.class != "" {
		class, ok := matchClass(h.class)
		if !ok {
			return fmt.Errorf("unknown asset class %q, use one of: %s", h.class, strings.Join(invest.AssetClasses(), ", "))
		}
		dst.Class = class
	}
	if h.quantity != "" {
		dst.Quantity = invest.ParseAmount(h.quantity)
	}
	if h.price != "" {
		dst.Price = invest.ParseAmount(h.price)
	}
	return nil
}

type addCmd struct {
	holdingFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a holding to the portfolio" }
func (*addCmd) Usage() string {
	return `inv add -t <ticker> -c <class> -q <quantity> -p <price>

  Adds a holding to the portfolio. The ticker is upper-cased and stripped of
  anything but letters and digits.
`
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var h invest.Holding
	if err := c.apply(&h); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return withSession(ctx, func(s *session) subcommands.ExitStatus {
		added, err := s.state.AddHolding(ctx, h)
		if err != nil {
			printValidationErrors(err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Added %s (%s), id %s\n", added.Ticker, invest.FormatMoney(added.Value(), s.cfg.Currency), added.ID)
		return subcommands.ExitSuccess
	})
}
