// Package export writes a portfolio to files meant to leave the tracker:
// a CSV of the holdings and a PDF of the rebalancing report.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/invest"
)

// CSVHeader is the first record of a holdings CSV.
var CSVHeader = []string{"Ticker", "Class", "Quantity", "Price", "Total Value"}

// CSVOptions configures WriteCSV.
type CSVOptions struct {
	Comma rune // field delimiter, ',' when zero
}

// WriteCSV writes one record per holding: ticker, class, quantity, price and
// total value with two decimals.
//
// Fields containing the delimiter or a quote are quoted, quotes are doubled.
// Line breaks in text fields are replaced by spaces so that every holding
// stays on a single line.
func WriteCSV(w io.Writer, p invest.Portfolio, opts CSVOptions) error {
	cw := csv.NewWriter(w)
	if opts.Comma != 0 {
		cw.Comma = opts.Comma
	}

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	for _, h := range p {
		record := []string{
			singleLine(h.Ticker),
			singleLine(h.Class),
			strconv.FormatFloat(invest.Finite(h.Quantity), 'f', -1, 64),
			strconv.FormatFloat(invest.Finite(h.Price), 'f', -1, 64),
			strconv.FormatFloat(h.Value(), 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write holding %q: %w", h.Ticker, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write csv: %w", err)
	}
	return nil
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func singleLine(s string) string { return lineBreaks.Replace(s) }
