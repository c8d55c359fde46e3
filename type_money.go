package invest

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used to display amounts when none is configured.
const DefaultCurrency = money.BRL

// currency returns the currency for code, never nil.
func currency(code string) money.Currency {
	if code == "" {
		code = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// IsCurrency reports whether code is a known ISO 4217 currency code.
func IsCurrency(code string) bool { return money.GetCurrency(code) != nil }

// round returns v rounded to the fraction digits of the currency.
func round(v float64, code string) decimal.Decimal {
	cur := currency(code)
	return decimal.NewFromFloat(Finite(v)).Round(int32(cur.Fraction))
}

// FormatMoney returns v formatted in the currency, e.g. "R$1.234,56" for BRL.
// Non finite values display as 0.
func FormatMoney(v float64, code string) string {
	cur := currency(code)
	dec := round(v, code).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// FormatSignedMoney is like FormatMoney with an explicit sign, and "-" for
// amounts that round to zero.
func FormatSignedMoney(v float64, code string) string {
	r := round(v, code)
	switch {
	case r.IsZero():
		return "-"
	case r.IsPositive():
		return "+" + FormatMoney(v, code)
	}
	return FormatMoney(v, code)
}
