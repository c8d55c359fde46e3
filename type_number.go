package invest

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount returns v if it is a finite, non-negative number, and 0 otherwise.
//
// It is the single place where monetary inputs (quantities, prices,
// contributions) are sanitized before entering a calculation.
func Amount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Finite returns v if it is a finite number, and 0 otherwise.
//
// Percentages go through Finite rather than Amount: a negative percentage is
// meaningless but still comparable, while NaN is not.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Number is a float64 that decodes leniently from JSON.
//
// Numbers, numeric strings (a comma is accepted as decimal separator) and null
// are accepted, anything else decodes to 0. Decoding a Number never fails.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number(parseNumber(data))
	return nil
}

// parseNumber converts a raw JSON value into a finite float64.
func parseNumber(data []byte) float64 {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0
		}
		return parseNumberString(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		v, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return 0
		}
		return Finite(v)
	}
	// null, booleans, arrays, objects.
	return 0
}

// parseNumberString parses a user typed number like "12,5" or " 3.2 ".
func parseNumberString(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Finite(v)
}
