package invest

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxContribution caps a planned contribution.
	MaxContribution = 10_000_000
	// AllocationTolerance is how far from 100 a target allocation sum may be.
	AllocationTolerance = 0.01
)

// ValidationErrors maps an invalid field (or asset class) to the reason it is invalid.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	var b strings.Builder
	for i, k := range slices.Sorted(maps.Keys(e)) {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", k, e[k])
	}
	return b.String()
}

var tickerPattern = regexp.MustCompile(`^[A-Z0-9]+$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// holdingValidator returns the shared validator, configured to report json
// field names and to know about tickers.
func holdingValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		validate.RegisterValidation("ticker", func(fl validator.FieldLevel) bool {
			return tickerPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// holdingMessages are the user facing messages per field and failed rule.
var holdingMessages = map[string]string{
	"ticker.required": "ticker is required",
	"ticker.max":      "ticker must be at most 20 characters",
	"ticker.ticker":   "ticker must contain only upper-case letters and digits",
	"class.required":  "class is required",
	"quantity.gt":     "quantity must be a number greater than zero",
	"quantity.lte":    "quantity cannot exceed 1,000,000",
	"price.gt":        "price must be a number greater than zero",
	"price.lte":       "price cannot exceed 1,000,000",
}

// ValidateHolding checks a holding entered by a user. The ticker is checked
// after trimming spaces. It returns nil or ValidationErrors.
func ValidateHolding(h Holding) error {
	h.Ticker = strings.TrimSpace(h.Ticker)
	h.Class = strings.TrimSpace(h.Class)

	err := holdingValidator().Struct(h)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("cannot validate holding: %w", err)
	}
	res := make(ValidationErrors)
	for _, fe := range fieldErrs {
		msg, ok := holdingMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed on %q", fe.Tag())
		}
		res[fe.Field()] = msg
	}
	return res
}

// ValidateAllocation checks a target allocation before it is saved: values
// must be numbers between 0 and 100 that sum to 100 (± AllocationTolerance).
// It returns nil or ValidationErrors, with the sum failure under "total".
func ValidateAllocation(a Allocation) error {
	res := make(ValidationErrors)
	if sum := a.Sum(); math.Abs(float64(sum)-100) > AllocationTolerance {
		res["total"] = fmt.Sprintf("allocation must sum to exactly 100%%, got %s", sum)
	}
	for _, c := range a.Classes() {
		v := float64(a[c])
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			res[c] = "value must be a valid number"
		case v < 0:
			res[c] = "value cannot be negative"
		case v > 100:
			res[c] = "value cannot exceed 100%"
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// SanitizeTicker upper-cases s and drops anything but letters and digits.
func SanitizeTicker(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return -1
	}, s)
}

// ParseAmount reads an amount typed by a user, like "1500,50" or "R$ 200".
//
// Anything but digits, '.' and ',' is ignored and the first ',' is read as a
// decimal point. Invalid input gives 0, and the result is capped to
// MaxContribution.
func ParseAmount(s string) float64 {
	s = strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			return r
		}
		return -1
	}, s)
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// keep the longest parsable prefix: "1.500,50" reads as 1.5
		v = parsePrefix(s)
	}
	return math.Min(Amount(v), MaxContribution)
}

// parsePrefix parses the longest prefix of s that is a valid float.
func parsePrefix(s string) float64 {
	for i := len(s); i > 0; i-- {
		if v, err := strconv.ParseFloat(s[:i], 64); err == nil {
			return v
		}
	}
	return 0
}
