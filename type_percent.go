package invest

import (
	"fmt"
	"math"
)

// Percent is a percentage expressed in points: 12.5 means 12.5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Abs returns the absolute value of p.
func (p Percent) Abs() Percent { return Percent(math.Abs(float64(p))) }

// Of returns p percent of amount.
func (p Percent) Of(amount float64) float64 { return float64(p) / 100 * amount }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}

// UnmarshalJSON decodes a percentage leniently, see Number.
func (p *Percent) UnmarshalJSON(data []byte) error {
	*p = Percent(parseNumber(data))
	return nil
}
