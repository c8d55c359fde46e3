package invest

// ValueOf returns quantity × price.
//
// Inputs that are not finite non-negative numbers count as 0, so the result
// is always a finite number ≥ 0.
func ValueOf(quantity, price float64) float64 {
	return Amount(Amount(quantity) * Amount(price))
}

// TotalValue returns the sum of the value of all holdings. An empty portfolio
// is worth 0, and so is a portfolio whose total overflows float64.
func TotalValue(p Portfolio) float64 {
	total := 0.0
	for _, h := range p {
		total += h.Value()
	}
	return Amount(total)
}
