package invest

import (
	"maps"
	"slices"
)

// Allocation maps an asset class to a percentage of a portfolio.
//
// It is used for target allocations, current allocations and deviations.
type Allocation map[string]Percent

// Classes returns the classes of a, sorted lexicographically.
//
// Any scan where the first occurrence matters iterates in this order.
func (a Allocation) Classes() []string {
	return slices.Sorted(maps.Keys(a))
}

// Sum returns the sum of all percentages, non finite values count as 0.
func (a Allocation) Sum() Percent {
	var sum float64
	for _, c := range a.Classes() {
		sum += Finite(float64(a[c]))
	}
	return Percent(sum)
}

// Clone returns a copy of a, never nil.
func (a Allocation) Clone() Allocation {
	res := make(Allocation, len(a))
	maps.Copy(res, a)
	return res
}

// CurrentAllocation returns the share of the portfolio value held in each
// asset class.
//
// A portfolio worth 0 has no meaningful allocation and yields an empty map.
// Holdings with an empty class are skipped, but their value still counts in
// the total: the percentages then sum to less than 100. Class names are used
// as is, "  " is a class of its own.
func CurrentAllocation(p Portfolio) Allocation {
	alloc := make(Allocation)
	total := TotalValue(p)
	if total == 0 {
		return alloc
	}
	for _, h := range p {
		if h.Class == "" {
			continue
		}
		// divide first, value × 100 may overflow
		alloc[h.Class] += Percent(h.Value() / total * 100)
	}
	return alloc
}
