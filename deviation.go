package invest

// Deviation returns current minus target, class by class.
//
// The result has one entry per class found in either allocation, including
// entries that are exactly 0. A class only in target shows up with a negative
// deviation, a class only in current with a positive one.
func Deviation(current, target Allocation) Allocation {
	dev := make(Allocation, len(current)+len(target))
	for c := range current {
		dev[c] = 0
	}
	for c := range target {
		dev[c] = 0
	}
	for c := range dev {
		dev[c] = Percent(Finite(float64(current[c])) - Finite(float64(target[c])))
	}
	return dev
}
