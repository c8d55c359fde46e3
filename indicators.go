package invest

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// InsightThreshold is the deviation, in percentage points, above which a class
// deserves a rebalancing insight.
const InsightThreshold Percent = 1

// MaxDeviation returns the largest absolute deviation and its class.
//
// Classes are scanned in lexicographic order and ties keep the first one, so
// the result is reproducible. An empty deviation yields (0, "").
func MaxDeviation(dev Allocation) (Percent, string) {
	var (
		largest Percent
		class   string
	)
	for i, c := range dev.Classes() {
		if d := dev[c].Abs(); i == 0 || d > largest {
			largest, class = d, c
		}
	}
	return largest, class
}

// DiversificationScore returns (1 - largest share/100) × 100, in [0, 100].
//
// It is a concentration heuristic, not a statistical diversification measure:
// only the largest class counts. An empty allocation scores 0.
func DiversificationScore(current Allocation) float64 {
	if len(current) == 0 {
		return 0
	}
	shares := make([]float64, 0, len(current))
	for _, c := range current.Classes() {
		shares = append(shares, Finite(float64(current[c])))
	}
	score := (1 - floats.Max(shares)/100) * 100
	return math.Min(100, math.Max(0, score))
}

// Insight is a ranked rebalancing suggestion for one class.
type Insight struct {
	Class     string  `json:"class"`
	Deviation Percent `json:"deviation"`
	Action    Action  `json:"action"`
	Amount    float64 `json:"amount"`
}

// RebalancingInsights returns the classes deviating from target by more than
// InsightThreshold, largest deviation first.
//
// Overweight classes are to be reduced, underweight ones increased, by
// |deviation| percent of total. Equal deviations keep lexicographic order.
func RebalancingInsights(dev Allocation, total float64) []Insight {
	insights := make([]Insight, 0, len(dev))
	for _, c := range dev.Classes() {
		d := dev[c]
		if d.Abs() <= InsightThreshold {
			continue
		}
		action := ActionIncrease
		if d > 0 {
			action = ActionReduce
		}
		insights = append(insights, Insight{
			Class:     c,
			Deviation: d,
			Action:    action,
			Amount:    d.Abs().Of(total),
		})
	}
	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Deviation.Abs() > insights[j].Deviation.Abs()
	})
	return insights
}

// ClassDeviation is the deviation of a single class.
type ClassDeviation struct {
	Class     string  `json:"class"`
	Deviation Percent `json:"deviation"`
}

// Extremes returns the class most above target and the class most below it.
// Both are the same class when dev has a single entry. ok is false when dev is
// empty.
func Extremes(dev Allocation) (above, below ClassDeviation, ok bool) {
	classes := dev.Classes()
	if len(classes) == 0 {
		return above, below, false
	}
	sort.SliceStable(classes, func(i, j int) bool {
		return dev[classes[i]] > dev[classes[j]]
	})
	first, last := classes[0], classes[len(classes)-1]
	return ClassDeviation{first, dev[first]}, ClassDeviation{last, dev[last]}, true
}
