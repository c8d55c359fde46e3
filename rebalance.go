package invest

import (
	"maps"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// HoldThreshold is the smallest amount worth trading. Plan entries below it,
// in absolute value, are displayed as "hold".
const HoldThreshold = 0.01

// Action is what to do with an asset class.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
	ActionHold Action = "hold"

	// insights talk about the class weight rather than trades.
	ActionReduce   Action = "reduce"
	ActionIncrease Action = "increase"
)

// ActionFor returns the trade matching a plan amount.
func ActionFor(amount float64) Action {
	switch {
	case math.Abs(amount) < HoldThreshold:
		return ActionHold
	case amount > 0:
		return ActionBuy
	default:
		return ActionSell
	}
}

// Plan maps an asset class to the signed amount to trade in it: positive to
// buy, negative to sell.
type Plan map[string]float64

// Classes returns the classes of the plan, sorted lexicographically.
func (p Plan) Classes() []string {
	return slices.Sorted(maps.Keys(p))
}

// RebalancingPlan returns, for each class of the target allocation, the
// amount to trade to reach the target once contribution has been added.
//
// The current value of a class is measured against today's total, while its
// ideal value is measured against the total after the contribution. A
// contribution is therefore spent on underweight classes first instead of
// forcing sales of overweight ones.
//
// Classes held but absent from target get no entry: there is nothing to
// rebalance toward. Entries are raw amounts, see ActionFor for display.
func RebalancingPlan(p Portfolio, target Allocation, contribution float64) Plan {
	total := TotalValue(p)
	newTotal := total + Amount(contribution)
	current := CurrentAllocation(p)

	plan := make(Plan, len(target))
	for c, t := range target {
		currentValue := current[c].Of(total)
		idealValue := IdealValue(t, newTotal)
		plan[c] = idealValue - currentValue
	}
	return plan
}

// IdealValue returns the value a class targeted at t should have in a
// portfolio worth total.
func IdealValue(t Percent, total float64) float64 {
	return Percent(Finite(float64(t))).Of(total)
}

// PlanSummary aggregates a plan into its buy and sell sides.
type PlanSummary struct {
	ToBuy    float64 `json:"toBuy"`
	ToSell   float64 `json:"toSell"` // absolute value
	Net      float64 `json:"net"`    // ToBuy - ToSell
	Balanced bool    `json:"balanced"`
}

// Summary returns the totals of the plan.
//
// A plan is balanced when every entry is below HoldThreshold.
func (p Plan) Summary() PlanSummary {
	var buys, sells []float64
	balanced := true
	for _, c := range p.Classes() {
		v := Finite(p[c])
		if math.Abs(v) >= HoldThreshold {
			balanced = false
		}
		switch {
		case v > 0:
			buys = append(buys, v)
		case v < 0:
			sells = append(sells, -v)
		}
	}
	s := PlanSummary{
		ToBuy:    floats.Sum(buys),
		ToSell:   floats.Sum(sells),
		Balanced: balanced,
	}
	s.Net = s.ToBuy - s.ToSell
	return s
}
