package invest

import (
	"maps"
	"slices"
)

// Analysis bundles everything derived from a portfolio, a target allocation
// and a planned contribution. It is never persisted: every view recomputes it,
// or caches it keyed on its three inputs.
type Analysis struct {
	TotalValue            float64    `json:"totalValue"`
	Contribution          float64    `json:"contribution"`
	TotalWithContribution float64    `json:"totalWithContribution"`
	Target                Allocation `json:"target"`
	CurrentAllocation     Allocation `json:"currentAllocation"`
	Deviation             Allocation `json:"deviation"`
	Rebalancing           Plan       `json:"rebalancing"`
	MaxDeviation          Percent    `json:"maxDeviation"`
	MaxDeviationClass     string     `json:"maxDeviationClass"`
	DiversificationScore  float64    `json:"diversificationScore"`
	Insights              []Insight  `json:"insights"`
}

// Analyze computes the Analysis of a portfolio.
//
// It is a pure function: identical inputs always produce deeply equal results,
// and neither input is modified.
func Analyze(p Portfolio, target Allocation, contribution float64) Analysis {
	contribution = Amount(contribution)
	total := TotalValue(p)
	current := CurrentAllocation(p)
	dev := Deviation(current, target)
	maxDev, maxClass := MaxDeviation(dev)

	return Analysis{
		TotalValue:            total,
		Contribution:          contribution,
		TotalWithContribution: total + contribution,
		Target:                target.Clone(),
		CurrentAllocation:     current,
		Deviation:             dev,
		Rebalancing:           RebalancingPlan(p, target, contribution),
		MaxDeviation:          maxDev,
		MaxDeviationClass:     maxClass,
		DiversificationScore:  DiversificationScore(current),
		Insights:              RebalancingInsights(dev, total),
	}
}

// Clone returns a deep copy of a.
func (a Analysis) Clone() Analysis {
	a.Target = a.Target.Clone()
	a.CurrentAllocation = a.CurrentAllocation.Clone()
	a.Deviation = a.Deviation.Clone()
	a.Rebalancing = maps.Clone(a.Rebalancing)
	a.Insights = slices.Clone(a.Insights)
	return a
}

// IdealValue returns the value class should have once the contribution is
// invested, according to the target.
func (a Analysis) IdealValue(class string) float64 {
	return IdealValue(a.Target[class], a.TotalWithContribution)
}

// ContributionShare returns the contribution as a percentage of the current
// total, or 0 when the portfolio is worth nothing.
func (a Analysis) ContributionShare() Percent {
	if a.TotalValue == 0 {
		return 0
	}
	return Percent(a.Contribution * 100 / a.TotalValue)
}
