package renderer

import (
	"math"
	"strconv"
	"strings"

	"github.com/etnz/invest"
)

// Thresholds used by the views.
const (
	// ExtremeThreshold is the deviation under which a class is not worth
	// mentioning as the most above or below target.
	ExtremeThreshold invest.Percent = 0.1
	// MaxActions is the number of recommended actions listed.
	MaxActions = 5
)

// Dashboard is the data every view renders: a portfolio and its analysis,
// formatted in a currency.
type Dashboard struct {
	Title string

	// KPIs
	Total                 string
	Contribution          string
	TotalWithContribution string
	MaxDeviation          string
	MaxDeviationClass     string
	HasContribution       bool
	ContributionShare     string // empty when the portfolio is worth nothing

	Holdings      []HoldingRow
	HoldingsTotal string
	ShowIDs       bool // add an ID column to the holdings

	Allocation  []AllocationRow
	TargetTotal string
	HasTarget   bool

	Plan     []PlanRow
	ToBuy    string
	ToSell   string
	Net      string
	NetLabel string
	Balanced bool

	Diversification      string
	DiversificationLabel string
	Above                *ExtremeRow
	Below                *ExtremeRow
	Actions              []ActionRow
}

// HoldingRow is a holding formatted for the holdings table.
type HoldingRow struct {
	ID       string
	Ticker   string
	Class    string
	Quantity string
	Price    string
	Value    string
	Share    string
}

// AllocationRow compares the target and current share of a class.
type AllocationRow struct {
	Class     string
	Target    string
	Current   string
	Deviation string
}

// PlanRow is the trade planned for a class.
type PlanRow struct {
	Class        string
	IdealPercent string
	IdealValue   string
	Action       invest.Action
	Amount       string // absolute, "-" for hold
}

// ExtremeRow is the most overweight or underweight class.
type ExtremeRow struct {
	Class     string
	Deviation string
	Above     bool
	Gap       string // absolute deviation
}

// ActionRow is a suggested action of the insights.
type ActionRow struct {
	Class  string
	Action invest.Action
	Amount string
	Share  string
}

// NewDashboard formats the analysis a of p in currency.
func NewDashboard(p invest.Portfolio, a invest.Analysis, currency string) *Dashboard {
	money := func(v float64) string { return invest.FormatMoney(v, currency) }

	d := &Dashboard{
		Title:                 "Portfolio",
		Total:                 money(a.TotalValue),
		Contribution:          money(a.Contribution),
		TotalWithContribution: money(a.TotalWithContribution),
		MaxDeviation:          a.MaxDeviation.String(),
		MaxDeviationClass:     cell(a.MaxDeviationClass),
		HasContribution:       a.Contribution > 0,
		HoldingsTotal:         money(a.TotalValue),
		HasTarget:             len(a.Target) > 0,
		TargetTotal:           a.Target.Sum().String(),
		Diversification:       strconv.FormatFloat(math.Round(a.DiversificationScore), 'f', 0, 64),
		DiversificationLabel:  DiversificationLabel(a.DiversificationScore),
	}
	if a.TotalValue > 0 {
		d.ContributionShare = a.ContributionShare().String()
	}

	for _, h := range p {
		share := invest.Percent(0)
		if a.TotalValue > 0 {
			share = invest.Percent(h.Value() * 100 / a.TotalValue)
		}
		d.Holdings = append(d.Holdings, HoldingRow{
			ID:       h.ID,
			Ticker:   cell(h.Ticker),
			Class:    cell(h.Class),
			Quantity: strconv.FormatFloat(invest.Finite(h.Quantity), 'f', -1, 64),
			Price:    money(h.Price),
			Value:    money(h.Value()),
			Share:    share.String(),
		})
	}

	for _, c := range a.Deviation.Classes() {
		d.Allocation = append(d.Allocation, AllocationRow{
			Class:     cell(c),
			Target:    a.Target[c].String(),
			Current:   a.CurrentAllocation[c].String(),
			Deviation: a.Deviation[c].SignedString(),
		})
	}

	for _, c := range a.Rebalancing.Classes() {
		v := a.Rebalancing[c]
		row := PlanRow{
			Class:        cell(c),
			IdealPercent: a.Target[c].String(),
			IdealValue:   money(a.IdealValue(c)),
			Action:       invest.ActionFor(v),
			Amount:       "-",
		}
		if row.Action != invest.ActionHold {
			row.Amount = money(math.Abs(v))
		}
		d.Plan = append(d.Plan, row)
	}
	s := a.Rebalancing.Summary()
	d.ToBuy, d.ToSell, d.Net = money(s.ToBuy), money(s.ToSell), money(math.Abs(s.Net))
	d.Balanced = s.Balanced
	switch {
	case math.Abs(s.Net) < invest.HoldThreshold:
		d.NetLabel = "balanced"
	case s.Net > 0:
		d.NetLabel = "net buy"
	default:
		d.NetLabel = "net sell"
	}

	if above, below, ok := invest.Extremes(a.Deviation); ok {
		if above.Deviation.Abs() > ExtremeThreshold {
			d.Above = extreme(above)
		}
		if below.Class != above.Class && below.Deviation.Abs() > ExtremeThreshold {
			d.Below = extreme(below)
		}
	}

	for i, in := range a.Insights {
		if i == MaxActions {
			break
		}
		d.Actions = append(d.Actions, ActionRow{
			Class:  cell(in.Class),
			Action: in.Action,
			Amount: money(in.Amount),
			Share:  in.Deviation.Abs().String(),
		})
	}
	return d
}

func extreme(c invest.ClassDeviation) *ExtremeRow {
	return &ExtremeRow{
		Class:     cell(c.Class),
		Deviation: c.Deviation.SignedString(),
		Above:     c.Deviation > 0,
		Gap:       c.Deviation.Abs().String(),
	}
}

// DiversificationLabel qualifies a diversification score.
func DiversificationLabel(score float64) string {
	switch {
	case score >= 70:
		return "Excellent diversification!"
	case score >= 50:
		return "Good diversification"
	default:
		return "Consider diversifying more"
	}
}

// cell escapes s for a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "|", `\|`)
}
