// Package invest provides the types and the calculation engine of a personal,
// local-first investment tracker. Users record holdings (ticker, asset class,
// quantity, unit price), define a target allocation by asset class, and the
// engine derives where the portfolio stands and what it takes to get back on
// target.
//
// The core functionalities include:
//   - Valuation: the value of a holding and of the whole portfolio.
//   - Allocation: the share of the portfolio value held in each asset class.
//   - Deviation: current minus target percentage, class by class.
//   - Rebalancing: the amount to buy (positive) or sell (negative) in each
//     targeted class, optionally counting a planned cash contribution.
//   - Indicators: largest deviation, a diversification score and ranked
//     rebalancing insights.
//
// Every calculation is a pure function of its inputs. Malformed numbers never
// cause a failure: they are sanitized at the boundary (see Amount, Finite and
// Number) and degrade to zero, so that a summary can always be displayed even
// from corrupted persisted state.
//
// This package serves as the foundational logic for the `inv` command-line
// tool. Persistence lives in the store package and presentation in renderer.
package invest
