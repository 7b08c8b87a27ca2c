// Package stats holds the pure aggregation rules behind the dashboards:
// role splits, goal progress, month-over-month change and the yearly
// rollup. Nothing here touches the store; every function is total over
// its input and safe to call concurrently.
package stats

import (
	"github.com/shopspring/decimal"

	"twofold/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Split is the per-role breakdown of a set of amounts.
type Split struct {
	Total             decimal.Decimal `json:"total"`
	HusbandTotal      decimal.Decimal `json:"husband_total"`
	WifeTotal         decimal.Decimal `json:"wife_total"`
	HusbandPercentage float64         `json:"husband_percentage"`
	WifePercentage    float64         `json:"wife_percentage"`
}

// Entry is a single role-tagged amount.
type Entry struct {
	Role   models.Role
	Amount decimal.Decimal
}

// SplitOf sums every entry into Total and, for the two known roles, into
// the matching role total. Entries with an unknown role only count toward
// Total.
func SplitOf(entries []Entry) Split {
	s := Split{
		Total:        decimal.Zero,
		HusbandTotal: decimal.Zero,
		WifeTotal:    decimal.Zero,
	}
	for _, e := range entries {
		s.Total = s.Total.Add(e.Amount)
		switch e.Role {
		case models.RoleHusband:
			s.HusbandTotal = s.HusbandTotal.Add(e.Amount)
		case models.RoleWife:
			s.WifeTotal = s.WifeTotal.Add(e.Amount)
		}
	}
	s.HusbandPercentage = Share(s.HusbandTotal, s.Total)
	s.WifePercentage = Share(s.WifeTotal, s.Total)
	return s
}

// Investments computes the investor split over investment records.
func Investments(investments []models.Investment) Split {
	entries := make([]Entry, 0, len(investments))
	for i := range investments {
		entries = append(entries, Entry{Role: investments[i].Investor, Amount: investments[i].Amount})
	}
	return SplitOf(entries)
}

// MonthlySavings computes the saver split over savings rows.
func MonthlySavings(rows []models.MonthlySavingsRow) Split {
	entries := make([]Entry, 0, len(rows))
	for i := range rows {
		entries = append(entries, Entry{Role: rows[i].Role, Amount: rows[i].Amount})
	}
	return SplitOf(entries)
}

// Share returns part as a percentage of total, or 0 when total is not positive.
func Share(part, total decimal.Decimal) float64 {
	if !total.IsPositive() {
		return 0
	}
	return part.Div(total).Mul(hundred).InexactFloat64()
}

// Progress returns how far current is toward goal as a percentage capped
// at 100. A goal that is not positive yields 0.
func Progress(current, goal decimal.Decimal) float64 {
	if !goal.IsPositive() {
		return 0
	}
	pct := current.Div(goal).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return 100
	}
	return pct.InexactFloat64()
}

// SumAmounts totals the saved amount of every row.
func SumAmounts(rows []models.MonthlySavingsRow) decimal.Decimal {
	total := decimal.Zero
	for i := range rows {
		total = total.Add(rows[i].Amount)
	}
	return total
}

// SumGoals totals the goal amount of every row.
func SumGoals(rows []models.MonthlySavingsRow) decimal.Decimal {
	total := decimal.Zero
	for i := range rows {
		total = total.Add(rows[i].GoalAmount)
	}
	return total
}
