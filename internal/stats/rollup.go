package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"twofold/internal/models"
)

// MonthAggregate is one slot of a yearly rollup.
type MonthAggregate struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	Total        decimal.Decimal `json:"total"`
	Goal         decimal.Decimal `json:"goal"`
	HusbandTotal decimal.Decimal `json:"husband_total"`
	WifeTotal    decimal.Decimal `json:"wife_total"`
}

// RollupYear folds the savings rows of year into exactly twelve
// aggregates, January first. Months without rows stay zero. Rows from
// another year or with a month outside 1..12 are skipped.
func RollupYear(year int, rows []models.MonthlySavingsRow) []MonthAggregate {
	out := make([]MonthAggregate, 12)
	for i := range out {
		out[i] = MonthAggregate{
			Year:         year,
			Month:        i + 1,
			Total:        decimal.Zero,
			Goal:         decimal.Zero,
			HusbandTotal: decimal.Zero,
			WifeTotal:    decimal.Zero,
		}
	}

	for i := range rows {
		r := &rows[i]
		if r.Year != year || r.Month < 1 || r.Month > 12 {
			continue
		}
		agg := &out[r.Month-1]
		agg.Total = agg.Total.Add(r.Amount)
		agg.Goal = agg.Goal.Add(r.GoalAmount)
		switch r.Role {
		case models.RoleHusband:
			agg.HusbandTotal = agg.HusbandTotal.Add(r.Amount)
		case models.RoleWife:
			agg.WifeTotal = agg.WifeTotal.Add(r.Amount)
		}
	}
	return out
}

// TimelinePoint is the per-role investment total of one calendar month.
type TimelinePoint struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	HusbandTotal decimal.Decimal `json:"husband_total"`
	WifeTotal    decimal.Decimal `json:"wife_total"`
	Total        decimal.Decimal `json:"total"`
}

// InvestmentTimeline groups investments by the calendar month of their
// date, oldest month first. Only months with at least one investment appear.
func InvestmentTimeline(investments []models.Investment) []TimelinePoint {
	byMonth := make(map[int]*TimelinePoint)
	for i := range investments {
		inv := &investments[i]
		y, m := inv.Date.Year(), int(inv.Date.Month())
		key := y*100 + m
		p, ok := byMonth[key]
		if !ok {
			p = &TimelinePoint{
				Year:         y,
				Month:        m,
				HusbandTotal: decimal.Zero,
				WifeTotal:    decimal.Zero,
				Total:        decimal.Zero,
			}
			byMonth[key] = p
		}
		p.Total = p.Total.Add(inv.Amount)
		switch inv.Investor {
		case models.RoleHusband:
			p.HusbandTotal = p.HusbandTotal.Add(inv.Amount)
		case models.RoleWife:
			p.WifeTotal = p.WifeTotal.Add(inv.Amount)
		}
	}

	keys := make([]int, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]TimelinePoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byMonth[k])
	}
	return out
}
