package stats

import "github.com/shopspring/decimal"

// Comparison is the change between one month's savings and the month before.
type Comparison struct {
	ThisTotal     decimal.Decimal `json:"this_total"`
	LastTotal     decimal.Decimal `json:"last_total"`
	ChangePercent float64         `json:"change_percent"`
}

// Compare derives the month-over-month change. A zero previous month
// counts as +100% if anything was saved this month and 0% otherwise.
func Compare(thisTotal, lastTotal decimal.Decimal) Comparison {
	c := Comparison{ThisTotal: thisTotal, LastTotal: lastTotal}
	switch {
	case lastTotal.IsPositive():
		c.ChangePercent = thisTotal.Sub(lastTotal).Div(lastTotal).Mul(hundred).InexactFloat64()
	case thisTotal.IsPositive():
		c.ChangePercent = 100
	default:
		c.ChangePercent = 0
	}
	return c
}

// PreviousMonth returns the calendar month before (year, month), rolling
// January back to December of the prior year.
func PreviousMonth(year, month int) (int, int) {
	if month <= 1 {
		return year - 1, 12
	}
	return year, month - 1
}
