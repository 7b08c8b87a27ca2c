package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"twofold/internal/stats"
	"twofold/internal/testutil"
)

type failingInvestments struct{ InvestmentServicer }

func (failingInvestments) GetStats(context.Context) (*stats.Split, error) {
	return nil, errors.New("boom")
}

var _ InvestmentServicer = failingInvestments{}

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("combines_figures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		husband, wife := testutil.CreateTestCouple(t, db)
		testutil.CreateTestInvestment(t, db, wife, "500", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestSavings(t, db, husband, 2024, 2, "100", "400")
		testutil.CreateTestSavings(t, db, husband, 2024, 1, "50", "400")

		svc := NewDashboardService(NewInvestmentService(db), NewSavingsService(db, NewSavingsReader(db)))
		d, err := svc.GetDashboard(ctx, 2024, 2)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimal(t, d.Investments.WifeTotal, "500")
		if d.Investments.WifePercentage != 100 {
			t.Errorf("expected wife 100%%, got %v", d.Investments.WifePercentage)
		}
		if d.Month == nil || len(d.Month.Rows) != 1 {
			t.Fatalf("expected one savings row for the month, got %+v", d.Month)
		}
		if d.Month.Progress != 25 {
			t.Errorf("expected progress 25, got %v", d.Month.Progress)
		}
		if d.Comparison.ChangePercent != 100 {
			t.Errorf("expected +100%%, got %v", d.Comparison.ChangePercent)
		}
	})

	t.Run("propagates_errors", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		svc := NewDashboardService(failingInvestments{}, NewSavingsService(db, NewSavingsReader(db)))
		if _, err := svc.GetDashboard(ctx, 2024, 2); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("invalid_period", func(t *testing.T) {
		svc := NewDashboardService(failingInvestments{}, nil)
		_, err := svc.GetDashboard(ctx, 2024, 13)
		testutil.AssertAppError(t, err, "INVALID_PERIOD")
	})
}
