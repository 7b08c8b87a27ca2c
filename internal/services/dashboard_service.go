package services

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// dashboardService assembles the landing page from the other services.
type dashboardService struct {
	investments InvestmentServicer
	savings     SavingsServicer
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(investments InvestmentServicer, savings SavingsServicer) DashboardServicer {
	return &dashboardService{investments: investments, savings: savings}
}

// GetDashboard loads the investment split, the month summary and the
// month-over-month comparison concurrently.
func (s *dashboardService) GetDashboard(ctx context.Context, year, month int) (*Dashboard, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	d := &Dashboard{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		split, err := s.investments.GetStats(gctx)
		if err != nil {
			return err
		}
		d.Investments = *split
		return nil
	})
	g.Go(func() error {
		summary, err := s.savings.GetMonthSummary(gctx, year, month)
		if err != nil {
			return err
		}
		d.Month = summary
		return nil
	})
	g.Go(func() error {
		c, err := s.savings.CompareMonth(gctx, year, month)
		if err != nil {
			return err
		}
		d.Comparison = *c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}
