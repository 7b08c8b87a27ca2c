package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	apperrors "twofold/internal/errors"
	"twofold/internal/models"
	"twofold/internal/pagination"
	"twofold/internal/session"
	"twofold/internal/testutil"
	"twofold/internal/uuid"
)

func sessionFor(u *models.User) session.Session {
	return session.Session{UserID: u.ID, Role: u.Role, Name: u.Name}
}

func TestAddInvestment(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		husband, _ := testutil.CreateTestCouple(t, db)

		date := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
		inv, err := svc.AddInvestment(ctx, sessionFor(husband), decimal.RequireFromString("1500.456"), date, "  index fund ")
		testutil.AssertNoError(t, err)

		if inv.ID == "" {
			t.Fatal("expected non-empty investment ID")
		}
		if inv.Investor != models.RoleHusband {
			t.Errorf("expected investor Husband, got %s", inv.Investor)
		}
		if inv.UserID != husband.ID {
			t.Errorf("expected user %s, got %s", husband.ID, inv.UserID)
		}
		testutil.AssertDecimal(t, inv.Amount, "1500.46")
		if !inv.Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected date truncated to midnight, got %v", inv.Date)
		}
		if inv.Notes != "index fund" {
			t.Errorf("expected trimmed notes, got %q", inv.Notes)
		}
	})

	t.Run("zero_amount_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		_, wife := testutil.CreateTestCouple(t, db)

		inv, err := svc.AddInvestment(ctx, sessionFor(wife), decimal.Zero, time.Now(), "")
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, inv.Amount, "0")
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		husband, _ := testutil.CreateTestCouple(t, db)

		_, err := svc.AddInvestment(ctx, sessionFor(husband), decimal.NewFromInt(-1), time.Now(), "")
		testutil.AssertAppError(t, err, "NEGATIVE_AMOUNT")
	})

	t.Run("amount_out_of_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		husband, _ := testutil.CreateTestCouple(t, db)

		for _, v := range []string{"1000000000000", "999999999999.995"} {
			_, err := svc.AddInvestment(ctx, sessionFor(husband), decimal.RequireFromString(v), time.Now(), "")
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		}

		inv, err := svc.AddInvestment(ctx, sessionFor(husband), decimal.RequireFromString("999999999999.99"), time.Now(), "")
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, inv.Amount, "999999999999.99")
	})

	t.Run("missing_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		husband, _ := testutil.CreateTestCouple(t, db)

		_, err := svc.AddInvestment(ctx, sessionFor(husband), decimal.NewFromInt(10), time.Time{}, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("no_session", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)

		_, err := svc.AddInvestment(ctx, session.Session{}, decimal.NewFromInt(10), time.Now(), "")
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})
}

func TestListInvestments(t *testing.T) {
	ctx := context.Background()

	t.Run("newest_first_paginated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		husband, wife := testutil.CreateTestCouple(t, db)

		testutil.CreateTestInvestment(t, db, husband, "100", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestInvestment(t, db, wife, "200", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestInvestment(t, db, husband, "300", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

		page, err := svc.ListInvestments(ctx, "", pagination.PageRequest{Page: 1, PageSize: 2})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 3 {
			t.Errorf("expected 3 total items, got %d", page.TotalItems)
		}
		if page.TotalPages != 2 {
			t.Errorf("expected 2 pages, got %d", page.TotalPages)
		}
		if len(page.Data) != 2 {
			t.Fatalf("expected 2 items on first page, got %d", len(page.Data))
		}
		testutil.AssertDecimal(t, page.Data[0].Amount, "200")
		testutil.AssertDecimal(t, page.Data[1].Amount, "300")
	})

	t.Run("filtered_by_investor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		husband, wife := testutil.CreateTestCouple(t, db)

		testutil.CreateTestInvestment(t, db, husband, "100", time.Now())
		testutil.CreateTestInvestment(t, db, wife, "200", time.Now())
		testutil.CreateTestInvestment(t, db, wife, "300", time.Now())

		page, err := svc.ListInvestments(ctx, models.RoleWife, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 2 {
			t.Errorf("expected 2 wife investments, got %d", page.TotalItems)
		}
		for _, inv := range page.Data {
			if inv.Investor != models.RoleWife {
				t.Errorf("unexpected investor %s", inv.Investor)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)

		page, err := svc.ListInvestments(ctx, "", pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 0 || len(page.Data) != 0 {
			t.Errorf("expected empty page, got %d items", len(page.Data))
		}
	})
}

func TestDeleteInvestment(t *testing.T) {
	ctx := context.Background()

	t.Run("removes_from_stats", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		husband, wife := testutil.CreateTestCouple(t, db)

		inv := testutil.CreateTestInvestment(t, db, husband, "100", time.Now())
		testutil.CreateTestInvestment(t, db, wife, "50", time.Now())

		testutil.AssertNoError(t, svc.DeleteInvestment(ctx, inv.ID))

		split, err := svc.GetStats(ctx)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, split.Total, "50")
		testutil.AssertDecimal(t, split.HusbandTotal, "0")

		_, err = svc.GetInvestmentByID(ctx, inv.ID)
		testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)

		for _, id := range []string{"missing", uuid.New()} {
			err := svc.DeleteInvestment(ctx, id)
			if !errors.Is(err, apperrors.ErrInvestmentNotFound) {
				t.Errorf("%s: expected ErrInvestmentNotFound, got %v", id, err)
			}
		}
	})
}

func TestInvestmentStats(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewInvestmentService(db)
	husband, wife := testutil.CreateTestCouple(t, db)

	testutil.CreateTestInvestment(t, db, husband, "300", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	testutil.CreateTestInvestment(t, db, husband, "300", time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC))
	testutil.CreateTestInvestment(t, db, wife, "400", time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC))

	t.Run("split", func(t *testing.T) {
		split, err := svc.GetStats(ctx)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, split.Total, "1000")
		testutil.AssertDecimal(t, split.HusbandTotal, "600")
		testutil.AssertDecimal(t, split.WifeTotal, "400")
		if split.HusbandPercentage != 60 || split.WifePercentage != 40 {
			t.Errorf("expected 60/40, got %v/%v", split.HusbandPercentage, split.WifePercentage)
		}
	})

	t.Run("timeline", func(t *testing.T) {
		points, err := svc.GetTimeline(ctx)
		testutil.AssertNoError(t, err)
		if len(points) != 2 {
			t.Fatalf("expected 2 timeline points, got %d", len(points))
		}
		if points[0].Month != 1 || points[1].Month != 2 {
			t.Errorf("expected months 1,2 got %d,%d", points[0].Month, points[1].Month)
		}
		testutil.AssertDecimal(t, points[1].Total, "700")
	})
}
