package testutil_test

import (
	"testing"
	"time"

	"twofold/internal/errors"
	"twofold/internal/models"
	"twofold/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"users", "investments", "monthly_savings", "quote_message", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	husband, wife := testutil.CreateTestCouple(t, db)
	if husband.ID == "" || wife.ID == "" {
		t.Fatal("users should have generated IDs")
	}
	if wife.Role != models.RoleWife {
		t.Errorf("expected wife role, got %s", wife.Role)
	}

	inv := testutil.CreateTestInvestment(t, db, husband, "1500.50", time.Now())
	if inv.Investor != models.RoleHusband {
		t.Errorf("expected investor Husband, got %s", inv.Investor)
	}

	row := testutil.CreateTestSavings(t, db, wife, 2024, 3, "100", "200")
	if row.ID == "" || row.Month != 3 {
		t.Errorf("unexpected savings row: %+v", row)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrInvestmentNotFound, "custom message")
	testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
