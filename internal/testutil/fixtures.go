package testutil

import (
	"sync/atomic"
	"testing"
	"time"

	"twofold/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates the user for the given role.
func CreateTestUser(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()

	name := "Moon"
	if role == models.RoleWife {
		name = "Lovely"
	}
	user := &models.User{Role: role, Name: name}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCouple creates both participants.
func CreateTestCouple(t *testing.T, db *gorm.DB) (husband, wife *models.User) {
	t.Helper()
	return CreateTestUser(t, db, models.RoleHusband), CreateTestUser(t, db, models.RoleWife)
}

// CreateTestInvestment logs an investment of amount for user on date.
func CreateTestInvestment(t *testing.T, db *gorm.DB, user *models.User, amount string, date time.Time) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		UserID:   user.ID,
		Investor: user.Role,
		Amount:   decimal.RequireFromString(amount),
		Date:     date,
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}

// CreateTestSavings inserts a savings row directly, bypassing the upsert.
func CreateTestSavings(t *testing.T, db *gorm.DB, user *models.User, year, month int, amount, goal string) *models.MonthlySavings {
	t.Helper()

	row := &models.MonthlySavings{
		UserID:     user.ID,
		Year:       year,
		Month:      month,
		Amount:     decimal.RequireFromString(amount),
		GoalAmount: decimal.RequireFromString(goal),
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test savings: %v", err)
	}
	return row
}
