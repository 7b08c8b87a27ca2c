package models

import (
	"time"

	"twofold/internal/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlySavings holds what one user saved in one calendar month and the
// goal they set for it. There is at most one row per (user, year, month);
// writes go through an upsert on that triple, so no soft deletes.
type MonthlySavings struct {
	ID         string          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string          `gorm:"type:uuid;not null;uniqueIndex:idx_monthly_savings_user_period" json:"user_id"`
	Year       int             `gorm:"not null;uniqueIndex:idx_monthly_savings_user_period;index" json:"year"`
	Month      int             `gorm:"not null;uniqueIndex:idx_monthly_savings_user_period" json:"month"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"amount"`
	GoalAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"goal_amount"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TableName keeps the singular-period table name used by the migrations.
func (MonthlySavings) TableName() string {
	return "monthly_savings"
}

// BeforeCreate hook generates a UUIDv7 for new records
func (m *MonthlySavings) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New()
	}
	return nil
}

// MonthlySavingsRow is a savings record joined with its owner's role and
// name. Role and Name are empty when the owner could not be resolved.
type MonthlySavingsRow struct {
	MonthlySavings
	Role Role   `json:"role,omitempty"`
	Name string `json:"name,omitempty"`
}
