package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is a single contribution logged by one participant.
// Investments are added and deleted, never edited.
type Investment struct {
	Base
	UserID   string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Investor Role            `gorm:"type:varchar(16);not null;index" json:"investor"`
	Amount   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Date     time.Time       `gorm:"type:date;not null;index" json:"date"`
	Notes    string          `json:"notes,omitempty"`
}
