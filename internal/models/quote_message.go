package models

import (
	"time"

	"twofold/internal/uuid"

	"gorm.io/gorm"
)

// QuoteMessage counts likes for the motivation message shown on a given day.
type QuoteMessage struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	MessageID int       `gorm:"not null;uniqueIndex:idx_quote_message_day" json:"message_id"`
	QuoteDate string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_quote_message_day" json:"quote_date"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName matches the table created by the migrations.
func (QuoteMessage) TableName() string {
	return "quote_message"
}

// BeforeCreate hook generates a UUIDv7 for new records
func (q *QuoteMessage) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.New()
	}
	return nil
}
