package services

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "twofold/internal/errors"
	"twofold/internal/models"
	"twofold/internal/quotes"
)

const quoteDateLayout = "2006-01-02"

// quoteService tracks likes for the daily motivation message.
type quoteService struct {
	db *gorm.DB
}

// NewQuoteService creates a new QuoteServicer.
func NewQuoteService(db *gorm.DB) QuoteServicer {
	return &quoteService{db: db}
}

// Today returns the message for now's day of the month and its like count.
func (s *quoteService) Today(ctx context.Context, now time.Time) (*TodaysQuote, error) {
	msg, err := quotes.ForDay(now.Day())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQuoteUnavailable, err)
	}

	row, err := s.getOrCreate(ctx, msg.ID, now.Format(quoteDateLayout))
	if err != nil {
		return nil, err
	}

	return &TodaysQuote{MessageID: msg.ID, Message: msg.Message, Date: row.QuoteDate, Likes: row.Likes}, nil
}

// Like adds one like to today's message and returns the updated quote.
func (s *quoteService) Like(ctx context.Context, now time.Time) (*TodaysQuote, error) {
	msg, err := quotes.ForDay(now.Day())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrQuoteUnavailable, err)
	}
	date := now.Format(quoteDateLayout)

	if _, err := s.getOrCreate(ctx, msg.ID, date); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&models.QuoteMessage{}).
		Where("message_id = ? AND quote_date = ?", msg.ID, date).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var row models.QuoteMessage
	if err := s.db.WithContext(ctx).Where("message_id = ? AND quote_date = ?", msg.ID, date).First(&row).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &TodaysQuote{MessageID: msg.ID, Message: msg.Message, Date: date, Likes: row.Likes}, nil
}

// getOrCreate returns the like counter for (message, day), creating it with
// zero likes. Concurrent creators converge on the same row.
func (s *quoteService) getOrCreate(ctx context.Context, messageID int, date string) (*models.QuoteMessage, error) {
	row := &models.QuoteMessage{MessageID: messageID, QuoteDate: date}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var stored models.QuoteMessage
	if err := s.db.WithContext(ctx).Where("message_id = ? AND quote_date = ?", messageID, date).First(&stored).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stored, nil
}
