package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "twofold/internal/errors"
	"twofold/internal/models"
	"twofold/internal/stats"
)

const (
	minYear = 1900
	maxYear = 9999
)

// savingsService handles the monthly savings log.
type savingsService struct {
	db     *gorm.DB
	reader SavingsReader
	now    func() time.Time
}

// NewSavingsService creates a new SavingsServicer reading through reader.
func NewSavingsService(db *gorm.DB, reader SavingsReader) SavingsServicer {
	return &savingsService{db: db, reader: reader, now: time.Now}
}

// ValidatePeriod checks a calendar year and an optional month (0 = none).
func ValidatePeriod(year, month int) error {
	if year < minYear || year > maxYear {
		return apperrors.ErrInvalidPeriod
	}
	if month < 0 || month > 12 {
		return apperrors.ErrInvalidPeriod
	}
	return nil
}

func validateMonth(year, month int) error {
	if month == 0 {
		return apperrors.ErrInvalidPeriod
	}
	return ValidatePeriod(year, month)
}

// UpsertMonthlySavings writes the single savings row for (user, year,
// month). A missing row is created; an existing one gets its amount, goal,
// notes and updated_at replaced while its ID and created_at stay put.
// Negative amounts are stored as zero.
func (s *savingsService) UpsertMonthlySavings(ctx context.Context, in MonthlySavingsInput) (*models.MonthlySavings, error) {
	if err := validateMonth(in.Year, in.Month); err != nil {
		return nil, err
	}
	if in.UserID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user is required")
	}

	amount, err := roundAmount("amount", decimal.Max(decimal.Zero, in.Amount))
	if err != nil {
		return nil, err
	}
	goal, err := roundAmount("goal_amount", decimal.Max(decimal.Zero, in.GoalAmount))
	if err != nil {
		return nil, err
	}

	record := &models.MonthlySavings{
		UserID:     in.UserID,
		Year:       in.Year,
		Month:      in.Month,
		Amount:     amount,
		GoalAmount: goal,
		Notes:      strings.TrimSpace(in.Notes),
		UpdatedAt:  s.now(),
	}

	var stored models.MonthlySavings
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").Where("id = ?", in.UserID).First(&models.User{}).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "year"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "goal_amount", "notes", "updated_at"}),
		}).Create(record).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ? AND year = ? AND month = ?", in.UserID, in.Year, in.Month).
			First(&stored).Error
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &stored, nil
}

// GetMonthlySavings returns both participants' rows for a month.
func (s *savingsService) GetMonthlySavings(ctx context.Context, year, month int) ([]models.MonthlySavingsRow, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	rows, err := s.reader.ReadSavings(ctx, SavingsFilter{Year: year, Month: month})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

// GetMonthSummary fetches a month and derives its split and goal progress.
func (s *savingsService) GetMonthSummary(ctx context.Context, year, month int) (*MonthSummary, error) {
	rows, err := s.GetMonthlySavings(ctx, year, month)
	if err != nil {
		return nil, err
	}

	split := stats.MonthlySavings(rows)
	goal := stats.SumGoals(rows)
	return &MonthSummary{
		Year:     year,
		Month:    month,
		Rows:     rows,
		Stats:    split,
		Goal:     goal,
		Progress: stats.Progress(split.Total, goal),
	}, nil
}

// GetYearRollup fetches a year and folds it into twelve monthly slots.
func (s *savingsService) GetYearRollup(ctx context.Context, year int) ([]stats.MonthAggregate, error) {
	if err := ValidatePeriod(year, 0); err != nil {
		return nil, err
	}
	rows, err := s.reader.ReadSavings(ctx, SavingsFilter{Year: year})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stats.RollupYear(year, rows), nil
}

// CompareMonth compares a month's total with the calendar month before it.
// The two months are read independently and concurrently.
func (s *savingsService) CompareMonth(ctx context.Context, year, month int) (*stats.Comparison, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	prevYear, prevMonth := stats.PreviousMonth(year, month)

	var thisRows, lastRows []models.MonthlySavingsRow
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		thisRows, err = s.reader.ReadSavings(gctx, SavingsFilter{Year: year, Month: month})
		return err
	})
	g.Go(func() error {
		var err error
		lastRows, err = s.reader.ReadSavings(gctx, SavingsFilter{Year: prevYear, Month: prevMonth})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	c := stats.Compare(stats.SumAmounts(thisRows), stats.SumAmounts(lastRows))
	return &c, nil
}
