package services

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"twofold/internal/logger"
	"twofold/internal/models"
)

// SavingsFilter selects both participants' savings rows. Month 0 means the
// whole year.
type SavingsFilter struct {
	Year  int
	Month int
}

// SavingsReader fetches savings rows together with their owner's role and name.
type SavingsReader interface {
	ReadSavings(ctx context.Context, filter SavingsFilter) ([]models.MonthlySavingsRow, error)
}

// NewSavingsReader returns the default reader: a single joined query that
// falls back to two separate queries merged in memory.
func NewSavingsReader(db *gorm.DB) SavingsReader {
	return NewFallbackSavingsReader(
		NewJoinedSavingsReader(db),
		NewSplitSavingsReader(db),
		logger.Named("savings_reader"),
	)
}

func applySavingsFilter(q *gorm.DB, f SavingsFilter, prefix string) *gorm.DB {
	q = q.Where(prefix+"year = ?", f.Year)
	if f.Month != 0 {
		q = q.Where(prefix+"month = ?", f.Month)
	}
	return q
}

// joinedSavingsReader resolves owners with a join in one round trip.
type joinedSavingsReader struct {
	db *gorm.DB
}

// NewJoinedSavingsReader creates a reader that joins users in the query.
func NewJoinedSavingsReader(db *gorm.DB) SavingsReader {
	return &joinedSavingsReader{db: db}
}

func (r *joinedSavingsReader) ReadSavings(ctx context.Context, f SavingsFilter) ([]models.MonthlySavingsRow, error) {
	q := r.db.WithContext(ctx).
		Table("monthly_savings").
		Select("monthly_savings.*, users.role AS role, users.name AS name").
		Joins("LEFT JOIN users ON users.id = monthly_savings.user_id AND users.deleted_at IS NULL")
	q = applySavingsFilter(q, f, "monthly_savings.")

	rows := []models.MonthlySavingsRow{}
	if err := q.Order("monthly_savings.month ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// splitSavingsReader fetches savings and users separately and matches them by user ID.
type splitSavingsReader struct {
	db *gorm.DB
}

// NewSplitSavingsReader creates a reader that performs the join in memory.
func NewSplitSavingsReader(db *gorm.DB) SavingsReader {
	return &splitSavingsReader{db: db}
}

func (r *splitSavingsReader) ReadSavings(ctx context.Context, f SavingsFilter) ([]models.MonthlySavingsRow, error) {
	var records []models.MonthlySavings
	q := applySavingsFilter(r.db.WithContext(ctx).Model(&models.MonthlySavings{}), f, "")
	if err := q.Order("month ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	var users []models.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	rows := make([]models.MonthlySavingsRow, 0, len(records))
	for _, rec := range records {
		row := models.MonthlySavingsRow{MonthlySavings: rec}
		if u, ok := byID[rec.UserID]; ok {
			row.Role = u.Role
			row.Name = u.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// fallbackSavingsReader tries primary, then secondary. When both fail the
// result is an empty collection rather than an error.
type fallbackSavingsReader struct {
	primary   SavingsReader
	secondary SavingsReader
	log       *zap.SugaredLogger
}

// NewFallbackSavingsReader chains two readers.
func NewFallbackSavingsReader(primary, secondary SavingsReader, log *zap.SugaredLogger) SavingsReader {
	return &fallbackSavingsReader{primary: primary, secondary: secondary, log: log}
}

func (r *fallbackSavingsReader) ReadSavings(ctx context.Context, f SavingsFilter) ([]models.MonthlySavingsRow, error) {
	rows, err := r.primary.ReadSavings(ctx, f)
	if err == nil {
		return rows, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	r.log.Warnw("joined savings read failed, fetching without join",
		"error", err, "year", f.Year, "month", f.Month)

	rows, err = r.secondary.ReadSavings(ctx, f)
	if err == nil {
		return rows, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	r.log.Errorw("savings read failed, returning no rows",
		"error", err, "year", f.Year, "month", f.Month)
	return []models.MonthlySavingsRow{}, nil
}
