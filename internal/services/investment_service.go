package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "twofold/internal/errors"
	"twofold/internal/models"
	"twofold/internal/pagination"
	"twofold/internal/session"
	"twofold/internal/stats"
	"twofold/internal/uuid"
)

// maxAmount is the first value a numeric(14,2) column cannot hold.
var maxAmount = decimal.New(1, 12)

// roundAmount rounds to cents and rejects values the store cannot hold.
func roundAmount(field string, amount decimal.Decimal) (decimal.Decimal, error) {
	rounded := amount.Round(2)
	if rounded.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidInput, field+" must be less than "+maxAmount.String())
	}
	return rounded, nil
}

// investmentService handles the shared investment log.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

// AddInvestment logs an investment made by the session's participant.
func (s *investmentService) AddInvestment(
	ctx context.Context,
	sess session.Session,
	amount decimal.Decimal,
	date time.Time,
	notes string,
) (*models.Investment, error) {
	if sess.UserID == "" || !sess.Role.Valid() {
		return nil, apperrors.ErrUnauthorized
	}
	if amount.IsNegative() {
		return nil, apperrors.ErrNegativeAmount
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	amount, err := roundAmount("amount", amount)
	if err != nil {
		return nil, err
	}

	inv := &models.Investment{
		UserID:   sess.UserID,
		Investor: sess.Role,
		Amount:   amount,
		Date:     time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Notes:    strings.TrimSpace(notes),
	}

	if err := s.db.WithContext(ctx).Create(inv).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return inv, nil
}

// ListInvestments returns investments newest first, optionally only those
// of one investor.
func (s *investmentService) ListInvestments(ctx context.Context, investor models.Role, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error) {
	page.Defaults()

	byInvestor := func(db *gorm.DB) *gorm.DB {
		if investor == "" {
			return db
		}
		return db.Where("investor = ?", investor)
	}

	var totalItems int64
	if err := s.db.WithContext(ctx).Model(&models.Investment{}).Scopes(byInvestor).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var investments []models.Investment
	if err := s.db.WithContext(ctx).Scopes(byInvestor).Order("date DESC").Order("created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(investments, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetInvestmentByID returns a single investment.
func (s *investmentService) GetInvestmentByID(ctx context.Context, id string) (*models.Investment, error) {
	if !uuid.IsValid(id) {
		return nil, apperrors.ErrInvestmentNotFound
	}

	var inv models.Investment
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &inv, nil
}

// DeleteInvestment removes an investment. Either participant may delete any entry.
func (s *investmentService) DeleteInvestment(ctx context.Context, id string) error {
	inv, err := s.GetInvestmentByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(inv).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetStats splits the whole investment log by investor.
func (s *investmentService) GetStats(ctx context.Context) (*stats.Split, error) {
	investments, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	split := stats.Investments(investments)
	return &split, nil
}

// GetTimeline groups the investment log by calendar month.
func (s *investmentService) GetTimeline(ctx context.Context) ([]stats.TimelinePoint, error) {
	investments, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	return stats.InvestmentTimeline(investments), nil
}

func (s *investmentService) all(ctx context.Context) ([]models.Investment, error) {
	var investments []models.Investment
	if err := s.db.WithContext(ctx).Order("date ASC").Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investments, nil
}
