package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"twofold/internal/models"
	"twofold/internal/pagination"
	"twofold/internal/session"
	"twofold/internal/stats"
)

// UserServicer defines the contract for the two fixed participants.
type UserServicer interface {
	EnsureUsers(ctx context.Context, names map[models.Role]string) ([]models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByRole(ctx context.Context, role models.Role) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// InvestmentServicer defines the contract for the investment log.
type InvestmentServicer interface {
	AddInvestment(ctx context.Context, sess session.Session, amount decimal.Decimal, date time.Time, notes string) (*models.Investment, error)
	ListInvestments(ctx context.Context, investor models.Role, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error)
	GetInvestmentByID(ctx context.Context, id string) (*models.Investment, error)
	DeleteInvestment(ctx context.Context, id string) error
	GetStats(ctx context.Context) (*stats.Split, error)
	GetTimeline(ctx context.Context) ([]stats.TimelinePoint, error)
}

// MonthlySavingsInput is one user's savings entry for a calendar month.
type MonthlySavingsInput struct {
	UserID     string
	Year       int
	Month      int
	Amount     decimal.Decimal
	GoalAmount decimal.Decimal
	Notes      string
}

// MonthSummary is a month of savings rows with their derived figures.
type MonthSummary struct {
	Year     int                        `json:"year"`
	Month    int                        `json:"month"`
	Rows     []models.MonthlySavingsRow `json:"rows"`
	Stats    stats.Split                `json:"stats"`
	Goal     decimal.Decimal            `json:"goal"`
	Progress float64                    `json:"progress"`
}

// SavingsServicer defines the contract for the monthly savings log.
type SavingsServicer interface {
	UpsertMonthlySavings(ctx context.Context, in MonthlySavingsInput) (*models.MonthlySavings, error)
	GetMonthlySavings(ctx context.Context, year, month int) ([]models.MonthlySavingsRow, error)
	GetMonthSummary(ctx context.Context, year, month int) (*MonthSummary, error)
	GetYearRollup(ctx context.Context, year int) ([]stats.MonthAggregate, error)
	CompareMonth(ctx context.Context, year, month int) (*stats.Comparison, error)
}

// TodaysQuote is the motivation message of the day with its like count.
type TodaysQuote struct {
	MessageID int    `json:"message_id"`
	Message   string `json:"message"`
	Date      string `json:"date"`
	Likes     int    `json:"likes"`
}

// QuoteServicer defines the contract for the daily motivation quote.
type QuoteServicer interface {
	Today(ctx context.Context, now time.Time) (*TodaysQuote, error)
	Like(ctx context.Context, now time.Time) (*TodaysQuote, error)
}

// Dashboard combines the figures shown on the landing page.
type Dashboard struct {
	Investments stats.Split      `json:"investments"`
	Month       *MonthSummary    `json:"month"`
	Comparison  stats.Comparison `json:"comparison"`
}

// DashboardServicer defines the contract for the combined dashboard read.
type DashboardServicer interface {
	GetDashboard(ctx context.Context, year, month int) (*Dashboard, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, sess session.Session, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
