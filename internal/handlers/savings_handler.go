package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "twofold/internal/errors"
	"twofold/internal/services"
)

// SavingsHandler handles the monthly savings log.
type SavingsHandler struct {
	savingsService services.SavingsServicer
	auditService   services.AuditServicer
	now            func() time.Time
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(savingsService services.SavingsServicer, auditService services.AuditServicer) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService, auditService: auditService, now: time.Now}
}

// UpsertSavingsRequest represents one role's savings entry for a month.
type UpsertSavingsRequest struct {
	Year       int              `json:"year"`
	Month      int              `json:"month"`
	Amount     *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"1200.00"`
	GoalAmount *decimal.Decimal `json:"goal_amount" swaggertype:"string" example:"2000.00"`
	Notes      string           `json:"notes" binding:"max=500"`
}

// GetMonthly handles reading a month of savings.
// @Summary     Monthly savings
// @Description Both roles' rows for a month with the split and goal progress. Defaults to the current month.
// @Tags        savings
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int false "Year"
// @Param       month query int false "Month (1-12)"
// @Success     200 {object} services.MonthSummary "Month summary"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /savings/monthly [get]
func (h *SavingsHandler) GetMonthly(c *gin.Context) {
	period, err := bindPeriod(c, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.savingsService.GetMonthSummary(c.Request.Context(), period.Year, period.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// UpsertMonthly handles saving the current role's entry for a month.
// @Summary     Save monthly savings
// @Description Create or replace the session role's savings for a month. Negative amounts are stored as zero.
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpsertSavingsRequest true "Savings entry"
// @Success     200 {object} models.MonthlySavings "Stored entry"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings/monthly [put]
func (h *SavingsHandler) UpsertMonthly(c *gin.Context) {
	sess, err := getSession(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	in := services.MonthlySavingsInput{
		UserID: sess.UserID,
		Year:   req.Year,
		Month:  req.Month,
		Amount: *req.Amount,
		Notes:  req.Notes,
	}
	if req.GoalAmount != nil {
		in.GoalAmount = *req.GoalAmount
	}

	row, err := h.savingsService.UpsertMonthlySavings(c.Request.Context(), in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), sess, services.AuditActionUpsert, "monthly_savings", row.ID, c.ClientIP(),
		map[string]interface{}{"year": row.Year, "month": row.Month, "amount": row.Amount.String(), "goal_amount": row.GoalAmount.String()})

	c.JSON(http.StatusOK, gin.H{"savings": row})
}

// GetYearly handles the twelve month rollup.
// @Summary     Yearly rollup
// @Description Twelve monthly slots with totals, goals and per-role sums. Defaults to the current year.
// @Tags        savings
// @Produce     json
// @Security    BearerAuth
// @Param       year query int false "Year"
// @Success     200 {object} map[string]interface{} "Rollup"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /savings/yearly [get]
func (h *SavingsHandler) GetYearly(c *gin.Context) {
	period, err := bindPeriod(c, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	months, err := h.savingsService.GetYearRollup(c.Request.Context(), period.Year)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": period.Year, "months": months})
}

// GetComparison handles the month-over-month comparison.
// @Summary     Month comparison
// @Description Compare a month's savings total with the previous calendar month
// @Tags        savings
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int false "Year"
// @Param       month query int false "Month (1-12)"
// @Success     200 {object} stats.Comparison "Comparison"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /savings/comparison [get]
func (h *SavingsHandler) GetComparison(c *gin.Context) {
	period, err := bindPeriod(c, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	comparison, err := h.savingsService.CompareMonth(c.Request.Context(), period.Year, period.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": period.Year, "month": period.Month, "comparison": comparison})
}
