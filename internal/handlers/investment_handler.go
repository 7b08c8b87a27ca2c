package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "twofold/internal/errors"
	"twofold/internal/models"
	"twofold/internal/pagination"
	"twofold/internal/services"
)

const dateLayout = "2006-01-02"

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
	auditService      services.AuditServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer, auditService services.AuditServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService, auditService: auditService}
}

// AddInvestmentRequest represents the request payload for logging an investment.
// The investor is always the session's role.
type AddInvestmentRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"1500.00"`
	Date   string           `json:"date" binding:"required,iso_date" example:"2024-03-15"`
	Notes  string           `json:"notes" binding:"max=500"`
}

// AddInvestment handles logging a new investment.
// @Summary     Add investment
// @Description Log an investment made by the current session's role
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddInvestmentRequest true "Investment details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) AddInvestment(c *gin.Context) {
	sess, err := getSession(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date"))
		return
	}

	investment, err := h.investmentService.AddInvestment(c.Request.Context(), sess, *req.Amount, date, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), sess, services.AuditActionCreate, "investment", investment.ID, c.ClientIP(),
		map[string]interface{}{"amount": investment.Amount.String(), "date": req.Date})

	c.JSON(http.StatusCreated, gin.H{"investment": investment})
}

// listInvestmentsQuery is the query string of the investment listing.
type listInvestmentsQuery struct {
	pagination.PageRequest
	Investor string `form:"investor" binding:"omitempty,role"`
}

// ListInvestments handles listing the investment log.
// @Summary     List investments
// @Description Get a paginated list of investments, newest date first
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       investor  query string false "Only this role's investments (Husband or Wife)"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Investment] "Paginated investments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	var query listInvestmentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.investmentService.ListInvestments(c.Request.Context(), models.Role(query.Investor), query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetInvestment handles fetching a single investment.
// @Summary     Get investment
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} models.Investment "Investment"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id} [get]
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	investment, err := h.investmentService.GetInvestmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// DeleteInvestment handles removing an investment.
// @Summary     Delete investment
// @Description Remove an investment. Either role may delete any entry.
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} MessageResponse "Investment deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	sess, err := getSession(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	if err := h.investmentService.DeleteInvestment(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), sess, services.AuditActionDelete, "investment", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Investment deleted"})
}

// GetStats handles the investment split.
// @Summary     Investment stats
// @Description Total invested and each role's share of it
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} stats.Split "Investment split"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/stats [get]
func (h *InvestmentHandler) GetStats(c *gin.Context) {
	split, err := h.investmentService.GetStats(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": split})
}

// GetTimeline handles the per-month investment totals.
// @Summary     Investment timeline
// @Description Per calendar month totals by role, oldest first
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]stats.TimelinePoint "Timeline"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/timeline [get]
func (h *InvestmentHandler) GetTimeline(c *gin.Context) {
	points, err := h.investmentService.GetTimeline(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeline": points})
}
