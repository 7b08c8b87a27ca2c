package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"twofold/internal/services"
)

// QuoteHandler serves the daily motivation message.
type QuoteHandler struct {
	quoteService services.QuoteServicer
	now          func() time.Time
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quoteService services.QuoteServicer) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService, now: time.Now}
}

// GetToday returns today's message and its likes.
// @Summary     Today's quote
// @Tags        quotes
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.TodaysQuote "Quote"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "No quote available"
// @Router      /quotes/today [get]
func (h *QuoteHandler) GetToday(c *gin.Context) {
	quote, err := h.quoteService.Today(c.Request.Context(), h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Like adds a like to today's message.
// @Summary     Like today's quote
// @Tags        quotes
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.TodaysQuote "Quote with updated likes"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "No quote available"
// @Router      /quotes/today/like [post]
func (h *QuoteHandler) Like(c *gin.Context) {
	quote, err := h.quoteService.Like(c.Request.Context(), h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
