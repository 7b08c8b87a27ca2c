package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"twofold/internal/services"
)

// DashboardHandler serves the combined landing page figures.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
	now              func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, now: time.Now}
}

// GetDashboard returns investment stats, the month summary and the comparison.
// @Summary     Dashboard
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int false "Year"
// @Param       month query int false "Month (1-12)"
// @Success     200 {object} services.Dashboard "Dashboard"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	period, err := bindPeriod(c, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), period.Year, period.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
