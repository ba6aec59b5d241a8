package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase"
	"github.com/eromsubebe/poc-auto-quote-response/pkg"
)

// DashboardHandler serves the operations dashboard: status counts, SLA
// alerts and turnaround statistics.
type DashboardHandler struct {
	dashboard usecase.IDashboardUseCase
	sla       usecase.ISLAUseCase
}

func NewDashboardHandler(dashboard usecase.IDashboardUseCase, sla usecase.ISLAUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, sla: sla}
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.dashboard.Overview(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *DashboardHandler) SLAAlerts(c *gin.Context) {
	includeBreached := c.DefaultQuery("include_breached", "true") != "false"
	approachingHours, _ := strconv.ParseFloat(c.Query("approaching_hours"), 64)

	alerts, err := h.sla.Alerts(c.Request.Context(), includeBreached, approachingHours)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (h *DashboardHandler) SLAStatistics(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("days"))

	stats, err := h.sla.Statistics(c.Request.Context(), days)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, stats)
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrStoreTimeout):
		return pkg.NewDomainError("STORE_TIMEOUT", "Backing store timed out", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
