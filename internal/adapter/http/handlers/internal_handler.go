package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase"
	"github.com/eromsubebe/poc-auto-quote-response/pkg"
)

// InternalHandler serves scheduler-only endpoints. Callers authenticate
// with the X-Cron-Token shared secret; when no token is configured the
// endpoint hides behind a 404 so the surface stays invisible.
type InternalHandler struct {
	sla       usecase.ISLAUseCase
	cronToken string
}

func NewInternalHandler(sla usecase.ISLAUseCase, cronToken string) *InternalHandler {
	return &InternalHandler{sla: sla, cronToken: cronToken}
}

func (h *InternalHandler) RunSLACheck(c *gin.Context) {
	if h.cronToken == "" {
		c.JSON(http.StatusNotFound, pkg.NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound).ToHTTPError())
		return
	}
	if c.GetHeader("X-Cron-Token") != h.cronToken {
		c.JSON(http.StatusUnauthorized, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid cron token", http.StatusUnauthorized).ToHTTPError())
		return
	}

	result, err := h.sla.RunCheck(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, result)
}
