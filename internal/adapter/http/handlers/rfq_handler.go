package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/eromsubebe/poc-auto-quote-response/internal/adapter/http/dto/request"
	response "github.com/eromsubebe/poc-auto-quote-response/internal/adapter/http/dto/response"
	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces"
	"github.com/eromsubebe/poc-auto-quote-response/pkg"
)

var (
	errInvalidRFQPayload = pkg.NewDomainErrorSimple("INVALID_RFQ_INPUT", "Invalid request payload", http.StatusBadRequest)
	errMissingEmailFile  = pkg.NewDomainErrorSimple("MISSING_EMAIL_FILE", "Multipart field email_file is required", http.StatusBadRequest)
)

// RFQHandler serves the RFQ workflow endpoints: intake, listing, lifecycle
// transitions, agent routing and draft pack export.
type RFQHandler struct {
	workflow usecase.IRFQWorkflowUseCase
	export   usecase.IExportUseCase
}

func NewRFQHandler(workflow usecase.IRFQWorkflowUseCase, export usecase.IExportUseCase) *RFQHandler {
	return &RFQHandler{workflow: workflow, export: export}
}

// Upload ingests a .eml file and runs the intake pipeline to completion.
func (h *RFQHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("email_file")
	if err != nil {
		c.JSON(errMissingEmailFile.HTTPStatus, errMissingEmailFile.ToHTTPError())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		appErr := pkg.NewDomainError("UPLOAD_READ_FAILED", "Could not read uploaded file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rfq, message, err := h.workflow.IngestUpload(c.Request.Context(), header.Filename, data)
	if err != nil {
		appErr := mapRFQError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.UploadResponse{RFQ: response.FromRFQ(rfq), Message: message})
}

func (h *RFQHandler) ListRFQs(c *gin.Context) {
	filter := interfaces.RFQFilter{
		Status:  entities.RFQStatus(c.Query("status")),
		Urgency: entities.Urgency(c.Query("urgency")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		appErr := pkg.NewDomainErrorSimple("INVALID_RFQ_INPUT", "Unknown status filter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rfqs, err := h.workflow.ListRFQs(c.Request.Context(), filter)
	if err != nil {
		appErr := mapRFQError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRFQs(rfqs))
}

func (h *RFQHandler) GetRFQ(c *gin.Context) {
	rfq, trail, err := h.workflow.GetRFQ(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRFQError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRFQDetail(rfq, trail))
}

func (h *RFQHandler) AssignRate(c *gin.Context) {
	var payload request.AssignRateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRFQPayload.HTTPStatus, errInvalidRFQPayload.ToHTTPError())
		return
	}

	rfq, err := h.workflow.AssignRate(c.Request.Context(), c.Param("id"), payload.RateID)
	if err != nil {
		appErr := mapRFQError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRFQ(rfq))
}

func (h *RFQHandler) SubmitReview(c *gin.Context) {
	h.transition(c, h.workflow.SubmitReview)
}

func (h *RFQHandler) Approve(c *gin.Context) {
	h.transition(c, h.workflow.Approve)
}

func (h *RFQHandler) Cancel(c *gin.Context) {
	h.transition(c, h.workflow.Cancel)
}

func (h *RFQHandler) AssignAgent(c *gin.Context) {
	var payload request.AssignAgentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRFQPayload.HTTPStatus, errInvalidRFQPayload.ToHTTPError())
		return
	}

	rfq, err := h.workflow.AssignAgent(c.Request.Context(), c.Param("id"), payload.Agent)
	if err != nil {
		appErr := mapRFQError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRFQ(rfq))
}

func (h *RFQHandler) AgentWorkload(c *gin.Context) {
	workload, err := h.workflow.AgentWorkload(c.Request.Context())
	if err != nil {
		appErr := mapRFQError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, workload)
}

// Export streams the draft pack in the requested format (default json).
func (h *RFQHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "json")

	pack, err := h.export.Export(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		appErr := mapRFQError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+pack.Filename+`"`)
	c.Data(http.StatusOK, pack.ContentType, pack.RawBytes)
}

func (h *RFQHandler) transition(c *gin.Context, op func(ctx context.Context, id string) (entities.RFQ, error)) {
	rfq, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRFQError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRFQ(rfq))
}

func mapRFQError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRFQID), errors.Is(err, usecase.ErrInvalidAgent),
		errors.Is(err, usecase.ErrInvalidRateID), errors.Is(err, usecase.ErrInvalidExportFormat):
		return pkg.NewDomainError("INVALID_RFQ_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRFQNotFound):
		return pkg.NewDomainErrorSimple("RFQ_NOT_FOUND", "RFQ not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRateNotFound):
		return pkg.NewDomainErrorSimple("RATE_NOT_FOUND", "Rate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRFQConflict), errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("RFQ_CONFLICT", "A concurrent update is in progress, retry shortly", http.StatusConflict)
	case errors.Is(err, usecase.ErrStoreTimeout):
		return pkg.NewDomainError("STORE_TIMEOUT", "Backing store timed out", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
