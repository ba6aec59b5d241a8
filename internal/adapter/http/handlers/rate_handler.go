package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/eromsubebe/poc-auto-quote-response/internal/adapter/http/dto/request"
	response "github.com/eromsubebe/poc-auto-quote-response/internal/adapter/http/dto/response"
	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces"
	"github.com/eromsubebe/poc-auto-quote-response/pkg"
)

var errInvalidRatePayload = pkg.NewDomainErrorSimple("INVALID_RATE_INPUT", "Invalid rate payload", http.StatusBadRequest)

// RateHandler serves the carrier rate catalog endpoints.
type RateHandler struct {
	usecase usecase.IRateCatalogUseCase
	clock   interfaces.Clock
}

func NewRateHandler(uc usecase.IRateCatalogUseCase, clock interfaces.Clock) *RateHandler {
	if clock == nil {
		clock = interfaces.RealClock{}
	}
	return &RateHandler{usecase: uc, clock: clock}
}

func (h *RateHandler) CreateRate(c *gin.Context) {
	var payload request.RateCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRatePayload.HTTPStatus, errInvalidRatePayload.ToHTTPError())
		return
	}

	rate, err := payload.ToEntity()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_RATE_INPUT", "Dates must be RFC 3339 or YYYY-MM-DD", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateRate(c.Request.Context(), rate)
	if err != nil {
		appErr := mapRateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromRate(created, h.clock.Now()))
}

func (h *RateHandler) GetRate(c *gin.Context) {
	rate, err := h.usecase.GetRate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRate(rate, h.clock.Now()))
}

func (h *RateHandler) ListRates(c *gin.Context) {
	filter := interfaces.RateFilter{
		Mode:        entities.TransportMode(c.Query("mode")),
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
	}
	status := usecase.RateStatusFilter(c.Query("status"))

	rates, err := h.usecase.ListRates(c.Request.Context(), filter, status)
	if err != nil {
		appErr := mapRateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRates(rates, h.clock.Now()))
}

func (h *RateHandler) UpdateRate(c *gin.Context) {
	var payload request.RateUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRatePayload.HTTPStatus, errInvalidRatePayload.ToHTTPError())
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_RATE_INPUT", "Dates must be RFC 3339 or YYYY-MM-DD", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateRate(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		appErr := mapRateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRate(updated, h.clock.Now()))
}

func (h *RateHandler) LookupRate(c *gin.Context) {
	var payload request.RateLookupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRatePayload.HTTPStatus, errInvalidRatePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Lookup(c.Request.Context(), payload.ToLookup())
	if err != nil {
		appErr := mapRateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLookupResult(result, h.clock.Now()))
}

func mapRateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRateID), errors.Is(err, usecase.ErrRateValidation):
		return pkg.NewDomainError("INVALID_RATE_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRateNotFound):
		return pkg.NewDomainErrorSimple("RATE_NOT_FOUND", "Rate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreTimeout):
		return pkg.NewDomainError("STORE_TIMEOUT", "Backing store timed out", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
