package handlers

import (
	"log"
	"net/http"

	request "towdispatch/internal/adapter/http/dto/request"
	response "towdispatch/internal/adapter/http/dto/response"
	"towdispatch/internal/usecase"
	"towdispatch/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type LookupHandler struct {
	usecase usecase.ILookupUseCase
}

func NewLookupHandler(uc usecase.ILookupUseCase) *LookupHandler {
	return &LookupHandler{usecase: uc}
}

// Quote godoc
// @Summary  Price a tow between two locations
// @Tags     lookups
// @Accept   json
// @Produce  json
// @Param    quote body request.QuoteRequest true "Locations"
// @Success  200 {object} response.QuoteResponse
// @Router   /quote [post]
func (h *LookupHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	q, err := h.usecase.Quote(c.Request.Context(), payload.Pickup, payload.Dropoff)
	if err != nil {
		log.Printf("[lookup][handler] quote failed err=%v", err)
		renderError(c, mapLookupError(err))
		return
	}
	c.JSON(http.StatusOK, response.QuoteResponse{Success: true, Quote: q})
}

// Vehicle never fails on provider errors; demo data comes back flagged.
func (h *LookupHandler) Vehicle(c *gin.Context) {
	plate := c.Param("plate")
	v, err := h.usecase.Vehicle(c.Request.Context(), plate)
	if err != nil {
		log.Printf("[lookup][handler] vehicle failed plate=%s err=%v", plate, err)
		renderError(c, mapLookupError(err))
		return
	}
	c.JSON(http.StatusOK, response.VehicleResponse{Success: true, Vehicle: v})
}

func (h *LookupHandler) Distance(c *gin.Context) {
	var payload request.DistanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	d, err := h.usecase.Distance(c.Request.Context(), payload.Locations)
	if err != nil {
		log.Printf("[lookup][handler] distance failed err=%v", err)
		renderError(c, mapLookupError(err))
		return
	}
	c.JSON(http.StatusOK, response.DistanceResponse{Success: true, Distance: d})
}

func mapLookupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLocation), errors.Is(err, usecase.ErrInvalidPlate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDistanceLookupFailed):
		return pkg.NewDomainError("DISTANCE_LOOKUP_FAILED", "Distance lookup failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
