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

// ChargeHandler serves the additional-charges sub-ledger of a job.
type ChargeHandler struct {
	usecase usecase.IChargeUseCase
}

func NewChargeHandler(uc usecase.IChargeUseCase) *ChargeHandler {
	return &ChargeHandler{usecase: uc}
}

func (h *ChargeHandler) ListCharges(c *gin.Context) {
	id := c.Param("id")
	charges, err := h.usecase.ListCharges(c.Request.Context(), id)
	if err != nil {
		log.Printf("[charge][handler] list failed id=%s err=%v", id, err)
		renderError(c, mapChargeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCharges(charges))
}

// AddCharge godoc
// @Summary  Add an additional charge, optionally collecting payment
// @Tags     admin-charges
// @Accept   json
// @Produce  json
// @Param    id     path string true "Booking id or rego"
// @Param    charge body request.AddChargeRequest true "Charge"
// @Success  201 {object} response.ChargeResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /admin/jobs/{id}/charges [post]
func (h *ChargeHandler) AddCharge(c *gin.Context) {
	id := c.Param("id")
	var payload request.AddChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}

	job, charge, err := h.usecase.AddCharge(c.Request.Context(), id, payload.ToInput(actor(c)))
	if err != nil {
		log.Printf("[charge][handler] add failed id=%s err=%v", id, err)
		renderError(c, mapChargeError(err))
		return
	}
	log.Printf("[charge][handler] add success booking_id=%s charge_id=%s amount=%d", job.BookingID, charge.ID, charge.Amount)
	c.JSON(http.StatusCreated, response.FromCharge(job, charge))
}

func (h *ChargeHandler) MarkChargePaid(c *gin.Context) {
	id, chargeID := c.Param("id"), c.Param("chargeId")
	var payload request.MarkChargePaidRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			renderError(c, errInvalidPayload)
			return
		}
	}

	job, err := h.usecase.MarkChargePaid(c.Request.Context(), id, chargeID, payload.TransactionID, actor(c))
	if err != nil {
		log.Printf("[charge][handler] mark-paid failed id=%s charge_id=%s err=%v", id, chargeID, err)
		renderError(c, mapChargeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *ChargeHandler) CancelCharge(c *gin.Context) {
	id, chargeID := c.Param("id"), c.Param("chargeId")
	job, err := h.usecase.CancelCharge(c.Request.Context(), id, chargeID, actor(c))
	if err != nil {
		log.Printf("[charge][handler] cancel failed id=%s charge_id=%s err=%v", id, chargeID, err)
		renderError(c, mapChargeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *ChargeHandler) GetInvoice(c *gin.Context) {
	id := c.Param("id")
	inv, err := h.usecase.Invoice(c.Request.Context(), id)
	if err != nil {
		log.Printf("[charge][handler] invoice failed id=%s err=%v", id, err)
		renderError(c, mapChargeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// PayCharge is the public endpoint a customer follows to pay a pending charge.
func (h *ChargeHandler) PayCharge(c *gin.Context) {
	id, chargeID := c.Param("id"), c.Param("chargeId")
	p, err := h.usecase.PayCharge(c.Request.Context(), id, chargeID)
	if err != nil {
		log.Printf("[charge][handler] pay failed id=%s charge_id=%s err=%v", id, chargeID, err)
		renderError(c, mapChargeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func mapChargeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCharge), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChargeAlreadyPaid):
		return pkg.NewDomainErrorSimple("CHARGE_ALREADY_PAID", "Charge already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeCancelled):
		return pkg.NewDomainErrorSimple("CHARGE_CANCELLED", "Charge cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayError):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
