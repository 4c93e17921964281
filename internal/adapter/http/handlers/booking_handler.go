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

// BookingHandler serves the customer booking flow and the payment webhook.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking godoc
// @Summary  Book a tow
// @Description Quotes the tow when no price is given, stores the job and opens a payment.
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    booking body request.BookingRequest true "Booking"
// @Success  201 {object} response.BookingResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[booking][handler] invalid payload err=%v", err)
		renderError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.Book(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[booking][handler] book failed rego=%s err=%v", payload.Rego, err)
		renderError(c, mapBookingError(err))
		return
	}
	log.Printf("[booking][handler] book success booking_id=%s payment_id=%s", res.Job.BookingID, res.Payment.ID)
	c.JSON(http.StatusCreated, response.FromBooking(res))
}

// TrackBooking godoc
// @Summary  Track a booking
// @Tags     bookings
// @Produce  json
// @Param    id path string true "Booking id"
// @Success  200 {object} response.PublicJobResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /bookings/{id} [get]
func (h *BookingHandler) TrackBooking(c *gin.Context) {
	id := c.Param("id")
	job, err := h.usecase.Track(c.Request.Context(), id)
	if err != nil {
		log.Printf("[booking][handler] track failed id=%s err=%v", id, err)
		renderError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobPublic(job))
}

func (h *BookingHandler) ListPayments(c *gin.Context) {
	id := c.Param("id")
	payments, err := h.usecase.Payments(c.Request.Context(), id)
	if err != nil {
		log.Printf("[booking][handler] payments failed id=%s err=%v", id, err)
		renderError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// PaymentWebhook acknowledges non-payment topics without work so the
// provider stops retrying them.
func (h *BookingHandler) PaymentWebhook(c *gin.Context) {
	var payload request.PaymentWebhookRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			renderError(c, errInvalidPayload)
			return
		}
	}
	if !payload.IsPaymentEvent(c.Query) {
		log.Printf("[booking][handler] webhook ignored type=%s", payload.Type)
		c.JSON(http.StatusOK, response.WebhookResponse{Success: true})
		return
	}

	paymentID := payload.ResolvePaymentID(c.Query)
	if paymentID == "" {
		renderError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.HandlePaymentWebhook(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[booking][handler] webhook failed payment_id=%s err=%v", paymentID, err)
		renderError(c, mapBookingError(err))
		return
	}
	log.Printf("[booking][handler] webhook handled payment_id=%s booking_id=%s applied=%t", paymentID, res.BookingID, res.Applied)
	c.JSON(http.StatusOK, response.WebhookResponse{Success: true, Result: res})
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBooking), errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidLocation), errors.Is(err, usecase.ErrInvalidPaymentRef):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayError), errors.Is(err, usecase.ErrDistanceLookupFailed):
		return pkg.NewDomainError("UPSTREAM_ERROR", "Upstream provider error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
