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

// SupplierJobHandler serves the supplier link. The ref in the path is the
// only credential the supplier holds.
type SupplierJobHandler struct {
	usecase usecase.ISupplierJobUseCase
}

func NewSupplierJobHandler(uc usecase.ISupplierJobUseCase) *SupplierJobHandler {
	return &SupplierJobHandler{usecase: uc}
}

func (h *SupplierJobHandler) GetSupplierJob(c *gin.Context) {
	ref := c.Param("ref")
	sj, err := h.usecase.Get(c.Request.Context(), ref)
	if err != nil {
		log.Printf("[supplier][handler] get failed ref=%s err=%v", ref, err)
		renderError(c, mapSupplierJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSupplierJob(sj))
}

func (h *SupplierJobHandler) AcceptSupplierJob(c *gin.Context) {
	ref := c.Param("ref")
	sj, err := h.usecase.Accept(c.Request.Context(), ref)
	if err != nil {
		log.Printf("[supplier][handler] accept failed ref=%s err=%v", ref, err)
		renderError(c, mapSupplierJobError(err))
		return
	}
	log.Printf("[supplier][handler] accept success ref=%s booking_id=%s", sj.Ref, sj.BookingID)
	c.JSON(http.StatusOK, response.FromSupplierJob(sj))
}

// DeclineSupplierJob godoc
// @Summary  Decline an offered job
// @Description Marks the offer declined, then returns the main job to booked.
// @Tags     supplier
// @Accept   json
// @Produce  json
// @Param    ref  path string true "Supplier job reference"
// @Param    body body request.DeclineSupplierJobRequest false "Reason"
// @Success  200 {object} response.SupplierJobResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /supplier/jobs/{ref}/decline [post]
func (h *SupplierJobHandler) DeclineSupplierJob(c *gin.Context) {
	ref := c.Param("ref")
	var payload request.DeclineSupplierJobRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			renderError(c, errInvalidPayload)
			return
		}
	}

	sj, err := h.usecase.Decline(c.Request.Context(), ref, payload.Reason)
	if err != nil {
		log.Printf("[supplier][handler] decline failed ref=%s err=%v", ref, err)
		renderError(c, mapSupplierJobError(err))
		return
	}
	log.Printf("[supplier][handler] decline success ref=%s booking_id=%s", sj.Ref, sj.BookingID)
	c.JSON(http.StatusOK, response.FromSupplierJob(sj))
}

func (h *SupplierJobHandler) SubmitInvoice(c *gin.Context) {
	ref := c.Param("ref")
	var payload request.SubmitInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}

	sj, err := h.usecase.SubmitInvoice(c.Request.Context(), ref, payload.ToInput())
	if err != nil {
		log.Printf("[supplier][handler] invoice failed ref=%s err=%v", ref, err)
		renderError(c, mapSupplierJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSupplierJob(sj))
}

func mapSupplierJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoice):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE", "Invalid invoice", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSupplierJobNotFound):
		return pkg.NewDomainErrorSimple("SUPPLIER_JOB_NOT_FOUND", "Supplier job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSupplierJobState):
		return pkg.NewDomainErrorSimple("SUPPLIER_JOB_STATE_CONFLICT", "Supplier job state does not allow this", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
