package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	request "towdispatch/internal/adapter/http/dto/request"
	response "towdispatch/internal/adapter/http/dto/response"
	"towdispatch/internal/usecase"
	"towdispatch/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// JobHandler serves the admin job endpoints.
type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateJob godoc
// @Summary  Create a job
// @Tags     admin-jobs
// @Accept   json
// @Produce  json
// @Param    job body request.CreateJobRequest true "Job"
// @Success  201 {object} response.JobResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /admin/jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[job][handler] create invalid payload err=%v", err)
		renderError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(), actor(c))
	if err != nil {
		log.Printf("[job][handler] create failed rego=%s err=%v", payload.Rego, err)
		renderError(c, mapJobError(err))
		return
	}
	log.Printf("[job][handler] create success booking_id=%s", job.BookingID)
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// ListJobs godoc
// @Summary  List jobs, newest first
// @Tags     admin-jobs
// @Produce  json
// @Param    offset query int false "Offset"
// @Param    limit  query int false "Limit"
// @Success  200 {object} response.JobListResponse
// @Router   /admin/jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	offset := queryInt64(c, "offset", 0)
	limit := queryInt64(c, "limit", usecase.DefaultJobPageSize)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = usecase.DefaultJobPageSize
	}
	if limit > usecase.MaxJobPageSize {
		limit = usecase.MaxJobPageSize
	}

	jobs, err := h.usecase.List(c.Request.Context(), offset, limit)
	if err != nil {
		log.Printf("[job][handler] list failed offset=%d limit=%d err=%v", offset, limit, err)
		renderError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs, offset, limit))
}

// GetJob resolves :id as a booking id or a rego.
func (h *JobHandler) GetJob(c *gin.Context) {
	id := c.Param("id")
	job, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		log.Printf("[job][handler] get failed id=%s err=%v", id, err)
		renderError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// UpdateJob merges the top-level fields of the body into the stored job.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id := c.Param("id")
	var fields map[string]json.RawMessage
	if err := c.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		renderError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.Update(c.Request.Context(), id, fields, actor(c))
	if err != nil {
		log.Printf("[job][handler] update failed id=%s err=%v", id, err)
		renderError(c, mapJobError(err))
		return
	}
	log.Printf("[job][handler] update success booking_id=%s status=%s", job.BookingID, job.Status)
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) AssignSupplier(c *gin.Context) {
	id := c.Param("id")
	var payload request.AssignSupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.AssignSupplier(c.Request.Context(), id, payload.ToInput(actor(c)))
	if err != nil {
		log.Printf("[job][handler] assign failed id=%s supplier=%s err=%v", id, payload.Name, err)
		renderError(c, mapJobError(err))
		return
	}
	log.Printf("[job][handler] assign success booking_id=%s supplier=%s status=%s", job.BookingID, job.SupplierName(), job.Status)
	c.JSON(http.StatusOK, response.FromJob(job))
}

// CancelJob godoc
// @Summary  Cancel a job and notify the customer and supplier
// @Tags     admin-jobs
// @Accept   json
// @Produce  json
// @Param    id   path string true "Booking id or rego"
// @Param    body body request.CancelJobRequest false "Cancellation"
// @Success  200 {object} response.CancelJobResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /admin/jobs/{id}/cancel [post]
func (h *JobHandler) CancelJob(c *gin.Context) {
	id := c.Param("id")
	var payload request.CancelJobRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			renderError(c, errInvalidPayload)
			return
		}
	}

	res, err := h.usecase.Cancel(c.Request.Context(), id, payload.ToInput(actor(c)))
	if err != nil {
		log.Printf("[job][handler] cancel failed id=%s err=%v", id, err)
		renderError(c, mapJobError(err))
		return
	}
	log.Printf("[job][handler] cancel success booking_id=%s", res.Job.BookingID)
	c.JSON(http.StatusOK, response.FromCancel(res))
}

func (h *JobHandler) ListSupplierJobs(c *gin.Context) {
	name := c.Param("name")
	jobs, err := h.usecase.ListBySupplier(c.Request.Context(), name)
	if err != nil {
		log.Printf("[job][handler] list-by-supplier failed supplier=%s err=%v", name, err)
		renderError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs, 0, int64(len(jobs))))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidJobInput),
		errors.Is(err, usecase.ErrInvalidJobStatus), errors.Is(err, usecase.ErrInvalidSupplier):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobAlreadyCancelled):
		return pkg.NewDomainErrorSimple("JOB_ALREADY_CANCELLED", "Job already cancelled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
