package handlers

import (
	"log"
	"net/http"
	"time"

	request "towdispatch/internal/adapter/http/dto/request"
	response "towdispatch/internal/adapter/http/dto/response"
	"towdispatch/internal/usecase"
	"towdispatch/pkg"

	"github.com/gin-gonic/gin"
)

const defaultActiveWindow = 30 * time.Minute

type VisitorHandler struct {
	usecase usecase.IVisitorUseCase
}

func NewVisitorHandler(uc usecase.IVisitorUseCase) *VisitorHandler {
	return &VisitorHandler{usecase: uc}
}

// TrackVisit always answers 200; tracking failures are logged by the usecase.
func (h *VisitorHandler) TrackVisit(c *gin.Context) {
	var payload request.VisitRequest
	if c.Request.ContentLength != 0 {
		_ = c.ShouldBindJSON(&payload)
	}
	id := h.usecase.Track(c.Request.Context(), payload.ToInput(c.Request.UserAgent()))
	c.JSON(http.StatusOK, response.TrackVisitResponse{Success: true, VisitorID: id})
}

// VisitorStats reads ?window= as a Go duration, 30m by default.
func (h *VisitorHandler) VisitorStats(c *gin.Context) {
	window := defaultActiveWindow
	if raw := c.Query("window"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			renderError(c, errInvalidPayload)
			return
		}
		window = d
	}

	stats, err := h.usecase.Stats(c.Request.Context(), window)
	if err != nil {
		log.Printf("[visitor][handler] stats failed err=%v", err)
		renderError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, response.VisitorStatsResponse{Success: true, Stats: stats})
}
