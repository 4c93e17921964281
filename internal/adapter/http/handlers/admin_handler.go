package handlers

import (
	"log"
	"net/http"
	"time"

	response "towdispatch/internal/adapter/http/dto/response"
	"towdispatch/internal/usecase"
	"towdispatch/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves maintenance endpoints: key repair, outbox and payouts.
type AdminHandler struct {
	repair  usecase.IRepairUseCase
	outbox  usecase.IOutboxUseCase
	payouts usecase.IPayoutUseCase
	now     func() time.Time
}

func NewAdminHandler(repair usecase.IRepairUseCase, outbox usecase.IOutboxUseCase, payouts usecase.IPayoutUseCase) *AdminHandler {
	return &AdminHandler{repair: repair, outbox: outbox, payouts: payouts, now: time.Now}
}

// RepairJobKeys godoc
// @Summary  Move jobs stored under rego or legacy keys to job:<bookingId>
// @Tags     admin-maintenance
// @Produce  json
// @Param    dryRun query bool false "Report without writing"
// @Success  200 {object} response.RepairResponse
// @Router   /admin/maintenance/repair-job-keys [post]
func (h *AdminHandler) RepairJobKeys(c *gin.Context) {
	dryRun := queryBool(c, "dryRun")
	report, err := h.repair.RepairJobKeys(c.Request.Context(), dryRun)
	if err != nil {
		log.Printf("[admin][handler] repair failed dry_run=%t err=%v", dryRun, err)
		renderError(c, mapAdminError(err))
		return
	}
	log.Printf("[admin][handler] repair done dry_run=%t moved=%d legacy=%d dropped=%d", dryRun, report.Moved, report.MovedLegacy, report.Dropped)
	c.JSON(http.StatusOK, response.RepairResponse{Success: true, Report: report})
}

func (h *AdminHandler) DrainOutbox(c *gin.Context) {
	report, err := h.outbox.Drain(c.Request.Context())
	if err != nil {
		log.Printf("[admin][handler] outbox drain failed err=%v", err)
		renderError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.DrainResponse{Success: true, Report: report})
}

func (h *AdminHandler) ListDeadLetters(c *gin.Context) {
	intents, err := h.outbox.ListDead(c.Request.Context())
	if err != nil {
		renderError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDeadLetters(intents))
}

// ExportPayouts builds the DLO batch for ?date=YYYY-MM-DD (today by default).
// With format=file the batch is served as an attachment.
func (h *AdminHandler) ExportPayouts(c *gin.Context) {
	date := h.now()
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			renderError(c, errInvalidPayload)
			return
		}
		date = d
	}
	markPaid := queryBool(c, "markPaid")

	batch, err := h.payouts.ExportDLO(c.Request.Context(), date, markPaid)
	if err != nil {
		log.Printf("[admin][handler] payout export failed date=%s err=%v", date.Format(time.DateOnly), err)
		renderError(c, mapAdminError(err))
		return
	}
	log.Printf("[admin][handler] payout export date=%s count=%d total=%d skipped=%d mark_paid=%t",
		date.Format(time.DateOnly), batch.Count, batch.TotalCents, len(batch.Skipped), markPaid)

	if c.Query("format") == "file" {
		c.Header("Content-Disposition", `attachment; filename="`+batch.FileName+`"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(batch.Content))
		return
	}
	c.JSON(http.StatusOK, response.PayoutResponse{Success: true, Batch: batch})
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPayerAccountNotConfigured):
		return pkg.NewDomainErrorSimple("PAYOUT_NOT_CONFIGURED", "Payout payer account not configured", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
