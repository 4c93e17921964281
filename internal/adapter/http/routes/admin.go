package routes

import (
	"log"
	"net/http"

	"towdispatch/internal/infrastructure/config"
	"towdispatch/pkg"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

var errAdminDisabled = pkg.NewDomainErrorSimple("ADMIN_DISABLED", "Admin access is not configured", http.StatusServiceUnavailable)

// adminAuth is BasicAuth against the configured account. Without a password
// the admin surface stays closed.
func adminAuth(admin config.AdminConfig) gin.HandlerFunc {
	if admin.Password == "" {
		log.Printf("[http][admin] ADMIN_PASSWORD not set, admin routes are disabled")
		return func(c *gin.Context) {
			c.AbortWithStatusJSON(errAdminDisabled.HTTPStatus, errAdminDisabled.ToHTTPError())
		}
	}
	return gin.BasicAuth(gin.Accounts{admin.User: admin.Password})
}

func addAdminRoutes(rg *gin.RouterGroup, admin config.AdminConfig, h Handlers) {
	ag := rg.Group(PathAdmin, adminAuth(admin))

	jobs := ag.Group("/jobs")
	{
		jobs.GET("", h.Jobs.ListJobs)
		jobs.POST("", h.Jobs.CreateJob)
		jobs.GET("/:id", h.Jobs.GetJob)
		jobs.PUT("/:id", h.Jobs.UpdateJob)
		jobs.POST("/:id/assign", h.Jobs.AssignSupplier)
		jobs.POST("/:id/cancel", h.Jobs.CancelJob)
		jobs.GET("/:id/payments", h.Bookings.ListPayments)

		jobs.GET("/:id/charges", h.Charges.ListCharges)
		jobs.POST("/:id/charges", h.Charges.AddCharge)
		jobs.POST("/:id/charges/:chargeId/paid", h.Charges.MarkChargePaid)
		jobs.POST("/:id/charges/:chargeId/cancel", h.Charges.CancelCharge)
		jobs.GET("/:id/invoice", h.Charges.GetInvoice)
	}

	ag.GET("/suppliers/:name/jobs", h.Jobs.ListSupplierJobs)

	ag.POST("/maintenance/repair-job-keys", h.Admin.RepairJobKeys)
	ag.POST("/outbox/drain", h.Admin.DrainOutbox)
	ag.GET("/outbox/dead", h.Admin.ListDeadLetters)
	ag.GET("/payouts/dlo", h.Admin.ExportPayouts)
	ag.GET("/visitors/stats", h.Visitors.VisitorStats)
}
