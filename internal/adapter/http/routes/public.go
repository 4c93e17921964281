package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathBookings     = "/bookings"
	PathPayments     = "/payments"
	PathSupplierJobs = "/supplier/jobs"
	PathVisitors     = "/visitors"
)

func addPublicRoutes(rg *gin.RouterGroup, h Handlers) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", h.Bookings.CreateBooking)
		bookings.GET("/:id", h.Bookings.TrackBooking)
		bookings.POST("/:id/charges/:chargeId/pay", h.Charges.PayCharge)
	}

	rg.POST("/quote", h.Lookups.Quote)
	rg.POST("/distance", h.Lookups.Distance)
	rg.GET("/vehicles/:plate", h.Lookups.Vehicle)

	rg.POST(PathVisitors+"/track", h.Visitors.TrackVisit)
	rg.POST(PathPayments+"/webhook", h.Bookings.PaymentWebhook)

	supplier := rg.Group(PathSupplierJobs)
	{
		supplier.GET("/:ref", h.SupplierJobs.GetSupplierJob)
		supplier.POST("/:ref/accept", h.SupplierJobs.AcceptSupplierJob)
		supplier.POST("/:ref/decline", h.SupplierJobs.DeclineSupplierJob)
		supplier.POST("/:ref/invoice", h.SupplierJobs.SubmitInvoice)
	}
}
