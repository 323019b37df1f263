package routes

import (
	"net/http"
	"time"

	"lensbook/handlers"
	"lensbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("/:id", hb.Booking.GetBooking)
		api.DELETE("/:id", hb.Booking.DeleteBooking)
		api.POST("/:id/confirm", hb.Booking.ConfirmBooking)
		api.POST("/:id/reject", hb.Booking.RejectBooking)
		api.POST("/:id/cancel", hb.Booking.CancelBooking)
		api.POST("/:id/reschedule", hb.Booking.RescheduleBooking)
		api.POST("/:id/complete", hb.Booking.CompleteBooking)
		api.POST("/:id/assign", hb.Booking.AssignProfessional)
		api.GET("/:id/candidates", hb.Booking.ListCandidates)
	}
}

// RegisterAdminRoutes sets up the assignment queue for unassigned bookings.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.GET("/bookings/unassigned", hb.Booking.ListUnassignedBookings)
	}
}

// RegisterProfessionalRoutes sets up schedule management, slot lookup and
// per-professional booking listings.
func RegisterProfessionalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals")
	{
		api.GET("/:id/bookings", hb.Booking.ListProfessionalBookings)
		api.GET("/:id/slots", hb.Availability.GetAvailableSlots)
		api.GET("/:id/calendar", hb.Availability.GetMonthlyCalendar)

		api.GET("/:id/availability", hb.Availability.GetAvailability)
		api.PUT("/:id/availability/schedule", hb.Availability.UpdateWeeklySchedule)
		api.PUT("/:id/availability/settings", hb.Availability.UpdateSettings)
		api.POST("/:id/availability/blocked", hb.Availability.AddBlockedDate)
		api.DELETE("/:id/availability/blocked/:date", hb.Availability.RemoveBlockedDate)
		api.PUT("/:id/availability/special", hb.Availability.SetSpecialDate)
		api.DELETE("/:id/availability/special/:date", hb.Availability.RemoveSpecialDate)
	}
}

// RegisterUserRoutes sets up client-facing listing endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.GET("/:id/bookings", hb.Booking.ListClientBookings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Lensbook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterProfessionalRoutes(r, hb)
	RegisterUserRoutes(r, hb)
}
