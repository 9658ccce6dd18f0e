package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"roomify/handlers"
	"roomify/middleware"
	"roomify/models"
)

// RegisterAuthRoutes registers staff login/logout endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.Login)
		api.POST("/logout", middleware.RequireAuth(), hb.Auth.Logout)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints. Creating
// and fetching a booking is the guest surface; list, edit and cancel are
// staff operations.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("/:id", hb.Booking.GetBooking)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		protected.GET("", hb.Booking.GetBookings)
		protected.PUT("/:id", hb.Booking.UpdateBooking)
		protected.DELETE("/:id", hb.Booking.DeleteBooking)
	}
}

// RegisterHistoryRoutes registers the booking ledger endpoints. The bulk
// wipe is destructive and restricted to admins.
func RegisterHistoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking-history")
	api.Use(middleware.RequireAuth())
	{
		api.GET("", hb.Booking.GetHistory)
		api.GET("/:bookingId", hb.Booking.GetHistoryEntry)
		api.POST("", hb.Booking.CreateHistory)
		api.DELETE("", middleware.RequireRole(models.RoleAdmin), hb.Booking.ClearHistory)
	}
}

// RegisterRoomRoutes registers room inventory management plus the
// availability flag collaborator. The flag endpoints stay open to any
// client: they are the calls the booking flow's presentation layer issues.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.GET("", hb.Room.GetRooms)
		api.GET("/:roomNumber", hb.Room.GetRoom)
		api.PUT("/:roomNumber/book", hb.Room.MarkRoomAsBooked)
		api.PUT("/:roomNumber/available", hb.Room.MarkRoomAsAvailable)

		admin := api.Group("")
		admin.Use(middleware.RequireAuth(), middleware.RequireRole(models.RoleAdmin))
		admin.POST("", hb.Room.CreateRoom)
		admin.PUT("/:roomNumber", hb.Room.UpdateRoom)
		admin.DELETE("/:roomNumber", hb.Room.DeleteRoom)
	}
}

// RegisterStaffRoutes registers staff directory and attendance endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	api.Use(middleware.RequireAuth())
	{
		api.GET("", hb.Staff.GetAllStaff)
		api.GET("/:id", hb.Staff.GetStaff)
		api.POST("/:id/attendance", hb.Staff.MarkAttendance)
		api.GET("/:id/attendance", hb.Staff.GetStaffAttendance)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.POST("", hb.Staff.CreateStaff)
		admin.PUT("/:id", hb.Staff.UpdateStaff)
		admin.DELETE("/:id", hb.Staff.DeleteStaff)
	}

	att := r.Group("/api/attendance")
	att.Use(middleware.RequireAuth())
	att.GET("", hb.Staff.GetAttendanceByDate)
}

// RegisterReportRoutes registers the admin dashboard summary endpoint.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	api.Use(middleware.RequireAuth(), middleware.RequireRole(models.RoleAdmin))
	api.GET("/summary", hb.Report.GetSummary)
}

// RegisterPaymentRoutes registers billing endpoints. Initiation and
// confirmation are part of the guest checkout flow; the bill list is staff.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/initiate", hb.Payment.InitiatePayment)
		api.POST("/:billId/confirm", hb.Payment.ConfirmPayment)
		api.GET("/bills", middleware.RequireAuth(), hb.Payment.GetBills)
	}
}

// RegisterStorageRoutes registers media upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	api.Use(middleware.RequireAuth())
	api.POST("/upload/:bucket", hb.Storage.UploadFileHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Roomify"})
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

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHistoryRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterReportRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
