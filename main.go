// File: roomify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomify/config"
	"roomify/database"
	billRepo "roomify/database/repository/bill"
	bookingRepo "roomify/database/repository/booking"
	historyRepo "roomify/database/repository/history"
	roomRepo "roomify/database/repository/room"
	staffRepo "roomify/database/repository/staff"
	"roomify/handlers"
	"roomify/middleware"
	"roomify/routes"
	bookingSvc "roomify/services/booking"
	"roomify/services/notification"
	"roomify/services/payment"
	"roomify/services/report"
	roomSvc "roomify/services/room"
	staffSvc "roomify/services/staff"
	"roomify/utils"
	"roomify/worker"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	rooms := roomRepo.NewMongoRoomRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	history := historyRepo.NewMongoHistoryRepo()
	staffs := staffRepo.NewMongoStaffRepo()
	bills := billRepo.NewMongoBillRepo()

	// services.
	notifier := notification.NewAsynqNotifier()
	defer notifier.Close()

	lifecycleService := &bookingSvc.DefaultLifecycleService{
		Repo:     bookings,
		History:  history,
		Notifier: notifier,
	}
	roomService := &roomSvc.DefaultRoomService{
		Repo: rooms,
	}
	staffService := &staffSvc.DefaultStaffService{
		Repo:      staffs,
		AuthCache: utils.GetAuthCacheClient(),
	}
	reportService := &report.DefaultReportService{
		Rooms:    rooms,
		Bookings: bookings,
		Bills:    bills,
		Cache:    utils.GetCacheClient(),
	}
	paymentService := &payment.DefaultPaymentService{
		Bills:    bills,
		Bookings: bookings,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:    handlers.NewAuthHandler(staffService, logger),
		Booking: handlers.NewBookingHandler(lifecycleService, logger),
		Room:    handlers.NewRoomHandler(roomService, logger),
		Staff:   handlers.NewStaffHandler(staffService, logger),
		Report:  handlers.NewReportHandler(reportService),
		Payment: handlers.NewPaymentHandler(paymentService, logger),
		Storage: handlers.NewStorageHandler(cloudinaryStorageService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the async email worker.
	worker.InitEmailWorker(notification.LogEmailSender{})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
