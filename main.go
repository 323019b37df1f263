package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lensbook/config"
	"lensbook/cron"
	"lensbook/database"
	availabilityRepo "lensbook/database/repository/availability"
	bookingRepo "lensbook/database/repository/booking"
	professionalRepo "lensbook/database/repository/professional"
	userRepoPkg "lensbook/database/repository/user"
	"lensbook/handlers"
	"lensbook/routes"
	"lensbook/services/availability"
	"lensbook/services/booking"
	"lensbook/services/notification"
	"lensbook/services/reminder"
	"lensbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	availabilities := availabilityRepo.NewMongoAvailabilityRepo()
	professionals := professionalRepo.NewMongoProfessionalRepo()
	users := userRepoPkg.NewMongoUserRepo()

	if err := bookings.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	if err := availabilities.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure availability indexes: %v", err)
	}

	// services.
	notificationService, err := notification.NewDefaultNotificationService(users, professionals)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	availabilityService := &availability.DefaultAvailabilityService{
		Repo:     availabilities,
		Bookings: bookings,
	}

	bookingEngine := &booking.DefaultBookingEngine{
		Bookings:      bookings,
		Professionals: professionals,
		Notifier:      notificationService,
	}

	reminderService := &reminder.Service{
		Bookings: bookings,
		Notifier: notificationService,
	}
	cron.InitReminderWorker(reminderService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingEngine),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
	}
	routes.RegisterRoutes(router, handlerBundle)

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
