package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dentora/config"
	"dentora/cron"
	"dentora/database"
	bookingRepoPkg "dentora/database/repository/booking"
	ledgerRepoPkg "dentora/database/repository/ledger"
	notificationRepoPkg "dentora/database/repository/notification"
	scheduleRepoPkg "dentora/database/repository/schedule"
	"dentora/handlers"
	"dentora/middleware"
	"dentora/routes"
	"dentora/services/billing"
	"dentora/services/notification"
	"dentora/services/scheduling"
	"dentora/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	ledgerRepo := ledgerRepoPkg.NewMongoLedgerRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// services.
	billingService := billing.NewDefaultBillingService(ledgerRepo)
	notifier := notification.NewAsynqDispatcher()

	schedulingService := &scheduling.DefaultSchedulingService{
		ScheduleRepo:   scheduleRepo,
		BookingRepo:    bookingRepo,
		Billing:        billingService,
		Notifier:       notifier,
		MinLeadTimeMin: config.AppConfig.MinLeadTimeMin,
		FeePolicy:      scheduling.NewFeePolicyFromConfig(),
	}

	schedulingHandler := handlers.NewSchedulingHandler(schedulingService, utils.GetSessionCacheClient())
	scheduleHandler := handlers.NewScheduleHandler(scheduleRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Availability and booking endpoints.
		GetAvailabilityHandler:   schedulingHandler.GetAvailabilityHandler,
		InitiateSessionHandler:   schedulingHandler.InitiateSessionHandler,
		ConfirmBookingHandler:    schedulingHandler.ConfirmBookingHandler,
		RescheduleBookingHandler: schedulingHandler.RescheduleBookingHandler,
		CancelBookingHandler:     schedulingHandler.CancelBookingHandler,

		// Schedule management endpoints.
		SetupWeeklyScheduleHandler:   scheduleHandler.SetupWeeklyScheduleHandler,
		GetWeeklyScheduleHandler:     scheduleHandler.GetWeeklyScheduleHandler,
		CreateBlockedIntervalHandler: scheduleHandler.CreateBlockedIntervalHandler,
		ListBlockedIntervalsHandler:  scheduleHandler.ListBlockedIntervalsHandler,
		DeleteBlockedIntervalHandler: scheduleHandler.DeleteBlockedIntervalHandler,

		// Notification endpoints.
		ListNotificationsHandler: notificationHandler.ListNotificationsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the async booking-event worker and health monitor.
	cron.InitBookingEventWorker(notificationRepo)
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

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
