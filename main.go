// File: mindnest/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindnest/clients"
	"mindnest/config"
	"mindnest/handlers"
	"mindnest/middleware"
	"mindnest/routes"
	"mindnest/services/availability"
	"mindnest/services/dashboard"
	"mindnest/services/directory"
	"mindnest/services/session"
	"mindnest/services/wizard"
	"mindnest/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.SessionSecret == "" {
		logger.Sugar().Fatal("main: SESSION_SECRET must be set")
	}

	utils.InitSessionCache()
	utils.InitWizardCache()
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetSessionCacheClient(),
		utils.GetWizardCacheClient(),
	})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream service clients.
	timeout := config.UpstreamTimeout()
	authClient := clients.NewAuthClient(config.AppConfig.AuthServiceURL, timeout)
	userClient := clients.NewUserClient(config.AppConfig.UserServiceURL, timeout)
	therapistClient := clients.NewTherapistClient(config.AppConfig.TherapistServiceURL, timeout)
	bookingClient := clients.NewBookingClient(config.AppConfig.BookingServiceURL, timeout)

	// Session management.
	sessionStore := session.NewRedisStore(utils.GetSessionCacheClient(), config.SessionTTL())
	sessionManager := &session.DefaultManager{
		Auth:         authClient,
		Store:        sessionStore,
		CookieSecret: []byte(config.AppConfig.SessionSecret),
		CookieMaxAge: time.Duration(config.AppConfig.SessionCookieMaxAge) * time.Second,
		Logger:       logger,
	}

	// Domain services.
	availabilityService := &availability.DefaultService{
		Booking:  bookingClient,
		Calendar: therapistClient,
		Logger:   logger,
	}

	wizardStore := wizard.NewRedisStore(utils.GetWizardCacheClient(), config.WizardTTL())
	wizardService := &wizard.DefaultService{
		Booking: bookingClient,
		Store:   wizardStore,
		Logger:  logger,
	}

	directoryService := &directory.DefaultService{
		Therapist: therapistClient,
		Logger:    logger,
	}

	dashboardService := &dashboard.DefaultService{
		Booking:      bookingClient,
		Therapists:   therapistClient,
		Users:        userClient,
		Verification: therapistClient,
		Availability: availabilityService,
		Logger:       logger,
	}

	// Handlers.
	cookieName := config.AppConfig.SessionCookieName
	errHelper := handlers.ErrorHelper{Manager: sessionManager, CookieName: cookieName}

	sessionHandler := handlers.NewSessionHandler(
		sessionManager, cookieName, config.AppConfig.SessionCookieMaxAge, config.IsProduction())
	profileHandler := handlers.NewProfileHandler(userClient, therapistClient, errHelper)
	settingsHandler := handlers.NewSettingsHandler(userClient, sessionManager, cookieName, errHelper)
	searchHandler := handlers.NewSearchHandler(directoryService, errHelper)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, errHelper)
	wizardHandler := handlers.NewWizardHandler(wizardService, errHelper)
	bookingHandler := handlers.NewBookingHandler(bookingClient, errHelper)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, errHelper)
	clientsHandler := handlers.NewClientsHandler(therapistClient, errHelper)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Manager:    sessionManager,
		CookieName: cookieName,

		Session:      sessionHandler,
		Profile:      profileHandler,
		Settings:     settingsHandler,
		Search:       searchHandler,
		Availability: availabilityHandler,
		Wizard:       wizardHandler,
		Booking:      bookingHandler,
		Dashboard:    dashboardHandler,
		Clients:      clientsHandler,
	}

	// Register routes with the assembled handler bundle.
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
