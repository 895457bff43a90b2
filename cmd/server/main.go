package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venuebooking/config"
	_ "venuebooking/docs"
	"venuebooking/internal/adapters/auth"
	"venuebooking/internal/adapters/email"
	"venuebooking/internal/adapters/venues"
	deliveryhttp "venuebooking/internal/delivery/http"
	"venuebooking/internal/delivery/http/controllers"
	"venuebooking/internal/delivery/http/middleware"
	"venuebooking/internal/repository/postgres"
	"venuebooking/internal/services"

	_ "github.com/lib/pq"
)

// @title Venue Booking API
// @version 1.0
// @description Book fixed-length time slots of shared venues and browse month and week calendars.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return err
	}
	if cfg.AutoMigrate {
		if err := postgres.InitSchema(ctx, db); err != nil {
			return err
		}
		logger.Info("schema ready")
	}

	catalog, err := cfg.SlotCatalog()
	if err != nil {
		return err
	}
	venueList, err := venues.ParseList(cfg.Venues)
	if err != nil {
		return err
	}
	registry, err := venues.NewStaticRegistry(venueList)
	if err != nil {
		return err
	}

	bookingRepo := postgres.NewBookingRepository(db)
	checker := services.NewConflictChecker(bookingRepo)
	bookingService := services.NewBookingService(bookingRepo, registry, catalog, checker, cfg.ContextTimeout)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Provider,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}
	notifier := services.NewEmailNotifier(mailer, renderer, registry, logger)

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is empty; bearer tokens are signed with an empty key")
	}
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	router := deliveryhttp.NewRouter(
		controllers.NewBookingController(logger, bookingService, notifier),
		controllers.NewCalendarController(logger, bookingService),
		controllers.NewVenueController(logger, registry, bookingService),
		middleware.RequireAuth(verifier, logger),
	)
	handler := middleware.CORS(cfg.CORSOrigins, middleware.LoggingMiddleware(logger, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "slots", catalog.Len(), "venues", len(venueList))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
