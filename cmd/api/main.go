package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zondaerp/website/internal/api/router"
	"github.com/zondaerp/website/internal/booking"
	appconfig "github.com/zondaerp/website/internal/config"
	"github.com/zondaerp/website/internal/contact"
	"github.com/zondaerp/website/internal/gcal"
	"github.com/zondaerp/website/internal/helpcenter"
	"github.com/zondaerp/website/internal/notify"
	"github.com/zondaerp/website/internal/observability/metrics"
	"github.com/zondaerp/website/internal/schedule"
	"github.com/zondaerp/website/pkg/logging"
)

func main() {
	// Load configuration
	_ = godotenv.Load()
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting zondaerp website API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	hours := schedule.BusinessHours{
		StartHour: cfg.BusinessStartHour,
		EndHour:   cfg.BusinessEndHour,
		TimeZone:  cfg.BusinessTimeZone,
	}
	if err := hours.Validate(); err != nil {
		logger.Error("invalid business hours", "error", err)
		os.Exit(1)
	}

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	bookingMetrics := metrics.NewBookingMetrics(registry)

	// Google Calendar integration. When credentials are missing the
	// booking flow degrades: submissions are accepted but no event is
	// created.
	var calendarClient gcal.Creator
	if cfg.GoogleCredentialsFile != "" && cfg.CalendarID != "" {
		client, err := gcal.NewClient(context.Background(), cfg.GoogleCredentialsFile, cfg.CalendarID, logger.Named("gcal"))
		if err != nil {
			logger.Error("google calendar client unavailable, continuing without it", "error", err)
		} else {
			calendarClient = client
		}
	} else {
		logger.Warn("google calendar not configured, bookings will not create events")
	}

	// Email delivery. Without a SendGrid key the stub sender logs and
	// reports success so local runs never fail on email.
	var sender notify.EmailSender
	if cfg.SendGridAPIKey != "" {
		sender = notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger.Named("sendgrid"))
	} else {
		logger.Warn("sendgrid not configured, using stub email sender")
		sender = notify.NewStubEmailSender(logger.Named("email"))
	}
	notifier := notify.NewService(sender, logger.Named("notify"))

	coordinator := booking.NewCoordinator(calendarClient, notifier, hours, cfg.BookingAttendeeEmail, logger.Named("booking"), bookingMetrics)

	// Setup router
	routerCfg := &router.Config{
		Logger:             logger,
		BookingHandler:     booking.NewHandler(coordinator, hours, logger.Named("booking"), bookingMetrics),
		EventProxy:         gcal.NewHandler(calendarClient, logger.Named("events")),
		ContactHandler:     contact.NewHandler(notifier, cfg.ContactRecipientEmail, logger.Named("contact"), bookingMetrics),
		HelpHandler:        helpcenter.NewHandler(helpcenter.NewIndex(helpcenter.DefaultArticles()), logger.Named("help")),
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		WebRoot:            cfg.WebRoot,
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
