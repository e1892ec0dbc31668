package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/luvium/lead-intake/internal/api/router"
	appconfig "github.com/luvium/lead-intake/internal/config"
	"github.com/luvium/lead-intake/internal/leads"
	"github.com/luvium/lead-intake/internal/notify"
	"github.com/luvium/lead-intake/internal/observability/metrics"
	"github.com/luvium/lead-intake/internal/portal"
	"github.com/luvium/lead-intake/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting lead-intake API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Lead storage: Postgres when configured, in-memory otherwise.
	var repo leads.Repository
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create pgx pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		repo = leads.NewPostgresRepository(pool)
		logger.Info("using postgres lead store")
	} else {
		repo = leads.NewInMemoryRepository()
		logger.Warn("DATABASE_URL not set, using in-memory lead store")
	}

	sender := buildEmailSender(ctx, cfg, logger)
	notifier := notify.NewLeadNotifier(sender, cfg.OperatorEmail, logger)

	intakeMetrics := metrics.NewIntakeMetrics(nil)
	service := leads.NewService(repo, notifier, intakeMetrics, logger)
	leadsHandler := leads.NewHandler(service, repo, logger)

	fileStore, err := portal.NewFileStore(cfg.DataDir)
	if err != nil {
		logger.Error("failed to initialize portal file store", "error", err)
		os.Exit(1)
	}
	processor := portal.NewProcessor(fileStore, notifier, logger)
	portalHandler := portal.NewHandler(processor, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		LeadsHandler:       leadsHandler,
		PortalHandler:      portalHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildEmailSender picks the mail transport from config. Missing credentials
// degrade to the logging stub so registration never depends on email.
func buildEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	provider := cfg.EmailProvider

	if provider == "sendgrid" || (provider == "auto" && cfg.SendGridAPIKey != "") {
		if sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger); sender != nil {
			logger.Info("using sendgrid email sender", "from", cfg.SendGridFromEmail)
			return sender
		}
		logger.Warn("sendgrid selected but not configured")
	}

	if provider == "ses" || (provider == "auto" && cfg.SESFromEmail != "") {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			logger.Warn("failed to load AWS config for SES", "error", err)
		} else if sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SESFromName,
		}, logger); sender != nil {
			logger.Info("using SES email sender", "from", cfg.SESFromEmail)
			return sender
		}
	}

	logger.Warn("email credentials not configured, notifications disabled")
	return notify.NewStubEmailSender(logger)
}
