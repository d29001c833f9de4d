package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"collegeevents/config"
	_ "collegeevents/docs"
	"collegeevents/internal/adapters/email"
	"collegeevents/internal/adapters/feed"
	delivery "collegeevents/internal/delivery/http"
	"collegeevents/internal/delivery/http/controllers"
	"collegeevents/internal/delivery/http/middleware"
	"collegeevents/internal/domain"
	"collegeevents/internal/repository/memory"
	"collegeevents/internal/repository/postgres"
	"collegeevents/internal/services"
)

const shutdownTimeout = 10 * time.Second

// @title College Events API
// @version 1.0
// @description Browse, filter and submit college tech events.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	eventRepo, closeRepo, err := newEventRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	effect, err := newSubmissionEffect(cfg, logger)
	if err != nil {
		return err
	}

	eventService := services.NewEventService(eventRepo, effect, logger, cfg.RequestTimeout)
	router := delivery.NewRouter(
		controllers.NewEventController(logger, eventService),
		controllers.NewHealthController(),
	)

	var handler http.Handler = router
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "catalog_source", cfg.CatalogSource)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newEventRepository(ctx context.Context, cfg *config.Config) (domain.EventRepository, func(), error) {
	noop := func() {}
	switch cfg.CatalogSource {
	case config.CatalogSourceCSV:
		repo, err := memory.NewCSVRepository(cfg.CatalogCSVPath)
		if err != nil {
			return nil, noop, err
		}
		return repo, noop, nil
	case config.CatalogSourceURL:
		fetchCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()
		client := &http.Client{Timeout: cfg.RequestTimeout}
		repo, err := memory.NewFetchedRepository(fetchCtx, feed.NewHTTPFetcher(client, cfg.CatalogURL))
		if err != nil {
			return nil, noop, fmt.Errorf("load catalog feed: %w", err)
		}
		return repo, noop, nil
	case config.CatalogSourcePostgres:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, noop, fmt.Errorf("open database: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("ping database: %w", err)
		}
		return postgres.NewEventRepository(db), func() { _ = db.Close() }, nil
	default:
		return memory.NewSeedRepository(), noop, nil
	}
}

func newSubmissionEffect(cfg *config.Config, logger *slog.Logger) (domain.SubmissionEffect, error) {
	effect := services.NewSimulatedBackend(cfg.SubmitDelay, cfg.SubmitFailureRate, nil, logger)
	if cfg.ReviewEmail == "" {
		return effect, nil
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailConfig.Provider,
		FromAddress: cfg.EmailConfig.FromAddress,
		FromName:    cfg.EmailConfig.FromName,
		SES: email.SESConfig{
			Region:             cfg.EmailConfig.AWSRegion,
			AccessKeyID:        cfg.EmailConfig.AWSAccessKeyID,
			SecretAccessKey:    cfg.EmailConfig.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.EmailConfig.InsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("load email templates: %w", err)
	}
	emailService := services.NewEmailService(mailer, renderer, logger)
	return services.NewReviewNotifier(effect, emailService, cfg.ReviewEmail, logger), nil
}
