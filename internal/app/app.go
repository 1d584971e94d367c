// Package app wires configuration, storage, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Rexant-b2k/RateReviewRevive/internal/adapter/mail"
	"github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres"
	catalogrepo "github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres/catalog"
	reviewrepo "github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres/review"
	titlerepo "github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres/title"
	userrepo "github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres/user"
	authtoken "github.com/Rexant-b2k/RateReviewRevive/internal/auth"
	"github.com/Rexant-b2k/RateReviewRevive/internal/config"
	authsvc "github.com/Rexant-b2k/RateReviewRevive/internal/service/auth"
	catalogsvc "github.com/Rexant-b2k/RateReviewRevive/internal/service/catalog"
	reviewsvc "github.com/Rexant-b2k/RateReviewRevive/internal/service/review"
	titlesvc "github.com/Rexant-b2k/RateReviewRevive/internal/service/title"
	usersvc "github.com/Rexant-b2k/RateReviewRevive/internal/service/user"
	"github.com/Rexant-b2k/RateReviewRevive/internal/transport/middleware"
	"github.com/Rexant-b2k/RateReviewRevive/internal/transport/rest"
	"github.com/Rexant-b2k/RateReviewRevive/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies pending migrations, builds the service graph and
// serves HTTP until the context is cancelled or a shutdown signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	users := userrepo.New(pool)
	catalog := catalogrepo.New(pool)
	titles := titlerepo.New(pool)
	reviews := reviewrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := authtoken.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	codeIssuer := authtoken.NewCodeIssuer(cfg.Auth.JWTSecret, cfg.Auth.CodeTTL)

	var sender mail.Sender
	if cfg.Mail.Enabled() {
		smtp, err := mail.NewSMTPSender(cfg.Mail)
		if err != nil {
			return fmt.Errorf("mail transport: %w", err)
		}
		sender = smtp
	} else {
		logger.Warn("mail host not configured, confirmation codes will be logged")
		sender = mail.NewLogSender(logger)
	}

	authService := authsvc.NewService(logger, users, txManager, codeIssuer, jwtManager, sender)
	catalogService := catalogsvc.NewService(logger, catalog, users)
	titleService := titlesvc.NewService(logger, titles, catalog, users, txManager, cfg.Catalog.MinYear)
	reviewService := reviewsvc.NewService(logger, reviews, titles, users)
	userService := usersvc.NewService(logger, users)

	router := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Catalog: rest.NewCatalogHandler(catalogService, logger),
		Title:   rest.NewTitleHandler(titleService, logger),
		Review:  rest.NewReviewHandler(reviewService, logger),
		User:    rest.NewUserHandler(userService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		limiter.Middleware(),
		middleware.Auth(authService),
		middleware.Logger(logger),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// migrate applies embedded goose migrations. goose needs database/sql, so a
// short-lived pgx stdlib connection is used alongside the pool.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
