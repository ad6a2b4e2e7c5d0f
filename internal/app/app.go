// Package app wires configuration, logging, storage, and the services
// together. Transport is deliberately absent: the services are the public
// surface, and embedding programs attach their own frontends.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyhub/backend/internal/adapter/postgres"
	"github.com/studyhub/backend/internal/adapter/postgres/account"
	"github.com/studyhub/backend/internal/adapter/postgres/document"
	"github.com/studyhub/backend/internal/adapter/postgres/flashcard"
	"github.com/studyhub/backend/internal/adapter/postgres/mentor"
	"github.com/studyhub/backend/internal/adapter/postgres/note"
	"github.com/studyhub/backend/internal/adapter/postgres/studyplan"
	"github.com/studyhub/backend/internal/adapter/postgres/summary"
	"github.com/studyhub/backend/internal/auth"
	"github.com/studyhub/backend/internal/config"
	"github.com/studyhub/backend/internal/service/content"
	"github.com/studyhub/backend/internal/service/stats"
)

// Services bundles the wired application services for embedding programs.
type Services struct {
	Content  *content.Service
	Stats    *stats.Service
	Verifier *auth.TokenVerifier
}

// NewServices constructs the full service graph over an existing pool.
func NewServices(log *slog.Logger, pool *pgxpool.Pool, cfg *config.Config) *Services {
	tx := postgres.NewTxManager(pool)

	accounts := account.New(pool)
	mentors := mentor.New(pool)
	documents := document.New(pool)
	summaries := summary.New(pool)
	notes := note.New(pool)
	flashcards := flashcard.New(pool)
	plans := studyplan.New(pool)

	return &Services{
		Content: content.NewService(log, accounts, mentors, documents,
			summaries, notes, flashcards, plans, tx),
		Stats:    stats.NewService(log, documents, summaries, notes, flashcards, tx),
		Verifier: auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
	}
}

// Run is the application entry point. It loads configuration, initializes
// the logger, applies pending migrations, wires the services, and blocks
// until the context is cancelled.
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

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	_ = NewServices(logger, pool, cfg)

	logger.Info("application ready")
	<-ctx.Done()

	logger.Info("shutting down")
	return nil
}
