package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fetamlet/go-telegram-cutbot/internal/config"
)

// Module provides storage dependencies.
var Module = fx.Module("storage",
	fx.Provide(NewRepositoryProvider),
)

// RepositoryParams holds dependencies for NewRepositoryProvider.
type RepositoryParams struct {
	fx.In
	Cfg    *config.Config
	LC     fx.Lifecycle
	Logger *zap.Logger
}

// NewRepositoryProvider connects to Postgres when a DSN is configured
// and ensures the schema; with no DSN it returns a disabled repository
// so the bot runs without a database.
func NewRepositoryProvider(params RepositoryParams) (*Repository, error) {
	if params.Cfg.Database.DSN == "" {
		params.Logger.Info("No database DSN configured, calculation history is disabled")

		return NewRepository(nil, params.Logger), nil
	}

	db, err := sqlx.Connect("postgres", params.Cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	params.LC.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing database connection...")

			return db.Close()
		},
	})

	repo := NewRepository(db, params.Logger)
	if err := repo.EnsureSchema(); err != nil {
		return nil, err
	}

	return repo, nil
}
