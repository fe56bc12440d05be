package bootstrap

import (
	"context"
	"log/slog"

	"tripbook-reservations/internal/infra/memory"
	"tripbook-reservations/internal/infra/postgres"
	"tripbook-reservations/internal/pkg/config"
	"tripbook-reservations/internal/pkg/errs"
	"tripbook-reservations/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewReservationStore,
	),
)

// NewReservationStore selects the store backend by configuration: "postgres"
// for the durable pgx-backed store, anything else for the in-memory one.
func NewReservationStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (usecase.ReservationStore, error) {
	if cfg.DB.Driver != "postgres" {
		logger.Info("using in-memory reservation store")
		return memory.NewReservationStore(), nil
	}

	pool, err := pgxpool.New(context.Background(), cfg.DB.BuildDSN())
	if err != nil {
		return nil, errs.Wrap(err, "failed to create connection pool")
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := pool.Ping(ctx); err != nil {
				return errs.Wrap(err, "failed to ping database")
			}
			return postgres.Migrate(ctx, pool)
		},
		OnStop: func(_ context.Context) error {
			pool.Close()
			return nil
		},
	})

	logger.Info("using postgres reservation store", "host", cfg.DB.Host, "db", cfg.DB.DBName)
	return postgres.NewReservationStore(pool, logger), nil
}
