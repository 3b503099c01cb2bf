package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(RegisterCatalogSeed),
)

// RegisterCatalogSeed runs the idempotent catalog seed before the server
// starts listening.
func RegisterCatalogSeed(lc fx.Lifecycle, cfg config.Config, seeder commands.CatalogSeeder) {
	if !cfg.Availability.SeedCatalog {
		slog.Info("catalog seed skipped")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := seeder.Seed(ctx)
			return err
		},
	})
}
