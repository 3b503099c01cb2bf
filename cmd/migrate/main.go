package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"hotel-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// migrate applies the versioned SQL files under migrations/ with the atlas
// CLI, which must be on PATH (or given with -atlas).
func main() {
	dir := flag.String("dir", "migrations", "directory holding the versioned migrations and atlas.sum")
	atlasBin := flag.String("atlas", "atlas", "atlas executable")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	_ = godotenv.Load()
	var cfg config.DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("failed to load database config", "error", err)
		os.Exit(1)
	}

	if err := run(*dir, *atlasBin, cfg.BuildDSN(), *dryRun); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(dir, atlasBin, url string, dryRun bool) error {
	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    url,
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"pending", len(res.Pending),
		"current", res.Current,
		"target", res.Target,
		"dry_run", dryRun)
	return nil
}
