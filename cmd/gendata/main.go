// Command gendata seeds the species and spawn point tables from the yaml
// data files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hexvane/mhfgo/internal/config"
	"github.com/hexvane/mhfgo/internal/data"
	"github.com/hexvane/mhfgo/internal/db"
	"github.com/hexvane/mhfgo/internal/model"
)

func main() {
	configPath := flag.String("config", "config/huntserver.yaml", "server config path")
	speciesPath := flag.String("species", "data/species.yaml", "species data file")
	flag.Parse()

	if err := run(context.Background(), *configPath, *speciesPath); err != nil {
		slog.Error("gendata failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, speciesPath string) error {
	cfg, err := config.LoadHuntServer(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	catalog, err := data.LoadFile(speciesPath)
	if err != nil {
		return fmt.Errorf("loading species file: %w", err)
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	speciesRepo := db.NewSpeciesRepository(database.Pool())
	for _, id := range catalog.IDs() {
		template, _ := catalog.Get(id)
		if err := speciesRepo.Create(ctx, template); err != nil {
			return err
		}
		slog.Info("species seeded", "id", id, "patterns", len(template.Patterns()))
	}

	spawnRepo := db.NewSpawnPointRepository(database.Pool())
	existing, err := spawnRepo.LoadAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Info("spawn points already present, skipping", "count", len(existing))
		return nil
	}
	for _, p := range cfg.SpawnPoints {
		if _, err := spawnRepo.Create(ctx, model.NewVector(p.X, p.Y, p.Z)); err != nil {
			return err
		}
	}
	slog.Info("spawn points seeded", "count", len(cfg.SpawnPoints))

	return nil
}
