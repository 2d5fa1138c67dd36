package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/hexvane/mhfgo/internal/agent"
	"github.com/hexvane/mhfgo/internal/config"
	"github.com/hexvane/mhfgo/internal/data"
	"github.com/hexvane/mhfgo/internal/db"
	"github.com/hexvane/mhfgo/internal/model"
	"github.com/hexvane/mhfgo/internal/population"
	"github.com/hexvane/mhfgo/internal/sim"
)

const defaultConfigPath = "config/huntserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := defaultConfigPath
	if p := os.Getenv("MHFGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadHuntServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	agent.EnableDebugLogging(logLevel == slog.LevelDebug)

	slog.Info("huntserver starting",
		"log_level", cfg.LogLevel,
		"tick_interval", cfg.TickInterval,
		"max_population", cfg.MaxPopulation)

	catalog, spawnPoints, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	slog.Info("species catalog loaded", "source", cfg.SpeciesSource, "species", catalog.Len())

	rng := agent.NewLockedRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	manager := population.NewManager(catalog, rng, cfg.MaxPopulation, cfg.SpawnInterval.Seconds())
	for _, p := range spawnPoints {
		manager.AddSpawnPoint(p)
	}

	players := make(sim.StaticPlayers, 0, len(cfg.DemoPlayers))
	for _, p := range cfg.DemoPlayers {
		players = append(players, model.PlayerSnapshot{
			ID:       p.ID,
			Position: model.NewVector(p.X, p.Y, p.Z),
			Defense:  p.Defense,
		})
	}

	runner := sim.NewRunner(manager, players, sim.SlogSink{}, cfg.TickInterval)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runner.Start(gctx)
	})

	return g.Wait()
}

// loadCatalog builds the species catalog and spawn point list from the
// configured source.
func loadCatalog(ctx context.Context, cfg config.HuntServer) (*data.Catalog, []model.Vector, error) {
	spawnPoints := make([]model.Vector, 0, len(cfg.SpawnPoints))
	for _, p := range cfg.SpawnPoints {
		spawnPoints = append(spawnPoints, model.NewVector(p.X, p.Y, p.Z))
	}

	switch cfg.SpeciesSource {
	case config.SpeciesSourceBuiltin, "":
		return data.BuiltIn(), spawnPoints, nil

	case config.SpeciesSourceFile:
		catalog, err := data.LoadFile(cfg.SpeciesFile)
		if err != nil {
			return nil, nil, fmt.Errorf("loading species file: %w", err)
		}
		return catalog, spawnPoints, nil

	case config.SpeciesSourceDatabase:
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return nil, nil, fmt.Errorf("migrating database: %w", err)
		}

		templates, err := db.NewSpeciesRepository(database.Pool()).LoadAll(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("loading species from database: %w", err)
		}
		catalog, err := data.NewCatalog(templates)
		if err != nil {
			return nil, nil, err
		}

		dbPoints, err := db.NewSpawnPointRepository(database.Pool()).LoadAll(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("loading spawn points from database: %w", err)
		}
		if len(dbPoints) > 0 {
			spawnPoints = dbPoints
		}
		return catalog, spawnPoints, nil

	default:
		return nil, nil, fmt.Errorf("unknown species_source %q", cfg.SpeciesSource)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
