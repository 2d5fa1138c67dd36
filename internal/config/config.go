// Package config loads server configuration from yaml files.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// SpawnPoint is a registered spawn location in the field.
type SpawnPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// DemoPlayer is a static player descriptor for headless runs without a
// game layer attached.
type DemoPlayer struct {
	ID      string  `yaml:"id"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Z       float64 `yaml:"z"`
	Defense int32   `yaml:"defense"`
}

// Catalog source names for HuntServer.SpeciesSource.
const (
	SpeciesSourceBuiltin  = "builtin"
	SpeciesSourceFile     = "file"
	SpeciesSourceDatabase = "database"
)

// HuntServer holds all configuration for the hunt simulation server.
type HuntServer struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Simulation
	TickInterval  time.Duration `yaml:"tick_interval"`  // default: 1s
	MaxPopulation int           `yaml:"max_population"` // default: 10
	SpawnInterval time.Duration `yaml:"spawn_interval"` // default: 30s
	SpawnPoints   []SpawnPoint  `yaml:"spawn_points"`

	// Species catalog source: builtin, file, or database
	SpeciesSource string `yaml:"species_source"`
	SpeciesFile   string `yaml:"species_file"`

	// Database (used when species_source is "database")
	Database DatabaseConfig `yaml:"database"`

	// Static players for headless runs
	DemoPlayers []DemoPlayer `yaml:"demo_players"`
}

// DefaultHuntServer returns HuntServer config with sensible defaults.
func DefaultHuntServer() HuntServer {
	return HuntServer{
		LogLevel:      "info",
		TickInterval:  1 * time.Second,
		MaxPopulation: 10,
		SpawnInterval: 30 * time.Second,
		SpawnPoints: []SpawnPoint{
			{X: 0, Y: 0, Z: 0},
			{X: 10, Y: 0, Z: 10},
			{X: -10, Y: 0, Z: -10},
		},
		SpeciesSource: SpeciesSourceBuiltin,
		SpeciesFile:   "data/species.yaml",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "mhfgo",
			Password: "mhfgo",
			DBName:   "mhfgo",
			SSLMode:  "disable",
		},
	}
}

// LoadHuntServer loads hunt server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadHuntServer(path string) (HuntServer, error) {
	cfg := DefaultHuntServer()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.TickInterval <= 0 {
		return cfg, fmt.Errorf("tick_interval must be positive, got %v", cfg.TickInterval)
	}
	if cfg.MaxPopulation <= 0 {
		return cfg, fmt.Errorf("max_population must be positive, got %d", cfg.MaxPopulation)
	}
	if cfg.SpawnInterval <= 0 {
		return cfg, fmt.Errorf("spawn_interval must be positive, got %v", cfg.SpawnInterval)
	}

	return cfg, nil
}
