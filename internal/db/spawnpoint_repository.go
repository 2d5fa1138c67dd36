package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hexvane/mhfgo/internal/model"
)

// SpawnPointRepository handles spawn point persistence.
type SpawnPointRepository struct {
	pool *pgxpool.Pool
}

// NewSpawnPointRepository creates a new spawn point repository.
func NewSpawnPointRepository(pool *pgxpool.Pool) *SpawnPointRepository {
	return &SpawnPointRepository{pool: pool}
}

// LoadAll loads every registered spawn point in insertion order.
func (r *SpawnPointRepository) LoadAll(ctx context.Context) ([]model.Vector, error) {
	rows, err := r.pool.Query(ctx, `SELECT x, y, z FROM spawn_points ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading spawn points: %w", err)
	}
	defer rows.Close()

	var points []model.Vector
	for rows.Next() {
		var p model.Vector
		if err := rows.Scan(&p.X, &p.Y, &p.Z); err != nil {
			return nil, fmt.Errorf("scanning spawn point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating spawn points: %w", err)
	}
	return points, nil
}

// Create registers a spawn point and returns its id.
func (r *SpawnPointRepository) Create(ctx context.Context, p model.Vector) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO spawn_points (x, y, z) VALUES ($1, $2, $3) RETURNING id`,
		p.X, p.Y, p.Z,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("creating spawn point: %w", err)
	}
	return id, nil
}
