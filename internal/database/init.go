package database

import (
	"context"
	"fmt"

	"github.com/yourusername/lay-scout/internal/config"
)

// Initialize creates a database connection pool and ensures the mining
// schema exists. Persistence is optional; callers must only reach here when
// the database is enabled in configuration.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return db, nil
}

func ensureSchema(ctx context.Context, db *DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS mining_runs (
			run_id UUID PRIMARY KEY,
			started_at TIMESTAMPTZ NOT NULL,
			duration_ms BIGINT NOT NULL,
			total_rows INT NOT NULL,
			pairs_evaluated INT NOT NULL,
			pairs_failed INT NOT NULL,
			approved_count INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS approved_rules (
			rule_id UUID NOT NULL,
			run_id UUID NOT NULL REFERENCES mining_runs(run_id) ON DELETE CASCADE,
			context_name TEXT NOT NULL,
			outcome_name TEXT NOT NULL,
			total_games INT NOT NULL,
			hit_count INT NOT NULL,
			net_profit DOUBLE PRECISION NOT NULL,
			small_games INT NOT NULL,
			small_hit_rate DOUBLE PRECISION NOT NULL,
			large_games INT NOT NULL,
			large_hit_rate DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (run_id, rule_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
