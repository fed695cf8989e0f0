package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/lay-scout/internal/database"
	"github.com/yourusername/lay-scout/internal/mining"
)

// PostgresRunRepository implements RunRepository for PostgreSQL
type PostgresRunRepository struct {
	db *database.DB
}

// NewPostgresRunRepository creates a new mining run repository
func NewPostgresRunRepository(db *database.DB) RunRepository {
	return &PostgresRunRepository{db: db}
}

// SaveRun persists a completed run and its approved rules atomically.
func (r *PostgresRunRepository) SaveRun(ctx context.Context, report *mining.RunReport) error {
	approved := report.Approved()

	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		runQuery := `
			INSERT INTO mining_runs (run_id, started_at, duration_ms, total_rows,
			                         pairs_evaluated, pairs_failed, approved_count)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		_, err := tx.Exec(ctx, runQuery,
			report.RunID, report.StartedAt, report.Duration.Milliseconds(), report.TotalRows,
			len(report.Results), report.FailedCount(), len(approved),
		)
		if err != nil {
			return fmt.Errorf("failed to insert mining run: %w", err)
		}

		ruleQuery := `
			INSERT INTO approved_rules (rule_id, run_id, context_name, outcome_name,
			                            total_games, hit_count, net_profit,
			                            small_games, small_hit_rate, large_games, large_hit_rate)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`
		for _, rule := range approved {
			_, err := tx.Exec(ctx, ruleQuery,
				rule.ID, report.RunID, rule.ContextName, rule.OutcomeName,
				rule.TotalGames, rule.HitCount, rule.NetProfit,
				rule.Small.Games, rule.Small.HitRate, rule.Large.Games, rule.Large.HitRate,
			)
			if err != nil {
				return fmt.Errorf("failed to insert approved rule: %w", err)
			}
		}
		return nil
	})
}

// GetRun retrieves one run summary by ID.
func (r *PostgresRunRepository) GetRun(ctx context.Context, runID uuid.UUID) (*RunSummary, error) {
	query := `
		SELECT run_id, started_at, duration_ms, total_rows,
		       pairs_evaluated, pairs_failed, approved_count
		FROM mining_runs
		WHERE run_id = $1
	`

	summary := &RunSummary{}
	err := r.db.GetPool().QueryRow(ctx, query, runID).Scan(
		&summary.RunID, &summary.StartedAt, &summary.DurationMs, &summary.TotalRows,
		&summary.PairsEvaluated, &summary.PairsFailed, &summary.ApprovedCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("mining run %s not found", runID)
		}
		return nil, fmt.Errorf("failed to query mining run: %w", err)
	}

	return summary, nil
}

// GetLatestApprovedRules returns the approved rules of the most recent run.
func (r *PostgresRunRepository) GetLatestApprovedRules(ctx context.Context) ([]mining.CombinedRule, error) {
	query := `
		SELECT ar.rule_id, ar.context_name, ar.outcome_name,
		       ar.total_games, ar.hit_count, ar.net_profit,
		       ar.small_games, ar.small_hit_rate, ar.large_games, ar.large_hit_rate
		FROM approved_rules ar
		JOIN mining_runs mr ON mr.run_id = ar.run_id
		WHERE mr.run_id = (SELECT run_id FROM mining_runs ORDER BY started_at DESC LIMIT 1)
		ORDER BY ar.context_name, ar.outcome_name
	`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved rules: %w", err)
	}
	defer rows.Close()

	var rules []mining.CombinedRule
	for rows.Next() {
		rule := mining.CombinedRule{Approved: true}
		err := rows.Scan(
			&rule.ID, &rule.ContextName, &rule.OutcomeName,
			&rule.TotalGames, &rule.HitCount, &rule.NetProfit,
			&rule.Small.Games, &rule.Small.HitRate, &rule.Large.Games, &rule.Large.HitRate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approved rule: %w", err)
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

// ListRuns returns recent run summaries, newest first.
func (r *PostgresRunRepository) ListRuns(ctx context.Context, limit int) ([]*RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT run_id, started_at, duration_ms, total_rows,
		       pairs_evaluated, pairs_failed, approved_count
		FROM mining_runs
		ORDER BY started_at DESC
		LIMIT $1
	`

	rows, err := r.db.GetPool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query mining runs: %w", err)
	}
	defer rows.Close()

	var summaries []*RunSummary
	for rows.Next() {
		summary := &RunSummary{}
		err := rows.Scan(
			&summary.RunID, &summary.StartedAt, &summary.DurationMs, &summary.TotalRows,
			&summary.PairsEvaluated, &summary.PairsFailed, &summary.ApprovedCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mining run: %w", err)
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}
