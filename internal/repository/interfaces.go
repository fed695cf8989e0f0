// Package repository persists mining runs and their approved rules.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/lay-scout/internal/mining"
)

// RunRepository stores mining runs and retrieves approved rules for the
// recommendation stage.
type RunRepository interface {
	// SaveRun persists a completed run together with its approved rules.
	SaveRun(ctx context.Context, report *mining.RunReport) error

	// GetRun retrieves one run summary by ID.
	GetRun(ctx context.Context, runID uuid.UUID) (*RunSummary, error)

	// GetLatestApprovedRules returns the approved rules of the most
	// recent run, in stored order.
	GetLatestApprovedRules(ctx context.Context) ([]mining.CombinedRule, error)

	// ListRuns returns recent run summaries, newest first.
	ListRuns(ctx context.Context, limit int) ([]*RunSummary, error)
}

// RunSummary is the persisted shape of one mining run.
type RunSummary struct {
	RunID          uuid.UUID
	StartedAt      time.Time
	DurationMs     int64
	TotalRows      int
	PairsEvaluated int
	PairsFailed    int
	ApprovedCount  int
}
