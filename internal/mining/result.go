package mining

import (
	"time"

	"github.com/google/uuid"
)

// CombinedRule is the result of evaluating one context filter against one
// target outcome over the full historical table. Immutable after the run.
type CombinedRule struct {
	ID          uuid.UUID     `json:"id"`
	ContextName string        `json:"context_name"`
	OutcomeName string        `json:"outcome_name"`
	TotalGames  int           `json:"total_games"`
	HitCount    int           `json:"hit_count"`
	NetProfit   float64       `json:"net_profit"`
	Small       WindowSummary `json:"small_window"`
	Large       WindowSummary `json:"large_window"`
	Approved    bool          `json:"approved"`
	Err         string        `json:"error,omitempty"`
}

// Failed reports whether this combination was skipped after an isolated
// failure.
func (r CombinedRule) Failed() bool {
	return r.Err != ""
}

// RuleID derives a stable identifier from the combination names, so the
// same pair maps to the same ID across runs.
func RuleID(contextName, outcomeName string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(contextName+"|"+outcomeName))
}

// RunReport is the output of one full mining run. Results keep the stable
// cross-product order: lexicographic by context name, then outcome name.
type RunReport struct {
	RunID     uuid.UUID      `json:"run_id"`
	StartedAt time.Time      `json:"started_at"`
	Duration  time.Duration  `json:"duration"`
	TotalRows int            `json:"total_rows"`
	Results   []CombinedRule `json:"results"`
}

// Approved returns the approved subset of results in report order; this is
// the sole input carried forward to the recommendation stage.
func (r *RunReport) Approved() []CombinedRule {
	approved := make([]CombinedRule, 0)
	for _, result := range r.Results {
		if result.Approved {
			approved = append(approved, result)
		}
	}
	return approved
}

// FailedCount returns the number of combinations skipped after isolated
// failures.
func (r *RunReport) FailedCount() int {
	failed := 0
	for _, result := range r.Results {
		if result.Failed() {
			failed++
		}
	}
	return failed
}
