package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/lay-scout/internal/mining"
	"github.com/yourusername/lay-scout/internal/models"
	"github.com/yourusername/lay-scout/internal/recommend"
)

func sampleReport() *mining.RunReport {
	return &mining.RunReport{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
		Duration:  3 * time.Second,
		TotalRows: 1000,
		Results: []mining.CombinedRule{
			{
				ID:          mining.RuleID("ctx_a", "home_minus_35"),
				ContextName: "ctx_a",
				OutcomeName: "home_minus_35",
				TotalGames:  50,
				HitCount:    50,
				NetProfit:   5.0,
				Small:       mining.WindowSummary{Label: 8, Cap: 80, Games: 50, Hits: 50, HitRate: 1.0, NetProfit: 5.0},
				Large:       mining.WindowSummary{Label: 40, Cap: 170, Games: 50, Hits: 50, HitRate: 1.0, NetProfit: 5.0},
				Approved:    true,
			},
			{
				ID:          mining.RuleID("ctx_b", "home_minus_35"),
				ContextName: "ctx_b",
				OutcomeName: "home_minus_35",
				Err:         "unknown context filter: ctx_b",
			},
		},
	}
}

func TestGenerateConsoleReport(t *testing.T) {
	out := GenerateConsoleReport(sampleReport())

	assert.Contains(t, out, "Combinations Evaluated: 2")
	assert.Contains(t, out, "Combinations Failed: 1")
	assert.Contains(t, out, "Rules Approved: 1")
	assert.Contains(t, out, "ctx_a x home_minus_35")
	assert.NotContains(t, out, "ctx_b x")
}

func TestExportRunCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "run.csv")
	require.NoError(t, ExportRunCSV(sampleReport(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "rule_id", rows[0][0])
	assert.Equal(t, "ctx_a", rows[1][1])
	assert.Equal(t, "true", rows[1][14])
	assert.Equal(t, "unknown context filter: ctx_b", rows[2][15])
}

func TestConsoleRecommendations(t *testing.T) {
	recs := []recommend.Recommendation{
		{
			Match: models.MatchRecord{
				Date:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				League:   "spain_la_liga",
				HomeTeam: "Sevilla",
				AwayTeam: "Getafe",
			},
			Outcomes: []string{"home_minus_35", "home_minus_45"},
			Contexts: []string{"ctx_a"},
		},
	}

	out := GenerateConsoleRecommendations(recs)
	assert.Contains(t, out, "Sevilla v Getafe")
	assert.Contains(t, out, "lay: home_minus_35, home_minus_45")

	empty := GenerateConsoleRecommendations(nil)
	assert.Contains(t, empty, "No upcoming fixture")
}

func TestExportRecommendationsCSV(t *testing.T) {
	recs := []recommend.Recommendation{
		{
			Match: models.MatchRecord{
				Date:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				League:   "spain_la_liga",
				HomeTeam: "Sevilla",
				AwayTeam: "Getafe",
			},
			Outcomes: []string{"home_minus_35"},
			Contexts: []string{"ctx_a"},
		},
	}

	path := filepath.Join(t.TempDir(), "recs.csv")
	require.NoError(t, ExportRecommendationsCSV(recs, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Sevilla")
}
