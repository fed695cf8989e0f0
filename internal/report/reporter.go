// Package report renders mining runs and recommendations for the terminal
// and for spreadsheet export.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yourusername/lay-scout/internal/mining"
	"github.com/yourusername/lay-scout/internal/recommend"
)

// GenerateConsoleReport formats a mining run for terminal output.
func GenerateConsoleReport(report *mining.RunReport) string {
	approved := report.Approved()

	var builder strings.Builder
	builder.WriteString("Mining Run Report\n")
	builder.WriteString("=================\n")
	builder.WriteString(fmt.Sprintf("Run ID: %s\n", report.RunID))
	builder.WriteString(fmt.Sprintf("Historical Rows: %d\n", report.TotalRows))
	builder.WriteString(fmt.Sprintf("Combinations Evaluated: %d\n", len(report.Results)))
	builder.WriteString(fmt.Sprintf("Combinations Failed: %d\n", report.FailedCount()))
	builder.WriteString(fmt.Sprintf("Rules Approved: %d\n", len(approved)))
	builder.WriteString(fmt.Sprintf("Duration: %s\n", report.Duration.Round(1e6)))

	if len(approved) > 0 {
		builder.WriteString("\nApproved Rules\n")
		builder.WriteString("--------------\n")
		for _, rule := range approved {
			builder.WriteString(fmt.Sprintf("%s x %s: games=%d hits=%d profit=%.2f (recent %.1f%% / %.1f%%)\n",
				rule.ContextName,
				rule.OutcomeName,
				rule.TotalGames,
				rule.HitCount,
				rule.NetProfit,
				rule.Small.HitRate*100,
				rule.Large.HitRate*100,
			))
		}
	}
	return builder.String()
}

// GenerateConsoleRecommendations formats recommendations for terminal
// output.
func GenerateConsoleRecommendations(recs []recommend.Recommendation) string {
	var builder strings.Builder
	builder.WriteString("Recommendations\n")
	builder.WriteString("===============\n")
	if len(recs) == 0 {
		builder.WriteString("No upcoming fixture satisfies an approved rule.\n")
		return builder.String()
	}
	for _, rec := range recs {
		builder.WriteString(fmt.Sprintf("%s %s v %s [%s]\n",
			rec.Match.Date.Format("2006-01-02"),
			rec.Match.HomeTeam,
			rec.Match.AwayTeam,
			rec.Match.League,
		))
		builder.WriteString(fmt.Sprintf("  lay: %s\n", strings.Join(rec.Outcomes, ", ")))
		builder.WriteString(fmt.Sprintf("  via: %s\n", strings.Join(rec.Contexts, ", ")))
	}
	return builder.String()
}

// ExportRunCSV writes one row per evaluated combination, including the
// trailing-window summaries, for spreadsheets.
func ExportRunCSV(report *mining.RunReport, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"rule_id", "context", "outcome",
		"total_games", "hit_count", "net_profit",
		"small_games", "small_hits", "small_hit_rate", "small_net_profit",
		"large_games", "large_hits", "large_hit_rate", "large_net_profit",
		"approved", "error",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, rule := range report.Results {
		row := []string{
			rule.ID.String(),
			rule.ContextName,
			rule.OutcomeName,
			strconv.Itoa(rule.TotalGames),
			strconv.Itoa(rule.HitCount),
			formatFloat(rule.NetProfit),
			strconv.Itoa(rule.Small.Games),
			strconv.Itoa(rule.Small.Hits),
			formatFloat(rule.Small.HitRate),
			formatFloat(rule.Small.NetProfit),
			strconv.Itoa(rule.Large.Games),
			strconv.Itoa(rule.Large.Hits),
			formatFloat(rule.Large.HitRate),
			formatFloat(rule.Large.NetProfit),
			strconv.FormatBool(rule.Approved),
			rule.Err,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// ExportRecommendationsCSV writes one row per recommended fixture.
func ExportRecommendationsCSV(recs []recommend.Recommendation, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"date", "league", "home_team", "away_team", "outcomes", "contexts"}); err != nil {
		return err
	}
	for _, rec := range recs {
		row := []string{
			rec.Match.Date.Format("2006-01-02"),
			rec.Match.League,
			rec.Match.HomeTeam,
			rec.Match.AwayTeam,
			strings.Join(rec.Outcomes, "|"),
			strings.Join(rec.Contexts, "|"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
