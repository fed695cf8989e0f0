package mining

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/lay-scout/internal/models"
	"github.com/yourusername/lay-scout/internal/outcome"
	"github.com/yourusername/lay-scout/internal/rules"
)

const testSignal = models.SignalID("VAR01")

// matchedRecord builds a finished match inside the test filter's interval.
// homeGoals controls whether the handicap outcomes occur.
func matchedRecord(day int, homeGoals int) models.MatchRecord {
	return models.MatchRecord{
		Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day),
		League:      "england_premier_league",
		HomeTeam:    "Home",
		AwayTeam:    "Away",
		GoalsHomeFT: homeGoals,
		GoalsAwayFT: 0,
		HasResult:   true,
		Signals:     models.SignalSet{testSignal: 0.5},
	}
}

// unmatchedRecord builds a match whose signal falls outside every test
// filter interval.
func unmatchedRecord(day int) models.MatchRecord {
	rec := matchedRecord(day, 1)
	rec.Signals = models.SignalSet{testSignal: 99.0}
	return rec
}

func testCatalog() *rules.Catalog {
	return rules.NewCatalog([]rules.ContextFilter{
		{
			Name: "ctx_a",
			Constraints: []rules.Constraint{
				{Signal: testSignal, Low: 0.0, High: 1.0},
			},
		},
	})
}

func quietEvaluator() *Evaluator {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewEvaluator(DefaultPayoutRule(), DefaultWindowSpec(), 2, log)
}

func runSingle(t *testing.T, rows []models.MatchRecord, outcomeName string) CombinedRule {
	t.Helper()
	report, err := quietEvaluator().Run(
		context.Background(),
		rows,
		testCatalog(),
		[]string{"ctx_a"},
		outcome.NewRegistry(),
		[]string{outcomeName},
	)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(report.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(report.Results))
	}
	return report.Results[0]
}

func TestRunMostlyMissesNotApproved(t *testing.T) {
	// Ten matched games, one where home wins by five. Laying
	// home_minus_35 hits nine times and loses once.
	rows := make([]models.MatchRecord, 0, 10)
	for day := 0; day < 9; day++ {
		rows = append(rows, matchedRecord(day, 1))
	}
	rows = append(rows, matchedRecord(9, 5))

	result := runSingle(t, rows, "home_minus_35")
	if result.Failed() {
		t.Fatalf("unexpected failure: %s", result.Err)
	}
	if result.TotalGames != 10 {
		t.Errorf("TotalGames = %d, want 10", result.TotalGames)
	}
	if result.HitCount != 9 {
		t.Errorf("HitCount = %d, want 9", result.HitCount)
	}
	wantProfit := 9*0.10 - 1.0
	if math.Abs(result.NetProfit-wantProfit) > 1e-9 {
		t.Errorf("NetProfit = %v, want %v", result.NetProfit, wantProfit)
	}
	if result.Approved {
		t.Error("combination with a 0.9 hit rate must not be approved")
	}
}

func TestRunAllMissesApproved(t *testing.T) {
	rows := make([]models.MatchRecord, 0, 10)
	for day := 0; day < 10; day++ {
		rows = append(rows, matchedRecord(day, 1))
	}

	result := runSingle(t, rows, "home_minus_35")
	if !result.Approved {
		t.Fatal("perfect hit rate in both windows must be approved")
	}
	if result.HitCount != 10 {
		t.Errorf("HitCount = %d, want 10", result.HitCount)
	}
	if math.Abs(result.NetProfit-1.0) > 1e-9 {
		t.Errorf("NetProfit = %v, want 1.0", result.NetProfit)
	}
	if result.Small.HitRate != 1.0 || result.Large.HitRate != 1.0 {
		t.Errorf("window hit rates = %v / %v, want 1.0 / 1.0",
			result.Small.HitRate, result.Large.HitRate)
	}
}

func TestRunEmptySubsetIsZeroGameResult(t *testing.T) {
	rows := []models.MatchRecord{unmatchedRecord(0), unmatchedRecord(1)}

	result := runSingle(t, rows, "home_minus_35")
	if result.Failed() {
		t.Fatalf("empty subset must not be a failure, got: %s", result.Err)
	}
	if result.TotalGames != 0 || result.HitCount != 0 || result.NetProfit != 0 {
		t.Errorf("zero-game result has counts %d/%d/%v",
			result.TotalGames, result.HitCount, result.NetProfit)
	}
	if result.Approved {
		t.Error("zero-game combination must not be approved")
	}
	if result.Small.Games != 0 || result.Large.Games != 0 {
		t.Errorf("window games = %d / %d, want 0 / 0",
			result.Small.Games, result.Large.Games)
	}
}

func TestRunUnknownOutcomeIsolatedFromBatch(t *testing.T) {
	rows := []models.MatchRecord{matchedRecord(0, 1)}

	report, err := quietEvaluator().Run(
		context.Background(),
		rows,
		testCatalog(),
		[]string{"ctx_a"},
		outcome.NewRegistry(),
		[]string{"home_minus_35", "no_such_outcome"},
	)
	if err != nil {
		t.Fatalf("batch must survive an unknown outcome, got: %v", err)
	}
	if len(report.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(report.Results))
	}
	if report.FailedCount() != 1 {
		t.Errorf("FailedCount = %d, want 1", report.FailedCount())
	}

	var failed, succeeded *CombinedRule
	for i := range report.Results {
		if report.Results[i].Failed() {
			failed = &report.Results[i]
		} else {
			succeeded = &report.Results[i]
		}
	}
	if failed == nil || failed.OutcomeName != "no_such_outcome" {
		t.Fatal("the unknown-outcome combination must carry the failure")
	}
	if succeeded == nil || succeeded.TotalGames != 1 {
		t.Fatal("the valid combination must still be evaluated")
	}
}

func TestRunUnknownFilterIsolatedFromBatch(t *testing.T) {
	rows := []models.MatchRecord{matchedRecord(0, 1)}

	report, err := quietEvaluator().Run(
		context.Background(),
		rows,
		testCatalog(),
		[]string{"ctx_a", "no_such_filter"},
		outcome.NewRegistry(),
		[]string{"home_minus_35"},
	)
	if err != nil {
		t.Fatalf("batch must survive an unknown filter, got: %v", err)
	}
	if report.FailedCount() != 1 {
		t.Errorf("FailedCount = %d, want 1", report.FailedCount())
	}
}

func TestRunWindowsAreTrailingSuffixes(t *testing.T) {
	// Oldest 20 games lose the lay, newest 80 hit. The small window
	// (cap 80) sees only the clean suffix; the large window (cap 170)
	// still sees the losses, so the rule stays unapproved.
	rows := make([]models.MatchRecord, 0, 100)
	for day := 0; day < 20; day++ {
		rows = append(rows, matchedRecord(day, 5))
	}
	for day := 20; day < 100; day++ {
		rows = append(rows, matchedRecord(day, 1))
	}

	result := runSingle(t, rows, "home_minus_35")
	if result.Small.Games != 80 {
		t.Fatalf("small window games = %d, want 80", result.Small.Games)
	}
	if result.Small.HitRate != 1.0 {
		t.Errorf("small window hit rate = %v, want 1.0", result.Small.HitRate)
	}
	if result.Large.Games != 100 {
		t.Fatalf("large window games = %d, want 100", result.Large.Games)
	}
	if math.Abs(result.Large.HitRate-0.8) > 1e-9 {
		t.Errorf("large window hit rate = %v, want 0.8", result.Large.HitRate)
	}
	if result.Approved {
		t.Error("a failing large window must veto approval")
	}
}

func TestRunDateOrderNotInputOrder(t *testing.T) {
	// The single losing game is most recent but appears first in the
	// input. Both windows must still see it, so approval is vetoed.
	rows := make([]models.MatchRecord, 0, 10)
	rows = append(rows, matchedRecord(9, 5))
	for day := 0; day < 9; day++ {
		rows = append(rows, matchedRecord(day, 1))
	}

	result := runSingle(t, rows, "home_minus_35")
	if result.Small.Hits != 8 {
		t.Errorf("small window hits = %d, want 8", result.Small.Hits)
	}
	if result.Approved {
		t.Error("the recent loss must be inside both windows")
	}
}

func TestRunDeterministicOrderAndIDs(t *testing.T) {
	rows := []models.MatchRecord{matchedRecord(0, 1)}
	catalog := testCatalog()
	catalog.Add(rules.ContextFilter{
		Name: "ctx_b",
		Constraints: []rules.Constraint{
			{Signal: testSignal, Low: 0.0, High: 1.0},
		},
	})

	run := func() *RunReport {
		report, err := quietEvaluator().Run(
			context.Background(),
			rows,
			catalog,
			nil,
			outcome.NewRegistry(),
			[]string{"home_minus_35", "away_minus_35"},
		)
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
		return report
	}

	first := run()
	second := run()
	if len(first.Results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(first.Results))
	}

	wantOrder := []pair{
		{"ctx_a", "away_minus_35"},
		{"ctx_a", "home_minus_35"},
		{"ctx_b", "away_minus_35"},
		{"ctx_b", "home_minus_35"},
	}
	for i, want := range wantOrder {
		got := first.Results[i]
		if got.ContextName != want.contextName || got.OutcomeName != want.outcomeName {
			t.Errorf("result %d = (%s, %s), want (%s, %s)",
				i, got.ContextName, got.OutcomeName, want.contextName, want.outcomeName)
		}
		if got.ID != second.Results[i].ID {
			t.Errorf("result %d ID differs between identical runs", i)
		}
		if got.ID != RuleID(want.contextName, want.outcomeName) {
			t.Errorf("result %d ID is not derived from its names", i)
		}
	}
}

func TestRunInputRowsNotMutated(t *testing.T) {
	rows := []models.MatchRecord{matchedRecord(1, 1), matchedRecord(0, 1)}
	firstDate := rows[0].Date

	runSingle(t, rows, "home_minus_35")
	if !rows[0].Date.Equal(firstDate) {
		t.Error("evaluator must not reorder the caller's slice")
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows := []models.MatchRecord{matchedRecord(0, 1)}
	_, err := quietEvaluator().Run(
		ctx,
		rows,
		testCatalog(),
		[]string{"ctx_a"},
		outcome.NewRegistry(),
		[]string{"home_minus_35"},
	)
	if err == nil {
		t.Fatal("a cancelled context must abort the run")
	}
}

func TestSummarizeWindowShorterThanCap(t *testing.T) {
	occurred := []bool{false, true, false}
	profits := []float64{0.10, -1.0, 0.10}

	summary := summarizeWindow(8, 80, occurred, profits)
	if summary.Games != 3 {
		t.Errorf("Games = %d, want 3", summary.Games)
	}
	if summary.Hits != 2 {
		t.Errorf("Hits = %d, want 2", summary.Hits)
	}
	if math.Abs(summary.NetProfit-(-0.8)) > 1e-9 {
		t.Errorf("NetProfit = %v, want -0.8", summary.NetProfit)
	}
	if math.Abs(summary.HitRate-2.0/3.0) > 1e-9 {
		t.Errorf("HitRate = %v, want 2/3", summary.HitRate)
	}
}

func TestPayoutRuleProfit(t *testing.T) {
	payout := DefaultPayoutRule()
	if payout.Profit(false) != 0.10 {
		t.Errorf("miss profit = %v, want 0.10", payout.Profit(false))
	}
	if payout.Profit(true) != -1.0 {
		t.Errorf("hit profit = %v, want -1.0", payout.Profit(true))
	}
}
