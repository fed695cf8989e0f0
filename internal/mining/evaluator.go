package mining

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/lay-scout/internal/logger"
	"github.com/yourusername/lay-scout/internal/metrics"
	"github.com/yourusername/lay-scout/internal/models"
	"github.com/yourusername/lay-scout/internal/outcome"
	"github.com/yourusername/lay-scout/internal/rules"
)

// progressEvery controls how often the progress counter is logged.
const progressEvery = 50

// Evaluator runs the cross-product backtest. Each (context, outcome) pair
// is pure given the historical table, so pairs are distributed over a
// bounded worker group with independently written result slots and no
// shared mutable state.
type Evaluator struct {
	payout  PayoutRule
	windows WindowSpec
	workers int
	logger  *logrus.Logger
	mlog    *logger.MiningLogger
}

// NewEvaluator creates an evaluator. workers <= 0 selects GOMAXPROCS.
func NewEvaluator(payout PayoutRule, windows WindowSpec, workers int, log *logrus.Logger) *Evaluator {
	if log == nil {
		log = logrus.New()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Evaluator{
		payout:  payout,
		windows: windows,
		workers: workers,
		logger:  log,
		mlog:    logger.NewMiningLogger(log),
	}
}

// pair is one cell of the cross product.
type pair struct {
	contextName string
	outcomeName string
}

// Run evaluates every (context, outcome) combination over the historical
// table. contextNames/outcomeNames narrow the catalogs; empty slices mean
// the full catalog (sorted) and the default mined outcomes respectively.
// A failure inside one combination is recorded on its result and never
// aborts the batch; cancellation between pair evaluations does.
func (e *Evaluator) Run(
	ctx context.Context,
	rows []models.MatchRecord,
	catalog *rules.Catalog,
	contextNames []string,
	registry *outcome.Registry,
	outcomeNames []string,
) (*RunReport, error) {
	if len(contextNames) == 0 {
		contextNames = catalog.Names()
	} else {
		contextNames = sortedCopy(contextNames)
	}
	if len(outcomeNames) == 0 {
		outcomeNames = sortedCopy(outcome.DefaultMined)
	} else {
		outcomeNames = sortedCopy(outcomeNames)
	}

	pairs := make([]pair, 0, len(contextNames)*len(outcomeNames))
	for _, contextName := range contextNames {
		for _, outcomeName := range outcomeNames {
			pairs = append(pairs, pair{contextName: contextName, outcomeName: outcomeName})
		}
	}

	e.logger.WithFields(logrus.Fields{
		"rows":     len(rows),
		"contexts": len(contextNames),
		"outcomes": len(outcomeNames),
		"pairs":    len(pairs),
		"workers":  e.workers,
	}).Info("Starting mining run")

	report := &RunReport{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
		TotalRows: len(rows),
		Results:   make([]CombinedRule, len(pairs)),
	}

	var done atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.workers)

	for i := range pairs {
		i := i
		group.Go(func() error {
			// Checkpoint granularity is one pair: stop between
			// evaluations, never inside one.
			if err := groupCtx.Err(); err != nil {
				return err
			}

			started := time.Now()
			report.Results[i] = e.evaluatePair(rows, catalog, registry, pairs[i])
			metrics.RecordPairEvaluated(time.Since(started).Seconds())

			if n := done.Add(1); n%progressEvery == 0 {
				e.logger.WithFields(logrus.Fields{
					"done":  n,
					"total": len(pairs),
				}).Debug("Mining progress")
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("mining run interrupted: %w", err)
	}

	report.Duration = time.Since(report.StartedAt)
	approved := report.Approved()
	metrics.RecordMiningRun(report.Duration.Seconds(), len(approved))
	e.mlog.LogRunCompleted(
		report.RunID.String(),
		len(report.Results),
		report.FailedCount(),
		len(approved),
		float64(report.Duration.Milliseconds()),
	)

	return report, nil
}

// evaluatePair scores one combination. Unknown names and filter failures
// are recorded on the result, isolating the combination from the batch.
func (e *Evaluator) evaluatePair(
	rows []models.MatchRecord,
	catalog *rules.Catalog,
	registry *outcome.Registry,
	p pair,
) CombinedRule {
	result := CombinedRule{
		ID:          RuleID(p.contextName, p.outcomeName),
		ContextName: p.contextName,
		OutcomeName: p.outcomeName,
	}

	filter, err := catalog.Resolve(p.contextName)
	if err != nil {
		return e.failPair(result, err)
	}
	predicate, err := registry.Resolve(p.outcomeName)
	if err != nil {
		return e.failPair(result, err)
	}

	subset := rules.Apply(rows, filter)
	// An empty context is a valid zero-game result, not an error.
	if len(subset) == 0 {
		result.Small = summarizeWindow(e.windows.SmallLabel, e.windows.SmallCap, nil, nil)
		result.Large = summarizeWindow(e.windows.LargeLabel, e.windows.LargeCap, nil, nil)
		return result
	}

	// Date order decides what "recent" means for the trailing windows.
	sort.SliceStable(subset, func(i, j int) bool {
		return subset[i].Date.Before(subset[j].Date)
	})

	occurred := make([]bool, len(subset))
	profits := make([]float64, len(subset))
	for i := range subset {
		occurred[i] = predicate(&subset[i])
		profits[i] = e.payout.Profit(occurred[i])
		if !occurred[i] {
			result.HitCount++
		}
		result.NetProfit += profits[i]
	}
	result.TotalGames = len(subset)

	result.Small = summarizeWindow(e.windows.SmallLabel, e.windows.SmallCap, occurred, profits)
	result.Large = summarizeWindow(e.windows.LargeLabel, e.windows.LargeCap, occurred, profits)
	result.Approved = result.TotalGames > 0 &&
		result.Small.HitRate > e.windows.MinHitRate &&
		result.Large.HitRate > e.windows.MinHitRate

	e.mlog.LogPairEvaluated(p.contextName, p.outcomeName, result.TotalGames, result.HitCount, result.NetProfit, result.Approved)
	if result.Approved {
		e.mlog.LogRuleApproved(p.contextName, p.outcomeName, result.Small.HitRate, result.Large.HitRate, result.NetProfit)
	}
	return result
}

func (e *Evaluator) failPair(result CombinedRule, err error) CombinedRule {
	result.Err = err.Error()
	metrics.RecordPairFailed()
	e.mlog.LogCombinationFailure(result.ContextName, result.OutcomeName, err)
	return result
}

func sortedCopy(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}
