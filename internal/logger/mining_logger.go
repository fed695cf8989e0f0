// Package logger provides mining-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// MiningLogger provides dedicated logging for backtest mining runs.
type MiningLogger struct {
	*logrus.Entry
}

// NewMiningLogger creates a new mining logger.
func NewMiningLogger(baseLogger *logrus.Logger) *MiningLogger {
	return &MiningLogger{
		Entry: baseLogger.WithField("component", "mining"),
	}
}

// LogPairEvaluated logs one (context, outcome) combination result.
func (ml *MiningLogger) LogPairEvaluated(contextName, outcomeName string, totalGames, hitCount int, netProfit float64, approved bool) {
	ml.WithFields(logrus.Fields{
		"context_name": contextName,
		"outcome_name": outcomeName,
		"total_games":  totalGames,
		"hit_count":    hitCount,
		"net_profit":   netProfit,
		"approved":     approved,
	}).Debug("Combination evaluated")
}

// LogCombinationFailure logs an isolated per-combination failure.
func (ml *MiningLogger) LogCombinationFailure(contextName, outcomeName string, err error) {
	ml.WithFields(logrus.Fields{
		"context_name": contextName,
		"outcome_name": outcomeName,
		"error":        err.Error(),
	}).Warn("Combination skipped after failure")
}

// LogRuleApproved logs promotion of a combination to approved status.
func (ml *MiningLogger) LogRuleApproved(contextName, outcomeName string, smallHitRate, largeHitRate, netProfit float64) {
	ml.WithFields(logrus.Fields{
		"context_name":   contextName,
		"outcome_name":   outcomeName,
		"small_hit_rate": smallHitRate,
		"large_hit_rate": largeHitRate,
		"net_profit":     netProfit,
		"event_type":     "approval",
	}).Info("Combination approved")
}

// LogRunCompleted logs the summary of a full mining run.
func (ml *MiningLogger) LogRunCompleted(runID string, pairsEvaluated, pairsFailed, approvedCount int, durationMs float64) {
	ml.WithFields(logrus.Fields{
		"run_id":          runID,
		"pairs_evaluated": pairsEvaluated,
		"pairs_failed":    pairsFailed,
		"approved_count":  approvedCount,
		"duration_ms":     durationMs,
	}).Info("Mining run completed")
}

// LogRecommendation logs one recommendation emitted for an upcoming match.
func (ml *MiningLogger) LogRecommendation(matchIdentity string, outcomes, contexts []string) {
	ml.WithFields(logrus.Fields{
		"match":    matchIdentity,
		"outcomes": outcomes,
		"contexts": contexts,
	}).Info("Recommendation emitted")
}
